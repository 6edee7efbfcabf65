package cart

import (
	"github.com/dujiao-next/bistro/internal/models"
	"github.com/dujiao-next/bistro/internal/pricing"
)

// OrderProduct 订单中的商品
type OrderProduct struct {
	ID          string                 `json:"id"`
	Amount      int                    `json:"amount"`
	Price       models.Money           `json:"price"`
	PriceSingle models.Money           `json:"priceSingle"`
	Name        string                 `json:"name"`
	Params      pricing.ParamsSnapshot `json:"params"`
}

// OrderPayload 提交到订单接口的请求体
type OrderPayload struct {
	Address       string         `json:"address"`
	Phone         string         `json:"phone"`
	TotalPrice    models.Money   `json:"totalPrice"`
	SubtotalPrice models.Money   `json:"subtotalPrice"`
	TotalNumber   int            `json:"totalNumber"`
	DeliveryFee   models.Money   `json:"deliveryFee"`
	Products      []OrderProduct `json:"products"`
}

// ToOrderPayload 生成订单请求体，不做字段校验
func (c *Cart) ToOrderPayload(address, phone string) OrderPayload {
	totals := c.totals
	payload := OrderPayload{
		Address:       address,
		Phone:         phone,
		TotalPrice:    models.NewMoneyFromDecimal(totals.TotalPrice),
		SubtotalPrice: models.NewMoneyFromDecimal(totals.SubtotalPrice),
		TotalNumber:   totals.TotalNumber,
		DeliveryFee:   models.NewMoneyFromDecimal(totals.DeliveryFee),
		Products:      make([]OrderProduct, 0, len(c.items)),
	}
	for _, item := range c.items {
		payload.Products = append(payload.Products, OrderProduct{
			ID:          item.ProductID,
			Amount:      item.Amount,
			Price:       models.NewMoneyFromDecimal(item.Price),
			PriceSingle: models.NewMoneyFromDecimal(item.PriceSingle),
			Name:        item.Name,
			Params:      item.Params,
		})
	}
	return payload
}
