package cart

import (
	"github.com/dujiao-next/bistro/internal/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem 购物车中的一个商品实例
type LineItem struct {
	ID          string
	ProductID   string
	Name        string
	Amount      int
	PriceSingle decimal.Decimal
	Price       decimal.Decimal
	Selection   pricing.Selection
	Params      pricing.ParamsSnapshot
}

// NewLineItem 创建购物车项，小计按单价与数量计算
func NewLineItem(productID, name string, amount int, priceSingle decimal.Decimal, selection pricing.Selection, params pricing.ParamsSnapshot) *LineItem {
	item := &LineItem{
		ID:          uuid.NewString(),
		ProductID:   productID,
		Name:        name,
		PriceSingle: priceSingle,
		Selection:   selection.Clone(),
		Params:      params,
	}
	item.Recalculate(amount)
	return item
}

// Recalculate 数量变化后重算小计
func (i *LineItem) Recalculate(amount int) {
	i.Amount = amount
	i.Price = pricing.ComputeTotalPrice(i.PriceSingle, amount)
}
