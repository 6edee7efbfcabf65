package pricing

import "github.com/shopspring/decimal"

// Quote 单个商品的计价结果
type Quote struct {
	PriceSingle decimal.Decimal `json:"price_single"`
	Price       decimal.Decimal `json:"price"`
	Amount      int             `json:"amount"`
}

// ComputeUnitPrice 计算单价
// 默认选项的价格已包含在基础价中：选中非默认项加价，取消默认项退还其价格。
func ComputeUnitPrice(basePrice decimal.Decimal, catalog Catalog, selection Selection) decimal.Decimal {
	price := basePrice
	for paramID, param := range catalog {
		for optionID, option := range param.Options {
			selected := selection.Has(paramID, optionID)
			switch {
			case selected && !option.Default:
				price = price.Add(option.Price)
			case !selected && option.Default:
				price = price.Sub(option.Price)
			}
		}
	}
	return price
}

// ComputeTotalPrice 计算小计 unitPrice * quantity
func ComputeTotalPrice(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// Calculate 一次性计算单价与小计
func Calculate(basePrice decimal.Decimal, catalog Catalog, selection Selection, quantity int) Quote {
	unit := ComputeUnitPrice(basePrice, catalog, selection)
	return Quote{
		PriceSingle: unit,
		Price:       ComputeTotalPrice(unit, quantity),
		Amount:      quantity,
	}
}
