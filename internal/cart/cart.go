// Package cart 购物车聚合：维护购物车项并派生数量、小计与总价。
//
// Cart 不是并发安全的，调用方需保证同一时间只有一个修改在执行。
package cart

import (
	EventBus "github.com/asaskevich/EventBus"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const topicUpdated = "cart:updated"

// Totals 购物车汇总，始终由当前购物车项派生
type Totals struct {
	TotalNumber   int
	SubtotalPrice decimal.Decimal
	DeliveryFee   decimal.Decimal
	TotalPrice    decimal.Decimal
}

// Cart 购物车
type Cart struct {
	ID          string
	deliveryFee decimal.Decimal
	items       []*LineItem
	totals      Totals
	bus         EventBus.Bus
}

// New 创建空购物车
func New(deliveryFee decimal.Decimal) *Cart {
	return &Cart{
		ID:          uuid.NewString(),
		deliveryFee: deliveryFee,
		items:       make([]*LineItem, 0),
		totals:      emptyTotals(),
		bus:         EventBus.New(),
	}
}

func emptyTotals() Totals {
	return Totals{
		SubtotalPrice: decimal.Zero,
		DeliveryFee:   decimal.Zero,
		TotalPrice:    decimal.Zero,
	}
}

// Items 当前购物车项（按加入顺序）
func (c *Cart) Items() []*LineItem {
	out := make([]*LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Totals 最近一次重算的汇总
func (c *Cart) Totals() Totals {
	return c.totals
}

// Find 按 ID 查找购物车项
func (c *Cart) Find(id string) *LineItem {
	for _, item := range c.items {
		if item.ID == id {
			return item
		}
	}
	return nil
}

// Add 加入购物车项并重算
func (c *Cart) Add(item *LineItem) {
	if item == nil {
		return
	}
	c.items = append(c.items, item)
	c.Recompute()
}

// Remove 按引用移除购物车项；引用不在购物车中时不做任何事并返回 false
func (c *Cart) Remove(item *LineItem) bool {
	for idx, current := range c.items {
		if current != item {
			continue
		}
		c.items = append(c.items[:idx], c.items[idx+1:]...)
		c.Recompute()
		return true
	}
	return false
}

// RemoveByID 按 ID 移除，语义同 Remove
func (c *Cart) RemoveByID(id string) bool {
	item := c.Find(id)
	if item == nil {
		return false
	}
	return c.Remove(item)
}

// UpdateAmount 修改购物车项数量并重算
func (c *Cart) UpdateAmount(id string, amount int) bool {
	item := c.Find(id)
	if item == nil {
		return false
	}
	item.Recalculate(amount)
	c.Recompute()
	return true
}

// Recompute 重算汇总；空购物车时所有金额（含配送费）归零
func (c *Cart) Recompute() Totals {
	totalNumber := 0
	subtotal := decimal.Zero
	for _, item := range c.items {
		totalNumber += item.Amount
		subtotal = subtotal.Add(item.Price)
	}

	if totalNumber > 0 {
		c.totals = Totals{
			TotalNumber:   totalNumber,
			SubtotalPrice: subtotal,
			DeliveryFee:   c.deliveryFee,
			TotalPrice:    subtotal.Add(c.deliveryFee),
		}
	} else {
		c.totals = emptyTotals()
	}
	c.bus.Publish(topicUpdated, c.totals)
	return c.totals
}

// Subscribe 注册汇总变化回调，每次重算后调用
func (c *Cart) Subscribe(fn func(totals Totals)) error {
	return c.bus.Subscribe(topicUpdated, fn)
}
