package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/dujiao-next/bistro/internal/amount"
	"github.com/dujiao-next/bistro/internal/cart"
	"github.com/dujiao-next/bistro/internal/logger"
	"github.com/dujiao-next/bistro/internal/models"
	"github.com/dujiao-next/bistro/internal/pricing"

	"github.com/shopspring/decimal"
)

// CartItemView 购物车项（用于响应）
type CartItemView struct {
	ID          string                 `json:"id"`
	ProductID   string                 `json:"product_id"`
	Name        string                 `json:"name"`
	Amount      int                    `json:"amount"`
	PriceSingle models.Money           `json:"price_single"`
	Price       models.Money           `json:"price"`
	Selection   pricing.Selection      `json:"selection"`
	Params      pricing.ParamsSnapshot `json:"params"`
}

// CartTotalsView 购物车汇总（用于响应）
type CartTotalsView struct {
	TotalNumber   int          `json:"total_number"`
	SubtotalPrice models.Money `json:"subtotal_price"`
	DeliveryFee   models.Money `json:"delivery_fee"`
	TotalPrice    models.Money `json:"total_price"`
}

// CartView 购物车（用于响应）
type CartView struct {
	ID     string         `json:"id"`
	Items  []CartItemView `json:"items"`
	Totals CartTotalsView `json:"totals"`
}

// AddCartItemInput 加入购物车输入
type AddCartItemInput struct {
	ProductID string
	Params    pricing.Selection // 为 nil 时使用默认选项
	Amount    interface{}       // 为 nil 时使用默认数量
}

type cartSession struct {
	cart     *cart.Cart
	lastSeen time.Time
}

// CartService 购物车会话服务，所有修改在同一把锁内串行执行
type CartService struct {
	mu             sync.Mutex
	sessions       map[string]*cartSession
	menu           *MenuService
	deliveryFee    decimal.Decimal
	amountSettings amount.Settings
	ttl            time.Duration
	now            func() time.Time
}

// NewCartService 创建购物车服务
func NewCartService(menu *MenuService, deliveryFee decimal.Decimal, amountSettings amount.Settings, ttl time.Duration) *CartService {
	return &CartService{
		sessions:       make(map[string]*cartSession),
		menu:           menu,
		deliveryFee:    deliveryFee,
		amountSettings: amountSettings.Normalize(),
		ttl:            ttl,
		now:            time.Now,
	}
}

// DeliveryFee 配送费
func (s *CartService) DeliveryFee() decimal.Decimal {
	return s.deliveryFee
}

// Create 创建空购物车
func (s *CartService) Create(_ context.Context) *CartView {
	c := cart.New(s.deliveryFee)
	cartID := c.ID
	_ = c.Subscribe(func(totals cart.Totals) {
		logger.Debugw("cart_totals_updated",
			"cart_id", cartID,
			"total_number", totals.TotalNumber,
			"total_price", totals.TotalPrice.StringFixed(2),
		)
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[c.ID] = &cartSession{cart: c, lastSeen: s.now()}
	view := buildCartView(c)
	return &view
}

// Get 获取购物车
func (s *CartService) Get(_ context.Context, cartID string) (*CartView, error) {
	var view CartView
	err := s.withCart(cartID, func(c *cart.Cart) error {
		view = buildCartView(c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// Totals 获取购物车汇总
func (s *CartService) Totals(ctx context.Context, cartID string) (*CartTotalsView, error) {
	view, err := s.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return &view.Totals, nil
}

// AddProduct 按选项与数量计价后加入购物车，返回购物车与新加入的商品项
func (s *CartService) AddProduct(ctx context.Context, cartID string, input AddCartItemInput) (*CartView, *CartItemView, error) {
	if !s.exists(cartID) {
		return nil, nil, ErrCartNotFound
	}
	product, err := s.menu.GetProduct(ctx, input.ProductID)
	if err != nil {
		return nil, nil, err
	}
	form := NewProductForm(product, s.amountSettings)
	if input.Params != nil {
		if err := form.SetSelection(input.Params); err != nil {
			return nil, nil, err
		}
	}
	if input.Amount != nil {
		form.SetAmount(input.Amount)
	}
	item := form.PrepareCartProduct()

	var view CartView
	err = s.withCart(cartID, func(c *cart.Cart) error {
		c.Add(item)
		view = buildCartView(c)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	itemView := buildCartItemView(item)
	return &view, &itemView, nil
}

// UpdateItemAmount 修改购物车项数量；无法解析的数量保持原值
func (s *CartService) UpdateItemAmount(_ context.Context, cartID, itemID string, rawAmount interface{}) (*CartView, error) {
	var view CartView
	err := s.withCart(cartID, func(c *cart.Cart) error {
		item := c.Find(itemID)
		if item == nil {
			return ErrCartItemNotFound
		}
		settings := s.amountSettings
		settings.DefaultValue = item.Amount
		widget := amount.NewWidget(settings)
		widget.SetValue(rawAmount)
		c.UpdateAmount(itemID, widget.Value())
		view = buildCartView(c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// StepItemAmount 按 increase/decrease 调整购物车项数量，超出范围时保持边界值
func (s *CartService) StepItemAmount(_ context.Context, cartID, itemID, op string) (*CartView, error) {
	var view CartView
	err := s.withCart(cartID, func(c *cart.Cart) error {
		item := c.Find(itemID)
		if item == nil {
			return ErrCartItemNotFound
		}
		settings := s.amountSettings
		settings.DefaultValue = item.Amount
		widget := amount.NewWidget(settings)
		if !widget.Step(op) {
			return ErrInvalidAmountStep
		}
		c.UpdateAmount(itemID, widget.Value())
		view = buildCartView(c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// RemoveItem 移除购物车项；商品项不存在时不做任何修改，removed 为 false
func (s *CartService) RemoveItem(_ context.Context, cartID, itemID string) (*CartView, bool, error) {
	var (
		view    CartView
		removed bool
	)
	err := s.withCart(cartID, func(c *cart.Cart) error {
		removed = c.RemoveByID(itemID)
		view = buildCartView(c)
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return &view, removed, nil
}

// BuildOrderPayload 生成订单请求体
func (s *CartService) BuildOrderPayload(_ context.Context, cartID, address, phone string) (*cart.OrderPayload, error) {
	var payload cart.OrderPayload
	err := s.withCart(cartID, func(c *cart.Cart) error {
		payload = c.ToOrderPayload(address, phone)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &payload, nil
}

// PurgeIdle 清理超过有效期未访问的购物车，返回清理数量
func (s *CartService) PurgeIdle() int {
	if s.ttl <= 0 {
		return 0
	}
	deadline := s.now().Add(-s.ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	purged := 0
	for id, session := range s.sessions {
		if session.lastSeen.Before(deadline) {
			delete(s.sessions, id)
			purged++
		}
	}
	return purged
}

// Count 当前购物车数量
func (s *CartService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *CartService) exists(cartID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[strings.TrimSpace(cartID)]
	return ok
}

func (s *CartService) withCart(cartID string, fn func(c *cart.Cart) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[strings.TrimSpace(cartID)]
	if !ok {
		return ErrCartNotFound
	}
	session.lastSeen = s.now()
	return fn(session.cart)
}

func buildCartView(c *cart.Cart) CartView {
	items := c.Items()
	views := make([]CartItemView, 0, len(items))
	for _, item := range items {
		views = append(views, buildCartItemView(item))
	}
	totals := c.Totals()
	return CartView{
		ID:    c.ID,
		Items: views,
		Totals: CartTotalsView{
			TotalNumber:   totals.TotalNumber,
			SubtotalPrice: models.NewMoneyFromDecimal(totals.SubtotalPrice),
			DeliveryFee:   models.NewMoneyFromDecimal(totals.DeliveryFee),
			TotalPrice:    models.NewMoneyFromDecimal(totals.TotalPrice),
		},
	}
}

func buildCartItemView(item *cart.LineItem) CartItemView {
	return CartItemView{
		ID:          item.ID,
		ProductID:   item.ProductID,
		Name:        item.Name,
		Amount:      item.Amount,
		PriceSingle: models.NewMoneyFromDecimal(item.PriceSingle),
		Price:       models.NewMoneyFromDecimal(item.Price),
		Selection:   item.Selection.Clone(),
		Params:      item.Params,
	}
}
