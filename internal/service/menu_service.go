package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dujiao-next/bistro/internal/amount"
	"github.com/dujiao-next/bistro/internal/cache"
	"github.com/dujiao-next/bistro/internal/logger"
	"github.com/dujiao-next/bistro/internal/models"
	"github.com/dujiao-next/bistro/internal/pricing"
	"github.com/dujiao-next/bistro/internal/repository"
)

// MenuProduct 菜单商品（接口响应与缓存共用）
type MenuProduct struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Class         string            `json:"class"`
	Description   string            `json:"description"`
	Images        []string          `json:"images"`
	Price         models.Money      `json:"price"`
	Params        pricing.Catalog   `json:"params"`
	DefaultParams pricing.Selection `json:"default_params"`
}

// QuoteResult 商品报价
type QuoteResult struct {
	ProductID     string                 `json:"product_id"`
	Amount        int                    `json:"amount"`
	PriceSingle   models.Money           `json:"price_single"`
	Price         models.Money           `json:"price"`
	Params        pricing.ParamsSnapshot `json:"params"`
	Selection     pricing.Selection      `json:"selection"`
	VisibleImages []string               `json:"visible_images"`
}

// MenuQuery 菜单分页查询条件
type MenuQuery struct {
	Page     int
	PageSize int
	Search   string
}

// MenuPage 菜单分页结果
type MenuPage struct {
	Items    []MenuProduct
	Page     int
	PageSize int
	Total    int64
}

// OptionToggle 切换单个选项，对应表单中一次点击
type OptionToggle struct {
	Param  string `json:"param"`
	Option string `json:"option"`
}

// QuoteInput 报价输入，按 Params、Toggle、Amount、Step 的顺序应用
type QuoteInput struct {
	Params pricing.Selection
	Toggle *OptionToggle
	Amount interface{}
	Step   string
}

// MenuService 菜单服务
type MenuService struct {
	productRepo    repository.ProductRepository
	cacheTTL       time.Duration
	amountSettings amount.Settings
}

// NewMenuService 创建菜单服务
func NewMenuService(productRepo repository.ProductRepository, cacheTTL time.Duration, amountSettings amount.Settings) *MenuService {
	return &MenuService{
		productRepo:    productRepo,
		cacheTTL:       cacheTTL,
		amountSettings: amountSettings.Normalize(),
	}
}

// AmountSettings 数量选择器配置
func (s *MenuService) AmountSettings() amount.Settings {
	return s.amountSettings
}

// ListProducts 获取上架商品列表
func (s *MenuService) ListProducts(ctx context.Context) ([]MenuProduct, error) {
	var cached []MenuProduct
	hit, err := cache.GetJSON(ctx, cache.MenuProductsKey(), &cached)
	if err != nil {
		logger.Warnw("menu_cache_get_failed", "key", cache.MenuProductsKey(), "error", err)
	} else if hit {
		return cached, nil
	}

	products, _, err := s.productRepo.List(repository.ProductListFilter{OnlyActive: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProductFetchFailed, err)
	}
	items := make([]MenuProduct, 0, len(products))
	for i := range products {
		items = append(items, toMenuProduct(&products[i]))
	}
	if err := cache.SetJSON(ctx, cache.MenuProductsKey(), items, s.cacheTTL); err != nil {
		logger.Warnw("menu_cache_set_failed", "key", cache.MenuProductsKey(), "error", err)
	}
	return items, nil
}

// GetProduct 获取单个上架商品
func (s *MenuService) GetProduct(ctx context.Context, productID string) (*MenuProduct, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, ErrProductNotFound
	}
	key := cache.MenuProductKey(productID)
	var cached MenuProduct
	hit, err := cache.GetJSON(ctx, key, &cached)
	if err != nil {
		logger.Warnw("menu_cache_get_failed", "key", key, "error", err)
	} else if hit {
		return &cached, nil
	}

	product, err := s.productRepo.GetByID(productID, true)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProductFetchFailed, err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	item := toMenuProduct(product)
	if err := cache.SetJSON(ctx, key, item, s.cacheTTL); err != nil {
		logger.Warnw("menu_cache_set_failed", "key", key, "error", err)
	}
	return &item, nil
}

// SearchProducts 分页搜索上架商品，不走缓存
func (s *MenuService) SearchProducts(_ context.Context, query MenuQuery) (*MenuPage, error) {
	page, pageSize := repository.NormalizePagination(query.Page, query.PageSize)
	products, total, err := s.productRepo.List(repository.ProductListFilter{
		Page:       page,
		PageSize:   pageSize,
		Search:     query.Search,
		OnlyActive: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProductFetchFailed, err)
	}
	items := make([]MenuProduct, 0, len(products))
	for i := range products {
		items = append(items, toMenuProduct(&products[i]))
	}
	return &MenuPage{Items: items, Page: page, PageSize: pageSize, Total: total}, nil
}

// Quote 按选项与数量计算商品价格
func (s *MenuService) Quote(ctx context.Context, productID string, input QuoteInput) (*QuoteResult, error) {
	product, err := s.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	form := NewProductForm(product, s.amountSettings)
	if input.Params != nil {
		if err := form.SetSelection(input.Params); err != nil {
			return nil, err
		}
	}
	if input.Toggle != nil {
		if err := form.Toggle(input.Toggle.Param, input.Toggle.Option); err != nil {
			return nil, err
		}
	}
	if input.Amount != nil {
		form.SetAmount(input.Amount)
	}
	if strings.TrimSpace(input.Step) != "" {
		if err := form.StepAmount(input.Step); err != nil {
			return nil, err
		}
	}
	quote := form.Quote()
	return &QuoteResult{
		ProductID:     product.ID,
		Amount:        quote.Amount,
		PriceSingle:   models.NewMoneyFromDecimal(quote.PriceSingle),
		Price:         models.NewMoneyFromDecimal(quote.Price),
		Params:        form.Params(),
		Selection:     form.Selection(),
		VisibleImages: form.VisibleImages(),
	}, nil
}

// ImportProducts 校验并写入商品，完成后清除菜单缓存
func (s *MenuService) ImportProducts(ctx context.Context, products []models.Product) (int, error) {
	ids := make([]string, 0, len(products))
	for i := range products {
		product := &products[i]
		product.ID = strings.TrimSpace(product.ID)
		if product.ID == "" || strings.TrimSpace(product.Name) == "" {
			return len(ids), fmt.Errorf("%w: product #%d missing id or name", ErrProductInvalid, i)
		}
		if product.PriceAmount.IsNegative() {
			return len(ids), fmt.Errorf("%w: %s has negative price", ErrProductInvalid, product.ID)
		}
		if err := product.Params.Catalog().Validate(); err != nil {
			return len(ids), fmt.Errorf("%w: %s: %v", ErrProductInvalid, product.ID, err)
		}
		if err := s.productRepo.Upsert(product); err != nil {
			return len(ids), err
		}
		ids = append(ids, product.ID)
	}
	if err := cache.InvalidateMenu(ctx, ids...); err != nil {
		logger.Warnw("menu_cache_invalidate_failed", "product_ids", ids, "error", err)
	}
	return len(ids), nil
}

// PruneProducts 删除不在 keepIDs 中的商品（含下架商品），返回被删除的标识
func (s *MenuService) PruneProducts(ctx context.Context, keepIDs []string) ([]string, error) {
	keep := make(map[string]struct{}, len(keepIDs))
	for _, id := range keepIDs {
		keep[strings.TrimSpace(id)] = struct{}{}
	}
	products, _, err := s.productRepo.List(repository.ProductListFilter{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProductFetchFailed, err)
	}
	removed := make([]string, 0)
	for i := range products {
		if _, ok := keep[products[i].ID]; ok {
			continue
		}
		if err := s.productRepo.Delete(products[i].ID); err != nil {
			return removed, err
		}
		removed = append(removed, products[i].ID)
	}
	if len(removed) > 0 {
		if err := cache.InvalidateMenu(ctx, removed...); err != nil {
			logger.Warnw("menu_cache_invalidate_failed", "product_ids", removed, "error", err)
		}
	}
	return removed, nil
}

// CountProducts 商品总数（含下架商品）
func (s *MenuService) CountProducts(_ context.Context) (int64, error) {
	total, err := s.productRepo.Count()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrProductFetchFailed, err)
	}
	return total, nil
}

func toMenuProduct(product *models.Product) MenuProduct {
	catalog := product.Params.Catalog()
	if catalog == nil {
		catalog = pricing.Catalog{}
	}
	images := []string(product.Images)
	if images == nil {
		images = []string{}
	}
	return MenuProduct{
		ID:            product.ID,
		Name:          product.Name,
		Class:         product.Class,
		Description:   product.Description,
		Images:        images,
		Price:         product.PriceAmount,
		Params:        catalog,
		DefaultParams: pricing.DefaultSelection(catalog),
	}
}
