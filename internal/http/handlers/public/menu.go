package public

import (
	"strconv"
	"strings"

	"github.com/dujiao-next/bistro/internal/http/response"
	"github.com/dujiao-next/bistro/internal/pricing"
	"github.com/dujiao-next/bistro/internal/service"

	"github.com/gin-gonic/gin"
)

// QuoteRequest 商品报价请求
type QuoteRequest struct {
	Params pricing.Selection     `json:"params"`
	Toggle *service.OptionToggle `json:"toggle"`
	Amount interface{}           `json:"amount"`
	Op     string                `json:"op"`
}

// ListProducts 菜单商品列表；携带 page/page_size/q 时按分页搜索返回
func (h *Handler) ListProducts(c *gin.Context) {
	if hasPageQuery(c) {
		h.searchProducts(c)
		return
	}
	products, err := h.MenuService.ListProducts(c.Request.Context())
	if err != nil {
		respondMenuError(c, err)
		return
	}
	response.Success(c, products)
}

// GetProduct 菜单商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	productID, ok := getProductID(c)
	if !ok {
		return
	}
	product, err := h.MenuService.GetProduct(c.Request.Context(), productID)
	if err != nil {
		respondMenuError(c, err)
		return
	}
	response.Success(c, product)
}

// QuoteProduct 按选项与数量计算价格
func (h *Handler) QuoteProduct(c *gin.Context) {
	productID, ok := getProductID(c)
	if !ok {
		return
	}
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	quote, err := h.MenuService.Quote(c.Request.Context(), productID, service.QuoteInput{
		Params: req.Params,
		Toggle: req.Toggle,
		Amount: req.Amount,
		Step:   req.Op,
	})
	if err != nil {
		respondMenuError(c, err)
		return
	}
	response.Success(c, quote)
}

func (h *Handler) searchProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	result, err := h.MenuService.SearchProducts(c.Request.Context(), service.MenuQuery{
		Page:     page,
		PageSize: pageSize,
		Search:   strings.TrimSpace(c.Query("q")),
	})
	if err != nil {
		respondMenuError(c, err)
		return
	}
	response.SuccessWithPage(c, result.Items, response.BuildPagination(result.Page, result.PageSize, result.Total))
}

func hasPageQuery(c *gin.Context) bool {
	for _, key := range []string{"page", "page_size", "q"} {
		if _, ok := c.GetQuery(key); ok {
			return true
		}
	}
	return false
}
