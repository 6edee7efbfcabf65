package public

import (
	"strings"

	"github.com/dujiao-next/bistro/internal/http/response"
	"github.com/dujiao-next/bistro/internal/pricing"
	"github.com/dujiao-next/bistro/internal/service"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest 加入购物车请求
type AddCartItemRequest struct {
	ProductID string            `json:"product_id" binding:"required"`
	Params    pricing.Selection `json:"params"`
	Amount    interface{}       `json:"amount"`
}

// UpdateCartItemRequest 修改数量请求，amount 与 op（increase/decrease）二选一
type UpdateCartItemRequest struct {
	Amount interface{} `json:"amount"`
	Op     string      `json:"op"`
}

// CreateCart 创建购物车
func (h *Handler) CreateCart(c *gin.Context) {
	response.Success(c, h.CartService.Create(c.Request.Context()))
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	cartID, ok := getCartID(c)
	if !ok {
		return
	}
	view, err := h.CartService.Get(c.Request.Context(), cartID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, view)
}

// AddCartItem 加入购物车
func (h *Handler) AddCartItem(c *gin.Context) {
	cartID, ok := getCartID(c)
	if !ok {
		return
	}
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	view, item, err := h.CartService.AddProduct(c.Request.Context(), cartID, service.AddCartItemInput{
		ProductID: req.ProductID,
		Params:    req.Params,
		Amount:    req.Amount,
	})
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, gin.H{
		"cart": view,
		"item": item,
	})
}

// UpdateCartItem 修改购物车项数量
func (h *Handler) UpdateCartItem(c *gin.Context) {
	cartID, ok := getCartID(c)
	if !ok {
		return
	}
	itemID, ok := getItemID(c)
	if !ok {
		return
	}
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	var (
		view *service.CartView
		err  error
	)
	switch {
	case strings.TrimSpace(req.Op) != "":
		view, err = h.CartService.StepItemAmount(c.Request.Context(), cartID, itemID, req.Op)
	case req.Amount != nil:
		view, err = h.CartService.UpdateItemAmount(c.Request.Context(), cartID, itemID, req.Amount)
	default:
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, view)
}

// GetCartTotals 购物车汇总
func (h *Handler) GetCartTotals(c *gin.Context) {
	cartID, ok := getCartID(c)
	if !ok {
		return
	}
	totals, err := h.CartService.Totals(c.Request.Context(), cartID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, totals)
}

// DeleteCartItem 移除购物车项，商品项不存在时 removed 为 false
func (h *Handler) DeleteCartItem(c *gin.Context) {
	cartID, ok := getCartID(c)
	if !ok {
		return
	}
	itemID, ok := getItemID(c)
	if !ok {
		return
	}
	view, removed, err := h.CartService.RemoveItem(c.Request.Context(), cartID, itemID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, gin.H{
		"cart":    view,
		"removed": removed,
	})
}
