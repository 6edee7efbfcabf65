package public

import (
	"github.com/dujiao-next/bistro/internal/http/response"
	"github.com/dujiao-next/bistro/internal/service"

	"github.com/gin-gonic/gin"
)

// SubmitOrderRequest 结账请求
type SubmitOrderRequest struct {
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// SubmitOrder 提交购物车订单
func (h *Handler) SubmitOrder(c *gin.Context) {
	cartID, ok := getCartID(c)
	if !ok {
		return
	}
	var req SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	result, err := h.OrderService.Submit(c.Request.Context(), cartID, service.CheckoutInput{
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		respondOrderError(c, err)
		return
	}
	response.Success(c, result)
}
