package public

import (
	"errors"

	handlershared "github.com/dujiao-next/bistro/internal/http/handlers/shared"
	"github.com/dujiao-next/bistro/internal/http/response"
	"github.com/dujiao-next/bistro/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

func concatMappedHandlerErrors(groups ...[]mappedHandlerError) []mappedHandlerError {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	result := make([]mappedHandlerError, 0, total)
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}

var menuErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
	{target: service.ErrInvalidSelection, code: response.CodeBadRequest, key: "error.invalid_selection"},
	{target: service.ErrInvalidAmountStep, code: response.CodeBadRequest, key: "error.invalid_amount_step"},
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrCartNotFound, code: response.CodeNotFound, key: "error.cart_not_found"},
	{target: service.ErrCartItemNotFound, code: response.CodeNotFound, key: "error.cart_item_not_found"},
}

var orderErrorRules = []mappedHandlerError{
	{target: service.ErrCartEmpty, code: response.CodeBadRequest, key: "error.cart_empty"},
	{target: service.ErrOrderAddressRequired, code: response.CodeBadRequest, key: "error.order_address_required"},
	{target: service.ErrOrderPhoneInvalid, code: response.CodeBadRequest, key: "error.order_phone_invalid"},
	{target: service.ErrQueueUnavailable, code: response.CodeInternal, key: "error.queue_unavailable"},
}

func respondMenuError(c *gin.Context, err error) {
	respondWithMappedError(c, err, menuErrorRules, response.CodeInternal, "error.product_fetch_failed")
}

func respondCartError(c *gin.Context, err error) {
	respondWithMappedError(c, err, concatMappedHandlerErrors(cartErrorRules, menuErrorRules), response.CodeInternal, "error.internal_error")
}

func respondOrderError(c *gin.Context, err error) {
	respondWithMappedError(c, err, concatMappedHandlerErrors(cartErrorRules, orderErrorRules), response.CodeInternal, "error.order_submit_failed")
}
