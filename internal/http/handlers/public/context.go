package public

import (
	handlershared "github.com/dujiao-next/bistro/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

func getProductID(c *gin.Context) (string, bool) {
	return handlershared.GetPathParam(c, "id", "error.product_not_found")
}

func getCartID(c *gin.Context) (string, bool) {
	return handlershared.GetPathParam(c, "cart_id", "error.cart_not_found")
}

func getItemID(c *gin.Context) (string, bool) {
	return handlershared.GetPathParam(c, "item_id", "error.cart_item_not_found")
}
