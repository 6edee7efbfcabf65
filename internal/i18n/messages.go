package i18n

var messages = map[string]map[string]string{
	LocaleZH: {
		"error.bad_request":            "请求参数错误",
		"error.not_found":              "资源不存在",
		"error.internal_error":         "服务器内部错误",
		"error.too_many_requests":      "请求过于频繁，请稍后再试",
		"error.product_not_found":      "商品不存在",
		"error.product_fetch_failed":   "获取商品失败",
		"error.cart_not_found":         "购物车不存在或已过期",
		"error.cart_item_not_found":    "购物车商品不存在",
		"error.invalid_selection":      "商品选项无效",
		"error.invalid_amount_step":    "数量操作无效",
		"error.cart_empty":             "购物车为空",
		"error.rate_limited":           "操作过于频繁，请 %d 秒后再试",
		"error.rate_limit_unavailable": "限流服务不可用",
		"error.order_address_required": "请填写配送地址",
		"error.order_phone_invalid":    "手机号格式不正确",
		"error.order_submit_failed":    "订单提交失败",
		"error.queue_unavailable":      "订单队列不可用",
	},
	LocaleEN: {
		"error.bad_request":            "Invalid request parameters",
		"error.not_found":              "Resource not found",
		"error.internal_error":         "Internal server error",
		"error.too_many_requests":      "Too many requests, please try again later",
		"error.product_not_found":      "Product not found",
		"error.product_fetch_failed":   "Failed to load product",
		"error.cart_not_found":         "Cart not found or expired",
		"error.cart_item_not_found":    "Cart item not found",
		"error.invalid_selection":      "Invalid product options",
		"error.invalid_amount_step":    "Invalid amount operation",
		"error.cart_empty":             "Cart is empty",
		"error.rate_limited":           "Too many attempts, please retry in %d seconds",
		"error.rate_limit_unavailable": "Rate limiter is unavailable",
		"error.order_address_required": "Delivery address is required",
		"error.order_phone_invalid":    "Invalid phone number",
		"error.order_submit_failed":    "Failed to submit order",
		"error.queue_unavailable":      "Order queue is unavailable",
	},
}
