package public

import "github.com/dujiao-next/bistro/internal/provider"

// Handler 公开接口处理器入口
// 说明：菜单、购物车与下单接口均无需登录。
type Handler struct {
	*provider.Container
}

// New 创建公开接口处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
