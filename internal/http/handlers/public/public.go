package public

import (
	"time"

	"github.com/dujiao-next/bistro/internal/cache"
	"github.com/dujiao-next/bistro/internal/http/response"
	"github.com/dujiao-next/bistro/internal/i18n"
	"github.com/dujiao-next/bistro/internal/logger"
	"github.com/dujiao-next/bistro/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	publicConfigCacheKey = "public:config"
	publicConfigCacheTTL = 60 * time.Second
)

// PublicConfigView 前台组件初始化配置
type PublicConfigView struct {
	Languages   []string     `json:"languages"`
	Amount      AmountView   `json:"amount"`
	DeliveryFee models.Money `json:"delivery_fee"`
}

// AmountView 数量选择器配置
type AmountView struct {
	DefaultValue int `json:"default_value"`
	Min          int `json:"min"`
	Max          int `json:"max"`
}

// GetConfig 获取前台配置
func (h *Handler) GetConfig(c *gin.Context) {
	var cached PublicConfigView
	if hit, err := cache.GetJSON(c.Request.Context(), publicConfigCacheKey, &cached); err == nil && hit {
		response.Success(c, cached)
		return
	}

	settings := h.AmountSettings()
	data := PublicConfigView{
		Languages: []string{i18n.LocaleZH, i18n.LocaleEN},
		Amount: AmountView{
			DefaultValue: settings.DefaultValue,
			Min:          settings.Min,
			Max:          settings.Max,
		},
		DeliveryFee: models.NewMoneyFromDecimal(h.CartService.DeliveryFee()),
	}
	if err := cache.SetJSON(c.Request.Context(), publicConfigCacheKey, data, publicConfigCacheTTL); err != nil {
		logger.Warnw("public_config_cache_set_failed", "error", err)
	}
	response.Success(c, data)
}
