package router

import (
	"fmt"
	"strings"

	"github.com/dujiao-next/bistro/internal/cache"
	"github.com/dujiao-next/bistro/internal/config"
	publichandlers "github.com/dujiao-next/bistro/internal/http/handlers/public"
	"github.com/dujiao-next/bistro/internal/logger"
	"github.com/dujiao-next/bistro/internal/provider"

	"github.com/gin-gonic/gin"
)

// orderRateLimitKey 下单限流按客户端 IP 计数
var orderRateLimitKey RateLimitKeyFunc = KeyByIP

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "bistro"
	}
	orderRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:order", redisPrefix),
		WindowSeconds: cfg.Security.OrderRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.OrderRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.OrderRateLimit.BlockSeconds,
		MessageKey:    "error.rate_limited",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	apiV1 := r.Group("/api/v1")
	{
		// 菜单接口
		public := apiV1.Group("/public")
		{
			public.GET("/config", publicHandler.GetConfig)
			public.GET("/products", publicHandler.ListProducts)
			public.GET("/products/:id", publicHandler.GetProduct)
			public.POST("/products/:id/quote", publicHandler.QuoteProduct)
		}

		// 购物车接口
		carts := apiV1.Group("/carts")
		{
			carts.POST("", publicHandler.CreateCart)
			carts.GET("/:cart_id", publicHandler.GetCart)
			carts.GET("/:cart_id/totals", publicHandler.GetCartTotals)
			carts.POST("/:cart_id/items", publicHandler.AddCartItem)
			carts.PATCH("/:cart_id/items/:item_id", publicHandler.UpdateCartItem)
			carts.DELETE("/:cart_id/items/:item_id", publicHandler.DeleteCartItem)
			carts.POST("/:cart_id/order",
				RateLimitMiddleware(cache.Client(), orderRule, orderRateLimitKey),
				publicHandler.SubmitOrder,
			)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
