package provider

import (
	"github.com/dujiao-next/bistro/internal/amount"
	"github.com/dujiao-next/bistro/internal/cache"
	"github.com/dujiao-next/bistro/internal/config"
	"github.com/dujiao-next/bistro/internal/logger"
	"github.com/dujiao-next/bistro/internal/models"
	"github.com/dujiao-next/bistro/internal/queue"
	"github.com/dujiao-next/bistro/internal/repository"
	"github.com/dujiao-next/bistro/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	ProductRepo repository.ProductRepository

	// Services
	MenuService    *service.MenuService
	CartService    *service.CartService
	OrderService   *service.OrderService
	OrderForwarder *service.OrderForwarder
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端，未启用时为禁用状态的客户端
	queueClient, err := queue.NewClient(&cfg.Queue, cfg.Order.MaxRetry)
	if err != nil {
		logger.Errorw("provider_init_queue_client_failed", "error", err)
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

// AmountSettings 数量选择器配置
func (c *Container) AmountSettings() amount.Settings {
	return amount.Settings{
		DefaultValue: c.Config.Amount.Default,
		Min:          c.Config.Amount.Min,
		Max:          c.Config.Amount.Max,
	}.Normalize()
}

func (c *Container) initRepositories() {
	c.ProductRepo = repository.NewProductRepository(models.DB)
}

func (c *Container) initServices() {
	settings := c.AmountSettings()
	c.OrderForwarder = service.NewOrderForwarder(c.Config.Order.EndpointURL, c.Config.Order.Timeout())
	c.MenuService = service.NewMenuService(c.ProductRepo, c.Config.Menu.CacheTTL(), settings)
	c.CartService = service.NewCartService(c.MenuService, c.Config.Cart.DeliveryFeeAmount(), settings, c.Config.Cart.SessionTTL())
	c.OrderService = service.NewOrderService(c.CartService, c.QueueClient, c.OrderForwarder, c.Config.Order.Timeout())
}
