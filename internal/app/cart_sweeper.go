package app

import (
	"context"
	"time"

	"github.com/dujiao-next/bistro/internal/logger"
)

// IdlePurger 可清理空闲数据的组件
type IdlePurger interface {
	PurgeIdle() int
}

// CartSweeperService 定时清理空闲购物车
type CartSweeperService struct {
	name     string
	purger   IdlePurger
	interval time.Duration
}

// NewCartSweeperService 创建购物车清理服务
func NewCartSweeperService(purger IdlePurger, interval time.Duration) *CartSweeperService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &CartSweeperService{
		name:     "cart_sweeper",
		purger:   purger,
		interval: interval,
	}
}

// Name 服务名称
func (s *CartSweeperService) Name() string {
	if s == nil || s.name == "" {
		return "cart_sweeper"
	}
	return s.name
}

// Start 启动清理循环，直到 ctx 结束
func (s *CartSweeperService) Start(ctx context.Context) error {
	if s == nil || s.purger == nil {
		<-ctx.Done()
		return nil
	}
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if purged := s.purger.PurgeIdle(); purged > 0 {
				logger.Infow("cart_sweeper_purged", "count", purged)
			}
		}
	}
}

// Stop 停止服务
func (s *CartSweeperService) Stop(_ context.Context) error {
	return nil
}
