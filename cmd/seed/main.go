package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"flag"

	"github.com/dujiao-next/bistro/internal/cache"
	"github.com/dujiao-next/bistro/internal/config"
	"github.com/dujiao-next/bistro/internal/logger"
	"github.com/dujiao-next/bistro/internal/models"
	"github.com/dujiao-next/bistro/internal/provider"
	"github.com/dujiao-next/bistro/internal/repository"
	"github.com/dujiao-next/bistro/internal/service"
)

//go:embed menu.json
var menuJSON []byte

func main() {
	var prune bool
	flag.BoolVar(&prune, "prune", false, "删除 menu.json 中不存在的商品")
	flag.Parse()

	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	defer logger.Sync()
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}, cfg.Database.LogLevel); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 导入后需要清理菜单缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		stdLog.Printf("Redis unavailable, menu cache will not be invalidated: %v", err)
	}

	var products []models.Product
	if err := json.Unmarshal(menuJSON, &products); err != nil {
		stdLog.Fatalf("Failed to parse menu data: %v", err)
	}

	menu := service.NewMenuService(
		repository.NewProductRepository(models.DB),
		cfg.Menu.CacheTTL(),
		(&provider.Container{Config: cfg}).AmountSettings(),
	)
	imported, err := menu.ImportProducts(context.Background(), products)
	if err != nil {
		stdLog.Fatalf("Failed to import menu: %v", err)
	}
	stdLog.Printf("Imported %d products", imported)

	if prune {
		keep := make([]string, 0, len(products))
		for i := range products {
			keep = append(keep, products[i].ID)
		}
		removed, err := menu.PruneProducts(context.Background(), keep)
		if err != nil {
			stdLog.Fatalf("Failed to prune menu: %v", err)
		}
		stdLog.Printf("Pruned %d products: %v", len(removed), removed)
	}

	total, err := menu.CountProducts(context.Background())
	if err != nil {
		stdLog.Fatalf("Failed to count products: %v", err)
	}
	stdLog.Printf("Menu has %d products", total)
}
