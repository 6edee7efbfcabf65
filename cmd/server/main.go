package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/dujiao-next/bistro/internal/app"
	"github.com/dujiao-next/bistro/internal/config"
	"github.com/dujiao-next/bistro/internal/logger"
	"github.com/dujiao-next/bistro/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	ansiReset     = "\033[0m"
	ansiBold      = "\033[1m"
	ansiDim       = "\033[2m"
	ansiGreen     = "\033[32m"
	ansiBlue      = "\033[34m"
	ansiCyan      = "\033[36m"
	ansiBrightMag = "\033[95m"
)

func main() {
	// 解析命令行参数
	var mode string
	flag.StringVar(&mode, "mode", app.ModeAll, "启动模式: all (默认), api, worker")
	flag.Parse()

	printStartupBanner()

	// 加载配置
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	defer logger.Sync()
	stdLog := logger.StdLogger()

	if strings.TrimSpace(cfg.Order.EndpointURL) == "" {
		if cfg.Server.Mode == "release" {
			stdLog.Fatalf("未配置订单接口地址 order.endpoint_url")
		}
		stdLog.Printf("警告: 未配置订单接口地址 order.endpoint_url，订单将无法转发")
	}

	// 初始化数据库
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}, cfg.Database.LogLevel); err != nil {
		stdLog.Fatalf("数据库初始化失败: %v", err)
	}

	// 自动迁移数据库表
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("数据库迁移失败: %v", err)
	}

	// 设置 Gin 模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		Mode:    mode,
	}); err != nil {
		stdLog.Fatalf("服务运行失败: %v", err)
	}
}

func printStartupBanner() {
	fmt.Println(ansiBrightMag + "╔══════════════════════════════════════════════════════╗" + ansiReset)
	fmt.Println(ansiBrightMag + "║               🍕 Bistro Menu API 启动中               ║" + ansiReset)
	fmt.Println(ansiBrightMag + "╚══════════════════════════════════════════════════════╝" + ansiReset)
	fmt.Println(ansiCyan + "██████╗ ██╗███████╗████████╗██████╗  ██████╗ " + ansiReset)
	fmt.Println(ansiCyan + "██╔══██╗██║██╔════╝╚══██╔══╝██╔══██╗██╔═══██╗" + ansiReset)
	fmt.Println(ansiCyan + "██████╔╝██║███████╗   ██║   ██████╔╝██║   ██║" + ansiReset)
	fmt.Println(ansiCyan + "██╔══██╗██║╚════██║   ██║   ██╔══██╗██║   ██║" + ansiReset)
	fmt.Println(ansiCyan + "██████╔╝██║███████║   ██║   ██║  ██║╚██████╔╝" + ansiReset)
	fmt.Println(ansiCyan + "╚═════╝ ╚═╝╚══════╝   ╚═╝   ╚═╝  ╚═╝ ╚═════╝ " + ansiReset)
	fmt.Println(ansiGreen + ansiBold + "Endpoints" + ansiReset)
	fmt.Println(ansiBlue + "• Menu:    /api/v1/public/products" + ansiReset)
	fmt.Println(ansiBlue + "• Carts:   /api/v1/carts" + ansiReset)
	fmt.Println(ansiBlue + "• Health:  /health" + ansiReset)
	fmt.Println(ansiDim + "--------------------------------------------------------------" + ansiReset)
}
