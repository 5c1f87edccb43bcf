package main

import (
	"context"
	"log/slog"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"github.com/rjbiz/jams/config"
	"github.com/rjbiz/jams/consts"
	"github.com/rjbiz/jams/handler"
	"github.com/rjbiz/jams/kvstore"
	"github.com/rjbiz/jams/metrics"
	"github.com/rjbiz/jams/models"
	"github.com/rjbiz/jams/providers"
	"github.com/rjbiz/jams/service"
	_ "golang.org/x/crypto/x509roots/fallback"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	store := openStore(ctx, cfg.Cache)
	ledger := openLedger(ctx, cfg.Database)
	metrics.Init()

	tracker := service.NewTracker(store, ledger)
	gateway := service.NewGateway(providers.NewRegistry(cfg), tracker, cfg.App.DefaultModel)

	router := gin.Default()
	handler.Register(router, handler.NewAPI(cfg, gateway))

	slog.Info("TZ", "time.Local", time.Local.String())
	slog.Info("Starting "+consts.ServiceName, "version", consts.Version, "port", cfg.App.Port,
		"environment", cfg.App.Environment, "cost_tracking", tracker.Enabled(), "ledger", ledger != nil)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

// openStore Redis 优先；不可用时按 CACHE_DRIVER 决定是否退回内存存储，否则关闭成本统计
func openStore(ctx context.Context, cfg config.CacheConfig) kvstore.Store {
	if cfg.RedisURL != "" {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		store, err := kvstore.Connect(pingCtx, cfg.RedisURL)
		if err == nil {
			slog.Info("Redis connected successfully")
			return store
		}
		slog.Warn("Redis connection failed", "error", err)
	}

	if cfg.Driver == consts.CacheDriverMemory {
		slog.Warn("Using memory storage for cost tracking, counters are lost on restart")
		return kvstore.NewMemoryStore()
	}

	slog.Warn("No cost store configured, cost tracking disabled")
	return nil
}

func openLedger(ctx context.Context, cfg config.DatabaseConfig) service.Ledger {
	if cfg.DSN == "" {
		return nil
	}
	db, err := models.Open(ctx, cfg.Driver, cfg.DSN)
	if err != nil {
		slog.Warn("Failed to open cost ledger database, ledger disabled", "driver", cfg.Driver, "error", err)
		return nil
	}
	slog.Info("Cost ledger enabled", "driver", cfg.Driver)
	return service.NewLedger(db)
}
