package handler

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/rjbiz/jams/common"
	"github.com/rjbiz/jams/config"
	"github.com/rjbiz/jams/metrics"
	"github.com/rjbiz/jams/middleware"
	"github.com/rjbiz/jams/service"
)

// API 持有各路由共享的依赖
type API struct {
	cfg     *config.Config
	gateway *service.Gateway
}

func NewAPI(cfg *config.Config, gateway *service.Gateway) *API {
	return &API{cfg: cfg, gateway: gateway}
}

func (a *API) tracker() *service.Tracker {
	return a.gateway.Tracker()
}

// Register 挂载中间件和全部路由，未匹配的路径统一返回 404 JSON
func Register(router *gin.Engine, api *API) {
	// 末尾多 / 的路径按未知路由处理，不做 301/307 跳转
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false

	// CORS 需要在 gzip 之前，预检请求直接返回
	router.Use(middleware.CORS())
	router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/api/v1/agent/run", "/metrics"})))

	router.GET("/health", api.Health)
	// dashboard 使用的别名
	router.GET("/api/health", api.Health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/agent/run", api.RunAgent)

		v1.GET("/agents", api.ListAgents)
		v1.GET("/agents/:id", api.GetAgent)

		v1.GET("/cost/summary", api.CostSummary)
		v1.GET("/cost/daily", api.CostDaily)
		v1.GET("/cost/ledger", api.CostLedger)

		v1.GET("/models/list", api.ListModels)
	}

	router.NoRoute(common.NotFound)
}
