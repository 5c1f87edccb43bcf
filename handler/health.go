package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rjbiz/jams/consts"
)

type HealthFeatures struct {
	R2Storage        bool `json:"r2_storage"`
	KVCache          bool `json:"kv_cache"`
	Agents           int  `json:"agents"`
	CostOptimization bool `json:"cost_optimization"`
}

type HealthResponse struct {
	Status      string         `json:"status"`
	Service     string         `json:"service"`
	Version     string         `json:"version"`
	Timestamp   string         `json:"timestamp"`
	Domain      string         `json:"domain"`
	Environment string         `json:"environment"`
	Features    HealthFeatures `json:"features"`
}

// Health 只上报配置状态，不探测依赖，始终 200
func (a *API) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:      "healthy",
		Service:     consts.ServiceName,
		Version:     consts.Version,
		Timestamp:   time.Now().UTC().Format(consts.TimestampLayout),
		Domain:      consts.Domain,
		Environment: a.cfg.App.Environment,
		Features: HealthFeatures{
			R2Storage:        a.cfg.Storage.MusicBucket != "",
			KVCache:          a.tracker().Enabled(),
			Agents:           a.cfg.App.MaxAgents,
			CostOptimization: true,
		},
	})
}
