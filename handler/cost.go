package handler

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rjbiz/jams/common"
	"github.com/rjbiz/jams/consts"
	"github.com/rjbiz/jams/service"
)

const (
	defaultCostDays = 7
	maxCostDays     = 30
)

const costUnavailable = "Cost tracking not available"

// CostSummary 目前只统计当天，total 与 today 相同
func (a *API) CostSummary(c *gin.Context) {
	tracker := a.tracker()
	if !tracker.Enabled() {
		common.Success(c, gin.H{
			"total":   0,
			"today":   0,
			"message": costUnavailable,
		})
		return
	}

	today, err := tracker.Today(c.Request.Context())
	if err != nil {
		slog.Error("read cost counter failed", "error", err)
		common.InternalServerError(c, "Failed to read cost counter")
		return
	}

	value := today.InexactFloat64()
	common.Success(c, gin.H{
		"total":    value,
		"today":    value,
		"currency": consts.Currency,
	})
}

// CostDaily GET /api/v1/cost/daily?days=N
func (a *API) CostDaily(c *gin.Context) {
	days := defaultCostDays
	if daysStr := c.Query("days"); daysStr != "" {
		n, err := strconv.Atoi(daysStr)
		if err != nil || n < 1 || n > maxCostDays {
			common.BadRequest(c, fmt.Sprintf("invalid days parameter (1-%d)", maxCostDays))
			return
		}
		days = n
	}

	tracker := a.tracker()
	if !tracker.Enabled() {
		common.Success(c, gin.H{
			"days":     []service.DailyCost{},
			"currency": consts.Currency,
			"message":  costUnavailable,
		})
		return
	}

	buckets, err := tracker.Daily(c.Request.Context(), days)
	if err != nil {
		slog.Error("read daily cost failed", "days", days, "error", err)
		common.InternalServerError(c, "Failed to read cost counter")
		return
	}

	common.Success(c, gin.H{
		"days":     buckets,
		"currency": consts.Currency,
	})
}

// CostLedger GET /api/v1/cost/ledger?day=&provider=&page=&page_size=
func (a *API) CostLedger(c *gin.Context) {
	ledger := a.tracker().Ledger()
	if ledger == nil {
		common.ServiceUnavailable(c, "Cost ledger not available")
		return
	}

	params, err := common.ParsePagination(c)
	if err != nil {
		common.BadRequest(c, err.Error())
		return
	}

	filter := service.LedgerFilter{
		Day:      c.Query("day"),
		Provider: c.Query("provider"),
	}
	entries, total, err := ledger.List(c.Request.Context(), filter, params)
	if err != nil {
		slog.Error("list cost ledger failed", "error", err)
		common.InternalServerError(c, "Failed to list cost ledger")
		return
	}

	common.Success(c, common.NewPaginationResponse(entries, total, params))
}
