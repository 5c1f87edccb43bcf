package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	AgentRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jams_agent_runs_total",
			Help: "Total number of agent runs",
		},
		[]string{"provider", "status"}, // status: success|error
	)

	AgentRunDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "jams_agent_run_duration_seconds",
			Help:    "Agent run duration in seconds, upstream call included",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
		},
		[]string{"provider"},
	)

	Tokens = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jams_tokens_total",
			Help: "Total tokens reported by upstream providers",
		},
		[]string{"provider"},
	)

	CostUSD = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jams_cost_usd_total",
			Help: "Total accrued cost in USD",
		},
		[]string{"provider"},
	)

	CostAccrualErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jams_cost_accrual_errors_total",
			Help: "Total number of failed cost counter or ledger writes",
		},
	)
)

var registerOnce sync.Once

// Init 注册全部指标，重复调用无副作用
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(AgentRuns)
		prometheus.MustRegister(AgentRunDuration)
		prometheus.MustRegister(Tokens)
		prometheus.MustRegister(CostUSD)
		prometheus.MustRegister(CostAccrualErrors)
	})
}

// Handler 暴露 /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordAgentRun 记录一次 agent 调用的结果、耗时和 token 数
func RecordAgentRun(provider string, duration time.Duration, tokens int64, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	AgentRuns.WithLabelValues(provider, status).Inc()
	AgentRunDuration.WithLabelValues(provider).Observe(duration.Seconds())

	if tokens > 0 {
		Tokens.WithLabelValues(provider).Add(float64(tokens))
	}
}

func RecordCost(provider string, cost float64) {
	if cost > 0 {
		CostUSD.WithLabelValues(provider).Add(cost)
	}
}

func RecordAccrualError() {
	CostAccrualErrors.Inc()
}
