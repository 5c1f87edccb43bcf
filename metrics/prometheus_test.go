package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordAgentRun(t *testing.T) {
	before := testutil.ToFloat64(AgentRuns.WithLabelValues("chutes", "error"))
	RecordAgentRun("chutes", time.Second, 0, errors.New("boom"))
	assert.Equal(t, before+1, testutil.ToFloat64(AgentRuns.WithLabelValues("chutes", "error")))

	tokens := testutil.ToFloat64(Tokens.WithLabelValues("chutes"))
	RecordAgentRun("chutes", time.Second, 42, nil)
	assert.Equal(t, tokens+42, testutil.ToFloat64(Tokens.WithLabelValues("chutes")))
}

func TestRecordCostSkipsZero(t *testing.T) {
	before := testutil.ToFloat64(CostUSD.WithLabelValues("minimax"))
	RecordCost("minimax", 0)
	RecordCost("minimax", 0.5)
	assert.InDelta(t, before+0.5, testutil.ToFloat64(CostUSD.WithLabelValues("minimax")), 1e-9)
}

func TestHandlerExposesMetrics(t *testing.T) {
	Init()
	Init()
	RecordAccrualError()

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "jams_cost_accrual_errors_total"))
}
