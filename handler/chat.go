package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rjbiz/jams/common"
	"github.com/rjbiz/jams/consts"
	"github.com/rjbiz/jams/service"
)

type AgentRunResponse struct {
	Success bool `json:"success"`
	*service.AgentRunResult
}

type AgentRunFailure struct {
	Success  bool                `json:"success"`
	Error    string              `json:"error"`
	Message  string              `json:"message"`
	Provider consts.ProviderKind `json:"provider"`
}

// RunAgent POST /api/v1/agent/run
func (a *API) RunAgent(c *gin.Context) {
	var req service.AgentRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("invalid agent run body", "error", err)
		common.BadRequest(c, "Invalid request body")
		return
	}

	result, err := a.gateway.RunAgent(c.Request.Context(), req)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			common.BadRequest(c, validationErr.Message)
			return
		}

		failure := AgentRunFailure{
			Error:   "Agent execution failed",
			Message: err.Error(),
		}
		var runErr *service.RunError
		if errors.As(err, &runErr) {
			failure.Provider = runErr.Provider
		}
		c.JSON(http.StatusInternalServerError, failure)
		return
	}

	c.JSON(http.StatusOK, AgentRunResponse{Success: true, AgentRunResult: result})
}
