package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rjbiz/jams/common"
	"github.com/rjbiz/jams/service"
)

// ListAgents GET /api/v1/agents?department=&page=&page_size=
// 不带分页参数时返回全量目录
func (a *API) ListAgents(c *gin.Context) {
	agents := service.ListAgents(c.Query("department"))
	total := len(agents)

	if !common.Requested(c) {
		common.Success(c, gin.H{
			"agents": agents,
			"total":  total,
		})
		return
	}

	params, err := common.ParsePagination(c)
	if err != nil {
		common.BadRequest(c, err.Error())
		return
	}
	page := common.NewPaginationResponse(nil, int64(total), params)
	common.Success(c, gin.H{
		"agents":    common.PaginateSlice(agents, params),
		"total":     total,
		"page":      page.Page,
		"page_size": page.PageSize,
		"pages":     page.Pages,
	})
}

func (a *API) GetAgent(c *gin.Context) {
	common.Success(c, service.AgentByID(c.Param("id")))
}

func (a *API) ListModels(c *gin.Context) {
	common.Success(c, gin.H{
		"models": service.ListModels(),
	})
}
