package service

import (
	"testing"

	"github.com/rjbiz/jams/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentCatalog(t *testing.T) {
	agents := ListAgents("")
	require.Len(t, agents, 110)

	ids := lo.Map(agents, func(a models.Agent, _ int) string { return a.ID })
	assert.Len(t, lo.Uniq(ids), 110)

	byDept := lo.GroupBy(agents, func(a models.Agent) string { return a.Department })
	assert.Len(t, byDept, 11)
	for dept, members := range byDept {
		assert.Len(t, members, 10, dept)
	}

	assert.Equal(t, models.Agent{
		ID:           "agent-1-1",
		Name:         "Composition Agent 1",
		Department:   "Composition",
		Status:       "idle",
		Capabilities: []string{"Composition task 1"},
	}, agents[0])
	assert.Equal(t, "agent-11-10", agents[109].ID)
	assert.Equal(t, "Orchestration Agent 10", agents[109].Name)
}

func TestListAgentsByDepartment(t *testing.T) {
	mixing := ListAgents("Mixing")
	require.Len(t, mixing, 10)
	assert.Equal(t, "agent-5-1", mixing[0].ID)

	assert.Empty(t, ListAgents("Catering"))
}

func TestListAgentsReturnsCopy(t *testing.T) {
	agents := ListAgents("")
	agents[0].Status = "busy"
	assert.Equal(t, "idle", ListAgents("")[0].Status)
}

func TestAgentByID(t *testing.T) {
	assert.Equal(t, models.Agent{
		ID:         "agent-3-7",
		Name:       "Agent agent-3-7",
		Status:     "idle",
		Department: "Production",
	}, AgentByID("agent-3-7"))
}

func TestModelCatalog(t *testing.T) {
	catalog := ListModels()
	assert.Len(t, catalog, 34)

	ids := lo.Map(catalog, func(m models.ModelInfo, _ int) string { return m.ID })
	assert.Len(t, lo.Uniq(ids), len(catalog))

	for _, m := range catalog {
		assert.Contains(t, []string{"openrouter", "minimax", "chutes"}, m.Provider, m.ID)
	}

	video, ok := lo.Find(catalog, func(m models.ModelInfo) bool { return m.ID == "minimax/video-hailuo-02" })
	require.True(t, ok)
	assert.Equal(t, "video", video.Type)
	assert.Equal(t, 24, video.FPS)
}
