package models

import "gorm.io/gorm"

// CostEntry 成本流水，只追加不修改
type CostEntry struct {
	gorm.Model
	UUID             string  `gorm:"column:uuid;uniqueIndex;size:36" json:"uuid"`
	Day              string  `gorm:"index;size:10" json:"day"`
	Provider         string  `gorm:"index;size:32" json:"provider"`
	ModelID          string  `gorm:"column:model;index" json:"model"`
	UpstreamModel    string  `json:"upstream_model"`
	PromptTokens     int64   `json:"prompt_tokens"`
	CompletionTokens int64   `json:"completion_tokens"`
	TotalTokens      int64   `json:"total_tokens"`
	Cost             float64 `json:"cost"`
}

// TableName 指定表名
func (CostEntry) TableName() string {
	return "cost_entries"
}
