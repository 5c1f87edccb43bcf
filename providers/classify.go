package providers

import (
	"strings"

	"github.com/rjbiz/jams/consts"
)

type classifyRule struct {
	needle string
	kind   consts.ProviderKind
}

// classifyRules 按顺序匹配，先命中者胜出。都不命中（包括显式的 "openrouter/" 前缀）时走 OpenRouter
var classifyRules = []classifyRule{
	{needle: "minimax", kind: consts.ProviderMiniMax},
	{needle: "chutes", kind: consts.ProviderChutes},
}

// Classify 把模型 id 映射到唯一的服务商，子串匹配且不区分大小写
func Classify(modelID string) consts.ProviderKind {
	id := strings.ToLower(modelID)
	for _, rule := range classifyRules {
		if strings.Contains(id, rule.needle) {
			return rule.kind
		}
	}
	return consts.ProviderOpenRouter
}
