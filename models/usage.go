package models

import "encoding/json"

// Usage 上游返回的 token 用量
type Usage struct {
	PromptTokens     int64 `json:"prompt_tokens"`
	CompletionTokens int64 `json:"completion_tokens"`
	TotalTokens      int64 `json:"total_tokens"`

	// 上游原始 usage 对象，原样回传给调用方
	Raw json.RawMessage `json:"-"`
}

// JSON 返回原始 usage，缺失时为 {}
func (u Usage) JSON() json.RawMessage {
	if len(u.Raw) == 0 {
		return json.RawMessage("{}")
	}
	return u.Raw
}
