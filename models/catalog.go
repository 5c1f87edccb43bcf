package models

type Agent struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Department   string   `json:"department"`
	Status       string   `json:"status"`
	Capabilities []string `json:"capabilities,omitempty"`
}

type ModelInfo struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Provider   string   `json:"provider"`
	Cost       float64  `json:"cost"`
	Context    int      `json:"context,omitempty"`
	Type       string   `json:"type,omitempty"` // audio / music / video，文本模型为空
	Features   []string `json:"features,omitempty"`
	Languages  int      `json:"languages,omitempty"`
	Emotions   int      `json:"emotions,omitempty"`
	Resolution string   `json:"resolution,omitempty"`
	FPS        int      `json:"fps,omitempty"`
}
