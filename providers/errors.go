package providers

import (
	"fmt"

	"github.com/rjbiz/jams/consts"
)

// ConfigurationError 缺少必需配置（API key、group id），请求不会发出
type ConfigurationError struct {
	Provider consts.ProviderKind
	Setting  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s %s not configured", e.Provider.DisplayName(), e.Setting)
}

// UpstreamError 上游调用失败。没有拿到响应时 StatusCode 为 0
type UpstreamError struct {
	Provider   consts.ProviderKind
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s API request failed: %v", e.Provider.DisplayName(), e.Err)
	}
	return fmt.Sprintf("%s API error: %d - %s", e.Provider.DisplayName(), e.StatusCode, e.Body)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
