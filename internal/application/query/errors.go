package query

import (
	"errors"
	"fmt"
)

// ConfigurationError 表示 UI 层与引擎之间的接线错误：
// 未知的过滤器类型、非法的分页 limit 等。属于程序错误，
// 必须立即失败，不允许静默降级为 no-op。
type ConfigurationError struct {
	Reason string
}

// Error 实现 error 接口
func (e *ConfigurationError) Error() string {
	return "query: invalid configuration: " + e.Reason
}

func configErrorf(format string, args ...any) error {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// IsConfigurationError 检查是否为配置错误
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}
