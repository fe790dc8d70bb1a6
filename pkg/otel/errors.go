package otel

import "errors"

// 可观测性相关错误
var (
	// ErrInvalidSampleRate 采样率越界
	ErrInvalidSampleRate = errors.New("sample rate must be between 0 and 1")
	// ErrInvalidLogLevel 日志级别无效
	ErrInvalidLogLevel = errors.New("log level must be one of: debug, info, warn, error")
	// ErrInvalidLogFormat 日志格式无效
	ErrInvalidLogFormat = errors.New("log format must be one of: text, json")
	// ErrUnknownExporter 未知的导出器类型
	ErrUnknownExporter = errors.New("unknown exporter type")
	// ErrExporterInit 导出器初始化失败
	ErrExporterInit = errors.New("failed to initialize telemetry exporter")
)
