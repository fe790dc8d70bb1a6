package otel

import "time"

// Config 可观测性配置
type Config struct {
	// Enabled 是否启用可观测性
	Enabled bool `koanf:"enabled" json:"enabled"`

	// ServiceName 服务名称
	ServiceName string `koanf:"service_name" json:"service_name"`
	// ServiceVersion 服务版本
	ServiceVersion string `koanf:"service_version" json:"service_version"`
	// Environment 环境（dev, staging, prod）
	Environment string `koanf:"environment" json:"environment"`

	// Tracing 追踪配置
	Tracing TracingConfig `koanf:"tracing" json:"tracing"`
	// Metrics 指标配置
	Metrics MetricsConfig `koanf:"metrics" json:"metrics"`
	// Logging 日志配置
	Logging LoggingConfig `koanf:"logging" json:"logging"`
}

// TracingConfig 追踪配置
type TracingConfig struct {
	// Enabled 是否启用追踪
	Enabled bool `koanf:"enabled" json:"enabled"`
	// Exporter 导出器类型（otlp-grpc, otlp-http, stdout, none）
	Exporter ExporterType `koanf:"exporter" json:"exporter"`
	// Endpoint OTLP 端点
	Endpoint string `koanf:"endpoint" json:"endpoint"`
	// Insecure 是否使用不安全连接
	Insecure bool `koanf:"insecure" json:"insecure"`
	// SampleRate 采样率 (0.0-1.0)
	SampleRate float64 `koanf:"sample_rate" json:"sample_rate"`
	// Timeout 导出超时
	Timeout time.Duration `koanf:"timeout" json:"timeout"`
}

// MetricsConfig 指标配置
type MetricsConfig struct {
	// Enabled 是否启用指标
	Enabled bool `koanf:"enabled" json:"enabled"`
	// Exporter 导出器类型（otlp-grpc, otlp-http, stdout, none）
	Exporter ExporterType `koanf:"exporter" json:"exporter"`
	// Endpoint OTLP 端点
	Endpoint string `koanf:"endpoint" json:"endpoint"`
	// Insecure 是否使用不安全连接
	Insecure bool `koanf:"insecure" json:"insecure"`
	// Interval 导出间隔
	Interval time.Duration `koanf:"interval" json:"interval"`
}

// LoggingConfig 日志配置
type LoggingConfig struct {
	// Level 日志级别 (debug, info, warn, error)
	Level string `koanf:"level" json:"level"`
	// Format 日志格式 (text, json)
	Format string `koanf:"format" json:"format"`
	// IncludeTraceID 是否包含 Trace ID
	IncludeTraceID bool `koanf:"include_trace_id" json:"include_trace_id"`
}

// DefaultConfig 返回默认配置
func DefaultConfig() Config {
	return Config{
		Enabled:        false,
		ServiceName:    "qamatch",
		ServiceVersion: "0.1.0",
		Environment:    "development",
		Tracing: TracingConfig{
			Enabled:    false,
			Exporter:   ExporterOTLPGRPC,
			Endpoint:   "localhost:4317",
			Insecure:   true,
			SampleRate: 1.0,
			Timeout:    30 * time.Second,
		},
		Metrics: MetricsConfig{
			Enabled:  false,
			Exporter: ExporterOTLPGRPC,
			Endpoint: "localhost:4317",
			Insecure: true,
			Interval: 60 * time.Second,
		},
		Logging: LoggingConfig{
			Level:          "info",
			Format:         "text",
			IncludeTraceID: true,
		},
	}
}

// Validate 验证配置
//
// 空字符串字段视为"使用默认值"，不作为错误。
func (c *Config) Validate() error {
	if c.Tracing.SampleRate < 0 || c.Tracing.SampleRate > 1 {
		return ErrInvalidSampleRate
	}
	if !validExporterType(c.Tracing.Exporter) {
		return ErrUnknownExporter
	}
	if !validExporterType(c.Metrics.Exporter) {
		return ErrUnknownExporter
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		return ErrInvalidLogFormat
	}
	return nil
}

func validExporterType(t ExporterType) bool {
	switch t {
	case "", ExporterOTLPGRPC, ExporterOTLPHTTP, ExporterStdout, ExporterNone:
		return true
	}
	return false
}

// WithDefaults 返回带默认值的配置
func (c Config) WithDefaults() Config {
	defaults := DefaultConfig()

	if c.ServiceName == "" {
		c.ServiceName = defaults.ServiceName
	}
	if c.ServiceVersion == "" {
		c.ServiceVersion = defaults.ServiceVersion
	}
	if c.Environment == "" {
		c.Environment = defaults.Environment
	}
	if c.Tracing.Exporter == "" {
		c.Tracing.Exporter = defaults.Tracing.Exporter
	}
	if c.Tracing.Endpoint == "" {
		c.Tracing.Endpoint = defaults.Tracing.Endpoint
	}
	if c.Tracing.SampleRate == 0 {
		c.Tracing.SampleRate = defaults.Tracing.SampleRate
	}
	if c.Tracing.Timeout == 0 {
		c.Tracing.Timeout = defaults.Tracing.Timeout
	}
	if c.Metrics.Exporter == "" {
		c.Metrics.Exporter = defaults.Metrics.Exporter
	}
	if c.Metrics.Endpoint == "" {
		c.Metrics.Endpoint = defaults.Metrics.Endpoint
	}
	if c.Metrics.Interval == 0 {
		c.Metrics.Interval = defaults.Metrics.Interval
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaults.Logging.Format
	}

	return c
}
