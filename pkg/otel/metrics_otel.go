package otel

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// OTelMetrics 基于 OpenTelemetry Meter 的指标实现
//
// 仪器按名称懒创建并缓存，单位与描述取自 PredefinedMetrics。
// 仪器创建失败时降级为空实现，不影响业务路径。
type OTelMetrics struct {
	meter      metric.Meter
	mu         sync.Mutex
	counters   map[string]Counter
	histograms map[string]Histogram
	gauges     map[string]Gauge
}

// NewOTelMetrics 创建基于 Meter 的指标实现
func NewOTelMetrics(meter metric.Meter) *OTelMetrics {
	return &OTelMetrics{
		meter:      meter,
		counters:   make(map[string]Counter),
		histograms: make(map[string]Histogram),
		gauges:     make(map[string]Gauge),
	}
}

// Counter 返回或创建计数器
func (m *OTelMetrics) Counter(name string) Counter {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.counters[name]; ok {
		return c
	}

	var c Counter
	unit, desc := instrumentMeta(name)
	inst, err := m.meter.Int64Counter(name, metric.WithUnit(unit), metric.WithDescription(desc))
	if err != nil {
		c = noopCounter{}
	} else {
		c = &otelCounter{inst: inst}
	}
	m.counters[name] = c
	return c
}

// Histogram 返回或创建直方图
func (m *OTelMetrics) Histogram(name string) Histogram {
	m.mu.Lock()
	defer m.mu.Unlock()
	if h, ok := m.histograms[name]; ok {
		return h
	}

	var h Histogram
	unit, desc := instrumentMeta(name)
	inst, err := m.meter.Float64Histogram(name, metric.WithUnit(unit), metric.WithDescription(desc))
	if err != nil {
		h = noopHistogram{}
	} else {
		h = &otelHistogram{inst: inst}
	}
	m.histograms[name] = h
	return h
}

// Gauge 返回或创建仪表
func (m *OTelMetrics) Gauge(name string) Gauge {
	m.mu.Lock()
	defer m.mu.Unlock()
	if g, ok := m.gauges[name]; ok {
		return g
	}

	var g Gauge
	unit, desc := instrumentMeta(name)
	inst, err := m.meter.Float64Gauge(name, metric.WithUnit(unit), metric.WithDescription(desc))
	if err != nil {
		g = noopGauge{}
	} else {
		g = &otelGauge{inst: inst}
	}
	m.gauges[name] = g
	return g
}

// instrumentMeta 查询预定义指标的单位与描述，未注册的指标返回空值
func instrumentMeta(name string) (unit string, description string) {
	for _, d := range PredefinedMetrics {
		if d.Name == name {
			return string(d.Unit), d.Description
		}
	}
	return "", ""
}

type otelCounter struct {
	inst metric.Int64Counter
}

func (c *otelCounter) Add(ctx context.Context, value int64, attrs ...Attr) {
	c.inst.Add(ctx, value, metric.WithAttributes(convertAttrs(attrs)...))
}

type otelHistogram struct {
	inst metric.Float64Histogram
}

func (h *otelHistogram) Record(ctx context.Context, value float64, attrs ...Attr) {
	h.inst.Record(ctx, value, metric.WithAttributes(convertAttrs(attrs)...))
}

type otelGauge struct {
	inst metric.Float64Gauge
}

func (g *otelGauge) Set(ctx context.Context, value float64, attrs ...Attr) {
	g.inst.Record(ctx, value, metric.WithAttributes(convertAttrs(attrs)...))
}

// convertAttrs 转换指标属性为 OTel 属性
func convertAttrs(attrs []Attr) []attribute.KeyValue {
	if len(attrs) == 0 {
		return nil
	}
	kvs := make([]attribute.KeyValue, 0, len(attrs))
	for _, a := range attrs {
		switch v := a.Value.(type) {
		case string:
			kvs = append(kvs, attribute.String(a.Key, v))
		case bool:
			kvs = append(kvs, attribute.Bool(a.Key, v))
		case int:
			kvs = append(kvs, attribute.Int(a.Key, v))
		case int64:
			kvs = append(kvs, attribute.Int64(a.Key, v))
		case float64:
			kvs = append(kvs, attribute.Float64(a.Key, v))
		default:
			kvs = append(kvs, attribute.String(a.Key, fmt.Sprint(v)))
		}
	}
	return kvs
}

// 编译时接口检查
var _ Metrics = (*OTelMetrics)(nil)
var _ Counter = (*otelCounter)(nil)
var _ Histogram = (*otelHistogram)(nil)
var _ Gauge = (*otelGauge)(nil)
