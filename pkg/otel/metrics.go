package otel

import (
	"context"
	"sync"
	"sync/atomic"
)

// Metrics 定义指标接口
//
// 匹配器、知识库和导入器通过该接口上报运行指标。
type Metrics interface {
	// Counter 返回或创建计数器
	Counter(name string) Counter
	// Histogram 返回或创建直方图
	Histogram(name string) Histogram
	// Gauge 返回或创建仪表
	Gauge(name string) Gauge
}

// Counter 计数器接口
type Counter interface {
	// Add 增加计数
	Add(ctx context.Context, value int64, attrs ...Attr)
}

// Histogram 直方图接口
type Histogram interface {
	// Record 记录值
	Record(ctx context.Context, value float64, attrs ...Attr)
}

// Gauge 仪表接口
type Gauge interface {
	// Set 设置值
	Set(ctx context.Context, value float64, attrs ...Attr)
}

// Attr 指标属性
type Attr struct {
	Key   string
	Value interface{}
}

// NewAttr 创建指标属性
func NewAttr(key string, value interface{}) Attr {
	return Attr{Key: key, Value: value}
}

// InMemoryMetrics 内存指标实现
//
// 不导出任何数据，供测试和脱机运行使用。
// 同名仪器只创建一次，后续调用返回同一实例。
type InMemoryMetrics struct {
	mu         sync.Mutex
	counters   map[string]*InMemoryCounter
	histograms map[string]*InMemoryHistogram
	gauges     map[string]*InMemoryGauge
}

// NewInMemoryMetrics 创建内存指标
func NewInMemoryMetrics() *InMemoryMetrics {
	return &InMemoryMetrics{
		counters:   make(map[string]*InMemoryCounter),
		histograms: make(map[string]*InMemoryHistogram),
		gauges:     make(map[string]*InMemoryGauge),
	}
}

// Counter 返回或创建计数器
func (m *InMemoryMetrics) Counter(name string) Counter {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.counters[name]
	if !ok {
		c = &InMemoryCounter{name: name}
		m.counters[name] = c
	}
	return c
}

// Histogram 返回或创建直方图
func (m *InMemoryMetrics) Histogram(name string) Histogram {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.histograms[name]
	if !ok {
		h = &InMemoryHistogram{name: name}
		m.histograms[name] = h
	}
	return h
}

// Gauge 返回或创建仪表
func (m *InMemoryMetrics) Gauge(name string) Gauge {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.gauges[name]
	if !ok {
		g = &InMemoryGauge{name: name}
		m.gauges[name] = g
	}
	return g
}

// GetCounterValue 获取计数器当前值，不存在时返回 0
func (m *InMemoryMetrics) GetCounterValue(name string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.counters[name]; ok {
		return c.Value()
	}
	return 0
}

// GetGaugeValue 获取仪表当前值，不存在时返回 0
func (m *InMemoryMetrics) GetGaugeValue(name string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if g, ok := m.gauges[name]; ok {
		return g.Value()
	}
	return 0
}

// InMemoryCounter 内存计数器
type InMemoryCounter struct {
	name  string
	value atomic.Int64
}

// Add 增加计数
func (c *InMemoryCounter) Add(ctx context.Context, value int64, attrs ...Attr) {
	c.value.Add(value)
}

// Value 获取当前值
func (c *InMemoryCounter) Value() int64 {
	return c.value.Load()
}

// InMemoryHistogram 内存直方图，保留全部记录值
type InMemoryHistogram struct {
	name   string
	mu     sync.Mutex
	values []float64
}

// Record 记录值
func (h *InMemoryHistogram) Record(ctx context.Context, value float64, attrs ...Attr) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.values = append(h.values, value)
}

// Values 获取所有记录值的副本
func (h *InMemoryHistogram) Values() []float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	result := make([]float64, len(h.values))
	copy(result, h.values)
	return result
}

// InMemoryGauge 内存仪表
type InMemoryGauge struct {
	name string
	mu   sync.Mutex
	val  float64
}

// Set 设置值
func (g *InMemoryGauge) Set(ctx context.Context, value float64, attrs ...Attr) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.val = value
}

// Value 获取当前值
func (g *InMemoryGauge) Value() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.val
}

// NoopMetrics 空实现指标
type NoopMetrics struct{}

// NewNoopMetrics 创建空实现指标
func NewNoopMetrics() *NoopMetrics {
	return &NoopMetrics{}
}

func (m *NoopMetrics) Counter(name string) Counter     { return noopCounter{} }
func (m *NoopMetrics) Histogram(name string) Histogram { return noopHistogram{} }
func (m *NoopMetrics) Gauge(name string) Gauge         { return noopGauge{} }

type noopCounter struct{}

func (noopCounter) Add(ctx context.Context, value int64, attrs ...Attr) {}

type noopHistogram struct{}

func (noopHistogram) Record(ctx context.Context, value float64, attrs ...Attr) {}

type noopGauge struct{}

func (noopGauge) Set(ctx context.Context, value float64, attrs ...Attr) {}

// 编译时接口检查
var _ Metrics = (*InMemoryMetrics)(nil)
var _ Metrics = (*NoopMetrics)(nil)
var _ Counter = (*InMemoryCounter)(nil)
var _ Histogram = (*InMemoryHistogram)(nil)
var _ Gauge = (*InMemoryGauge)(nil)
