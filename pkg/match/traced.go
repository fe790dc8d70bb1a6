package match

import (
	"context"
	"time"

	"github.com/easyops/qamatch-go/pkg/core/answer"
	coreerrors "github.com/easyops/qamatch-go/pkg/core/errors"
	"github.com/easyops/qamatch-go/pkg/knowledge"
	"github.com/easyops/qamatch-go/pkg/otel"
)

// TracedMatcher 带可观测性的匹配器包装
//
// 包装任意 Matcher，为训练和预测记录 Span 与指标。
// 未初始化全局 Provider 时退化为透传。
type TracedMatcher struct {
	inner   Matcher
	name    string
	tracer  otel.Tracer
	metrics otel.Metrics
}

// NewTracedMatcher 创建带可观测性的匹配器
//
// name 用于标识匹配器类型（如 "exact"、"fuzzy"、"bm25"）。
func NewTracedMatcher(inner Matcher, name string) (*TracedMatcher, error) {
	if inner == nil {
		return nil, coreerrors.ErrNilMatcher
	}
	return &TracedMatcher{
		inner:   inner,
		name:    name,
		tracer:  otel.GetTracer(),
		metrics: otel.GetMetrics(),
	}, nil
}

// Train 训练底层匹配器并记录指标
func (t *TracedMatcher) Train(examples []knowledge.Example) {
	ctx, span := t.tracer.Start(context.Background(), "matcher.train",
		otel.WithAttributes(
			otel.MatcherType(t.name),
			otel.ExampleCount(len(examples)),
		),
	)
	defer span.End()

	start := time.Now()
	t.inner.Train(examples)

	t.metrics.Histogram(otel.MetricMatcherTrainDuration).
		Record(ctx, float64(time.Since(start).Milliseconds()))
	t.metrics.Histogram(otel.MetricMatcherTrainExamples).
		Record(ctx, float64(len(examples)))
}

// Predict 预测并记录 Span 与指标
func (t *TracedMatcher) Predict(query string) answer.Answer {
	ctx, span := t.tracer.Start(context.Background(), "matcher.predict",
		otel.WithAttributes(
			otel.MatcherType(t.name),
			otel.QueryLength(len(query)),
		),
	)
	defer span.End()

	start := time.Now()
	result := t.inner.Predict(query)

	found := !IsSentinel(result)
	span.SetAttributes(otel.MatchFound(found))

	t.metrics.Counter(otel.MetricMatcherPredictions).
		Add(ctx, 1, otel.NewAttr(otel.AttrMatcherType, t.name))
	t.metrics.Histogram(otel.MetricMatcherPredictDuration).
		Record(ctx, float64(time.Since(start).Milliseconds()))
	if !found {
		t.metrics.Counter(otel.MetricMatcherMisses).
			Add(ctx, 1, otel.NewAttr(otel.AttrMatcherType, t.name))
	}

	return result
}

// Unwrap 返回底层匹配器
func (t *TracedMatcher) Unwrap() Matcher {
	return t.inner
}

// 编译时接口检查
var _ Matcher = (*TracedMatcher)(nil)
