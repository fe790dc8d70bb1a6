package match

import (
	"fmt"
	"strings"

	"github.com/easyops/qamatch-go/pkg/core/answer"
	coreerrors "github.com/easyops/qamatch-go/pkg/core/errors"
	"github.com/easyops/qamatch-go/pkg/knowledge"
)

// DefaultMaxContextItems 上下文窗口默认容量
const DefaultMaxContextItems = 5

// Entry 上下文窗口中的一条 (查询, 答案) 记录
type Entry struct {
	// Query 原始查询文本
	Query string
	// Answer 当时返回的答案
	Answer answer.Answer
}

// Formatter 将上下文历史渲染为文本的策略函数
//
// 自定义格式化函数只需满足行为契约，不要求可比较。
type Formatter func(history []Entry) string

// QAPairsFormat 渲染为 "Q: … A: … " 连接形式
func QAPairsFormat(history []Entry) string {
	var sb strings.Builder
	for _, entry := range history {
		fmt.Fprintf(&sb, "Q: %s A: %s ", entry.Query, entry.Answer.String())
	}
	return sb.String()
}

// ListFormat 渲染为 "[q -> a, q -> a, …]" 列表形式
func ListFormat(history []Entry) string {
	items := make([]string, len(history))
	for i, entry := range history {
		items[i] = fmt.Sprintf("%s -> %s", entry.Query, entry.Answer.String())
	}
	return "[" + strings.Join(items, ", ") + "]"
}

// SentenceFormat 渲染为散文句子形式
func SentenceFormat(history []Entry) string {
	items := make([]string, len(history))
	for i, entry := range history {
		items[i] = fmt.Sprintf("%s - %s", entry.Query, entry.Answer.String())
	}
	return "Previous questions and answers: " + strings.Join(items, "; ")
}

// ContextMatcher 上下文包装器
//
// 装饰任意匹配器：预测前把有界滑动窗口内的先前 (查询, 答案)
// 对渲染进查询文本，再委托给被包装的匹配器。窗口由包装器
// 独占管理，每个会话使用自己的实例，不跨会话共享。
//
// 包装器从不在自己的 Predict 里自动记录上下文——是否调用
// AddContext 由调用方在消费答案之后决定，这样测试或被丢弃
// 的预测可以不进入历史。
type ContextMatcher struct {
	base     Matcher
	history  []Entry
	maxItems int
	format   Formatter
}

// ContextOption 上下文包装器配置选项
type ContextOption func(*ContextMatcher)

// WithMaxItems 设置窗口容量
func WithMaxItems(n int) ContextOption {
	return func(m *ContextMatcher) {
		m.maxItems = n
	}
}

// WithFormatter 设置上下文渲染策略
func WithFormatter(format Formatter) ContextOption {
	return func(m *ContextMatcher) {
		m.format = format
	}
}

// NewContextMatcher 创建上下文包装器
//
// base 不能为空；窗口容量必须为正数。
func NewContextMatcher(base Matcher, opts ...ContextOption) (*ContextMatcher, error) {
	if base == nil {
		return nil, coreerrors.ErrNilMatcher
	}

	m := &ContextMatcher{
		base:     base,
		maxItems: DefaultMaxContextItems,
		format:   QAPairsFormat,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.maxItems <= 0 {
		return nil, coreerrors.ErrInvalidMaxItems
	}
	if m.format == nil {
		m.format = QAPairsFormat
	}

	return m, nil
}

// Train 原样转发给被包装的匹配器，包装器不持有独立语料
func (m *ContextMatcher) Train(examples []knowledge.Example) {
	m.base.Train(examples)
}

// Predict 把渲染后的上下文拼进查询再委托
//
// 窗口为空时原样透传查询。
func (m *ContextMatcher) Predict(query string) answer.Answer {
	if len(m.history) == 0 {
		return m.base.Predict(query)
	}

	rendered := m.format(m.history)
	if rendered == "" {
		return m.base.Predict(query)
	}

	return m.base.Predict(fmt.Sprintf("%s [Context: %s]", query, rendered))
}

// AddContext 追加一条 (查询, 答案) 记录
//
// 超出容量时先进先出地淘汰最旧的记录。
func (m *ContextMatcher) AddContext(query string, a answer.Answer) {
	m.history = append(m.history, Entry{Query: query, Answer: a})
	for len(m.history) > m.maxItems {
		m.history = m.history[1:]
	}
}

// ClearContext 立即清空窗口
func (m *ContextMatcher) ClearContext() {
	m.history = nil
}

// ContextLen 返回当前窗口长度
func (m *ContextMatcher) ContextLen() int {
	return len(m.history)
}

// 编译时接口检查
var _ Matcher = (*ContextMatcher)(nil)
