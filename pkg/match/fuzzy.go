package match

import (
	"math"
	"strings"
	"sync"

	"github.com/easyops/qamatch-go/pkg/core/answer"
	coreerrors "github.com/easyops/qamatch-go/pkg/core/errors"
	"github.com/easyops/qamatch-go/pkg/knowledge"
	"github.com/easyops/qamatch-go/pkg/textutil"
)

// DefaultThresholdFactor 默认阈值因子：查询长度的 30% 作为最大编辑距离
const DefaultThresholdFactor float32 = 0.3

// FuzzyMatcher 模糊匹配器
//
// 计算查询与每个示例输入（均大小写折叠）之间的 Levenshtein
// 编辑距离，在绝对上限和长度相对上限内选择距离严格最小的
// 示例。平局时保留语料顺序中先出现的示例。
type FuzzyMatcher struct {
	memory []knowledge.Example
	mu     sync.RWMutex

	// maxDistance 绝对最大编辑距离，nil 表示不限制
	maxDistance *int
	// thresholdFactor 按查询长度推导动态上限的因子，nil 表示不启用
	thresholdFactor *float32
}

// FuzzyOption 模糊匹配器配置选项
type FuzzyOption func(*FuzzyMatcher)

// WithMaxDistance 设置绝对最大编辑距离
func WithMaxDistance(distance int) FuzzyOption {
	return func(m *FuzzyMatcher) {
		m.maxDistance = &distance
	}
}

// WithThresholdFactor 设置长度相对阈值因子
//
// 每次查询允许的最大距离为 floor(factor × 查询字符数)。
func WithThresholdFactor(factor float32) FuzzyOption {
	return func(m *FuzzyMatcher) {
		m.thresholdFactor = &factor
	}
}

// WithoutThreshold 禁用长度相对阈值
func WithoutThreshold() FuzzyOption {
	return func(m *FuzzyMatcher) {
		m.thresholdFactor = nil
	}
}

// NewFuzzyMatcher 创建模糊匹配器
//
// 配置无效时快速失败：负的最大距离或非正的阈值因子都属于
// 调用方错误，不做静默钳制。
func NewFuzzyMatcher(opts ...FuzzyOption) (*FuzzyMatcher, error) {
	factor := DefaultThresholdFactor
	m := &FuzzyMatcher{thresholdFactor: &factor}

	for _, opt := range opts {
		opt(m)
	}

	if m.maxDistance != nil && *m.maxDistance < 0 {
		return nil, coreerrors.ErrNegativeMaxDistance
	}
	if m.thresholdFactor != nil && *m.thresholdFactor <= 0 {
		return nil, coreerrors.ErrInvalidThresholdFactor
	}

	return m, nil
}

// Train 替换匹配器保留的语料
func (m *FuzzyMatcher) Train(examples []knowledge.Example) {
	memory := knowledge.CloneExamples(examples)

	m.mu.Lock()
	m.memory = memory
	m.mu.Unlock()
}

// Predict 返回编辑距离最小的示例答案
func (m *FuzzyMatcher) Predict(query string) answer.Answer {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.memory) == 0 {
		return NoTrainingData
	}

	folded := strings.ToLower(query)

	// 按查询长度推导的动态上限
	threshold := math.MaxInt
	if m.thresholdFactor != nil {
		queryLen := len([]rune(folded))
		threshold = int(*m.thresholdFactor * float32(queryLen))
	}

	bestScore := math.MaxInt
	var best *knowledge.Example

	for i := range m.memory {
		item := &m.memory[i]
		score := textutil.Levenshtein(strings.ToLower(item.Input), folded)

		if m.maxDistance != nil && score > *m.maxDistance {
			continue
		}
		if score > threshold {
			continue
		}

		// 严格更优才替换，保证平局时先出现者胜
		if score < bestScore {
			bestScore = score
			best = item
		}
	}

	if best == nil {
		return NoMatch
	}
	return best.Output
}

// 编译时接口检查
var _ Matcher = (*FuzzyMatcher)(nil)
