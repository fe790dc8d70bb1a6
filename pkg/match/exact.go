package match

import (
	"strings"
	"sync"

	"github.com/easyops/qamatch-go/pkg/core/answer"
	"github.com/easyops/qamatch-go/pkg/knowledge"
)

// ExactMatcher 精确匹配器
//
// 按语料顺序扫描，返回第一个输入与查询大小写折叠后完全相等
// 的示例答案。确定性：插入顺序下先匹配者胜。
type ExactMatcher struct {
	memory []knowledge.Example
	mu     sync.RWMutex
}

// NewExactMatcher 创建精确匹配器
func NewExactMatcher() *ExactMatcher {
	return &ExactMatcher{}
}

// Train 替换匹配器保留的语料
func (m *ExactMatcher) Train(examples []knowledge.Example) {
	memory := knowledge.CloneExamples(examples)

	m.mu.Lock()
	m.memory = memory
	m.mu.Unlock()
}

// Predict 返回第一个完全相等的示例答案
func (m *ExactMatcher) Predict(query string) answer.Answer {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.memory) == 0 {
		return NoTrainingData
	}

	folded := strings.ToLower(query)
	for _, item := range m.memory {
		if strings.ToLower(item.Input) == folded {
			return item.Output
		}
	}

	return NoMatch
}

// 编译时接口检查
var _ Matcher = (*ExactMatcher)(nil)
