// Package match 实现基于内存语料的查询匹配策略。
//
// 所有匹配器实现同一个 Matcher 接口：Train 用语料重建内部
// 索引，Predict 对查询返回最佳答案。训练数据缺失或没有示例
// 通过匹配阈值时返回哨兵答案而不是错误——这是可查询的预期
// 状态，不是编程错误。
package match

import (
	"github.com/easyops/qamatch-go/pkg/core/answer"
	"github.com/easyops/qamatch-go/pkg/knowledge"
)

// 哨兵答案
var (
	// NoTrainingData 训练数据缺失时的哨兵答案
	NoTrainingData = answer.Text("No training data available.")
	// NoMatch 没有示例通过匹配阈值时的哨兵答案
	NoMatch = answer.Text("No matching answer found.")
)

// Matcher 匹配器接口
//
// Train 和 Predict 都不阻塞，也不做任何 I/O。训练完成后内部
// 索引是只读的，可以跨 goroutine 共享读取；Train 本身必须
// 作为独占写操作对待。
type Matcher interface {
	// Train 用语料重建匹配器的内部索引
	//
	// 实现必须制作语料的私有副本，整体替换旧索引。
	Train(examples []knowledge.Example)

	// Predict 返回查询的最佳匹配答案
	Predict(query string) answer.Answer
}

// IsSentinel 判断答案是否为哨兵
func IsSentinel(a answer.Answer) bool {
	return a.Equal(NoTrainingData) || a.Equal(NoMatch)
}

// Confidence 返回匹配器对查询的置信度 (0.0 - 1.0)
//
// 哨兵答案的置信度为 0，其他答案为 1。
func Confidence(m Matcher, query string) float32 {
	if IsSentinel(m.Predict(query)) {
		return 0
	}
	return 1
}

// CanAnswer 判断匹配器是否能回答该查询
func CanAnswer(m Matcher, query string) bool {
	return Confidence(m, query) > 0.5
}
