package knowledge

import (
	_ "embed"
	"encoding/json"
	"sync"
)

// 编译期内嵌的默认训练语料
//
//go:embed data/train.json
var embeddedData []byte

var (
	embeddedOnce     sync.Once
	embeddedExamples []Example
)

// EmbeddedExamples 返回内嵌的默认训练示例
//
// 只解析一次，之后复用；内嵌数据损坏时返回空切片而不是
// 中止进程。返回的是私有副本，调用方可以安全修改。
func EmbeddedExamples() []Example {
	embeddedOnce.Do(func() {
		if err := json.Unmarshal(embeddedData, &embeddedExamples); err != nil {
			embeddedExamples = nil
		}
	})
	return CloneExamples(embeddedExamples)
}

// FromEmbedded 使用内嵌语料创建知识库
func FromEmbedded() *Base {
	return &Base{examples: EmbeddedExamples()}
}

// MergeEmbedded 将内嵌语料合并进当前知识库
func (b *Base) MergeEmbedded() {
	b.examples = append(b.examples, EmbeddedExamples()...)
}
