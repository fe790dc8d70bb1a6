// Package knowledge 提供训练语料的数据模型和知识库管理。
package knowledge

import (
	"encoding/json"

	"github.com/easyops/qamatch-go/pkg/core/answer"
)

// DefaultWeight 训练示例的默认权重
const DefaultWeight float32 = 1.0

// Example 训练示例，匹配器训练的基本单元
type Example struct {
	// Input 输入文本（例如一个问题）
	Input string `json:"input"`
	// Output 期望的答案载荷
	Output answer.Answer `json:"output"`
	// Weight 示例权重，值越高优先级越高
	Weight float32 `json:"weight"`
	// Metadata 可选的不透明元数据
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// NewExample 创建带默认权重的训练示例
func NewExample(input string, output answer.Answer) Example {
	return Example{
		Input:  input,
		Output: output,
		Weight: DefaultWeight,
	}
}

// UnmarshalJSON 反序列化示例，缺失的权重回填为默认值
func (e *Example) UnmarshalJSON(data []byte) error {
	type alias Example
	aux := alias{Weight: DefaultWeight}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*e = Example(aux)
	return nil
}

// Clone 返回示例的副本（元数据做浅层映射复制）
func (e Example) Clone() Example {
	clone := e
	if e.Metadata != nil {
		clone.Metadata = make(map[string]interface{}, len(e.Metadata))
		for k, v := range e.Metadata {
			clone.Metadata[k] = v
		}
	}
	return clone
}

// CloneExamples 返回示例切片的私有副本
//
// 匹配器训练时使用，保证之后对源语料的修改不影响已训练
// 的匹配器。
func CloneExamples(examples []Example) []Example {
	if examples == nil {
		return nil
	}
	cloned := make([]Example, len(examples))
	for i, ex := range examples {
		cloned[i] = ex.Clone()
	}
	return cloned
}
