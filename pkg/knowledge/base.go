package knowledge

import (
	"encoding/json"
	"fmt"
	"os"

	coreerrors "github.com/easyops/qamatch-go/pkg/core/errors"
)

// Base 知识库
//
// 维护一个有序的训练示例序列，支持从 JSON 文件加载/保存
// 以及与其他知识库合并。插入顺序对匹配结果无关紧要，但
// 决定了平局时的确定性选择。
type Base struct {
	examples []Example
	path     string
}

// New 创建空知识库
func New() *Base {
	return &Base{}
}

// Load 从 JSON 文件加载知识库
//
// 同时接受现代格式（带标签的答案对象）和旧版格式（裸字符串
// 输出），两者由 answer.Answer 的反序列化统一处理。
func Load(path string) (*Base, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read knowledge base: %w", err)
	}

	var examples []Example
	if err := json.Unmarshal(data, &examples); err != nil {
		return nil, fmt.Errorf("failed to parse knowledge base: %w", err)
	}

	return &Base{examples: examples, path: path}, nil
}

// Save 保存知识库到 JSON 文件
//
// path 为空时使用加载时的路径；两者都为空时返回错误。
func (b *Base) Save(path string) error {
	if path == "" {
		path = b.path
	}
	if path == "" {
		return coreerrors.ErrNoPath
	}

	data, err := json.MarshalIndent(b.examples, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize knowledge base: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write knowledge base: %w", err)
	}
	return nil
}

// Add 追加一个训练示例
func (b *Base) Add(example Example) {
	b.examples = append(b.examples, example)
}

// Remove 按索引移除训练示例并返回它
func (b *Base) Remove(index int) (Example, error) {
	if index < 0 || index >= len(b.examples) {
		return Example{}, fmt.Errorf("%w: %d", coreerrors.ErrIndexOutOfRange, index)
	}
	removed := b.examples[index]
	b.examples = append(b.examples[:index], b.examples[index+1:]...)
	return removed, nil
}

// Merge 合并另一个知识库的所有示例
func (b *Base) Merge(other *Base) {
	if other == nil {
		return
	}
	b.examples = append(b.examples, other.examples...)
}

// AddAll 追加多个训练示例
func (b *Base) AddAll(examples []Example) {
	b.examples = append(b.examples, examples...)
}

// Examples 返回全部示例
func (b *Base) Examples() []Example {
	return b.examples
}

// Len 返回示例数量
func (b *Base) Len() int {
	return len(b.examples)
}
