package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/easyops/qamatch-go/pkg/knowledge"
)

// FileStore JSON 文件语料存储
//
// 同时接受现代格式（带标签的答案对象）和旧版格式（裸字符串
// 输出）的语料文件。
type FileStore struct {
	path string
}

// NewFileStore 创建 JSON 文件语料存储
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, ErrPathRequired
	}
	return &FileStore{path: path}, nil
}

// Load 加载全部训练示例
//
// 文件不存在时返回空语料而不是错误，首次使用无需预建文件。
func (s *FileStore) Load(ctx context.Context) ([]knowledge.Example, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus file: %w", err)
	}

	var examples []knowledge.Example
	if err := json.Unmarshal(data, &examples); err != nil {
		return nil, fmt.Errorf("failed to parse corpus file: %w", err)
	}
	return examples, nil
}

// Save 整体保存训练示例
func (s *FileStore) Save(ctx context.Context, examples []knowledge.Example) error {
	data, err := json.MarshalIndent(examples, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize corpus: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write corpus file: %w", err)
	}
	return nil
}

// Close 关闭存储（文件存储无操作）
func (s *FileStore) Close() error {
	return nil
}

// 编译时接口检查
var _ Store = (*FileStore)(nil)
