package store

import (
	"context"
	"sync"

	"github.com/easyops/qamatch-go/pkg/knowledge"
)

// MemoryStore 内存语料存储
//
// 用于测试和无持久化需求的嵌入场景。
type MemoryStore struct {
	examples []knowledge.Example
	mu       sync.RWMutex
}

// NewMemoryStore 创建内存语料存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// NewMemoryStoreWith 创建带初始语料的内存存储
func NewMemoryStoreWith(examples []knowledge.Example) *MemoryStore {
	return &MemoryStore{examples: knowledge.CloneExamples(examples)}
}

// Load 加载全部训练示例
func (s *MemoryStore) Load(ctx context.Context) ([]knowledge.Example, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return knowledge.CloneExamples(s.examples), nil
}

// Save 整体保存训练示例
func (s *MemoryStore) Save(ctx context.Context, examples []knowledge.Example) error {
	cloned := knowledge.CloneExamples(examples)

	s.mu.Lock()
	s.examples = cloned
	s.mu.Unlock()
	return nil
}

// Close 关闭存储（内存存储无操作）
func (s *MemoryStore) Close() error {
	return nil
}

// 编译时接口检查
var _ Store = (*MemoryStore)(nil)
