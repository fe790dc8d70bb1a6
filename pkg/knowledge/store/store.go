// Package store provides persistence backends for the knowledge corpus.
//
// 语料供给者/持久化者边界：向匹配器提供示例序列，或对称地
// 接收同一序列用于存储。核心对后端格式不做任何假设，只依赖
// Example 的形状。默认实现使用内存存储，生产环境建议使用
// JSON 文件或 SQLite。
package store

import (
	"context"

	"github.com/easyops/qamatch-go/pkg/knowledge"
)

// Store 语料存储接口
type Store interface {
	// Load 加载全部训练示例
	Load(ctx context.Context) ([]knowledge.Example, error)

	// Save 整体保存训练示例（替换现有内容）
	Save(ctx context.Context, examples []knowledge.Example) error

	// Close 关闭连接
	Close() error
}

// StoreType 存储类型
type StoreType string

const (
	// StoreTypeMemory 内存存储
	StoreTypeMemory StoreType = "memory"
	// StoreTypeFile JSON 文件存储
	StoreTypeFile StoreType = "file"
	// StoreTypeSQLite SQLite 存储
	StoreTypeSQLite StoreType = "sqlite"
	// StoreTypeNeo4j Neo4j 存储
	StoreTypeNeo4j StoreType = "neo4j"
)

// Config 存储配置
type Config struct {
	// Type 存储类型
	Type StoreType `json:"type" koanf:"type"`

	// Path 文件/SQLite 路径
	Path string `json:"path,omitempty" koanf:"path"`

	// Neo4j 配置
	Neo4jURI      string `json:"neo4j_uri,omitempty" koanf:"neo4j_uri"`
	Neo4jUsername string `json:"neo4j_username,omitempty" koanf:"neo4j_username"`
	Neo4jPassword string `json:"neo4j_password,omitempty" koanf:"neo4j_password"`
}

// DefaultConfig 返回默认配置（内存存储）
func DefaultConfig() *Config {
	return &Config{Type: StoreTypeMemory}
}
