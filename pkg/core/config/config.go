// Package config 提供配置加载和管理功能
package config

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/easyops/qamatch-go/pkg/otel"
)

// Config 全局配置结构
type Config struct {
	// Matcher 匹配器配置
	Matcher MatcherConfig `koanf:"matcher" json:"matcher"`
	// Knowledge 知识库配置
	Knowledge KnowledgeConfig `koanf:"knowledge" json:"knowledge"`
	// Importer 文档导入配置
	Importer ImporterConfig `koanf:"importer" json:"importer"`
	// Observability 可观测性配置
	Observability otel.Config `koanf:"observability" json:"observability"`
}

// MatcherConfig 匹配器配置
type MatcherConfig struct {
	// Default 默认匹配器类型 (exact, fuzzy, bm25, context)
	Default string `koanf:"default" json:"default"`
	// Fuzzy 模糊匹配配置
	Fuzzy FuzzyConfig `koanf:"fuzzy" json:"fuzzy"`
	// BM25 BM25 匹配配置
	BM25 BM25Config `koanf:"bm25" json:"bm25"`
	// Context 上下文包装配置
	Context ContextConfig `koanf:"context" json:"context"`
}

// FuzzyConfig 模糊匹配配置
type FuzzyConfig struct {
	// MaxDistance 最大编辑距离（0 表示不限制）
	MaxDistance int `koanf:"max_distance" json:"max_distance"`
	// ThresholdFactor 相对阈值系数（查询长度的比例）
	ThresholdFactor float64 `koanf:"threshold_factor" json:"threshold_factor"`
}

// BM25Config BM25 匹配配置
type BM25Config struct {
	// K1 词频饱和参数
	K1 float64 `koanf:"k1" json:"k1"`
	// B 长度归一化参数 [0, 1]
	B float64 `koanf:"b" json:"b"`
}

// ContextConfig 上下文包装配置
type ContextConfig struct {
	// MaxItems 上下文窗口保留的问答对数量
	MaxItems int `koanf:"max_items" json:"max_items"`
	// Format 上下文渲染格式 (qa_pairs, list, sentence)
	Format string `koanf:"format" json:"format"`
}

// KnowledgeConfig 知识库配置
type KnowledgeConfig struct {
	// Path 训练数据文件路径
	Path string `koanf:"path" json:"path"`
	// UseEmbedded 是否并入内置训练数据
	UseEmbedded bool `koanf:"use_embedded" json:"use_embedded"`
	// Store 语料存储配置
	Store StoreConfig `koanf:"store" json:"store"`
}

// StoreConfig 语料存储配置
type StoreConfig struct {
	// Type 存储类型 (memory, file, sqlite, neo4j)
	Type string `koanf:"type" json:"type"`
	// Path 文件或数据库路径
	Path string `koanf:"path" json:"path"`
	// Neo4jURI Neo4j 连接地址
	Neo4jURI string `koanf:"neo4j_uri" json:"neo4j_uri"`
	// Neo4jUsername Neo4j 用户名
	Neo4jUsername string `koanf:"neo4j_username" json:"neo4j_username"`
	// Neo4jPassword Neo4j 密码
	Neo4jPassword string `koanf:"neo4j_password" json:"neo4j_password"`
}

// ImporterConfig 文档导入配置
type ImporterConfig struct {
	// MinChunkSize 最小块大小
	MinChunkSize int `koanf:"min_chunk_size" json:"min_chunk_size"`
	// MaxChunkSize 最大块大小
	MaxChunkSize int `koanf:"max_chunk_size" json:"max_chunk_size"`
	// ChunkOverlap 块重叠大小
	ChunkOverlap int `koanf:"chunk_overlap" json:"chunk_overlap"`
	// ExampleWeight 导入样本的权重
	ExampleWeight float64 `koanf:"example_weight" json:"example_weight"`
}

// Loader 配置加载器
type Loader struct {
	k *koanf.Koanf
}

// NewLoader 创建配置加载器
func NewLoader() *Loader {
	return &Loader{
		k: koanf.New("."),
	}
}

// LoadEnv 从环境变量加载配置
func (l *Loader) LoadEnv(prefix string) error {
	return l.k.Load(env.Provider(prefix, ".", func(s string) string {
		// 转换环境变量名: QAMATCH_MATCHER_DEFAULT -> matcher.default
		s = strings.TrimPrefix(s, prefix)
		s = strings.ToLower(s)
		s = strings.ReplaceAll(s, "_", ".")
		return s
	}), nil)
}

// Unmarshal 解析配置到结构体
func (l *Loader) Unmarshal(cfg *Config) error {
	return l.k.Unmarshal("", cfg)
}

// Get 获取配置值
func (l *Loader) Get(key string) interface{} {
	return l.k.Get(key)
}

// GetString 获取字符串配置值
func (l *Loader) GetString(key string) string {
	return l.k.String(key)
}

// GetInt 获取整数配置值
func (l *Loader) GetInt(key string) int {
	return l.k.Int(key)
}

// GetBool 获取布尔配置值
func (l *Loader) GetBool(key string) bool {
	return l.k.Bool(key)
}

// GetDuration 获取时间间隔配置值
func (l *Loader) GetDuration(key string) time.Duration {
	return l.k.Duration(key)
}

// Load 加载完整配置（文件 + 环境变量）
//
// 配置文件为 JSON 格式，环境变量（QAMATCH_ 前缀）优先级更高。
func Load(configPath string) (*Config, error) {
	cfg := &Config{}

	// 加载配置文件（不存在时跳过，使用默认值）
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err == nil {
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, WrapError(err, "parse config file")
			}
		} else if !os.IsNotExist(err) {
			return nil, WrapError(err, "read config file")
		}
	}

	// 加载环境变量
	loader := NewLoader()
	if err := loader.LoadEnv("QAMATCH_"); err != nil {
		return nil, err
	}
	if err := loader.Unmarshal(cfg); err != nil {
		return nil, err
	}

	// 应用默认值
	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults 应用默认配置值
func applyDefaults(cfg *Config) {
	// Matcher 默认值
	if cfg.Matcher.Default == "" {
		cfg.Matcher.Default = "bm25"
	}
	if cfg.Matcher.Fuzzy.ThresholdFactor == 0 {
		cfg.Matcher.Fuzzy.ThresholdFactor = 0.3
	}
	if cfg.Matcher.BM25.K1 == 0 {
		cfg.Matcher.BM25.K1 = 1.2
	}
	if cfg.Matcher.BM25.B == 0 {
		cfg.Matcher.BM25.B = 0.75
	}
	if cfg.Matcher.Context.MaxItems == 0 {
		cfg.Matcher.Context.MaxItems = 5
	}
	if cfg.Matcher.Context.Format == "" {
		cfg.Matcher.Context.Format = "qa_pairs"
	}

	// Knowledge 默认值
	if cfg.Knowledge.Store.Type == "" {
		cfg.Knowledge.Store.Type = "memory"
	}

	// Importer 默认值
	if cfg.Importer.MinChunkSize == 0 {
		cfg.Importer.MinChunkSize = 50
	}
	if cfg.Importer.MaxChunkSize == 0 {
		cfg.Importer.MaxChunkSize = 1000
	}
	if cfg.Importer.ChunkOverlap == 0 {
		cfg.Importer.ChunkOverlap = 200
	}
	if cfg.Importer.ExampleWeight == 0 {
		cfg.Importer.ExampleWeight = 1.0
	}
}

// Validate 验证配置
func (c *Config) Validate() error {
	switch c.Matcher.Default {
	case "exact", "fuzzy", "bm25", "context":
	default:
		return ErrUnknownMatcher
	}

	if c.Matcher.Fuzzy.MaxDistance < 0 {
		return ErrInvalidMaxDistance
	}
	if c.Matcher.Fuzzy.ThresholdFactor <= 0 {
		return ErrInvalidThresholdFactor
	}
	if c.Matcher.BM25.K1 <= 0 {
		return ErrInvalidK1
	}
	if c.Matcher.BM25.B < 0 || c.Matcher.BM25.B > 1 {
		return ErrInvalidB
	}
	if c.Matcher.Context.MaxItems < 1 {
		return ErrInvalidMaxItems
	}

	switch c.Matcher.Context.Format {
	case "qa_pairs", "list", "sentence":
	default:
		return ErrUnknownFormat
	}

	switch c.Knowledge.Store.Type {
	case "memory", "file", "sqlite", "neo4j":
	default:
		return ErrUnknownStore
	}

	if c.Importer.MinChunkSize <= 0 || c.Importer.MaxChunkSize < c.Importer.MinChunkSize {
		return ErrInvalidChunkSize
	}
	if c.Importer.ChunkOverlap < 0 || c.Importer.ChunkOverlap >= c.Importer.MaxChunkSize {
		return ErrInvalidChunkOverlap
	}

	return nil
}
