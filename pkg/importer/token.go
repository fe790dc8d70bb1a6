package importer

import (
	"github.com/pkoukk/tiktoken-go"
)

// TokenCounter 定义 Token 计数接口
//
// 作为分块器的长度函数使用时，块大小以 Token 预算而不是
// 字符数衡量。
type TokenCounter interface {
	// Count 返回给定文本的 Token 数量
	Count(text string) int
}

// TiktokenCounter 使用 tiktoken 实现精确的 Token 计数
type TiktokenCounter struct {
	encoding *tiktoken.Tiktoken
}

// NewTiktokenCounter 创建 TiktokenCounter
//
// 默认使用 cl100k_base 编码。
func NewTiktokenCounter() (*TiktokenCounter, error) {
	encoding, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		return nil, err
	}
	return &TiktokenCounter{encoding: encoding}, nil
}

// Count 返回给定文本的 Token 数量
func (c *TiktokenCounter) Count(text string) int {
	if c.encoding == nil {
		return estimateTokens(text)
	}
	return len(c.encoding.Encode(text, nil, nil))
}

// EstimatedCounter 使用字符估算实现 Token 计数
//
// tiktoken 不可用时的降级方案。
type EstimatedCounter struct {
	// CharsPerToken 每个 Token 的平均字符数，默认 4
	CharsPerToken float64
}

// NewEstimatedCounter 创建 EstimatedCounter
func NewEstimatedCounter() *EstimatedCounter {
	return &EstimatedCounter{CharsPerToken: 4.0}
}

// Count 返回估算的 Token 数量
func (c *EstimatedCounter) Count(text string) int {
	if c.CharsPerToken <= 0 {
		c.CharsPerToken = 4.0
	}
	return int(float64(len(text)) / c.CharsPerToken)
}

// estimateTokens 粗略估算：1 token ≈ 4 字符
func estimateTokens(text string) int {
	return len(text) / 4
}

// DefaultTokenCounter 返回一个 TokenCounter
//
// 优先使用 TiktokenCounter，不可用时降级到 EstimatedCounter。
func DefaultTokenCounter() TokenCounter {
	counter, err := NewTiktokenCounter()
	if err != nil {
		return NewEstimatedCounter()
	}
	return counter
}

// WithTokenBudget 把分块器切换为基于 Token 预算的长度函数
func WithTokenBudget(counter TokenCounter) ChunkerOption {
	return func(c *SentenceChunker) {
		c.LengthFunc = counter.Count
	}
}

// 编译时接口检查
var _ TokenCounter = (*TiktokenCounter)(nil)
var _ TokenCounter = (*EstimatedCounter)(nil)
