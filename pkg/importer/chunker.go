package importer

import (
	"strings"

	coreerrors "github.com/easyops/qamatch-go/pkg/core/errors"
	"github.com/google/uuid"
)

// 分块默认参数
const (
	// DefaultMinChunkSize 每块至少的字符数
	DefaultMinChunkSize = 50
	// DefaultMaxChunkSize 每块最多的字符数
	DefaultMaxChunkSize = 1000
	// DefaultChunkOverlap 相邻块之间的重叠字符数
	DefaultChunkOverlap = 200
)

// Chunker 文档分块器接口
type Chunker interface {
	// Chunk 将文档分割成重叠的块
	Chunk(doc Document) []DocumentChunk
}

// SentenceChunker 句子感知分块器
//
// 把长文本切为重叠窗口：优先在句子边界断开，单块超限时按
// 字符硬切。所有切分都基于 rune，保证 UTF-8 安全。
type SentenceChunker struct {
	// MinChunkSize 块的最小长度，短于它的尾块被丢弃
	MinChunkSize int
	// MaxChunkSize 块的最大长度
	MaxChunkSize int
	// ChunkOverlap 相邻块之间的重叠长度
	ChunkOverlap int
	// SplitBySentence 是否在句子边界切分
	SplitBySentence bool
	// LengthFunc 长度计算函数，默认按 rune 计数；
	// 可替换为 Token 计数实现基于 Token 预算的分块
	LengthFunc func(string) int
}

// ChunkerOption 分块器配置选项
type ChunkerOption func(*SentenceChunker)

// WithChunkSize 设置块大小范围
func WithChunkSize(minSize, maxSize int) ChunkerOption {
	return func(c *SentenceChunker) {
		c.MinChunkSize = minSize
		c.MaxChunkSize = maxSize
	}
}

// WithChunkOverlap 设置重叠长度
func WithChunkOverlap(overlap int) ChunkerOption {
	return func(c *SentenceChunker) {
		c.ChunkOverlap = overlap
	}
}

// WithoutSentenceSplit 禁用句子边界切分
func WithoutSentenceSplit() ChunkerOption {
	return func(c *SentenceChunker) {
		c.SplitBySentence = false
	}
}

// WithLengthFunc 设置长度计算函数
func WithLengthFunc(fn func(string) int) ChunkerOption {
	return func(c *SentenceChunker) {
		c.LengthFunc = fn
	}
}

// NewSentenceChunker 创建句子感知分块器
//
// 块大小与重叠长度在构造时校验：min 必须为正且不大于 max，
// overlap 必须非负且小于 max，否则硬切无法推进。
func NewSentenceChunker(opts ...ChunkerOption) (*SentenceChunker, error) {
	c := &SentenceChunker{
		MinChunkSize:    DefaultMinChunkSize,
		MaxChunkSize:    DefaultMaxChunkSize,
		ChunkOverlap:    DefaultChunkOverlap,
		SplitBySentence: true,
		LengthFunc:      runeCount,
	}

	for _, opt := range opts {
		opt(c)
	}
	if c.LengthFunc == nil {
		c.LengthFunc = runeCount
	}

	if c.MinChunkSize <= 0 || c.MaxChunkSize < c.MinChunkSize {
		return nil, coreerrors.ErrInvalidChunkSize
	}
	if c.ChunkOverlap < 0 || c.ChunkOverlap >= c.MaxChunkSize {
		return nil, coreerrors.ErrInvalidChunkOverlap
	}

	return c, nil
}

// Chunk 将文档分割成重叠的块
func (c *SentenceChunker) Chunk(doc Document) []DocumentChunk {
	pieces := c.splitText(doc.Content)

	chunks := make([]DocumentChunk, len(pieces))
	for i, content := range pieces {
		chunks[i] = DocumentChunk{
			ID:         uuid.New().String(),
			DocumentID: doc.ID,
			Content:    content,
			Index:      i,
			Metadata:   doc.Metadata,
		}
	}
	return chunks
}

// splitText 把文本切为重叠片段
func (c *SentenceChunker) splitText(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	// 短文本整体作为单块
	if c.LengthFunc(text) <= c.MaxChunkSize {
		return []string{text}
	}

	var segments []string
	if c.SplitBySentence {
		segments = splitSentences(text)
	} else {
		segments = []string{text}
	}

	var chunks []string
	var current strings.Builder

	for _, segment := range segments {
		if c.LengthFunc(current.String())+c.LengthFunc(segment) > c.MaxChunkSize &&
			c.LengthFunc(current.String()) >= c.MinChunkSize {
			chunks = append(chunks, current.String())
			tail := overlapTail(current.String(), c.ChunkOverlap)
			current.Reset()
			current.WriteString(tail)
		}

		current.WriteString(segment)

		// 单块超限时按字符硬切
		for c.LengthFunc(current.String()) > c.MaxChunkSize {
			runes := []rune(current.String())
			if len(runes) <= c.MaxChunkSize {
				break
			}
			chunks = append(chunks, string(runes[:c.MaxChunkSize]))

			// rest 必须为正，否则硬切无法推进
			rest := c.MaxChunkSize - c.ChunkOverlap
			if rest <= 0 {
				rest = c.MaxChunkSize
			}
			current.Reset()
			current.WriteString(string(runes[rest:]))
		}
	}

	if current.Len() > 0 && c.LengthFunc(current.String()) >= c.MinChunkSize {
		chunks = append(chunks, current.String())
	}

	return chunks
}

// overlapTail 返回文本末尾的重叠部分
func overlapTail(text string, overlap int) string {
	if overlap <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= overlap {
		return text
	}
	return string(runes[len(runes)-overlap:])
}

// splitSentences 简单的句子分割
//
// 基于句号、问号和感叹号（含 CJK 变体）的启发式切分。
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	for _, r := range text {
		current.WriteRune(r)
		if isSentenceEnd(r) {
			sentences = append(sentences, current.String())
			current.Reset()
		}
	}

	if current.Len() > 0 {
		sentences = append(sentences, current.String())
	}
	return sentences
}

func isSentenceEnd(r rune) bool {
	switch r {
	case '.', '!', '?', '。', '！', '？':
		return true
	}
	return false
}

func runeCount(s string) int {
	count := 0
	for range s {
		count++
	}
	return count
}

// 编译时接口检查
var _ Chunker = (*SentenceChunker)(nil)
