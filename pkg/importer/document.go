// Package importer 把任意长文本切分为重叠窗口并转换为训练示例。
//
// 属于语料供给边界的外部协作者：加载文档、分块、再产出
// knowledge.Example 序列交给匹配器训练，匹配核心本身不做 I/O。
package importer

import (
	"time"

	"github.com/google/uuid"
)

// Document 待导入的文档
type Document struct {
	// ID 文档唯一标识
	ID string `json:"id"`
	// Content 文档内容
	Content string `json:"content"`
	// Metadata 元数据
	Metadata DocumentMetadata `json:"metadata"`
}

// DocumentMetadata 文档元数据
type DocumentMetadata struct {
	// Source 来源（文件路径、URL 等）
	Source string `json:"source,omitempty"`
	// Title 标题
	Title string `json:"title,omitempty"`
	// CreatedAt 创建时间
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Tags 标签
	Tags []string `json:"tags,omitempty"`
}

// DocumentChunk 文档分块
type DocumentChunk struct {
	// ID 分块唯一标识
	ID string `json:"id"`
	// DocumentID 所属文档 ID
	DocumentID string `json:"document_id"`
	// Content 分块内容
	Content string `json:"content"`
	// Index 分块索引（在文档中的位置）
	Index int `json:"index"`
	// Metadata 元数据（继承自文档）
	Metadata DocumentMetadata `json:"metadata"`
}

// NewDocument 创建带生成 ID 的文档
func NewDocument(content string, metadata DocumentMetadata) Document {
	return Document{
		ID:       uuid.New().String(),
		Content:  content,
		Metadata: metadata,
	}
}
