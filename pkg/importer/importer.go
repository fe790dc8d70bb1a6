package importer

import (
	"context"

	"github.com/easyops/qamatch-go/pkg/core/answer"
	"github.com/easyops/qamatch-go/pkg/knowledge"
)

// Importer 文档导入器
//
// 把加载的文档经分块器切分后转换为训练示例：每个块既是
// 输入也是输出，检索时块内容本身就是答案。
type Importer struct {
	chunker Chunker
	// weight 生成示例的默认权重
	weight float32
	// includeMetadata 是否在示例元数据中记录块位置信息
	includeMetadata bool
}

// ImporterOption 导入器配置选项
type ImporterOption func(*Importer)

// WithChunker 设置分块器
func WithChunker(chunker Chunker) ImporterOption {
	return func(i *Importer) {
		i.chunker = chunker
	}
}

// WithExampleWeight 设置生成示例的权重
func WithExampleWeight(weight float32) ImporterOption {
	return func(i *Importer) {
		i.weight = weight
	}
}

// WithoutMetadata 不在示例中记录块位置元数据
func WithoutMetadata() ImporterOption {
	return func(i *Importer) {
		i.includeMetadata = false
	}
}

// New 创建文档导入器
func New(opts ...ImporterOption) *Importer {
	// 默认参数恒有效，直接构造避免错误分支
	i := &Importer{
		chunker: &SentenceChunker{
			MinChunkSize:    DefaultMinChunkSize,
			MaxChunkSize:    DefaultMaxChunkSize,
			ChunkOverlap:    DefaultChunkOverlap,
			SplitBySentence: true,
			LengthFunc:      runeCount,
		},
		weight:          knowledge.DefaultWeight,
		includeMetadata: true,
	}

	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Import 加载文档并转换为训练示例
func (i *Importer) Import(ctx context.Context, loader DocumentLoader) ([]knowledge.Example, error) {
	docs, err := loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	var examples []knowledge.Example
	for _, doc := range docs {
		examples = append(examples, i.Examples(doc)...)
	}
	return examples, nil
}

// Examples 把单个文档切块并转换为训练示例
func (i *Importer) Examples(doc Document) []knowledge.Example {
	chunks := i.chunker.Chunk(doc)

	examples := make([]knowledge.Example, len(chunks))
	for idx, chunk := range chunks {
		ex := knowledge.Example{
			Input:  chunk.Content,
			Output: answer.Text(chunk.Content),
			Weight: i.weight,
		}

		if i.includeMetadata {
			ex.Metadata = map[string]interface{}{
				"chunk_index":  chunk.Index,
				"total_chunks": len(chunks),
				"document_id":  chunk.DocumentID,
			}
			if chunk.Metadata.Source != "" {
				ex.Metadata["source"] = chunk.Metadata.Source
			}
		}

		examples[idx] = ex
	}
	return examples
}

// ImportToBase 导入文档并追加到知识库
func (i *Importer) ImportToBase(ctx context.Context, loader DocumentLoader, base *knowledge.Base) (int, error) {
	examples, err := i.Import(ctx, loader)
	if err != nil {
		return 0, err
	}

	for _, ex := range examples {
		base.Add(ex)
	}
	return len(examples), nil
}
