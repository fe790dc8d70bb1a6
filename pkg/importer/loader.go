package importer

import (
	"context"
	"io"
	"os"
)

// DocumentLoader 文档加载器接口
type DocumentLoader interface {
	// Load 加载文档
	Load(ctx context.Context) ([]Document, error)
}

// TextLoader 文本文件加载器
type TextLoader struct {
	source string
	reader io.Reader
}

// NewTextLoader 从 io.Reader 创建文本加载器
func NewTextLoader(source string, reader io.Reader) *TextLoader {
	return &TextLoader{source: source, reader: reader}
}

// NewFileLoader 从文件路径创建文本加载器
func NewFileLoader(path string) (*TextLoader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &TextLoader{source: path, reader: f}, nil
}

// Load 加载文档
func (l *TextLoader) Load(ctx context.Context) ([]Document, error) {
	content, err := io.ReadAll(l.reader)
	if err != nil {
		return nil, err
	}
	if closer, ok := l.reader.(io.Closer); ok {
		closer.Close()
	}

	doc := NewDocument(string(content), DocumentMetadata{Source: l.source})
	return []Document{doc}, nil
}

// StringLoader 字符串加载器（用于直接加载字符串内容）
type StringLoader struct {
	content  string
	metadata DocumentMetadata
}

// NewStringLoader 创建字符串加载器
func NewStringLoader(content string, metadata DocumentMetadata) *StringLoader {
	return &StringLoader{content: content, metadata: metadata}
}

// Load 加载文档
func (l *StringLoader) Load(ctx context.Context) ([]Document, error) {
	return []Document{NewDocument(l.content, l.metadata)}, nil
}

// MultiLoader 多文档加载器
type MultiLoader struct {
	loaders []DocumentLoader
}

// NewMultiLoader 创建多文档加载器
func NewMultiLoader(loaders ...DocumentLoader) *MultiLoader {
	return &MultiLoader{loaders: loaders}
}

// Load 加载所有文档
func (l *MultiLoader) Load(ctx context.Context) ([]Document, error) {
	var docs []Document
	for _, loader := range l.loaders {
		loaded, err := loader.Load(ctx)
		if err != nil {
			return nil, err
		}
		docs = append(docs, loaded...)
	}
	return docs, nil
}

// 编译时接口检查
var _ DocumentLoader = (*TextLoader)(nil)
var _ DocumentLoader = (*StringLoader)(nil)
var _ DocumentLoader = (*MultiLoader)(nil)
