package otel

import "go.opentelemetry.io/otel/attribute"

// 预定义的语义属性键
// 遵循 OpenTelemetry 语义约定
const (
	// Matcher 相关属性
	AttrMatcherType   = "matcher.type"
	AttrQueryLength   = "matcher.query_length"
	AttrQueryTerms    = "matcher.query_terms"
	AttrMatchFound    = "matcher.match_found"
	AttrExampleCount  = "matcher.example_count"
	AttrContextLength = "matcher.context_length"

	// Knowledge 相关属性
	AttrStoreType    = "store.type"
	AttrStorePath    = "store.path"
	AttrKnowledgeLen = "knowledge.example_count"

	// Importer 相关属性
	AttrDocumentID     = "importer.document_id"
	AttrDocumentSource = "importer.document_source"
	AttrChunkCount     = "importer.chunk_count"

	// Error 相关属性
	AttrErrorType    = "error.type"
	AttrErrorMessage = "error.message"
)

// MatcherType 创建匹配器类型属性
func MatcherType(typ string) attribute.KeyValue {
	return attribute.String(AttrMatcherType, typ)
}

// QueryLength 创建查询长度属性
func QueryLength(n int) attribute.KeyValue {
	return attribute.Int(AttrQueryLength, n)
}

// MatchFound 创建命中标记属性
func MatchFound(found bool) attribute.KeyValue {
	return attribute.Bool(AttrMatchFound, found)
}

// ExampleCount 创建训练样本数属性
func ExampleCount(n int) attribute.KeyValue {
	return attribute.Int(AttrExampleCount, n)
}

// StoreType 创建存储类型属性
func StoreType(typ string) attribute.KeyValue {
	return attribute.String(AttrStoreType, typ)
}

// DocumentSource 创建文档来源属性
func DocumentSource(source string) attribute.KeyValue {
	return attribute.String(AttrDocumentSource, source)
}

// ChunkCount 创建切分块数属性
func ChunkCount(n int) attribute.KeyValue {
	return attribute.Int(AttrChunkCount, n)
}

// ErrorAttrs 创建错误属性
func ErrorAttrs(errType, message string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String(AttrErrorType, errType),
		attribute.String(AttrErrorMessage, message),
	}
}
