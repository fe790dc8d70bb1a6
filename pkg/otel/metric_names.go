package otel

// 预定义的指标名称
// 遵循 OpenTelemetry 语义约定
const (
	// Matcher 指标
	MetricMatcherPredictions     = "matcher.predictions"      // 计数器: 预测次数
	MetricMatcherPredictDuration = "matcher.predict.duration" // 直方图: 预测耗时(ms)
	MetricMatcherTrainDuration   = "matcher.train.duration"   // 直方图: 训练耗时(ms)
	MetricMatcherTrainExamples   = "matcher.train.examples"   // 直方图: 单次训练样本数
	MetricMatcherMisses          = "matcher.misses"           // 计数器: 未命中次数

	// Knowledge 指标
	MetricKnowledgeExamples   = "knowledge.examples"    // 仪表: 知识库样本数
	MetricKnowledgeStoreOps   = "knowledge.store.ops"   // 计数器: 存储操作次数
	MetricKnowledgeStoreFails = "knowledge.store.fails" // 计数器: 存储操作失败次数

	// Importer 指标
	MetricImporterDocuments = "importer.documents" // 计数器: 导入文档数
	MetricImporterChunks    = "importer.chunks"    // 计数器: 切分块数
	MetricImporterDuration  = "importer.duration"  // 直方图: 导入耗时(ms)
)

// MetricUnit 指标单位
type MetricUnit string

const (
	UnitNone         MetricUnit = ""
	UnitMilliseconds MetricUnit = "ms"
	UnitSeconds      MetricUnit = "s"
	UnitBytes        MetricUnit = "By"
	UnitCount        MetricUnit = "1"
)

// MetricDescription 指标描述
type MetricDescription struct {
	Name        string
	Description string
	Unit        MetricUnit
	Type        string // counter, histogram, gauge
}

// PredefinedMetrics 预定义指标列表
var PredefinedMetrics = []MetricDescription{
	{MetricMatcherPredictions, "Number of matcher predictions", UnitCount, "counter"},
	{MetricMatcherPredictDuration, "Duration of matcher predictions", UnitMilliseconds, "histogram"},
	{MetricMatcherTrainDuration, "Duration of matcher training", UnitMilliseconds, "histogram"},
	{MetricMatcherTrainExamples, "Number of examples per training call", UnitCount, "histogram"},
	{MetricMatcherMisses, "Number of predictions with no match", UnitCount, "counter"},

	{MetricKnowledgeExamples, "Number of examples in the knowledge base", UnitCount, "gauge"},
	{MetricKnowledgeStoreOps, "Number of knowledge store operations", UnitCount, "counter"},
	{MetricKnowledgeStoreFails, "Number of failed knowledge store operations", UnitCount, "counter"},

	{MetricImporterDocuments, "Number of documents imported", UnitCount, "counter"},
	{MetricImporterChunks, "Number of chunks produced by the importer", UnitCount, "counter"},
	{MetricImporterDuration, "Duration of document imports", UnitMilliseconds, "histogram"},
}
