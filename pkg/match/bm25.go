package match

import (
	"math"
	"sync"

	"github.com/easyops/qamatch-go/pkg/core/answer"
	coreerrors "github.com/easyops/qamatch-go/pkg/core/errors"
	"github.com/easyops/qamatch-go/pkg/knowledge"
	"github.com/easyops/qamatch-go/pkg/textutil"
)

// BM25 默认参数
const (
	// DefaultBM25K1 词频饱和参数
	DefaultBM25K1 float32 = 1.2
	// DefaultBM25B 文档长度归一化强度
	DefaultBM25B float32 = 0.75
)

// BM25Matcher 排序匹配器
//
// 训练时从语料构建词项文档频率表和每文档词频表，查询时用
// BM25 公式对每个文档打分，乘以示例权重后取最高分。索引在
// 每次训练时整体重建并原子替换，训练完成后只读。
type BM25Matcher struct {
	k1 float32
	b  float32

	index *bm25Index
	mu    sync.RWMutex
}

// bm25Index 不可变的派生索引，每次训练整体替换
type bm25Index struct {
	// docs 训练语料的私有副本
	docs []knowledge.Example
	// termDF 词项 -> 包含该词项的文档数
	termDF map[string]float32
	// docTermFreq 每个文档的词项 -> 出现次数
	docTermFreq []map[string]float32
	// docLen 每个文档的词项总数
	docLen []float32
	// avgDocLen 语料平均文档长度，训练时缓存一次
	avgDocLen float32
}

// BM25Option BM25 匹配器配置选项
type BM25Option func(*BM25Matcher)

// WithK1 设置词频饱和参数 k1
func WithK1(k1 float32) BM25Option {
	return func(m *BM25Matcher) {
		m.k1 = k1
	}
}

// WithB 设置文档长度归一化强度 b
func WithB(b float32) BM25Option {
	return func(m *BM25Matcher) {
		m.b = b
	}
}

// NewBM25Matcher 创建 BM25 匹配器
//
// k1 必须为正数，b 必须在 [0, 1] 区间内，否则构造失败。
func NewBM25Matcher(opts ...BM25Option) (*BM25Matcher, error) {
	m := &BM25Matcher{
		k1: DefaultBM25K1,
		b:  DefaultBM25B,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.k1 <= 0 {
		return nil, coreerrors.ErrInvalidK1
	}
	if m.b < 0 || m.b > 1 {
		return nil, coreerrors.ErrInvalidB
	}

	return m, nil
}

// Train 从语料整体重建索引
//
// 每个文档分词后统计词频，唯一词项各使对应的全局文档频率
// 加一。不与旧索引合并：新索引构建完成后一次性换入。
func (m *BM25Matcher) Train(examples []knowledge.Example) {
	docs := knowledge.CloneExamples(examples)

	index := &bm25Index{
		docs:        docs,
		termDF:      make(map[string]float32),
		docTermFreq: make([]map[string]float32, 0, len(docs)),
		docLen:      make([]float32, 0, len(docs)),
	}

	var totalLen float32
	for _, doc := range docs {
		terms := textutil.Tokenize(doc.Input)

		termFreq := make(map[string]float32, len(terms))
		for _, term := range terms {
			termFreq[term]++
		}
		for term := range termFreq {
			index.termDF[term]++
		}

		index.docTermFreq = append(index.docTermFreq, termFreq)
		index.docLen = append(index.docLen, float32(len(terms)))
		totalLen += float32(len(terms))
	}

	if len(docs) > 0 {
		index.avgDocLen = totalLen / float32(len(docs))
	}

	m.mu.Lock()
	m.index = index
	m.mu.Unlock()
}

// Predict 返回 BM25 得分最高的示例答案
//
// 最高分 ≤ 0 时返回 NoMatch；空语料返回 NoTrainingData。
// 平局时保留语料顺序中先出现的文档。
func (m *BM25Matcher) Predict(query string) answer.Answer {
	m.mu.RLock()
	index := m.index
	m.mu.RUnlock()

	if index == nil || len(index.docs) == 0 {
		return NoTrainingData
	}

	queryTerms := textutil.Tokenize(query)

	bestIdx := -1
	var bestScore float32

	for i := range index.docs {
		score := m.score(index, queryTerms, i, index.avgDocLen) * index.docs[i].Weight

		// 严格更优才替换，保证平局时先出现者胜
		if bestIdx == -1 || score > bestScore {
			bestIdx = i
			bestScore = score
		}
	}

	if bestScore <= 0 {
		return NoMatch
	}
	return index.docs[bestIdx].Output
}

// score 计算查询词项对单个文档的 BM25 得分
//
// IDF(t) = ln(1 + (N - df + 0.5) / (df + 0.5))，文档频率为零的
// 词项贡献为零。IDF 对极常见词项可能为负，允许负的加权和。
func (m *BM25Matcher) score(index *bm25Index, queryTerms []string, docIdx int, avgDocLen float32) float32 {
	docLen := index.docLen[docIdx]

	var total float32
	for _, term := range queryTerms {
		df, ok := index.termDF[term]
		if !ok {
			continue
		}

		idf := float32(math.Log(float64(1.0 + (float32(len(index.docs))-df+0.5)/(df+0.5))))

		tf := index.docTermFreq[docIdx][term]
		numerator := tf * (m.k1 + 1.0)
		denominator := tf + m.k1*(1.0-m.b+m.b*docLen/avgDocLen)

		total += idf * numerator / denominator
	}

	return total
}

// 编译时接口检查
var _ Matcher = (*BM25Matcher)(nil)
