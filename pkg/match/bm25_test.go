package match

import (
	"errors"
	"testing"

	"github.com/easyops/qamatch-go/pkg/core/answer"
	coreerrors "github.com/easyops/qamatch-go/pkg/core/errors"
	"github.com/easyops/qamatch-go/pkg/knowledge"
	"github.com/easyops/qamatch-go/pkg/textutil"
)

func TestBM25MatcherInvalidOptions(t *testing.T) {
	if _, err := NewBM25Matcher(WithK1(0)); !errors.Is(err, coreerrors.ErrInvalidK1) {
		t.Errorf("expected ErrInvalidK1, got %v", err)
	}
	if _, err := NewBM25Matcher(WithK1(-1)); !errors.Is(err, coreerrors.ErrInvalidK1) {
		t.Errorf("expected ErrInvalidK1, got %v", err)
	}
	if _, err := NewBM25Matcher(WithB(1.5)); !errors.Is(err, coreerrors.ErrInvalidB) {
		t.Errorf("expected ErrInvalidB, got %v", err)
	}
	if _, err := NewBM25Matcher(WithB(-0.1)); !errors.Is(err, coreerrors.ErrInvalidB) {
		t.Errorf("expected ErrInvalidB, got %v", err)
	}
}

func TestBM25MatcherBoundaryB(t *testing.T) {
	if _, err := NewBM25Matcher(WithB(0)); err != nil {
		t.Errorf("expected b=0 to be valid, got %v", err)
	}
	if _, err := NewBM25Matcher(WithB(1)); err != nil {
		t.Errorf("expected b=1 to be valid, got %v", err)
	}
}

func TestBM25MatcherUntrained(t *testing.T) {
	m, err := NewBM25Matcher()
	if err != nil {
		t.Fatal(err)
	}
	if got := m.Predict("anything"); !got.Equal(NoTrainingData) {
		t.Errorf("expected NoTrainingData, got %v", got)
	}

	m.Train(nil)
	if got := m.Predict("anything"); !got.Equal(NoTrainingData) {
		t.Errorf("expected NoTrainingData after empty training, got %v", got)
	}
}

func TestBM25MatcherPredict(t *testing.T) {
	m, err := NewBM25Matcher()
	if err != nil {
		t.Fatal(err)
	}
	m.Train(trainingCorpus())

	tests := []struct {
		name     string
		query    string
		expected answer.Answer
	}{
		{"verbatim", "What is the capital of France?", answer.Text("Paris")},
		{"partial terms", "capital France", answer.Text("Paris")},
		{"other document", "Faust wrote", answer.Text("Johann Wolfgang von Goethe")},
		{"no shared terms", "xyzzy plugh", NoMatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Predict(tt.query); !got.Equal(tt.expected) {
				t.Errorf("Predict(%q) = %v, expected %v", tt.query, got, tt.expected)
			}
		})
	}
}

func TestBM25MatcherWeightBreaksSymmetry(t *testing.T) {
	m, err := NewBM25Matcher()
	if err != nil {
		t.Fatal(err)
	}
	m.Train([]knowledge.Example{
		{Input: "red apple", Output: answer.Text("apple"), Weight: 1.0},
		{Input: "red berry", Output: answer.Text("berry"), Weight: 3.0},
	})

	// 两个文档的基础得分相同，权重更高的示例胜出
	if got := m.Predict("red"); !got.Equal(answer.Text("berry")) {
		t.Errorf("expected weighted example to win, got %v", got)
	}
}

func TestBM25MatcherTieKeepsFirst(t *testing.T) {
	m, err := NewBM25Matcher()
	if err != nil {
		t.Fatal(err)
	}
	m.Train([]knowledge.Example{
		knowledge.NewExample("red apple", answer.Text("first")),
		knowledge.NewExample("red apple", answer.Text("second")),
	})

	if got := m.Predict("red apple"); !got.Equal(answer.Text("first")) {
		t.Errorf("expected first document to win tie, got %v", got)
	}
}

func TestBM25MatcherRetrainReplacesIndex(t *testing.T) {
	m, err := NewBM25Matcher()
	if err != nil {
		t.Fatal(err)
	}
	m.Train(trainingCorpus())
	m.Train([]knowledge.Example{
		knowledge.NewExample("orbital mechanics", answer.Text("physics")),
	})

	if got := m.Predict("capital France"); !got.Equal(NoMatch) {
		t.Errorf("expected old index to be gone, got %v", got)
	}
	if got := m.Predict("orbital mechanics"); !got.Equal(answer.Text("physics")) {
		t.Errorf("expected new index hit, got %v", got)
	}
}

func TestBM25AverageDocLengthCachedAtTraining(t *testing.T) {
	m, err := NewBM25Matcher()
	if err != nil {
		t.Fatal(err)
	}

	corpus := trainingCorpus()
	m.Train(corpus)

	// 缓存的平均文档长度必须与逐文档重算的结果一致
	var total float32
	for _, ex := range corpus {
		total += float32(len(textutil.Tokenize(ex.Input)))
	}
	expected := total / float32(len(corpus))

	if m.index.avgDocLen != expected {
		t.Errorf("expected cached avgDocLen %f, got %f", expected, m.index.avgDocLen)
	}

	// 并且缓存值参与打分：针对同一索引用重算的平均值打分结果一致
	queryTerms := textutil.Tokenize("capital of France")
	for i := range corpus {
		cached := m.score(m.index, queryTerms, i, m.index.avgDocLen)
		recomputed := m.score(m.index, queryTerms, i, expected)
		if cached != recomputed {
			t.Errorf("doc %d: cached-avg score %f != recomputed-avg score %f", i, cached, recomputed)
		}
	}
}
