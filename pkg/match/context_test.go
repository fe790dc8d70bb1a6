package match

import (
	"errors"
	"strings"
	"testing"

	"github.com/easyops/qamatch-go/pkg/core/answer"
	coreerrors "github.com/easyops/qamatch-go/pkg/core/errors"
	"github.com/easyops/qamatch-go/pkg/knowledge"
)

// recordingMatcher 记录收到的查询和语料，按固定答案应答
type recordingMatcher struct {
	lastQuery string
	trained   []knowledge.Example
	reply     answer.Answer
}

func (r *recordingMatcher) Train(examples []knowledge.Example) {
	r.trained = examples
}

func (r *recordingMatcher) Predict(query string) answer.Answer {
	r.lastQuery = query
	return r.reply
}

func TestContextMatcherInvalidConstruction(t *testing.T) {
	if _, err := NewContextMatcher(nil); !errors.Is(err, coreerrors.ErrNilMatcher) {
		t.Errorf("expected ErrNilMatcher, got %v", err)
	}

	inner := &recordingMatcher{reply: answer.Text("ok")}
	if _, err := NewContextMatcher(inner, WithMaxItems(0)); !errors.Is(err, coreerrors.ErrInvalidMaxItems) {
		t.Errorf("expected ErrInvalidMaxItems, got %v", err)
	}
	if _, err := NewContextMatcher(inner, WithMaxItems(-3)); !errors.Is(err, coreerrors.ErrInvalidMaxItems) {
		t.Errorf("expected ErrInvalidMaxItems, got %v", err)
	}
}

func TestContextMatcherEmptyHistoryPassesQueryThrough(t *testing.T) {
	inner := &recordingMatcher{reply: answer.Text("ok")}
	m, err := NewContextMatcher(inner)
	if err != nil {
		t.Fatal(err)
	}

	m.Predict("plain query")
	if inner.lastQuery != "plain query" {
		t.Errorf("expected unmodified query, got %q", inner.lastQuery)
	}
}

func TestContextMatcherWrapsQueryWithHistory(t *testing.T) {
	inner := &recordingMatcher{reply: answer.Text("ok")}
	m, err := NewContextMatcher(inner)
	if err != nil {
		t.Fatal(err)
	}

	m.AddContext("capital of France", answer.Text("Paris"))
	m.Predict("and Germany?")

	expected := "and Germany? [Context: Q: capital of France A: Paris ]"
	if inner.lastQuery != expected {
		t.Errorf("expected %q, got %q", expected, inner.lastQuery)
	}
}

func TestContextMatcherFIFOEviction(t *testing.T) {
	inner := &recordingMatcher{reply: answer.Text("ok")}
	m, err := NewContextMatcher(inner, WithMaxItems(2))
	if err != nil {
		t.Fatal(err)
	}

	m.AddContext("q1", answer.Text("a1"))
	m.AddContext("q2", answer.Text("a2"))
	m.AddContext("q3", answer.Text("a3"))

	if m.ContextLen() != 2 {
		t.Fatalf("expected window of 2, got %d", m.ContextLen())
	}

	m.Predict("next")
	if strings.Contains(inner.lastQuery, "q1") {
		t.Errorf("expected oldest entry evicted, got %q", inner.lastQuery)
	}
	if !strings.Contains(inner.lastQuery, "q2") || !strings.Contains(inner.lastQuery, "q3") {
		t.Errorf("expected recent entries kept, got %q", inner.lastQuery)
	}
}

func TestContextMatcherClear(t *testing.T) {
	inner := &recordingMatcher{reply: answer.Text("ok")}
	m, err := NewContextMatcher(inner)
	if err != nil {
		t.Fatal(err)
	}

	m.AddContext("q1", answer.Text("a1"))
	m.ClearContext()

	if m.ContextLen() != 0 {
		t.Errorf("expected empty window, got %d", m.ContextLen())
	}

	// 清空后行为与未包装一致
	m.Predict("plain query")
	if inner.lastQuery != "plain query" {
		t.Errorf("expected unmodified query after clear, got %q", inner.lastQuery)
	}
}

func TestContextMatcherTrainForwards(t *testing.T) {
	inner := &recordingMatcher{reply: answer.Text("ok")}
	m, err := NewContextMatcher(inner)
	if err != nil {
		t.Fatal(err)
	}

	corpus := trainingCorpus()
	m.Train(corpus)

	if len(inner.trained) != len(corpus) {
		t.Errorf("expected training forwarded, got %d examples", len(inner.trained))
	}
}

func TestContextMatcherNeverRecordsAutomatically(t *testing.T) {
	inner := &recordingMatcher{reply: answer.Text("ok")}
	m, err := NewContextMatcher(inner)
	if err != nil {
		t.Fatal(err)
	}

	m.Predict("q1")
	m.Predict("q2")

	if m.ContextLen() != 0 {
		t.Errorf("expected no implicit context recording, got %d entries", m.ContextLen())
	}
}

func TestFormatters(t *testing.T) {
	history := []Entry{
		{Query: "q1", Answer: answer.Text("a1")},
		{Query: "q2", Answer: answer.Text("a2")},
	}

	if got := QAPairsFormat(history); got != "Q: q1 A: a1 Q: q2 A: a2 " {
		t.Errorf("unexpected qa_pairs rendering: %q", got)
	}
	if got := ListFormat(history); got != "[q1 -> a1, q2 -> a2]" {
		t.Errorf("unexpected list rendering: %q", got)
	}
	if got := SentenceFormat(history); got != "Previous questions and answers: q1 - a1; q2 - a2" {
		t.Errorf("unexpected sentence rendering: %q", got)
	}
}

func TestContextMatcherCustomFormatter(t *testing.T) {
	inner := &recordingMatcher{reply: answer.Text("ok")}
	m, err := NewContextMatcher(inner, WithFormatter(func(history []Entry) string {
		items := make([]string, len(history))
		for i, e := range history {
			items[i] = e.Query
		}
		return strings.Join(items, "|")
	}))
	if err != nil {
		t.Fatal(err)
	}

	m.AddContext("q1", answer.Text("a1"))
	m.AddContext("q2", answer.Text("a2"))
	m.Predict("next")

	if inner.lastQuery != "next [Context: q1|q2]" {
		t.Errorf("unexpected wrapped query: %q", inner.lastQuery)
	}
}
