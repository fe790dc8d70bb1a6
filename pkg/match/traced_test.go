package match

import (
	"errors"
	"testing"

	"github.com/easyops/qamatch-go/pkg/core/answer"
	coreerrors "github.com/easyops/qamatch-go/pkg/core/errors"
)

func TestNewTracedMatcherNilInner(t *testing.T) {
	if _, err := NewTracedMatcher(nil, "exact"); !errors.Is(err, coreerrors.ErrNilMatcher) {
		t.Errorf("expected ErrNilMatcher, got %v", err)
	}
}

func TestTracedMatcherPassesThrough(t *testing.T) {
	inner := NewExactMatcher()
	m, err := NewTracedMatcher(inner, "exact")
	if err != nil {
		t.Fatal(err)
	}

	m.Train(trainingCorpus())

	if got := m.Predict("What is the capital of France?"); !got.Equal(answer.Text("Paris")) {
		t.Errorf("expected pass-through hit, got %v", got)
	}
	if got := m.Predict("unrelated"); !got.Equal(NoMatch) {
		t.Errorf("expected pass-through miss, got %v", got)
	}

	if m.Unwrap() != inner {
		t.Error("expected Unwrap to return the inner matcher")
	}
}
