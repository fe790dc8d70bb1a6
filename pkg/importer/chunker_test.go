package importer

import (
	"errors"
	"strings"
	"testing"

	coreerrors "github.com/easyops/qamatch-go/pkg/core/errors"
)

// mustChunker 构造分块器，配置无效时让测试失败
func mustChunker(t *testing.T, opts ...ChunkerOption) *SentenceChunker {
	t.Helper()
	c, err := NewSentenceChunker(opts...)
	if err != nil {
		t.Fatalf("chunker construction failed: %v", err)
	}
	return c
}

func TestNewSentenceChunkerInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []ChunkerOption
		want error
	}{
		{"zero min", []ChunkerOption{WithChunkSize(0, 10)}, coreerrors.ErrInvalidChunkSize},
		{"min above max", []ChunkerOption{WithChunkSize(20, 10)}, coreerrors.ErrInvalidChunkSize},
		{"negative overlap", []ChunkerOption{WithChunkSize(1, 10), WithChunkOverlap(-1)}, coreerrors.ErrInvalidChunkOverlap},
		{"overlap equals max", []ChunkerOption{WithChunkSize(1, 10), WithChunkOverlap(10)}, coreerrors.ErrInvalidChunkOverlap},
		{"overlap above max", []ChunkerOption{WithChunkSize(1, 10), WithChunkOverlap(11)}, coreerrors.ErrInvalidChunkOverlap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewSentenceChunker(tt.opts...); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestChunkFullOverlapStillTerminates(t *testing.T) {
	// 直接构造绕过校验：重叠等于最大块长时硬切必须仍能推进
	c := &SentenceChunker{
		MinChunkSize:    1,
		MaxChunkSize:    10,
		ChunkOverlap:    10,
		SplitBySentence: false,
		LengthFunc:      runeCount,
	}

	text := strings.Repeat("abc", 10) // 30 runes
	chunks := c.Chunk(NewDocument(text, DocumentMetadata{}))

	if len(chunks) == 0 {
		t.Fatal("expected chunks, got none")
	}
	for i, chunk := range chunks {
		if n := len([]rune(chunk.Content)); n > 10 {
			t.Errorf("chunk %d exceeds max size: %d runes", i, n)
		}
	}
}

func TestChunkEmptyDocument(t *testing.T) {
	c := mustChunker(t)
	chunks := c.Chunk(NewDocument("   ", DocumentMetadata{}))
	if len(chunks) != 0 {
		t.Errorf("expected no chunks for blank document, got %d", len(chunks))
	}
}

func TestChunkShortDocumentSingleChunk(t *testing.T) {
	c := mustChunker(t)
	doc := NewDocument("  A short document.  ", DocumentMetadata{Source: "short.txt"})

	chunks := c.Chunk(doc)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].Content != "A short document." {
		t.Errorf("expected trimmed content, got %q", chunks[0].Content)
	}
	if chunks[0].DocumentID != doc.ID {
		t.Error("expected chunk to reference its document")
	}
	if chunks[0].Index != 0 {
		t.Errorf("expected index 0, got %d", chunks[0].Index)
	}
	if chunks[0].Metadata.Source != "short.txt" {
		t.Errorf("expected metadata inherited, got %q", chunks[0].Metadata.Source)
	}
	if chunks[0].ID == "" {
		t.Error("expected generated chunk ID")
	}
}

func TestChunkLongDocumentRespectsMaxSize(t *testing.T) {
	c := mustChunker(t,
		WithChunkSize(10, 60),
		WithChunkOverlap(10),
	)

	var sb strings.Builder
	for i := 0; i < 20; i++ {
		sb.WriteString("This is sentence number one of the test corpus. ")
	}

	chunks := c.Chunk(NewDocument(sb.String(), DocumentMetadata{}))
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}

	for i, chunk := range chunks {
		if n := len([]rune(chunk.Content)); n > 60 {
			t.Errorf("chunk %d exceeds max size: %d runes", i, n)
		}
		if chunk.Index != i {
			t.Errorf("expected sequential index %d, got %d", i, chunk.Index)
		}
	}
}

func TestChunkHardSplitOverlap(t *testing.T) {
	c := mustChunker(t,
		WithChunkSize(1, 20),
		WithChunkOverlap(5),
		WithoutSentenceSplit(),
	)

	// 50 个互不相同的字符，无句子边界
	text := "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWX"
	chunks := c.Chunk(NewDocument(text, DocumentMetadata{}))

	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	if chunks[0].Content != text[0:20] {
		t.Errorf("unexpected first chunk: %q", chunks[0].Content)
	}
	if chunks[1].Content != text[15:35] {
		t.Errorf("unexpected second chunk: %q", chunks[1].Content)
	}
	if chunks[2].Content != text[30:50] {
		t.Errorf("unexpected third chunk: %q", chunks[2].Content)
	}

	// 相邻块共享 overlap 长度的前后缀
	prevTail := chunks[0].Content[len(chunks[0].Content)-5:]
	if !strings.HasPrefix(chunks[1].Content, prevTail) {
		t.Errorf("expected overlap between consecutive chunks")
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"three sentences", "One. Two! Three?", 3},
		{"no terminator", "just a fragment", 1},
		{"cjk terminators", "你好。世界！", 2},
		{"trailing fragment", "Done. And more", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitSentences(tt.text); len(got) != tt.expected {
				t.Errorf("expected %d sentences, got %d: %v", tt.expected, len(got), got)
			}
		})
	}
}

func TestEstimatedCounter(t *testing.T) {
	c := NewEstimatedCounter()
	if got := c.Count("abcdefgh"); got != 2 {
		t.Errorf("expected 2 tokens for 8 chars, got %d", got)
	}
	if got := c.Count(""); got != 0 {
		t.Errorf("expected 0 tokens for empty text, got %d", got)
	}
}

func TestChunkerWithTokenBudget(t *testing.T) {
	// 每 4 字符算 1 token，预算 5 token 即 20 字符
	c := mustChunker(t,
		WithChunkSize(1, 5),
		WithChunkOverlap(0),
		WithoutSentenceSplit(),
		WithTokenBudget(NewEstimatedCounter()),
	)

	text := strings.Repeat("abcd", 15) // 60 chars = 15 tokens
	chunks := c.Chunk(NewDocument(text, DocumentMetadata{}))

	if len(chunks) < 2 {
		t.Fatalf("expected token budget to force multiple chunks, got %d", len(chunks))
	}
}
