package importer

import (
	"context"
	"strings"
	"testing"

	"github.com/easyops/qamatch-go/pkg/knowledge"
)

func TestImportShortDocument(t *testing.T) {
	imp := New()
	loader := NewStringLoader("The Rhine is a major European river.", DocumentMetadata{
		Source: "rhine.txt",
	})

	examples, err := imp.Import(context.Background(), loader)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if len(examples) != 1 {
		t.Fatalf("expected 1 example, got %d", len(examples))
	}

	ex := examples[0]
	if ex.Input != "The Rhine is a major European river." {
		t.Errorf("unexpected input: %q", ex.Input)
	}
	// 块内容同时作为输入和输出
	if ex.Output.String() != ex.Input {
		t.Errorf("expected output to mirror input, got %q", ex.Output.String())
	}
	if ex.Weight != knowledge.DefaultWeight {
		t.Errorf("expected default weight, got %f", ex.Weight)
	}

	if ex.Metadata["source"] != "rhine.txt" {
		t.Errorf("expected source metadata, got %v", ex.Metadata["source"])
	}
	if ex.Metadata["chunk_index"] != 0 {
		t.Errorf("expected chunk_index 0, got %v", ex.Metadata["chunk_index"])
	}
	if ex.Metadata["total_chunks"] != 1 {
		t.Errorf("expected total_chunks 1, got %v", ex.Metadata["total_chunks"])
	}
	if ex.Metadata["document_id"] == "" {
		t.Error("expected document_id metadata")
	}
}

func TestImportCustomWeightAndNoMetadata(t *testing.T) {
	imp := New(
		WithExampleWeight(2.5),
		WithoutMetadata(),
	)
	loader := NewStringLoader("Short text.", DocumentMetadata{Source: "s.txt"})

	examples, err := imp.Import(context.Background(), loader)
	if err != nil {
		t.Fatal(err)
	}

	if examples[0].Weight != 2.5 {
		t.Errorf("expected weight 2.5, got %f", examples[0].Weight)
	}
	if examples[0].Metadata != nil {
		t.Errorf("expected no metadata, got %v", examples[0].Metadata)
	}
}

func TestImportLongDocumentProducesChunks(t *testing.T) {
	chunker, err := NewSentenceChunker(
		WithChunkSize(10, 60),
		WithChunkOverlap(10),
	)
	if err != nil {
		t.Fatal(err)
	}
	imp := New(WithChunker(chunker))

	var sb strings.Builder
	for i := 0; i < 20; i++ {
		sb.WriteString("Another sentence about the river and its long history. ")
	}
	loader := NewStringLoader(sb.String(), DocumentMetadata{})

	examples, err := imp.Import(context.Background(), loader)
	if err != nil {
		t.Fatal(err)
	}
	if len(examples) < 2 {
		t.Fatalf("expected several chunk examples, got %d", len(examples))
	}

	total := examples[0].Metadata["total_chunks"]
	if total != len(examples) {
		t.Errorf("expected total_chunks %d, got %v", len(examples), total)
	}
}

func TestImportToBase(t *testing.T) {
	imp := New()
	base := knowledge.New()

	n, err := imp.ImportToBase(context.Background(),
		NewStringLoader("First doc.", DocumentMetadata{}), base)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("expected 1 imported example, got %d", n)
	}
	if base.Len() != 1 {
		t.Errorf("expected base to grow, got %d", base.Len())
	}
}

func TestMultiLoader(t *testing.T) {
	loader := NewMultiLoader(
		NewStringLoader("doc one", DocumentMetadata{}),
		NewStringLoader("doc two", DocumentMetadata{}),
	)

	docs, err := loader.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0].ID == docs[1].ID {
		t.Error("expected distinct document IDs")
	}
}
