package corpus

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/ragline/ragline/internal/core/domain"
)

func TestNewSplitter_Validation(t *testing.T) {
	t.Run("overlap equal to size", func(t *testing.T) {
		_, err := NewSplitter(100, 100)
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("overlap above size", func(t *testing.T) {
		_, err := NewSplitter(100, 150)
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("negative overlap", func(t *testing.T) {
		_, err := NewSplitter(100, -1)
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("zero chunk size", func(t *testing.T) {
		_, err := NewSplitter(0, 0)
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("valid parameters", func(t *testing.T) {
		if _, err := NewSplitter(256, 40); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestSplitter_BoundsChunkLength(t *testing.T) {
	s, err := NewSplitter(64, 16)
	if err != nil {
		t.Fatal(err)
	}

	long := strings.Repeat("Customers must notify support before travel. ", 20)
	chunks, err := s.Split([]domain.Document{{Source: "/docs/roaming.txt", FileName: "roaming.txt", Content: long}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for _, c := range chunks {
		if n := utf8.RuneCountInString(c.Content); n > 64 {
			t.Errorf("chunk %s exceeds size bound: %d chars", c.ID, n)
		}
	}
}

func TestSplitter_AssignsStableIDs(t *testing.T) {
	s, err := NewSplitter(64, 16)
	if err != nil {
		t.Fatal(err)
	}

	docs := []domain.Document{{
		Source:   "/docs/roaming.txt",
		FileName: "roaming.txt",
		Content:  strings.Repeat("Roaming must be enabled 48 hours before travel. ", 10),
	}}

	first, err := s.Split(docs)
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.Split(docs)
	if err != nil {
		t.Fatal(err)
	}

	if len(first) == 0 || len(first) != len(second) {
		t.Fatalf("expected identical chunk counts, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("chunk %d: id %q != %q across runs", i, first[i].ID, second[i].ID)
		}
		if !strings.HasPrefix(first[i].ID, "roaming-") {
			t.Errorf("chunk id %q should start with file stem", first[i].ID)
		}
	}
	if first[0].ID != "roaming-0" {
		t.Errorf("expected first chunk id roaming-0, got %s", first[0].ID)
	}
}

func TestSplitter_CountsPerSourceFile(t *testing.T) {
	s, err := NewSplitter(900, 100)
	if err != nil {
		t.Fatal(err)
	}

	// Two sections of the same Markdown file share one ID sequence.
	docs := []domain.Document{
		{Source: "/docs/faq.md", FileName: "faq.md", Page: "1", Content: "Section one."},
		{Source: "/docs/faq.md", FileName: "faq.md", Page: "2", Content: "Section two."},
		{Source: "/docs/billing.txt", FileName: "billing.txt", Content: "Billing text."},
	}

	chunks, err := s.Split(docs)
	if err != nil {
		t.Fatal(err)
	}
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	if chunks[0].ID != "faq-0" || chunks[1].ID != "faq-1" {
		t.Errorf("expected faq-0 and faq-1, got %s and %s", chunks[0].ID, chunks[1].ID)
	}
	if chunks[2].ID != "billing-0" {
		t.Errorf("expected billing-0, got %s", chunks[2].ID)
	}
}

func TestLoadAndSplit_Metrics(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "roaming.txt",
		"International roaming activation requires the account to be in good standing. "+
			"Customers must notify support 48 hours before travel to enable roaming and "+
			"confirm daily spending limits.")
	writeFile(t, dir, "billing.txt",
		"Billing disputes must be submitted within 30 days with supporting case references. "+
			"Resolutions are communicated by email within 5 business days.")

	chunks, metrics, err := LoadAndSplit(dir, 256, 40)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if metrics.Files != 2 {
		t.Errorf("expected files == 2, got %d", metrics.Files)
	}
	if metrics.Chunks == 0 || metrics.Chunks != len(chunks) {
		t.Errorf("chunk metric %d does not match %d chunks", metrics.Chunks, len(chunks))
	}
	if metrics.Pages != 2 {
		t.Errorf("expected pages == 2, got %d", metrics.Pages)
	}
}

func TestLoadAndSplit_EmptyCorpus(t *testing.T) {
	t.Run("only unsupported files", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "data.bin", "not text")

		_, _, err := LoadAndSplit(dir, 256, 40)
		if !errors.Is(err, domain.ErrEmptyCorpus) {
			t.Errorf("expected ErrEmptyCorpus, got %v", err)
		}
	})

	t.Run("only empty files", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "empty.txt", "")

		_, _, err := LoadAndSplit(dir, 256, 40)
		if !errors.Is(err, domain.ErrEmptyCorpus) {
			t.Errorf("expected ErrEmptyCorpus, got %v", err)
		}
	})
}
