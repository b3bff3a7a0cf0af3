package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ragline/ragline/internal/core/domain"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoad_MissingDirectory(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "does-not-exist"))
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLoad_PlainText(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "roaming.txt", "International roaming activation requires notice.")
	writeFile(t, dir, "billing.txt", "Billing disputes must be submitted within 30 days.")

	docs, files, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if files != 2 {
		t.Errorf("expected 2 files, got %d", files)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	for _, doc := range docs {
		if doc.Page != "" {
			t.Errorf("plain text documents should have no page marker, got %q", doc.Page)
		}
		if doc.FileName == "" || doc.Source == "" {
			t.Errorf("document missing provenance: %+v", doc)
		}
	}
}

func TestLoad_SkipsUnsupportedFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "notes.txt", "supported")
	writeFile(t, dir, "binary.bin", "unsupported")
	writeFile(t, dir, "data.csv", "a,b,c")

	docs, files, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if files != 1 {
		t.Errorf("expected 1 file, got %d", files)
	}
	if len(docs) != 1 {
		t.Errorf("expected 1 document, got %d", len(docs))
	}
}

func TestLoad_RecursesSubdirectories(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "policies")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, dir, "top.txt", "top level")
	writeFile(t, sub, "nested.txt", "nested")

	_, files, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if files != 2 {
		t.Errorf("expected 2 files including nested, got %d", files)
	}
}

func TestLoad_MarkdownSections(t *testing.T) {
	dir := t.TempDir()
	content := "# Roaming\n\nEnable before travel.\n\n# Billing\n\nDisputes within 30 days.\n"
	writeFile(t, dir, "faq.md", content)

	docs, files, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if files != 1 {
		t.Errorf("expected 1 file, got %d", files)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(docs))
	}
	if docs[0].Page != "1" || docs[1].Page != "2" {
		t.Errorf("expected section page markers 1 and 2, got %q and %q", docs[0].Page, docs[1].Page)
	}
}

func TestLoad_MarkdownSingleSection(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "plain.md", "No headings here, just text.")

	docs, _, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 section, got %d", len(docs))
	}
	if docs[0].Page != "" {
		t.Errorf("single-section file should have no page marker, got %q", docs[0].Page)
	}
}
