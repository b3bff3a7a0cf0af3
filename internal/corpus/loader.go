// Package corpus loads raw documents from a directory tree and splits
// them into overlapping, size-bounded chunks with stable identifiers.
package corpus

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ragline/ragline/internal/core/domain"
	"github.com/ragline/ragline/internal/logger"
)

// supportedExtensions lists file types the loader understands.
// Anything else is silently skipped.
var supportedExtensions = map[string]bool{
	".txt": true,
	".md":  true,
}

// Load recursively scans dir for supported files and parses each into one
// or more logical pages. It returns the parsed documents and the number of
// files processed. A missing directory returns domain.ErrNotFound.
func Load(dir string) ([]domain.Document, int, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, fmt.Errorf("corpus directory %s: %w", dir, domain.ErrNotFound)
		}
		return nil, 0, fmt.Errorf("stat corpus directory: %w", err)
	}
	if !info.IsDir() {
		return nil, 0, fmt.Errorf("corpus path %s is not a directory: %w", dir, domain.ErrNotFound)
	}

	var docs []domain.Document
	files := 0

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !supportedExtensions[strings.ToLower(filepath.Ext(path))] {
			logger.Debug("Skipping unsupported file: %s", path)
			return nil
		}

		loaded, err := loadFile(path)
		if err != nil {
			return err
		}
		files++
		docs = append(docs, loaded...)
		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("walking corpus directory: %w", err)
	}

	logger.Debug("Loaded %d pages from %d files under %s", len(docs), files, dir)
	return docs, files, nil
}

// loadFile parses a single supported file into documents.
// Plain text yields one document; Markdown yields one document per
// top-level heading section.
func loadFile(path string) ([]domain.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	content := string(data)
	name := filepath.Base(path)

	if strings.ToLower(filepath.Ext(path)) == ".md" {
		return splitMarkdown(path, name, content), nil
	}

	return []domain.Document{{
		Source:   path,
		FileName: name,
		Content:  content,
	}}, nil
}

// splitMarkdown breaks Markdown content into sections at top-level
// headings. Each section becomes a document; the section ordinal serves
// as the page marker when a file has more than one section.
func splitMarkdown(path, name, content string) []domain.Document {
	var sections []string
	var current strings.Builder

	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "# ") && strings.TrimSpace(current.String()) != "" {
			sections = append(sections, current.String())
			current.Reset()
		}
		current.WriteString(line)
		current.WriteString("\n")
	}
	if strings.TrimSpace(current.String()) != "" || len(sections) == 0 {
		sections = append(sections, current.String())
	}

	docs := make([]domain.Document, 0, len(sections))
	for i, section := range sections {
		page := ""
		if len(sections) > 1 {
			page = strconv.Itoa(i + 1)
		}
		docs = append(docs, domain.Document{
			Source:   path,
			FileName: name,
			Page:     page,
			Content:  section,
		})
	}
	return docs
}
