package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ragline/ragline/internal/core/domain"
	"github.com/ragline/ragline/internal/core/ports/driven"
	"github.com/ragline/ragline/internal/logger"
)

// snippetLength bounds the extractive excerpt taken from each chunk
// when no LLM is available.
const snippetLength = 220

// noResultsAnswer is returned when retrieval finds nothing to cite.
const noResultsAnswer = "I could not find relevant information in the knowledge base yet."

// Synthesizer turns retrieved chunks into an answer. With an LLM it
// generates one grounded in the retrieved context; without (or when
// the LLM fails) it falls back to a deterministic extractive summary,
// so the pipeline degrades rather than breaks.
type Synthesizer struct {
	llm driven.LLMService // optional, may be nil
}

// NewSynthesizer creates a synthesizer. Pass a nil llm for
// extractive-only operation.
func NewSynthesizer(llm driven.LLMService) *Synthesizer {
	return &Synthesizer{llm: llm}
}

// Synthesize produces an answer for the question from the retrieved
// chunks. Chunks are cited as [Source N] in retrieval order.
func (s *Synthesizer) Synthesize(ctx context.Context, question string, chunks []domain.RetrievedChunk) string {
	if len(chunks) == 0 {
		return noResultsAnswer
	}

	if s.llm != nil {
		answer, err := s.llm.Generate(ctx, buildPrompt(question, chunks), driven.GenerateOptions{
			MaxTokens:   512,
			Temperature: 0.2,
		})
		if err != nil {
			logger.Warn("LLM generation failed, falling back to extractive answer: %v", err)
		} else if answer = strings.TrimSpace(answer); answer != "" {
			return answer
		}
	}

	return extractiveAnswer(chunks)
}

// buildPrompt assembles the generation prompt with a numbered context
// block so the model can cite sources by index.
func buildPrompt(question string, chunks []domain.RetrievedChunk) string {
	var context strings.Builder
	for i, c := range chunks {
		if i > 0 {
			context.WriteString("\n\n")
		}
		fmt.Fprintf(&context, "[Source %d] %s", i+1, strings.TrimSpace(c.Chunk.Content))
	}

	return "You are a telecom customer support policy assistant. Use the context to craft a concise answer.\n" +
		"If the answer is not present, politely say you do not know.\n" +
		"Question: " + question + "\n" +
		"Context:\n" + context.String() + "\n" +
		"Answer with 2-3 sentences and cite sources as [Source #]."
}

// extractiveAnswer builds a deterministic summary from chunk excerpts.
func extractiveAnswer(chunks []domain.RetrievedChunk) string {
	snippets := make([]string, len(chunks))
	for i, c := range chunks {
		text := strings.ReplaceAll(c.Chunk.Content, "\n", " ")
		snippets[i] = fmt.Sprintf("[Source %d] %s...", i+1, truncateRunes(text, snippetLength))
	}
	return "Based on the knowledge base, here is what I found: " +
		strings.Join(snippets, " ") +
		" If this does not answer the question, consider adding more detailed documents."
}

// truncateRunes cuts s to at most n runes without splitting a
// multi-byte character.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
