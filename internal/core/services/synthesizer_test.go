package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragline/ragline/internal/core/domain"
	"github.com/ragline/ragline/internal/core/ports/driven"
)

// mockLLM implements driven.LLMService for testing.
type mockLLM struct {
	response    string
	generateErr error
	lastPrompt  string
}

func (m *mockLLM) Generate(_ context.Context, prompt string, _ driven.GenerateOptions) (string, error) {
	m.lastPrompt = prompt
	if m.generateErr != nil {
		return "", m.generateErr
	}
	return m.response, nil
}

func (m *mockLLM) ModelName() string { return "mock" }
func (m *mockLLM) Close() error      { return nil }

func retrieved(content string) domain.RetrievedChunk {
	return domain.RetrievedChunk{
		Chunk: domain.Chunk{ID: "doc-0", Source: "/kb/doc.txt", FileName: "doc.txt", Content: content},
		Score: 0.9,
	}
}

func TestSynthesizeNoChunks(t *testing.T) {
	s := NewSynthesizer(nil)
	got := s.Synthesize(context.Background(), "what about roaming?", nil)
	assert.Equal(t, "I could not find relevant information in the knowledge base yet.", got)
}

func TestSynthesizeUsesLLM(t *testing.T) {
	llm := &mockLLM{response: "Roaming is billed per day [Source 1]."}
	s := NewSynthesizer(llm)

	got := s.Synthesize(context.Background(), "what about roaming?", []domain.RetrievedChunk{
		retrieved("Roaming charges apply per day abroad."),
	})

	assert.Equal(t, "Roaming is billed per day [Source 1].", got)
	assert.Contains(t, llm.lastPrompt, "Question: what about roaming?")
	assert.Contains(t, llm.lastPrompt, "[Source 1] Roaming charges apply per day abroad.")
	assert.Contains(t, llm.lastPrompt, "cite sources as [Source #]")
}

func TestSynthesizeFallsBackOnLLMError(t *testing.T) {
	llm := &mockLLM{generateErr: errors.New("connection refused")}
	s := NewSynthesizer(llm)

	got := s.Synthesize(context.Background(), "q", []domain.RetrievedChunk{
		retrieved("Roaming charges apply per day abroad."),
	})

	assert.Contains(t, got, "Based on the knowledge base, here is what I found:")
	assert.Contains(t, got, "[Source 1] Roaming charges apply per day abroad....")
	assert.Contains(t, got, "consider adding more detailed documents")
}

func TestSynthesizeFallsBackOnBlankResponse(t *testing.T) {
	llm := &mockLLM{response: "   \n"}
	s := NewSynthesizer(llm)

	got := s.Synthesize(context.Background(), "q", []domain.RetrievedChunk{retrieved("some content")})
	assert.Contains(t, got, "Based on the knowledge base")
}

func TestExtractiveAnswerTruncatesAndFlattens(t *testing.T) {
	s := NewSynthesizer(nil)
	long := strings.Repeat("a", 300)
	multiline := "first line\nsecond line"

	got := s.Synthesize(context.Background(), "q", []domain.RetrievedChunk{
		retrieved(long),
		retrieved(multiline),
	})

	require.Contains(t, got, "[Source 1] "+strings.Repeat("a", 220)+"...")
	assert.NotContains(t, got, strings.Repeat("a", 221))
	assert.Contains(t, got, "[Source 2] first line second line...")
	assert.NotContains(t, got, "\n")
}
