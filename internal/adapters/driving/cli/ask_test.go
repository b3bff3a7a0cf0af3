package cli

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragline/ragline/internal/core/domain"
)

func TestAskCmd_Use(t *testing.T) {
	assert.Equal(t, "ask [question]", askCmd.Use)
}

func TestAskCmd_RequiresExactlyOneArg(t *testing.T) {
	cleanup := setupTestPipeline(&mockPipeline{})
	defer cleanup()

	_, err := execute("ask")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestAskCmd_PrintsAnswerWithSources(t *testing.T) {
	mock := &mockPipeline{answer: domain.Answer{
		ID:       "a-1",
		Question: "how much is roaming?",
		Text:     "Roaming costs 3 euro per day [Source 1].",
		Sources: []domain.Citation{
			{Rank: 1, File: "faq.txt", Page: "n/a", ChunkID: "faq-0", Source: "/kb/faq.txt"},
		},
		AskedAt: time.Now().UTC(),
	}}
	cleanup := setupTestPipeline(mock)
	defer cleanup()

	out, err := execute("ask", "how much is roaming?")

	require.NoError(t, err)
	assert.Equal(t, "how much is roaming?", mock.lastQuestion)
	assert.Contains(t, out, "Roaming costs 3 euro per day [Source 1].")
	assert.Contains(t, out, "[1] faq.txt (page n/a, chunk faq-0)")
}

func TestAskCmd_JSONOutput(t *testing.T) {
	mock := &mockPipeline{answer: domain.Answer{
		ID:      "a-2",
		Text:    "An answer.",
		Sources: []domain.Citation{{Rank: 1, File: "doc.md", Page: "2", ChunkID: "doc-1"}},
	}}
	cleanup := setupTestPipeline(mock)
	defer cleanup()

	out, err := execute("ask", "--json", "anything")
	require.NoError(t, err)

	var decoded domain.Answer
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "An answer.", decoded.Text)
	require.Len(t, decoded.Sources, 1)
	assert.Equal(t, "doc.md", decoded.Sources[0].File)
}

func TestAskCmd_PropagatesQueryError(t *testing.T) {
	cleanup := setupTestPipeline(&mockPipeline{queryErr: errors.New("index unavailable")})
	defer cleanup()

	_, err := execute("ask", "q")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "query failed")
}
