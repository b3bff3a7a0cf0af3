package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragline/ragline/internal/core/domain"
)

func TestIngestCmd_Use(t *testing.T) {
	assert.Equal(t, "ingest", ingestCmd.Use)
}

func TestIngestCmd_HasSourceFlag(t *testing.T) {
	flag := ingestCmd.Flags().Lookup("source")
	require.NotNil(t, flag, "source flag should exist")
	assert.Equal(t, "s", flag.Shorthand)
}

func TestIngestCmd_PrintsMetrics(t *testing.T) {
	mock := &mockPipeline{metrics: domain.IngestMetrics{Files: 2, Pages: 3, Chunks: 7, IndexSize: 7}}
	cleanup := setupTestPipeline(mock)
	defer cleanup()

	out, err := execute("ingest", "--source", "/srv/kb")

	require.NoError(t, err)
	assert.Equal(t, "/srv/kb", mock.lastSource)
	assert.Contains(t, out, "Ingested 2 files (3 pages) into 7 chunks")
	assert.Contains(t, out, "Index now holds 7 chunks")
}

func TestIngestCmd_JSONOutput(t *testing.T) {
	mock := &mockPipeline{metrics: domain.IngestMetrics{Files: 1, Pages: 1, Chunks: 4, IndexSize: 4}}
	cleanup := setupTestPipeline(mock)
	defer cleanup()

	out, err := execute("ingest", "--json", "--source", "/srv/kb")
	require.NoError(t, err)

	var decoded domain.IngestMetrics
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, 4, decoded.Chunks)
	assert.Equal(t, 4, decoded.IndexSize)
}

func TestIngestCmd_PropagatesIngestError(t *testing.T) {
	cleanup := setupTestPipeline(&mockPipeline{ingestErr: domain.ErrEmptyCorpus})
	defer cleanup()

	_, err := execute("ingest", "--source", "/srv/empty")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmptyCorpus)
}

func TestIngestCmd_UnknownFlag(t *testing.T) {
	cleanup := setupTestPipeline(&mockPipeline{})
	defer cleanup()

	_, err := execute("ingest", "--bogus")
	assert.Error(t, err)
}
