package cli

import (
	"bytes"
	"context"

	"github.com/ragline/ragline/internal/core/domain"
)

// mockPipeline implements driving.Pipeline for command tests.
type mockPipeline struct {
	metrics   domain.IngestMetrics
	ingestErr error
	answer    domain.Answer
	queryErr  error
	entries   []domain.Answer

	lastSource   string
	lastQuestion string
	lastLimit    int
}

func (m *mockPipeline) Ingest(_ context.Context, sourceDir string) (domain.IngestMetrics, error) {
	m.lastSource = sourceDir
	if m.ingestErr != nil {
		return domain.IngestMetrics{}, m.ingestErr
	}
	return m.metrics, nil
}

func (m *mockPipeline) Query(_ context.Context, question string) (domain.Answer, error) {
	m.lastQuestion = question
	if m.queryErr != nil {
		return domain.Answer{}, m.queryErr
	}
	return m.answer, nil
}

func (m *mockPipeline) History(limit int) []domain.Answer {
	m.lastLimit = limit
	return m.entries
}

// setupTestPipeline injects a mock pipeline and returns a cleanup that
// restores the uninitialized state and resets flag values.
func setupTestPipeline(mock *mockPipeline) func() {
	pipeline = mock
	return func() {
		pipeline = nil
		ingestSource = ""
		ingestJSON = false
		ingestWatch = false
		askJSON = false
		historyLimit = 0
		historyJSON = false
		rootCmd.SetArgs(nil)
	}
}

// execute runs the root command with args and captures output.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}
