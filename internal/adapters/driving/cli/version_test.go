package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_PrintsVersion(t *testing.T) {
	cleanup := setupTestPipeline(&mockPipeline{})
	defer cleanup()

	out, err := execute("version")

	require.NoError(t, err)
	assert.Contains(t, out, "ragline version dev")
}
