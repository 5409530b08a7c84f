package observability

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_NoMetricsAddressDisablesListener(t *testing.T) {
	obs := Init(Config{LogLevel: "error"})
	t.Cleanup(func() { obs.Close() })

	assert.Empty(t, obs.MetricsAddr())
	assert.NoError(t, obs.Close())
}

func TestInit_MetricsListenerServesRegistry(t *testing.T) {
	obs := Init(Config{LogLevel: "error", MetricsAddress: "127.0.0.1:0"})
	t.Cleanup(func() { obs.Close() })

	addr := obs.MetricsAddr()
	require.NotEmpty(t, addr)

	// Touch a collector so the exposition carries at least one series.
	obs.Metrics.SetRegistrySize("clubs", 1)

	resp, err := http.Get("http://" + addr + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	// The cache collectors are registered on this registry.
	assert.True(t, strings.Contains(string(body), "clubmirror_cache_entities"),
		"metrics exposition should serve the cache registry")

	require.NoError(t, obs.Close())
}

func TestNewNoOpIsQuiet(t *testing.T) {
	obs := NewNoOp()

	assert.Empty(t, obs.MetricsAddr())
	assert.NoError(t, obs.Close())
}
