package tracing

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_Disabled(t *testing.T) {
	assert.NoError(t, Init("ownfm", "test", ""))
	_, span := StartSpan(context.Background(), "noop", "INTERNAL")
	EndSpan(span, errors.New("ignored"))
}

func TestTracingFile(t *testing.T) {
	location := filepath.Join(t.TempDir(), "spans.json")
	require.NoError(t, Init("ownfm", "test", location))

	_, span := StartSpan(context.Background(), "create_dir", "INTERNAL")
	span.WithAttributes(map[string]string{"command": "create_dir", "root": "/tmp/ws"})
	EndSpan(span, nil)
	require.NoError(t, Shutdown(context.Background()))

	data, err := os.ReadFile(location)
	require.NoError(t, err)
	assert.Contains(t, string(data), "create_dir")
	assert.Contains(t, string(data), "/tmp/ws")
}
