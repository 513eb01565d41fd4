package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLoggerWritesRecord(t *testing.T) {
	var buf bytes.Buffer
	l := NewJSON(&buf)

	l.Info(context.Background(), "hello", "key", "value")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "value", rec["key"])
	assert.Equal(t, "INFO", rec["level"])
}

func TestWithAddsPersistentFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewJSON(&buf).With("component", "store")

	l.Warn(context.Background(), "stale response dropped")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "store", rec["component"])
	assert.Equal(t, "WARN", rec["level"])
}
