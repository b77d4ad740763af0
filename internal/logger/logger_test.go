package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	l, err := New(true, false)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))

	l, err = New(false, true)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestPreview(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		limit  int
		expect string
	}{
		{name: "non-positive limit", input: "hello world", limit: 0, expect: ""},
		{name: "shorter than limit", input: "hello", limit: 10, expect: "hello"},
		{name: "truncates", input: "hello world", limit: 5, expect: "hello..."},
		{name: "trims first", input: "  spaced  ", limit: 5, expect: "space..."},
		{name: "counts runes", input: "héllo wörld", limit: 5, expect: "héllo..."},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expect, Preview(tt.input, tt.limit))
		})
	}
}
