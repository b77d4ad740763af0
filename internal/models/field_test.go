package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtracted(t *testing.T) {
	assert.True(t, Extracted("Jane").Present())
	assert.False(t, Extracted("").Present())
	assert.False(t, Extracted("  \n").Present())
	assert.False(t, Extracted(NotAvailable).Present())
	assert.Equal(t, Missing(), Extracted(NotAvailable))
}

func TestFieldJSON(t *testing.T) {
	out, err := json.Marshal(struct {
		A Field `json:"a"`
		B Field `json:"b"`
	}{A: Extracted("Go"), B: Missing()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"Go","b":"N/A"}`, string(out))

	var f Field
	require.NoError(t, json.Unmarshal([]byte(`"N/A"`), &f))
	assert.False(t, f.Present())

	assert.Error(t, json.Unmarshal([]byte(`12`), &f))
}
