package idgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSnowflake_InvalidNode(t *testing.T) {
	_, err := NewSnowflake(1024)
	assert.Error(t, err)
}

func TestNextID_Unique(t *testing.T) {
	gen, err := NewSnowflake(1)
	require.NoError(t, err)

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := gen.NextID()
		assert.NotEmpty(t, id)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
