package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUniqueContext(t *testing.T) {
	t.Parallel()

	ctx := GetUniqueContext(t)

	info, ok := GetTestInfo(ctx)
	require.True(t, ok)
	assert.Contains(t, info.Id, "test-")
	assert.Equal(t, t.Name(), info.Name)
}

func TestGetTestInfo_MissingMetadata(t *testing.T) {
	t.Parallel()

	_, ok := GetTestInfo(context.Background())
	assert.False(t, ok)
}
