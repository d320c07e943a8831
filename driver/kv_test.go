package driver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKV(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()

	_, found, err := kv.Get(ctx, "craftifyCart")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, kv.Set(ctx, "craftifyCart", `[]`))

	value, found, err := kv.Get(ctx, "craftifyCart")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[]`, value)

	require.NoError(t, kv.Set(ctx, "craftifyCart", `[{"id":1}]`))
	value, _, _ = kv.Get(ctx, "craftifyCart")
	assert.Equal(t, `[{"id":1}]`, value)

	require.NoError(t, kv.Delete(ctx, "craftifyCart"))
	_, found, err = kv.Get(ctx, "craftifyCart")
	require.NoError(t, err)
	assert.False(t, found)
}
