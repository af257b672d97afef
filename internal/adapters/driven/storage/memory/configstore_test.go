package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.values)
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("display.max_length", 200))
	require.NoError(t, store.Set("render.style", "dark"))
	require.NoError(t, store.Set("flag", true))

	val, ok := store.Get("render.style")
	assert.True(t, ok)
	assert.Equal(t, "dark", val)

	assert.Equal(t, 200, store.GetInt("display.max_length"))
	assert.Equal(t, "dark", store.GetString("render.style"))
	assert.True(t, store.GetBool("flag"))
}

func TestConfigStore_TypeMismatch(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("key", "text"))

	assert.Equal(t, 0, store.GetInt("key"))
	assert.False(t, store.GetBool("key"))
	assert.Equal(t, "", store.GetString("missing"))
}

func TestConfigStore_GetInt_Conversions(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("i64", int64(7)))
	require.NoError(t, store.Set("f64", float64(9)))

	assert.Equal(t, 7, store.GetInt("i64"))
	assert.Equal(t, 9, store.GetInt("f64"))
}

func TestConfigStore_Watch(t *testing.T) {
	store := NewConfigStore()
	ctx, cancel := context.WithCancel(context.Background())

	ch, err := store.Watch(ctx)
	require.NoError(t, err)

	require.NoError(t, store.Set("render.style", "light"))

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("expected change signal")
	}

	cancel()
	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("expected channel to close")
	}
}
