package memory

import (
	"fmt"
	"sync"
	"testing"

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

	require.NoError(t, store.Set("engine.name", "imaging"))
	require.NoError(t, store.Set("engine.name", "opencv"))

	val, ok := store.Get("engine.name")
	assert.True(t, ok)
	assert.Equal(t, "opencv", val)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("input.default_image", "lena.png"))
	require.NoError(t, store.Set("display.duration_ms", 2000))
	require.NoError(t, store.Set("display.width", int64(120)))
	require.NoError(t, store.Set("filter.blur_kernel", float64(9)))
	require.NoError(t, store.Set("filter.blur_sigma", 2.5))
	require.NoError(t, store.Set("filter.canny_low", int64(40)))
	require.NoError(t, store.Set("history.enabled", true))

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"string", store.GetString("input.default_image"), "lena.png"},
		{"string wrong type", store.GetString("display.duration_ms"), ""},
		{"string missing", store.GetString("missing"), ""},
		{"int", store.GetInt("display.duration_ms"), 2000},
		{"int from int64", store.GetInt("display.width"), 120},
		{"int from float64", store.GetInt("filter.blur_kernel"), 9},
		{"int wrong type", store.GetInt("input.default_image"), 0},
		{"float", store.GetFloat("filter.blur_sigma"), 2.5},
		{"float from int", store.GetFloat("display.duration_ms"), 2000.0},
		{"float from int64", store.GetFloat("filter.canny_low"), 40.0},
		{"float wrong type", store.GetFloat("history.enabled"), 0.0},
		{"float missing", store.GetFloat("missing"), 0.0},
		{"bool", store.GetBool("history.enabled"), true},
		{"bool wrong type", store.GetBool("input.default_image"), false},
		{"bool missing", store.GetBool("missing"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestConfigStore_SaveAndLoad_NoOp(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("output.jpeg_quality", 80))

	require.NoError(t, store.Save())
	require.NoError(t, store.Load())

	assert.Equal(t, 80, store.GetInt("output.jpeg_quality"))
}

func TestConfigStore_MultipleInstances(t *testing.T) {
	a := NewConfigStore()
	b := NewConfigStore()

	require.NoError(t, a.Set("engine.name", "opencv"))

	assert.Equal(t, "opencv", a.GetString("engine.name"))
	assert.Empty(t, b.GetString("engine.name"))
}

func TestConfigStore_Concurrency(t *testing.T) {
	store := NewConfigStore()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = store.Set(fmt.Sprintf("key.%d", i), i)
		}(i)
		go func(i int) {
			defer wg.Done()
			_ = store.GetInt(fmt.Sprintf("key.%d", i))
		}(i)
	}
	wg.Wait()

	for i := 0; i < 50; i++ {
		assert.Equal(t, i, store.GetInt(fmt.Sprintf("key.%d", i)))
	}
}

func TestNewConfigStoreFrom_CopiesValues(t *testing.T) {
	seed := map[string]any{"engine.name": "opencv", "filter.blur_kernel": 7}
	store := NewConfigStoreFrom(seed)

	seed["engine.name"] = "imaging"
	require.NoError(t, store.Set("filter.blur_kernel", 9))

	assert.Equal(t, "opencv", store.GetString("engine.name"))
	assert.Equal(t, 7, seed["filter.blur_kernel"])
	assert.Equal(t, 9, store.GetInt("filter.blur_kernel"))
}
