package camera

import (
	"math"
	"testing"

	"github.com/oliverbestmann/glm4/glm"
	"github.com/stretchr/testify/require"
)

func lensFixture() Lens {
	return Lens{
		FovY:   glm.DegToRad[float32](60),
		Aspect: 16.0 / 9,
		Near:   0.1,
		Far:    100,
	}
}

func TestProjectionCache(t *testing.T) {
	cache, err := NewProjectionCache(2)
	require.NoError(t, err)

	lens := lensFixture()

	first := cache.Get(lens)
	second := cache.Get(lens)
	require.Equal(t, first, second)
	require.Equal(t, glm.KindPerspective, first.Kind())

	built := lens.Build()
	require.Equal(t, built, first)

	require.Equal(t, CacheStats{Hits: 1, Misses: 1, Len: 1}, cache.Stats())
}

func TestProjectionCacheEviction(t *testing.T) {
	cache, err := NewProjectionCache(2)
	require.NoError(t, err)

	lens := lensFixture()
	for idx := range 3 {
		lens.Far = float32(100 * (idx + 1))
		cache.Get(lens)
	}

	stats := cache.Stats()
	require.Equal(t, uint64(3), stats.Misses)
	require.Equal(t, uint64(1), stats.Evictions)
	require.Equal(t, 2, cache.Len())

	// the least recently used lens was dropped
	lens.Far = 100
	cache.Get(lens)
	require.Equal(t, uint64(4), cache.Stats().Misses)

	cache.Purge()
	require.Zero(t, cache.Len())
	require.Equal(t, uint64(4), cache.Stats().Misses)
}

func TestProjectionCacheInvalidSize(t *testing.T) {
	_, err := NewProjectionCache(0)
	require.Error(t, err)
}

func TestProjectionCacheNaNLens(t *testing.T) {
	cache, err := NewProjectionCache(2)
	require.NoError(t, err)

	lens := lensFixture()
	lens.Aspect = float32(math.NaN())

	for range 3 {
		projection := cache.Get(lens)
		require.False(t, projection.IsFinite())
	}

	stats := cache.Stats()
	require.Equal(t, uint64(3), stats.Misses)
	require.Zero(t, stats.Evictions)
	require.Zero(t, stats.Len, "NaN lenses are not stored")

	// finite lenses are still cached
	cache.Get(lensFixture())
	cache.Get(lensFixture())
	require.Equal(t, CacheStats{Hits: 1, Misses: 4, Len: 1}, cache.Stats())
}
