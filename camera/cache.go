package camera

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/hashicorp/golang-lru/v2"
	"github.com/oliverbestmann/glm4/glm"
)

// CacheStats is a snapshot of the counters of a ProjectionCache.
type CacheStats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Len       int
}

// ProjectionCache memoizes projection matrices by their Lens. Lens is
// comparable, two equal lenses always produce the same matrix.
type ProjectionCache struct {
	cache *lru.Cache[Lens, glm.Mat4]

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

func NewProjectionCache(size int) (*ProjectionCache, error) {
	pc := &ProjectionCache{}

	cache, err := lru.NewWithEvict[Lens, glm.Mat4](size, pc.onEvict)
	if err != nil {
		return nil, fmt.Errorf("create projection cache of size %d: %w", size, err)
	}

	pc.cache = cache
	return pc, nil
}

// Get returns the projection matrix of the lens, building it on a miss.
// A lens with a NaN field never equals itself as a map key, so it is built
// on every call and not stored.
func (pc *ProjectionCache) Get(lens Lens) glm.Mat4 {
	if lens.hasNaN() {
		pc.misses.Add(1)
		slog.Debug("Build uncacheable projection", slog.Any("lens", lens))
		return lens.Build()
	}

	projection, ok := pc.cache.Get(lens)
	if ok {
		pc.hits.Add(1)
		return projection
	}

	pc.misses.Add(1)

	projection = lens.Build()
	pc.cache.Add(lens, projection)

	slog.Debug("Build projection",
		slog.Any("lens", lens),
		slog.String("kind", projection.Kind().String()),
	)

	return projection
}

func (pc *ProjectionCache) Len() int {
	return pc.cache.Len()
}

// Purge drops every cached projection. The counters are kept.
func (pc *ProjectionCache) Purge() {
	pc.cache.Purge()
}

func (pc *ProjectionCache) Stats() CacheStats {
	return CacheStats{
		Hits:      pc.hits.Load(),
		Misses:    pc.misses.Load(),
		Evictions: pc.evictions.Load(),
		Len:       pc.cache.Len(),
	}
}

func (pc *ProjectionCache) onEvict(lens Lens, _ glm.Mat4) {
	pc.evictions.Add(1)
	slog.Debug("Evict projection", slog.Any("lens", lens))
}
