// Package graph - A minimal memoizing task graph for content-addressed
// raster computations.
//
// Tasks are keyed by a hashing.Digest that covers every input affecting the
// result, so a cache hit is always valid and changing any input produces a
// new key rather than an invalidation problem. Concurrent requests for the
// same key are collapsed so the computation runs once.
package graph

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/nvr-ai/go-resample/hashing"
)

// Memo caches tile buffers by digest. The zero value is not usable; use
// NewMemo.
type Memo struct {
	group   singleflight.Group
	mu      sync.RWMutex
	entries map[hashing.Digest][]float32
}

// NewMemo returns an empty memo.
func NewMemo() *Memo {
	return &Memo{entries: make(map[hashing.Digest][]float32)}
}

// Do returns the buffer cached under key, computing and storing it with
// compute on a miss. Racing callers with the same key share one compute
// call. The returned buffer is shared; callers must not mutate it.
func (m *Memo) Do(key hashing.Digest, compute func() ([]float32, error)) ([]float32, error) {
	m.mu.RLock()
	buf, ok := m.entries[key]
	m.mu.RUnlock()
	if ok {
		return buf, nil
	}

	v, err, _ := m.group.Do(key.String(), func() (interface{}, error) {
		// Re-check under the group: an earlier flight may have stored it.
		m.mu.RLock()
		buf, ok := m.entries[key]
		m.mu.RUnlock()
		if ok {
			return buf, nil
		}
		buf, err := compute()
		if err != nil {
			return nil, err
		}
		m.mu.Lock()
		m.entries[key] = buf
		m.mu.Unlock()
		return buf, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]float32), nil
}

// Len returns the number of cached entries.
func (m *Memo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
