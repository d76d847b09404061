package memo

import (
	ristretto "github.com/dgraph-io/ristretto/v2"
)

// NewRistrettoStore returns a bounded Store backed by a ristretto cache,
// holding at most maxEntries results with TinyLFU admission. Sets are
// asynchronous and may be dropped by the admission policy, so the
// at-most-once guarantee degrades to best-effort: a dropped or evicted entry
// means the function is re-invoked for that key.
func NewRistrettoStore[O any](maxEntries int64) (Store[O], error) {
	cache, err := ristretto.NewCache(&ristretto.Config[string, O]{
		NumCounters: 10 * maxEntries,
		MaxCost:     maxEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &ristrettoStore[O]{cache: cache}, nil
}

type ristrettoStore[O any] struct {
	cache *ristretto.Cache[string, O]
}

func (r *ristrettoStore[O]) Load(keys []ComparableOrString) (O, bool) {
	return r.cache.Get(flattenKeys(keys))
}

func (r *ristrettoStore[O]) Store(keys []ComparableOrString, value O) {
	r.cache.Set(flattenKeys(keys), value, 1)
}

// Wait blocks until pending sets are applied. Useful in tests.
func (r *ristrettoStore[O]) Wait() {
	r.cache.Wait()
}
