package memo

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

// ComparableOrStringer is an argument acceptable as a cache key component:
// either a comparable value or a fmt.Stringer whose String() identifies it.
type ComparableOrStringer any

// ComparableOrString is a key component after Stringer reduction.
type ComparableOrString any

// Store is a cache keyed by an ordered sequence of argument keys.
// Implementations must be safe for concurrent use.
type Store[O any] interface {
	Load(keys []ComparableOrString) (O, bool)
	Store(keys []ComparableOrString, value O)
}

// memoKey reduces an argument to its key form: Stringers are keyed by their
// String() so non-comparable types can still be cached.
func memoKey(i ComparableOrStringer) ComparableOrString {
	if stringer, ok := i.(fmt.Stringer); ok {
		return stringer.String()
	}
	return i
}

func keysOf(args []ComparableOrStringer) []ComparableOrString {
	keys := make([]ComparableOrString, len(args))
	for i, arg := range args {
		keys[i] = memoKey(arg)
	}
	return keys
}

// flattenKeys renders a key sequence as a single string, for flight keys and
// flat-keyed backends. The encoding must be injective: every component is
// length-prefixed (netstring style), so no component text can fake a
// component boundary, and type names keep 1 and "1" distinct.
func flattenKeys(keys []ComparableOrString) string {
	var sb strings.Builder
	for _, k := range keys {
		typeName := fmt.Sprintf("%T", k)
		value := fmt.Sprintf("%v", k)
		fmt.Fprintf(&sb, "%d:%s%d:%s", len(typeName), typeName, len(value), value)
	}
	return sb.String()
}

// --- trie store ---

// trieStore is a trie of sync.Maps keyed by the argument sequence. Two frames
// rotate head/tail when the head fills up: the stale frame is emptied and
// becomes the new head, so at most 2*maxSize distinct entries are live.
// maxSize 0 disables rotation entirely (unbounded).
type trieStore[O any] struct {
	frames  [2]atomic.Pointer[sync.Map]
	headIdx atomic.Uint32
	size    atomic.Uint32
	maxSize uint32
}

// NewTrieStore returns the default Store: an argument-sequence trie.
// maxSize 0 means unbounded, which is what the strict at-most-once guarantee
// requires; a bounded store re-invokes the function after rotation evicts.
func NewTrieStore[O any](maxSize uint32) Store[O] {
	t := &trieStore[O]{maxSize: maxSize}
	t.frames[0].Store(&sync.Map{})
	t.frames[1].Store(&sync.Map{})
	return t
}

func (t *trieStore[O]) Load(keys []ComparableOrString) (O, bool) {
	headIdx := t.headIdx.Load()
	m, k := t.traverse(t.frames[headIdx].Load(), keys)
	v, ok := m.Load(k)
	if !ok {
		m, k = t.traverse(t.frames[1-headIdx].Load(), keys)
		if v, ok = m.Load(k); !ok {
			var zero O
			return zero, false
		}
	}
	return v.(O), true
}

func (t *trieStore[O]) Store(keys []ComparableOrString, value O) {
	if t.maxSize > 0 {
		if swapped := t.size.CompareAndSwap(t.maxSize, 0); swapped {
			newHead := 1 - t.headIdx.Load()
			// drop the stale frame before writing into it
			t.frames[newHead].Store(&sync.Map{})
			t.headIdx.Store(newHead)
		}
	}
	m, k := t.traverse(t.frames[t.headIdx.Load()].Load(), keys)
	if _, loaded := m.Swap(k, value); !loaded {
		// overwrites of an existing key must not consume capacity,
		// or rotation fires before the nominal size is reached
		t.size.Add(1)
	}
}

// traverse walks the trie along all but the last key, creating interior maps
// as needed, and returns the leaf map plus the final key.
func (t *trieStore[O]) traverse(frame *sync.Map, keys []ComparableOrString) (*sync.Map, any) {
	length := len(keys)
	if length == 0 {
		panic("traverse: empty keys")
	}

	for _, k := range keys[:length-1] {
		v, ok := frame.Load(k)
		if !ok {
			v, _ = frame.LoadOrStore(k, &sync.Map{})
		}
		frame = v.(*sync.Map)
	}
	return frame, keys[length-1]
}

// --- sharded store ---

// shardedStore spreads key sequences across shard stores by hash, to cut
// contention on hot tables. Collisions only affect placement, never identity.
type shardedStore[O any] struct {
	shards []Store[O]
}

// NewShardedStore fans keys out over numShards stores built by newShard.
// Panics on numShards < 1 or nil newShard.
func NewShardedStore[O any](numShards int, newShard func() Store[O]) Store[O] {
	if numShards < 1 {
		panic("NewShardedStore: numShards must be at least 1")
	}
	if newShard == nil {
		panic("NewShardedStore: nil newShard")
	}
	shards := make([]Store[O], numShards)
	for i := range shards {
		shards[i] = newShard()
	}
	return shardedStore[O]{shards: shards}
}

func (s shardedStore[O]) Load(keys []ComparableOrString) (O, bool) {
	return s.shardOf(keys).Load(keys)
}

func (s shardedStore[O]) Store(keys []ComparableOrString, value O) {
	s.shardOf(keys).Store(keys, value)
}

func (s shardedStore[O]) shardOf(keys []ComparableOrString) Store[O] {
	if len(s.shards) == 1 {
		return s.shards[0]
	}
	idx := xxhash.Sum64String(flattenKeys(keys)) % uint64(len(s.shards))
	return s.shards[idx]
}
