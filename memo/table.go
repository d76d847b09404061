package memo

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/on-the-ground/func_ive_go/shared/timebound"
)

// Table is the memoization engine behind the MemoizeIxOy wrappers: a Store
// plus a singleflight group making each first computation exclusive per key.
// All MemoizeIxOy/MemoizeIxE functions are thin arity adapters over a Table.
type Table[O any] struct {
	id     string
	store  Store[O]
	group  singleflight.Group
	logger *zap.Logger
}

type tableConfig struct {
	logger *zap.Logger
}

type TableOption func(*tableConfig)

// WithLogger attaches a zap logger; the table logs first computations and
// their spans at debug level, tagged with the table id.
func WithLogger(logger *zap.Logger) TableOption {
	return func(cfg *tableConfig) {
		cfg.logger = logger
	}
}

// NewTable builds a memoization table over the given store. Panics on a nil
// store.
func NewTable[O any](store Store[O], opts ...TableOption) *Table[O] {
	if store == nil {
		panic("NewTable: nil store")
	}
	cfg := tableConfig{
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Table[O]{
		id:     uuid.New().String(),
		store:  store,
		logger: cfg.logger,
	}
}

// Do returns the cached result for args, or computes it by calling fn.
// Concurrent first calls for the same args are collapsed into one fn call;
// for any fixed args, fn runs at most once per table (strictly so with an
// unbounded store). If fn fails, the error propagates unchanged and nothing
// is cached for that key, so a later call retries.
//
// fn may recursively call back into the same table with different arguments;
// the flight is keyed, not global, so recursive memoization does not
// self-block.
func (t *Table[O]) Do(
	fn func(args ...ComparableOrStringer) (O, error),
	args ...ComparableOrStringer,
) (O, error) {
	keys := keysOf(args)
	if v, ok := t.store.Load(keys); ok {
		return v, nil
	}

	res, err, _ := t.group.Do(flattenKeys(keys), func() (any, error) {
		// Someone may have finished while we raced for the flight.
		if v, ok := t.store.Load(keys); ok {
			return v, nil
		}

		start := time.Now()
		v, err := fn(args...)
		if err != nil {
			return nil, err
		}
		t.store.Store(keys, v)

		span := timebound.NewTimeSpan(start, time.Now())
		t.logger.Debug("memoized first computation",
			zap.String("tableId", t.id),
			zap.Duration("took", span.Duration()),
		)
		return v, nil
	})
	if err != nil {
		var zero O
		return zero, err
	}
	return res.(O), nil
}
