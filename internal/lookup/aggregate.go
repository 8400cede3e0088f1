package lookup

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"dmbookAdmin/internal/docstore"
	"dmbookAdmin/internal/models"
)

// Policy decides what a failed enrichment does to the whole listing.
type Policy int

const (
	// FailFast fails the listing on the first enrichment error.
	FailFast Policy = iota
	// SkipFailed drops the record whose enrichment failed and logs it.
	SkipFailed
)

func (p Policy) String() string {
	if p == SkipFailed {
		return "skip_failed"
	}
	return "fail_fast"
}

const defaultConcurrency = 8

// Item is one record of a listed collection.
type Item struct {
	// Parent is the shard the record was found in, for nested collections.
	Parent   string
	Snapshot docstore.Snapshot
	Record   models.Record
}

func (i Item) Key() string { return i.Snapshot.Key() }

// Predicate selects the records a listing keeps.
type Predicate func(Item) bool

// Flatten lists the object records of snap in iteration order. With depth 2
// the first level is treated as shards (category -> id -> record). Members
// that are not objects, or hold no fields, are skipped.
func Flatten(snap docstore.Snapshot, depth int) []Item {
	var items []Item
	if depth > 1 {
		for _, shard := range snap.Children() {
			for _, it := range Flatten(shard, depth-1) {
				if it.Parent == "" {
					it.Parent = shard.Key()
				}
				items = append(items, it)
			}
		}
		return items
	}
	for _, child := range snap.Children() {
		if !child.Node().IsObject() || !child.Exists() {
			continue
		}
		items = append(items, Item{Snapshot: child, Record: models.RecordOf(child)})
	}
	return items
}

// Filter keeps the items accepted by keep, preserving order. A nil predicate
// keeps everything.
func Filter(items []Item, keep Predicate) []Item {
	if keep == nil {
		return items
	}
	out := items[:0:0]
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// Aggregator reads whole collections and enriches their records with a
// bounded number of concurrent reads.
type Aggregator struct {
	store  docstore.Store
	limit  int
	policy Policy
	log    *zerolog.Logger
}

func NewAggregator(store docstore.Store, limit int, policy Policy, logger *zerolog.Logger) *Aggregator {
	if limit <= 0 {
		limit = defaultConcurrency
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Aggregator{store: store, limit: limit, policy: policy, log: logger}
}

// Collect reads path once and returns its records that pass keep. found is
// false when the collection holds no data at all.
func (a *Aggregator) Collect(ctx context.Context, path string, depth int, keep Predicate) (items []Item, found bool, err error) {
	snap, err := a.store.Read(ctx, path)
	if err != nil {
		return nil, false, err
	}
	if !snap.Exists() {
		return []Item{}, false, nil
	}
	return Filter(Flatten(snap, depth), keep), true, nil
}

// Map runs fn for every item, at most a.limit at a time, and returns the
// results in item order. Under FailFast the first error cancels the rest and
// is returned; under SkipFailed failed items are left out.
func Map[T any](ctx context.Context, a *Aggregator, items []Item, fn func(context.Context, Item) (T, error)) ([]T, error) {
	results := make([]T, len(items))
	done := make([]bool, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.limit)
	for i, it := range items {
		g.Go(func() error {
			v, err := fn(gctx, it)
			if err != nil {
				if a.policy == SkipFailed && ctx.Err() == nil {
					a.log.Warn().Err(err).
						Str("record", it.Key()).
						Str("shard", it.Parent).
						Msg("enrichment failed, record skipped")
					return nil
				}
				return err
			}
			results[i] = v
			done[i] = true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]T, 0, len(items))
	for i, ok := range done {
		if ok {
			out = append(out, results[i])
		}
	}
	return out, nil
}
