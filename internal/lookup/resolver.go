// Package lookup resolves records that are spread across category shards and
// joins records with the documents their foreign keys point to.
package lookup

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"dmbookAdmin/internal/docstore"
)

// ErrNotFound is returned when no category holds the requested id.
var ErrNotFound = errors.New("lookup: record not found in any category")

// Match is where a category sharded record was found.
type Match struct {
	Category string
	Snapshot docstore.Snapshot
}

// Resolver finds a record under root/<category>/<id>. Categories are probed
// in list order and the earliest one holding the id wins.
type Resolver struct {
	store    docstore.Store
	parallel bool
}

// NewResolver returns a resolver. With parallel set, all categories are read
// at once; the result is the same as a sequential probe.
func NewResolver(store docstore.Store, parallel bool) *Resolver {
	return &Resolver{store: store, parallel: parallel}
}

func (r *Resolver) Resolve(ctx context.Context, root string, categories []string, id string) (Match, error) {
	if !docstore.ValidKey(id) {
		return Match{}, ErrNotFound
	}
	if r.parallel && len(categories) > 1 {
		return r.resolveParallel(ctx, root, categories, id)
	}
	for _, category := range categories {
		snap, err := r.store.Read(ctx, docstore.Join(root, category, id))
		if err != nil {
			return Match{}, err
		}
		if snap.Exists() {
			return Match{Category: category, Snapshot: snap}, nil
		}
	}
	return Match{}, ErrNotFound
}

func (r *Resolver) resolveParallel(ctx context.Context, root string, categories []string, id string) (Match, error) {
	snaps := make([]docstore.Snapshot, len(categories))
	g, gctx := errgroup.WithContext(ctx)
	for i, category := range categories {
		g.Go(func() error {
			snap, err := r.store.Read(gctx, docstore.Join(root, category, id))
			if err != nil {
				return err
			}
			snaps[i] = snap
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Match{}, err
	}
	for i, snap := range snaps {
		if snap.Exists() {
			return Match{Category: categories[i], Snapshot: snap}, nil
		}
	}
	return Match{}, ErrNotFound
}
