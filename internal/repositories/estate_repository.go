package repositories

import (
	"context"

	"dmbookAdmin/internal/docstore"
	"dmbookAdmin/internal/models"
)

// EstateRepository addresses estates sharded as Estate/<category>/<id>.
type EstateRepository struct {
	Store docstore.Store
	Root  string
}

// Path is the root of all category shards.
func (r *EstateRepository) Path() string {
	return docstore.Join(r.Root, EstatesPath)
}

// GetEstate reads one estate for a state change, bypassing any read cache.
func (r *EstateRepository) GetEstate(ctx context.Context, category, id string) (docstore.Snapshot, error) {
	if !docstore.ValidKey(category) {
		return docstore.NewSnapshot(id, nil), nil
	}
	return readByID(ctx, docstore.Fresh(r.Store), docstore.Join(r.Path(), category), id)
}

func (r *EstateRepository) UpdateIsAccepted(ctx context.Context, category, id string, state models.EstateState) error {
	return r.Store.Update(ctx, docstore.Join(r.Path(), category, id), map[string]interface{}{
		"IsAccepted": string(state),
	})
}

func (r *EstateRepository) DeleteEstate(ctx context.Context, category, id string) error {
	return r.Store.Delete(ctx, docstore.Join(r.Path(), category, id))
}
