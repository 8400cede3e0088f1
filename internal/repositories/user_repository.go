package repositories

import (
	"context"

	"dmbookAdmin/internal/docstore"
)

type UserRepository struct {
	Store docstore.Store
	Root  string
}

// Path is the users collection.
func (r *UserRepository) Path() string {
	return docstore.Join(r.Root, UsersPath)
}

func (r *UserRepository) GetUsers(ctx context.Context) (docstore.Snapshot, error) {
	return r.Store.Read(ctx, r.Path())
}

func (r *UserRepository) GetUserByID(ctx context.Context, id string) (docstore.Snapshot, error) {
	return readByID(ctx, r.Store, r.Path(), id)
}

// GetUserForUpdate is GetUserByID without the read cache.
func (r *UserRepository) GetUserForUpdate(ctx context.Context, id string) (docstore.Snapshot, error) {
	return readByID(ctx, docstore.Fresh(r.Store), r.Path(), id)
}

// UpdateTypeAccount stores value as given; clients send strings or numbers.
func (r *UserRepository) UpdateTypeAccount(ctx context.Context, id string, value interface{}) error {
	return r.Store.Update(ctx, docstore.Join(r.Path(), id), map[string]interface{}{
		"TypeAccount": value,
	})
}
