package repositories

import (
	"context"

	"dmbookAdmin/internal/docstore"
	"dmbookAdmin/internal/models"
)

type PostRepository struct {
	Store docstore.Store
	Root  string
}

func (r *PostRepository) Path() string {
	return docstore.Join(r.Root, PostsPath)
}

func (r *PostRepository) GetPosts(ctx context.Context) (docstore.Snapshot, error) {
	return r.Store.Read(ctx, r.Path())
}

func (r *PostRepository) GetPostByID(ctx context.Context, id string) (docstore.Snapshot, error) {
	return readByID(ctx, r.Store, r.Path(), id)
}

// GetPostForUpdate is GetPostByID without the read cache.
func (r *PostRepository) GetPostForUpdate(ctx context.Context, id string) (docstore.Snapshot, error) {
	return readByID(ctx, docstore.Fresh(r.Store), r.Path(), id)
}

func (r *PostRepository) UpdateStatus(ctx context.Context, id string, status models.PostStatus) error {
	return r.Store.Update(ctx, docstore.Join(r.Path(), id), map[string]interface{}{
		"Status": string(status),
	})
}
