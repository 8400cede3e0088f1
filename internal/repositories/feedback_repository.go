package repositories

import (
	"context"

	"dmbookAdmin/internal/docstore"
)

// FeedbackRepository covers both feedback directions: customers rating
// estates and providers rating customers.
type FeedbackRepository struct {
	Store docstore.Store
	Root  string
}

func (r *FeedbackRepository) CustomerPath() string {
	return docstore.Join(r.Root, CustomerFeedbackPath)
}

func (r *FeedbackRepository) ProviderPath() string {
	return docstore.Join(r.Root, ProviderFeedbackPath)
}

// GetCustomerFeedbackByID reads the entry comments are appended to. The read
// bypasses any cache so the rewritten list starts from stored comments.
func (r *FeedbackRepository) GetCustomerFeedbackByID(ctx context.Context, id string) (docstore.Snapshot, error) {
	return readByID(ctx, docstore.Fresh(r.Store), r.CustomerPath(), id)
}

// SetComments replaces the comments of a customer feedback entry.
func (r *FeedbackRepository) SetComments(ctx context.Context, id string, comments *docstore.Node) error {
	return r.Store.Update(ctx, docstore.Join(r.CustomerPath(), id), map[string]interface{}{
		"comments": comments,
	})
}

func (r *FeedbackRepository) NewCommentID(ctx context.Context) (string, error) {
	return r.Store.GenerateKey(ctx)
}
