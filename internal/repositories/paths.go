package repositories

import (
	"context"

	"dmbookAdmin/internal/docstore"
)

// Collections below the application root.
const (
	UsersPath            = "User"
	EstatesPath          = "Estate"
	BookingsPath         = "Booking/Book"
	CustomerFeedbackPath = "CustomerFeedback"
	ProviderFeedbackPath = "ProviderFeedbackToCustomer"
	PostsPath            = "AllPosts"
)

// DefaultRoot is the node every collection lives under.
const DefaultRoot = "App"

// readByID reads collection/id. Ids that cannot address a single child are
// reported as missing without touching the store.
func readByID(ctx context.Context, store docstore.Store, collection, id string) (docstore.Snapshot, error) {
	if !docstore.ValidKey(id) {
		return docstore.NewSnapshot(id, nil), nil
	}
	return store.Read(ctx, docstore.Join(collection, id))
}
