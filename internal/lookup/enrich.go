package lookup

import (
	"context"

	"dmbookAdmin/internal/docstore"
	"dmbookAdmin/internal/models"
)

// Related is the document a foreign key points to. When the key is unset or
// the document is gone, Found is false and Record is empty, so every field
// read through it falls back to its placeholder.
type Related struct {
	Snapshot docstore.Snapshot
	Record   models.Record
	Found    bool
}

// Enricher follows foreign keys into other collections.
type Enricher struct {
	store docstore.Store
}

func NewEnricher(store docstore.Store) *Enricher {
	return &Enricher{store: store}
}

// Enrich reads root/<primary[fkField]>. A missing or unusable key is treated
// like a missing document; only store failures are errors.
func (e *Enricher) Enrich(ctx context.Context, primary models.Record, fkField, root string) (Related, error) {
	return e.ByID(ctx, primary.Ref(fkField), root)
}

// ByID reads root/<id> with the same absent semantics as Enrich.
func (e *Enricher) ByID(ctx context.Context, id, root string) (Related, error) {
	if !docstore.ValidKey(id) {
		return Related{Record: models.Record{}}, nil
	}
	snap, err := e.store.Read(ctx, docstore.Join(root, id))
	if err != nil {
		return Related{}, err
	}
	return Related{Snapshot: snap, Record: models.RecordOf(snap), Found: snap.Exists()}, nil
}
