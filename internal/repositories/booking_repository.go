package repositories

import "dmbookAdmin/internal/docstore"

// BookingRepository addresses the flat booking collection.
type BookingRepository struct {
	Store docstore.Store
	Root  string
}

func (r *BookingRepository) Path() string {
	return docstore.Join(r.Root, BookingsPath)
}
