package services

import (
	"context"

	"dmbookAdmin/internal/lookup"
	"dmbookAdmin/internal/models"
	"dmbookAdmin/internal/repositories"
)

type BookingService struct {
	BookingRepo *repositories.BookingRepository
	UserRepo    *repositories.UserRepository
	Enricher    *lookup.Enricher
	Aggregator  *lookup.Aggregator
}

// GetEstateBookings lists the bookings of one estate, each with the booking
// user when that user still exists.
func (s *BookingService) GetEstateBookings(ctx context.Context, estateID string) ([]models.EstateBooking, error) {
	items, _, err := s.Aggregator.Collect(ctx, s.BookingRepo.Path(), 1, func(it lookup.Item) bool {
		return it.Record.Is("IDEstate", estateID)
	})
	if err != nil {
		return nil, err
	}
	return lookup.Map(ctx, s.Aggregator, items, func(ctx context.Context, it lookup.Item) (models.EstateBooking, error) {
		booking := models.EstateBooking{BookingSummary: models.NewBookingSummary(it.Key(), it.Record)}
		user, err := s.Enricher.Enrich(ctx, it.Record, "IDUser", s.UserRepo.Path())
		if err != nil {
			return models.EstateBooking{}, err
		}
		if user.Found {
			booking.User = &user.Snapshot
		}
		return booking, nil
	})
}
