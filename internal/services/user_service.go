package services

import (
	"context"

	"dmbookAdmin/internal/docstore"
	"dmbookAdmin/internal/lookup"
	"dmbookAdmin/internal/models"
	"dmbookAdmin/internal/repositories"
)

type UserService struct {
	UserRepo    *repositories.UserRepository
	EstateRepo  *repositories.EstateRepository
	BookingRepo *repositories.BookingRepository
	Aggregator  *lookup.Aggregator
}

// GetAllUsers returns the users collection exactly as stored.
func (s *UserService) GetAllUsers(ctx context.Context) (docstore.Snapshot, error) {
	snap, err := s.UserRepo.GetUsers(ctx)
	if err != nil {
		return docstore.Snapshot{}, err
	}
	if !snap.Exists() {
		return docstore.Snapshot{}, models.ErrNoData
	}
	return snap, nil
}

// GetUsersByType lists users whose TypeUser is exactly t.
func (s *UserService) GetUsersByType(ctx context.Context, t models.UserType) ([]*docstore.Node, error) {
	items, found, err := s.Aggregator.Collect(ctx, s.UserRepo.Path(), 1, func(it lookup.Item) bool {
		return it.Record.Is("TypeUser", string(t))
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, models.ErrNoData
	}
	users := make([]*docstore.Node, 0, len(items))
	for _, it := range items {
		users = append(users, models.UserListEntry(it.Snapshot))
	}
	return users, nil
}

// GetProviderProfile returns a provider and the estates they own across all
// categories.
func (s *UserService) GetProviderProfile(ctx context.Context, id string) (models.ProviderProfile, error) {
	snap, err := s.UserRepo.GetUserByID(ctx, id)
	if err != nil {
		return models.ProviderProfile{}, err
	}
	if !snap.Exists() {
		return models.ProviderProfile{}, models.ErrProviderNotFound
	}
	user := models.RecordOf(snap)
	if !user.Is("TypeUser", string(models.UserProvider)) {
		return models.ProviderProfile{}, models.ErrNotAProvider
	}

	items, _, err := s.Aggregator.Collect(ctx, s.EstateRepo.Path(), 2, func(it lookup.Item) bool {
		return it.Record.Is("IDUser", id)
	})
	if err != nil {
		return models.ProviderProfile{}, err
	}
	estates := make([]models.ProviderEstate, 0, len(items))
	for _, it := range items {
		estates = append(estates, models.NewProviderEstate(it.Key(), it.Record))
	}
	return models.NewProviderProfile(id, user, estates), nil
}

// GetUserWithBookings returns a user with the bookings they made.
func (s *UserService) GetUserWithBookings(ctx context.Context, id string) (models.UserWithBookings, error) {
	snap, err := s.UserRepo.GetUserByID(ctx, id)
	if err != nil {
		return models.UserWithBookings{}, err
	}
	if !snap.Exists() {
		return models.UserWithBookings{}, models.ErrUserNotFound
	}

	items, _, err := s.Aggregator.Collect(ctx, s.BookingRepo.Path(), 1, func(it lookup.Item) bool {
		return it.Record.Is("IDUser", id)
	})
	if err != nil {
		return models.UserWithBookings{}, err
	}
	bookings := make([]models.BookingSummary, 0, len(items))
	for _, it := range items {
		bookings = append(bookings, models.NewBookingSummary(it.Key(), it.Record))
	}
	return models.UserWithBookings{User: snap, Bookings: bookings}, nil
}

// UpdateTypeAccount overwrites a user's TypeAccount. A nil value clears it.
func (s *UserService) UpdateTypeAccount(ctx context.Context, id string, value interface{}) error {
	snap, err := s.UserRepo.GetUserForUpdate(ctx, id)
	if err != nil {
		return err
	}
	if !snap.Exists() {
		return models.ErrUserNotFoundDot
	}
	return s.UserRepo.UpdateTypeAccount(ctx, id, value)
}
