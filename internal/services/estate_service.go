package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"dmbookAdmin/internal/lookup"
	"dmbookAdmin/internal/models"
	"dmbookAdmin/internal/repositories"
)

type EstateService struct {
	EstateRepo *repositories.EstateRepository
	UserRepo   *repositories.UserRepository
	Resolver   *lookup.Resolver
	Enricher   *lookup.Enricher
	Aggregator *lookup.Aggregator
	// Categories are the estate shards, in lookup precedence order.
	Categories []string
	Notifier   Notifier
	Log        *zerolog.Logger
}

// GetEstateWithOwner finds an estate in whichever category holds it and
// returns it with its owner.
func (s *EstateService) GetEstateWithOwner(ctx context.Context, id string) (models.EstateWithOwner, error) {
	match, err := s.Resolver.Resolve(ctx, s.EstateRepo.Path(), s.Categories, id)
	if errors.Is(err, lookup.ErrNotFound) {
		return models.EstateWithOwner{}, models.ErrEstateNotFound
	}
	if err != nil {
		return models.EstateWithOwner{}, err
	}

	owner, err := s.Enricher.Enrich(ctx, models.RecordOf(match.Snapshot), "IDUser", s.UserRepo.Path())
	if err != nil {
		return models.EstateWithOwner{}, err
	}
	if !owner.Found {
		return models.EstateWithOwner{}, models.ErrProviderNotFound
	}
	return models.EstateWithOwner{Category: match.Category, Estate: match.Snapshot, Provider: owner.Snapshot}, nil
}

// GetAcceptedEstates lists every accepted estate with its owner's contacts.
func (s *EstateService) GetAcceptedEstates(ctx context.Context) ([]models.ProviderListing, error) {
	items, err := s.collect(ctx, models.EstateAccepted)
	if err != nil {
		return nil, err
	}
	return lookup.Map(ctx, s.Aggregator, items, func(ctx context.Context, it lookup.Item) (models.ProviderListing, error) {
		owner, err := s.Enricher.Enrich(ctx, it.Record, "IDUser", s.UserRepo.Path())
		if err != nil {
			return models.ProviderListing{}, err
		}
		return models.NewProviderListing(it.Key(), it.Record, owner.Record), nil
	})
}

// GetPendingEstates lists estates waiting for review.
func (s *EstateService) GetPendingEstates(ctx context.Context) ([]models.PendingEstate, error) {
	items, err := s.collect(ctx, models.EstatePending)
	if err != nil {
		return nil, err
	}
	return lookup.Map(ctx, s.Aggregator, items, func(ctx context.Context, it lookup.Item) (models.PendingEstate, error) {
		owner, err := s.Enricher.Enrich(ctx, it.Record, "IDUser", s.UserRepo.Path())
		if err != nil {
			return models.PendingEstate{}, err
		}
		return models.NewPendingEstate(it.Key(), it.Record, owner.Record), nil
	})
}

func (s *EstateService) collect(ctx context.Context, state models.EstateState) ([]lookup.Item, error) {
	items, found, err := s.Aggregator.Collect(ctx, s.EstateRepo.Path(), 2, func(it lookup.Item) bool {
		return it.Record.Is("IsAccepted", string(state))
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, models.ErrNoData
	}
	return items, nil
}

// DecideEstate accepts or rejects a pending estate in any category shard.
// Accepting keeps the estate with IsAccepted "2"; rejecting removes it.
func (s *EstateService) DecideEstate(ctx context.Context, category, id string, to models.EstateState) (models.EstateDecision, error) {
	if to != models.EstateAccepted && to != models.EstateRejected {
		return models.EstateDecision{}, models.ErrInvalidIsAccepted
	}

	snap, err := s.EstateRepo.GetEstate(ctx, category, id)
	if err != nil {
		return models.EstateDecision{}, err
	}
	if !snap.Exists() {
		return models.EstateDecision{}, models.ErrEstateNotFound
	}
	estate := models.RecordOf(snap)
	current := models.EstateState(estate.String("IsAccepted"))
	if !current.CanTransition(to) {
		return models.EstateDecision{}, models.ErrEstateNotPending
	}

	var decision models.EstateDecision
	switch to {
	case models.EstateRejected:
		if err := s.EstateRepo.DeleteEstate(ctx, category, id); err != nil {
			return models.EstateDecision{}, err
		}
		decision = models.EstateDecision{Message: "Estate has been rejected and removed from the database."}
	case models.EstateAccepted:
		if err := s.EstateRepo.UpdateIsAccepted(ctx, category, id, to); err != nil {
			return models.EstateDecision{}, err
		}
		decision = models.EstateDecision{Message: "Estate has been accepted.", IsAccepted: to}
	}

	s.notify(ctx, estate.Ref("IDUser"), category, id, to)
	return decision, nil
}

func (s *EstateService) notify(ctx context.Context, ownerID, category, id string, state models.EstateState) {
	if s.Notifier == nil || ownerID == "" {
		return
	}
	if err := s.Notifier.EstateDecided(ctx, ownerID, id, state); err != nil {
		loggerOrNop(s.Log).Warn().Err(err).
			Str("owner", ownerID).
			Str("category", category).
			Str("estate", id).
			Msg("estate decision notification failed")
	}
}
