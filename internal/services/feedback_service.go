package services

import (
	"context"
	"errors"
	"time"

	"dmbookAdmin/internal/docstore"
	"dmbookAdmin/internal/lookup"
	"dmbookAdmin/internal/models"
	"dmbookAdmin/internal/repositories"
)

type FeedbackService struct {
	FeedbackRepo *repositories.FeedbackRepository
	UserRepo     *repositories.UserRepository
	EstateRepo   *repositories.EstateRepository
	Resolver     *lookup.Resolver
	Enricher     *lookup.Enricher
	Aggregator   *lookup.Aggregator
	// Categories is the estate lookup order for provider feedback,
	// FeedbackCategories the one for customer feedback.
	Categories         []string
	FeedbackCategories []string
	Now                func() time.Time
}

// AddComment appends a comment to a customer feedback entry and returns the
// full comment list as stored.
func (s *FeedbackService) AddComment(ctx context.Context, feedbackID, text, author string) ([]*docstore.Node, error) {
	snap, err := s.FeedbackRepo.GetCustomerFeedbackByID(ctx, feedbackID)
	if err != nil {
		return nil, err
	}
	if !snap.Exists() {
		return nil, models.ErrFeedbackNotFound
	}

	id, err := s.FeedbackRepo.NewCommentID(ctx)
	if err != nil {
		return nil, err
	}
	comments := models.CommentNodes(snap.Child("comments"))
	comments = append(comments, models.Comment{
		ID:        id,
		Text:      text,
		Author:    author,
		Timestamp: s.now(),
	}.Node())

	stored := make([]interface{}, len(comments))
	for i, c := range comments {
		stored[i] = c
	}
	if err := s.FeedbackRepo.SetComments(ctx, feedbackID, docstore.NewArray(stored...)); err != nil {
		return nil, err
	}
	return comments, nil
}

// GetCustomerFeedback lists customer feedback with its author and estate.
func (s *FeedbackService) GetCustomerFeedback(ctx context.Context) ([]models.CustomerFeedbackView, error) {
	items, found, err := s.Aggregator.Collect(ctx, s.FeedbackRepo.CustomerPath(), 1, nil)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, models.ErrNoFeedback
	}
	return lookup.Map(ctx, s.Aggregator, items, func(ctx context.Context, it lookup.Item) (models.CustomerFeedbackView, error) {
		user, err := s.Enricher.Enrich(ctx, it.Record, "UserID", s.UserRepo.Path())
		if err != nil {
			return models.CustomerFeedbackView{}, err
		}
		estate, err := s.estate(ctx, s.FeedbackCategories, it.Record.Ref("EstateID"))
		if err != nil {
			return models.CustomerFeedbackView{}, err
		}
		return models.NewCustomerFeedbackView(it.Key(), it.Snapshot, user.Record, user.Found, estate), nil
	})
}

// GetProviderFeedback lists provider feedback about customers. Only the
// first rating of each entry is surfaced.
func (s *FeedbackService) GetProviderFeedback(ctx context.Context) ([]models.ProviderFeedbackView, error) {
	items, found, err := s.Aggregator.Collect(ctx, s.FeedbackRepo.ProviderPath(), 1, nil)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, models.ErrNoFeedback
	}
	return lookup.Map(ctx, s.Aggregator, items, func(ctx context.Context, it lookup.Item) (models.ProviderFeedbackView, error) {
		ratings := it.Snapshot.Child("ratings")
		var estateID string
		if first := ratings.Children(); len(first) > 0 {
			estateID = models.RecordOf(first[0]).Ref("EstateID")
		}
		estate, err := s.estate(ctx, s.Categories, estateID)
		if err != nil {
			return models.ProviderFeedbackView{}, err
		}
		return models.NewProviderFeedbackView(it.Key(), it.Record, models.FirstRating(ratings), estate), nil
	})
}

// estate resolves an estate by id, reading an unknown one as empty.
func (s *FeedbackService) estate(ctx context.Context, categories []string, id string) (models.Record, error) {
	match, err := s.Resolver.Resolve(ctx, s.EstateRepo.Path(), categories, id)
	if errors.Is(err, lookup.ErrNotFound) {
		return models.Record{}, nil
	}
	if err != nil {
		return nil, err
	}
	return models.RecordOf(match.Snapshot), nil
}

func (s *FeedbackService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
