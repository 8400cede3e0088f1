package services

import (
	"context"

	"dmbookAdmin/internal/docstore"
	"dmbookAdmin/internal/models"
	"dmbookAdmin/internal/repositories"
)

type PostService struct {
	PostRepo *repositories.PostRepository
}

func (s *PostService) GetPosts(ctx context.Context) (docstore.Snapshot, error) {
	snap, err := s.PostRepo.GetPosts(ctx)
	if err != nil {
		return docstore.Snapshot{}, err
	}
	if !snap.Exists() {
		return docstore.Snapshot{}, models.ErrNoPosts
	}
	return snap, nil
}

func (s *PostService) GetPostByID(ctx context.Context, id string) (docstore.Snapshot, error) {
	snap, err := s.PostRepo.GetPostByID(ctx, id)
	if err != nil {
		return docstore.Snapshot{}, err
	}
	if !snap.Exists() {
		return docstore.Snapshot{}, models.ErrPostNotFound
	}
	return snap, nil
}

// UpdateStatus sets a post's Status. Any current status may be overwritten.
func (s *PostService) UpdateStatus(ctx context.Context, id string, status models.PostStatus) error {
	if !status.Valid() {
		return models.ErrInvalidPostStatus
	}
	snap, err := s.PostRepo.GetPostForUpdate(ctx, id)
	if err != nil {
		return err
	}
	if !snap.Exists() {
		return models.ErrPostNotFound
	}
	return s.PostRepo.UpdateStatus(ctx, id, status)
}
