package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/projectboard/core/internal/domain/entities"
	"github.com/projectboard/core/internal/infrastructure/logger"
	"github.com/projectboard/core/internal/ports"
)

// TagService handles tag operations. Tags are owned directly by a user, so
// authorization compares the record's owner instead of walking a workspace.
type TagService struct {
	tagRepo ports.TagRepository
	logger  *logger.Logger
}

// NewTagService creates a new tag service.
func NewTagService(tagRepo ports.TagRepository, logger *logger.Logger) *TagService {
	return &TagService{
		tagRepo: tagRepo,
		logger:  logger,
	}
}

// GetAll lists the caller's tags.
func (s *TagService) GetAll(ctx context.Context, userID string) ([]ports.TagResponse, error) {
	tags, err := s.tagRepo.GetAllByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	out := make([]ports.TagResponse, 0, len(tags))
	for _, t := range tags {
		out = append(out, toTagResponse(t))
	}
	return out, nil
}

// GetByID returns a single tag after the existence and ownership checks.
func (s *TagService) GetByID(ctx context.Context, id uuid.UUID, userID string) (*ports.TagResponse, error) {
	tag, err := fetchOwned[*entities.Tag](ctx, s.tagRepo, "tag", id, userID)
	if err != nil {
		return nil, err
	}

	resp := toTagResponse(tag)
	return &resp, nil
}

// Create stores a new tag for the caller.
func (s *TagService) Create(ctx context.Context, req ports.CreateTagRequest, userID string) (*ports.TagResponse, error) {
	tag, err := entities.NewTag(req.Name, req.Color, userID)
	if err != nil {
		return nil, err
	}

	if err := s.tagRepo.Create(ctx, tag); err != nil {
		return nil, fmt.Errorf("create tag: %w", err)
	}

	s.logger.Infow("Tag created", "tag_id", tag.ID, "user_id", userID)

	resp := toTagResponse(tag)
	return &resp, nil
}

// Update replaces the tag's name and color.
func (s *TagService) Update(ctx context.Context, id uuid.UUID, req ports.UpdateTagRequest, userID string) (*ports.TagResponse, error) {
	tag, err := fetchOwned[*entities.Tag](ctx, s.tagRepo, "tag", id, userID)
	if err != nil {
		return nil, err
	}

	if err := tag.Update(req.Name, req.Color); err != nil {
		return nil, err
	}

	if err := s.tagRepo.Update(ctx, tag); err != nil {
		return nil, fmt.Errorf("update tag: %w", err)
	}

	resp := toTagResponse(tag)
	return &resp, nil
}

// Delete removes the tag; the store drops its task associations.
func (s *TagService) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	if _, err := fetchOwned[*entities.Tag](ctx, s.tagRepo, "tag", id, userID); err != nil {
		return err
	}

	if err := s.tagRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}

	s.logger.Infow("Tag deleted", "tag_id", id, "user_id", userID)
	return nil
}

func toTagResponse(t *entities.Tag) ports.TagResponse {
	return ports.TagResponse{
		ID:        t.ID,
		Name:      t.Name,
		Color:     t.Color,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
