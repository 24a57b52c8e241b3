package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/projectboard/core/internal/domain/entities"
	"github.com/projectboard/core/internal/infrastructure/logger"
	"github.com/projectboard/core/internal/ports"
)

// AssigneeService handles assignee operations. Assignees are directly owned
// address-book entries, not accounts.
type AssigneeService struct {
	assigneeRepo ports.AssigneeRepository
	logger       *logger.Logger
}

// NewAssigneeService creates a new assignee service.
func NewAssigneeService(assigneeRepo ports.AssigneeRepository, logger *logger.Logger) *AssigneeService {
	return &AssigneeService{
		assigneeRepo: assigneeRepo,
		logger:       logger,
	}
}

// GetAll lists the caller's assignees.
func (s *AssigneeService) GetAll(ctx context.Context, userID string) ([]ports.AssigneeResponse, error) {
	assignees, err := s.assigneeRepo.GetAllByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list assignees: %w", err)
	}

	out := make([]ports.AssigneeResponse, 0, len(assignees))
	for _, a := range assignees {
		out = append(out, toAssigneeResponse(a))
	}
	return out, nil
}

// GetByID returns a single assignee after the existence and ownership checks.
func (s *AssigneeService) GetByID(ctx context.Context, id uuid.UUID, userID string) (*ports.AssigneeResponse, error) {
	assignee, err := fetchOwned[*entities.Assignee](ctx, s.assigneeRepo, "assignee", id, userID)
	if err != nil {
		return nil, err
	}

	resp := toAssigneeResponse(assignee)
	return &resp, nil
}

// Create stores a new assignee for the caller.
func (s *AssigneeService) Create(ctx context.Context, req ports.CreateAssigneeRequest, userID string) (*ports.AssigneeResponse, error) {
	assignee, err := entities.NewAssignee(req.Name, req.AvatarURL, userID)
	if err != nil {
		return nil, err
	}

	if err := s.assigneeRepo.Create(ctx, assignee); err != nil {
		return nil, fmt.Errorf("create assignee: %w", err)
	}

	s.logger.Infow("Assignee created", "assignee_id", assignee.ID, "user_id", userID)

	resp := toAssigneeResponse(assignee)
	return &resp, nil
}

// Update replaces the assignee's name and avatar.
func (s *AssigneeService) Update(ctx context.Context, id uuid.UUID, req ports.UpdateAssigneeRequest, userID string) (*ports.AssigneeResponse, error) {
	assignee, err := fetchOwned[*entities.Assignee](ctx, s.assigneeRepo, "assignee", id, userID)
	if err != nil {
		return nil, err
	}

	if err := assignee.Update(req.Name, req.AvatarURL); err != nil {
		return nil, err
	}

	if err := s.assigneeRepo.Update(ctx, assignee); err != nil {
		return nil, fmt.Errorf("update assignee: %w", err)
	}

	resp := toAssigneeResponse(assignee)
	return &resp, nil
}

// Delete removes the assignee; the store drops its task associations.
func (s *AssigneeService) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	if _, err := fetchOwned[*entities.Assignee](ctx, s.assigneeRepo, "assignee", id, userID); err != nil {
		return err
	}

	if err := s.assigneeRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete assignee: %w", err)
	}

	s.logger.Infow("Assignee deleted", "assignee_id", id, "user_id", userID)
	return nil
}

func toAssigneeResponse(a *entities.Assignee) ports.AssigneeResponse {
	return ports.AssigneeResponse{
		ID:        a.ID,
		Name:      a.Name,
		AvatarURL: a.AvatarURL,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
