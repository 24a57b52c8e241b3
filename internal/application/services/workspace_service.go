package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/projectboard/core/internal/domain/entities"
	"github.com/projectboard/core/internal/infrastructure/logger"
	"github.com/projectboard/core/internal/ports"
)

// WorkspaceService handles workspace operations for a single caller.
type WorkspaceService struct {
	workspaceRepo ports.WorkspaceRepository
	logger        *logger.Logger
}

// NewWorkspaceService creates a new workspace service.
func NewWorkspaceService(workspaceRepo ports.WorkspaceRepository, logger *logger.Logger) *WorkspaceService {
	return &WorkspaceService{
		workspaceRepo: workspaceRepo,
		logger:        logger,
	}
}

// GetAll lists the caller's workspaces ordered by position.
func (s *WorkspaceService) GetAll(ctx context.Context, userID string) ([]ports.WorkspaceResponse, error) {
	workspaces, err := s.workspaceRepo.GetAllByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}

	out := make([]ports.WorkspaceResponse, 0, len(workspaces))
	for _, w := range workspaces {
		out = append(out, toWorkspaceResponse(w))
	}
	return out, nil
}

// GetByID returns a single workspace after the existence and ownership checks.
func (s *WorkspaceService) GetByID(ctx context.Context, id uuid.UUID, userID string) (*ports.WorkspaceResponse, error) {
	workspace, err := s.workspaceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := requireWorkspaceAccess(ctx, s.workspaceRepo, id, userID, "workspace", id); err != nil {
		return nil, err
	}

	resp := toWorkspaceResponse(workspace)
	return &resp, nil
}

// Create appends a new workspace at the end of the caller's board list.
func (s *WorkspaceService) Create(ctx context.Context, req ports.CreateWorkspaceRequest, userID string) (*ports.WorkspaceResponse, error) {
	maxPosition, err := s.workspaceRepo.GetMaxPosition(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get max workspace position: %w", err)
	}

	workspace, err := entities.NewWorkspace(req.Title, req.Description, req.Color, userID, maxPosition+1)
	if err != nil {
		return nil, err
	}

	if err := s.workspaceRepo.Create(ctx, workspace); err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}

	s.logger.Infow("Workspace created", "workspace_id", workspace.ID, "user_id", userID)

	resp := toWorkspaceResponse(workspace)
	return &resp, nil
}

// Update replaces the workspace's caller-owned fields, position included.
func (s *WorkspaceService) Update(ctx context.Context, id uuid.UUID, req ports.UpdateWorkspaceRequest, userID string) (*ports.WorkspaceResponse, error) {
	workspace, err := s.workspaceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := requireWorkspaceAccess(ctx, s.workspaceRepo, id, userID, "workspace", id); err != nil {
		return nil, err
	}

	if err := workspace.Update(req.Title, req.Description, req.Color, req.Position); err != nil {
		return nil, err
	}

	if err := s.workspaceRepo.Update(ctx, workspace); err != nil {
		return nil, fmt.Errorf("update workspace: %w", err)
	}

	s.logger.Infow("Workspace updated", "workspace_id", id, "user_id", userID)

	resp := toWorkspaceResponse(workspace)
	return &resp, nil
}

// Delete removes the workspace; the store cascades to its columns, and from
// those to their tasks.
func (s *WorkspaceService) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	if _, err := s.workspaceRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := requireWorkspaceAccess(ctx, s.workspaceRepo, id, userID, "workspace", id); err != nil {
		return err
	}

	if err := s.workspaceRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete workspace: %w", err)
	}

	s.logger.Infow("Workspace deleted", "workspace_id", id, "user_id", userID)
	return nil
}

func toWorkspaceResponse(w *entities.Workspace) ports.WorkspaceResponse {
	return ports.WorkspaceResponse{
		ID:          w.ID,
		Title:       w.Title,
		Description: w.Description,
		Color:       w.Color,
		Position:    w.Position,
		CreatedAt:   w.CreatedAt,
	}
}
