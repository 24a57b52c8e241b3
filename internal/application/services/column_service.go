package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/projectboard/core/internal/domain/entities"
	"github.com/projectboard/core/internal/infrastructure/logger"
	"github.com/projectboard/core/internal/ports"
)

// ColumnService handles column operations. Ownership always resolves through
// the owning workspace.
type ColumnService struct {
	columnRepo    ports.ColumnRepository
	workspaceRepo ports.WorkspaceRepository
	logger        *logger.Logger
}

// NewColumnService creates a new column service.
func NewColumnService(columnRepo ports.ColumnRepository, workspaceRepo ports.WorkspaceRepository, logger *logger.Logger) *ColumnService {
	return &ColumnService{
		columnRepo:    columnRepo,
		workspaceRepo: workspaceRepo,
		logger:        logger,
	}
}

// GetAll lists a workspace's columns ordered by position. The caller is
// authorized once against the workspace; the query itself is already scoped.
func (s *ColumnService) GetAll(ctx context.Context, workspaceID uuid.UUID, userID string) ([]ports.ColumnResponse, error) {
	if err := requireWorkspaceAccess(ctx, s.workspaceRepo, workspaceID, userID, "workspace", workspaceID); err != nil {
		return nil, err
	}

	columns, err := s.columnRepo.GetAllByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("list columns: %w", err)
	}

	out := make([]ports.ColumnResponse, 0, len(columns))
	for _, c := range columns {
		out = append(out, toColumnResponse(c))
	}
	return out, nil
}

// GetByID returns a single column after the existence and ownership checks.
func (s *ColumnService) GetByID(ctx context.Context, id uuid.UUID, userID string) (*ports.ColumnResponse, error) {
	column, err := s.columnRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := requireWorkspaceAccess(ctx, s.workspaceRepo, column.WorkspaceID, userID, "column", id); err != nil {
		return nil, err
	}

	resp := toColumnResponse(column)
	return &resp, nil
}

// Create appends a new column at the end of the workspace. Workspace absence
// reports NotFound before ownership is considered.
func (s *ColumnService) Create(ctx context.Context, workspaceID uuid.UUID, req ports.CreateColumnRequest, userID string) (*ports.ColumnResponse, error) {
	exists, err := s.columnRepo.WorkspaceExists(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("check workspace: %w", err)
	}
	if !exists {
		return nil, entities.NewNotFoundError("Workspace", workspaceID)
	}

	if err := requireWorkspaceAccess(ctx, s.workspaceRepo, workspaceID, userID, "workspace", workspaceID); err != nil {
		return nil, err
	}

	maxPosition, err := s.columnRepo.GetMaxPosition(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("get max column position: %w", err)
	}

	column, err := entities.NewColumn(req.Title, req.Color, workspaceID, maxPosition+1)
	if err != nil {
		return nil, err
	}

	if err := s.columnRepo.Create(ctx, column); err != nil {
		return nil, fmt.Errorf("create column: %w", err)
	}

	s.logger.Infow("Column created", "column_id", column.ID, "workspace_id", workspaceID, "user_id", userID)

	resp := toColumnResponse(column)
	return &resp, nil
}

// Update replaces the column's caller-owned fields, position included.
func (s *ColumnService) Update(ctx context.Context, id uuid.UUID, req ports.UpdateColumnRequest, userID string) (*ports.ColumnResponse, error) {
	column, err := s.columnRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := requireWorkspaceAccess(ctx, s.workspaceRepo, column.WorkspaceID, userID, "column", id); err != nil {
		return nil, err
	}

	if err := column.Update(req.Title, req.Color, req.Position); err != nil {
		return nil, err
	}

	if err := s.columnRepo.Update(ctx, column); err != nil {
		return nil, fmt.Errorf("update column: %w", err)
	}

	resp := toColumnResponse(column)
	return &resp, nil
}

// Delete removes the column; the store cascades to its tasks.
func (s *ColumnService) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	column, err := s.columnRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := requireWorkspaceAccess(ctx, s.workspaceRepo, column.WorkspaceID, userID, "column", id); err != nil {
		return err
	}

	if err := s.columnRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete column: %w", err)
	}

	s.logger.Infow("Column deleted", "column_id", id, "user_id", userID)
	return nil
}

func toColumnResponse(c *entities.Column) ports.ColumnResponse {
	return ports.ColumnResponse{
		ID:          c.ID,
		Title:       c.Title,
		Color:       c.Color,
		Position:    c.Position,
		WorkspaceID: c.WorkspaceID,
		CreatedAt:   c.CreatedAt,
	}
}
