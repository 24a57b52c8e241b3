package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/projectboard/core/internal/domain/entities"
	"github.com/projectboard/core/internal/ports"
)

// WorkspaceRepositoryImpl implements the WorkspaceRepository interface
type WorkspaceRepositoryImpl struct {
	db DBTX
}

// NewWorkspaceRepository creates a new workspace repository
func NewWorkspaceRepository(db DBTX) ports.WorkspaceRepository {
	return &WorkspaceRepositoryImpl{db: db}
}

func (r *WorkspaceRepositoryImpl) GetAllByUserID(ctx context.Context, userID string) ([]*entities.Workspace, error) {
	query := `
		SELECT id, title, description, color, position, user_id, created_at, updated_at
		FROM workspaces
		WHERE user_id = $1
		ORDER BY position`

	var workspaces []*entities.Workspace
	if err := r.db.SelectContext(ctx, &workspaces, query, userID); err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}

	return workspaces, nil
}

func (r *WorkspaceRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.Workspace, error) {
	query := `
		SELECT id, title, description, color, position, user_id, created_at, updated_at
		FROM workspaces
		WHERE id = $1`

	var workspace entities.Workspace
	if err := r.db.GetContext(ctx, &workspace, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.NewNotFoundError("Workspace", id)
		}
		return nil, fmt.Errorf("get workspace by id: %w", err)
	}

	return &workspace, nil
}

func (r *WorkspaceRepositoryImpl) Create(ctx context.Context, workspace *entities.Workspace) error {
	query := `
		INSERT INTO workspaces (id, title, description, color, position, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		workspace.ID, workspace.Title, workspace.Description, workspace.Color,
		workspace.Position, workspace.UserID, workspace.CreatedAt, workspace.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create workspace: %w", err)
	}

	return nil
}

func (r *WorkspaceRepositoryImpl) Update(ctx context.Context, workspace *entities.Workspace) error {
	query := `
		UPDATE workspaces
		SET title = $2, description = $3, color = $4, position = $5, updated_at = $6
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		workspace.ID, workspace.Title, workspace.Description, workspace.Color,
		workspace.Position, workspace.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update workspace: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entities.NewNotFoundError("Workspace", workspace.ID)
	}

	return nil
}

func (r *WorkspaceRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM workspaces WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete workspace: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entities.NewNotFoundError("Workspace", id)
	}

	return nil
}

func (r *WorkspaceRepositoryImpl) GetMaxPosition(ctx context.Context, userID string) (int, error) {
	query := `SELECT COALESCE(MAX(position), -1) FROM workspaces WHERE user_id = $1`

	var maxPosition int
	if err := r.db.GetContext(ctx, &maxPosition, query, userID); err != nil {
		return 0, fmt.Errorf("get max workspace position: %w", err)
	}

	return maxPosition, nil
}

func (r *WorkspaceRepositoryImpl) UserHasAccess(ctx context.Context, workspaceID uuid.UUID, userID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM workspaces WHERE id = $1 AND user_id = $2)`

	var hasAccess bool
	if err := r.db.GetContext(ctx, &hasAccess, query, workspaceID, userID); err != nil {
		return false, fmt.Errorf("check workspace access: %w", err)
	}

	return hasAccess, nil
}
