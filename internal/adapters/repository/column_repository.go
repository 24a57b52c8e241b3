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

// ColumnRepositoryImpl implements the ColumnRepository interface
type ColumnRepositoryImpl struct {
	db DBTX
}

// NewColumnRepository creates a new column repository
func NewColumnRepository(db DBTX) ports.ColumnRepository {
	return &ColumnRepositoryImpl{db: db}
}

func (r *ColumnRepositoryImpl) GetAllByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]*entities.Column, error) {
	query := `
		SELECT id, title, color, position, workspace_id, created_at, updated_at
		FROM columns
		WHERE workspace_id = $1
		ORDER BY position`

	var columns []*entities.Column
	if err := r.db.SelectContext(ctx, &columns, query, workspaceID); err != nil {
		return nil, fmt.Errorf("list columns: %w", err)
	}

	return columns, nil
}

func (r *ColumnRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.Column, error) {
	query := `
		SELECT id, title, color, position, workspace_id, created_at, updated_at
		FROM columns
		WHERE id = $1`

	var column entities.Column
	if err := r.db.GetContext(ctx, &column, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.NewNotFoundError("Column", id)
		}
		return nil, fmt.Errorf("get column by id: %w", err)
	}

	return &column, nil
}

func (r *ColumnRepositoryImpl) Create(ctx context.Context, column *entities.Column) error {
	query := `
		INSERT INTO columns (id, title, color, position, workspace_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		column.ID, column.Title, column.Color, column.Position,
		column.WorkspaceID, column.CreatedAt, column.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create column: %w", err)
	}

	return nil
}

func (r *ColumnRepositoryImpl) Update(ctx context.Context, column *entities.Column) error {
	query := `
		UPDATE columns
		SET title = $2, color = $3, position = $4, updated_at = $5
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		column.ID, column.Title, column.Color, column.Position, column.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update column: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entities.NewNotFoundError("Column", column.ID)
	}

	return nil
}

func (r *ColumnRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM columns WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete column: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entities.NewNotFoundError("Column", id)
	}

	return nil
}

func (r *ColumnRepositoryImpl) GetMaxPosition(ctx context.Context, workspaceID uuid.UUID) (int, error) {
	query := `SELECT COALESCE(MAX(position), -1) FROM columns WHERE workspace_id = $1`

	var maxPosition int
	if err := r.db.GetContext(ctx, &maxPosition, query, workspaceID); err != nil {
		return 0, fmt.Errorf("get max column position: %w", err)
	}

	return maxPosition, nil
}

func (r *ColumnRepositoryImpl) WorkspaceExists(ctx context.Context, workspaceID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM workspaces WHERE id = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, workspaceID); err != nil {
		return false, fmt.Errorf("check workspace exists: %w", err)
	}

	return exists, nil
}

func (r *ColumnRepositoryImpl) ExistsInWorkspace(ctx context.Context, columnID, workspaceID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM columns WHERE id = $1 AND workspace_id = $2)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, columnID, workspaceID); err != nil {
		return false, fmt.Errorf("check column in workspace: %w", err)
	}

	return exists, nil
}
