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

// AssigneeRepositoryImpl implements the AssigneeRepository interface
type AssigneeRepositoryImpl struct {
	db DBTX
}

// NewAssigneeRepository creates a new assignee repository
func NewAssigneeRepository(db DBTX) ports.AssigneeRepository {
	return &AssigneeRepositoryImpl{db: db}
}

func (r *AssigneeRepositoryImpl) GetAllByUserID(ctx context.Context, userID string) ([]*entities.Assignee, error) {
	query := `
		SELECT id, name, avatar_url, user_id, created_at, updated_at
		FROM assignees
		WHERE user_id = $1
		ORDER BY name`

	var assignees []*entities.Assignee
	if err := r.db.SelectContext(ctx, &assignees, query, userID); err != nil {
		return nil, fmt.Errorf("list assignees: %w", err)
	}

	return assignees, nil
}

func (r *AssigneeRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.Assignee, error) {
	query := `
		SELECT id, name, avatar_url, user_id, created_at, updated_at
		FROM assignees
		WHERE id = $1`

	var assignee entities.Assignee
	if err := r.db.GetContext(ctx, &assignee, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.NewNotFoundError("Assignee", id)
		}
		return nil, fmt.Errorf("get assignee by id: %w", err)
	}

	return &assignee, nil
}

func (r *AssigneeRepositoryImpl) Create(ctx context.Context, assignee *entities.Assignee) error {
	query := `
		INSERT INTO assignees (id, name, avatar_url, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		assignee.ID, assignee.Name, assignee.AvatarURL, assignee.UserID,
		assignee.CreatedAt, assignee.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create assignee: %w", err)
	}

	return nil
}

func (r *AssigneeRepositoryImpl) Update(ctx context.Context, assignee *entities.Assignee) error {
	query := `
		UPDATE assignees
		SET name = $2, avatar_url = $3, updated_at = $4
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		assignee.ID, assignee.Name, assignee.AvatarURL, assignee.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update assignee: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entities.NewNotFoundError("Assignee", assignee.ID)
	}

	return nil
}

func (r *AssigneeRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM assignees WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete assignee: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entities.NewNotFoundError("Assignee", id)
	}

	return nil
}
