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

// TagRepositoryImpl implements the TagRepository interface
type TagRepositoryImpl struct {
	db DBTX
}

// NewTagRepository creates a new tag repository
func NewTagRepository(db DBTX) ports.TagRepository {
	return &TagRepositoryImpl{db: db}
}

func (r *TagRepositoryImpl) GetAllByUserID(ctx context.Context, userID string) ([]*entities.Tag, error) {
	query := `
		SELECT id, name, color, user_id, created_at, updated_at
		FROM tags
		WHERE user_id = $1
		ORDER BY name`

	var tags []*entities.Tag
	if err := r.db.SelectContext(ctx, &tags, query, userID); err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	return tags, nil
}

func (r *TagRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.Tag, error) {
	query := `
		SELECT id, name, color, user_id, created_at, updated_at
		FROM tags
		WHERE id = $1`

	var tag entities.Tag
	if err := r.db.GetContext(ctx, &tag, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.NewNotFoundError("Tag", id)
		}
		return nil, fmt.Errorf("get tag by id: %w", err)
	}

	return &tag, nil
}

func (r *TagRepositoryImpl) Create(ctx context.Context, tag *entities.Tag) error {
	query := `
		INSERT INTO tags (id, name, color, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		tag.ID, tag.Name, tag.Color, tag.UserID, tag.CreatedAt, tag.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create tag: %w", err)
	}

	return nil
}

func (r *TagRepositoryImpl) Update(ctx context.Context, tag *entities.Tag) error {
	query := `
		UPDATE tags
		SET name = $2, color = $3, updated_at = $4
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, tag.ID, tag.Name, tag.Color, tag.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update tag: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entities.NewNotFoundError("Tag", tag.ID)
	}

	return nil
}

func (r *TagRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM tags WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entities.NewNotFoundError("Tag", id)
	}

	return nil
}
