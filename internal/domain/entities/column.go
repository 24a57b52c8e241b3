package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Column is an ordered stage within a workspace ("To Do", "In Progress", ...).
type Column struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Color       *string    `json:"color" db:"color"`
	Position    int        `json:"position" db:"position"`
	WorkspaceID uuid.UUID  `json:"workspace_id" db:"workspace_id"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at" db:"updated_at"`
}

// NewColumn validates and constructs a column within a workspace.
func NewColumn(title string, color *string, workspaceID uuid.UUID, position int) (*Column, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrColumnTitleEmpty
	}
	if workspaceID == uuid.Nil {
		return nil, ErrColumnWorkspaceEmpty
	}

	return &Column{
		ID:          uuid.New(),
		Title:       title,
		Color:       color,
		Position:    position,
		WorkspaceID: workspaceID,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// Update replaces the caller-owned fields after re-validating them.
func (c *Column) Update(title string, color *string, position int) error {
	if strings.TrimSpace(title) == "" {
		return ErrColumnTitleEmpty
	}

	c.Title = title
	c.Color = color
	c.Position = position
	c.touch()
	return nil
}

// SetPosition overwrites the ordering hint without renumbering siblings.
func (c *Column) SetPosition(position int) {
	c.Position = position
	c.touch()
}

func (c *Column) touch() {
	now := time.Now().UTC()
	c.UpdatedAt = &now
}
