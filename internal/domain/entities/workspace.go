package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Workspace is the top-level container owned by a single user. Columns and
// tasks hang off it, and every ownership decision in the system resolves to
// its UserID.
type Workspace struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description *string    `json:"description" db:"description"`
	Color       *string    `json:"color" db:"color"`
	Position    int        `json:"position" db:"position"`
	UserID      string     `json:"user_id" db:"user_id"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at" db:"updated_at"`
}

// NewWorkspace validates and constructs a workspace. Position is assigned by
// the service (max sibling position + 1); UpdatedAt stays nil until the first
// mutation.
func NewWorkspace(title string, description, color *string, userID string, position int) (*Workspace, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrWorkspaceTitleEmpty
	}
	if strings.TrimSpace(userID) == "" {
		return nil, ErrWorkspaceUserEmpty
	}

	return &Workspace{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Color:       color,
		Position:    position,
		UserID:      userID,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// Update replaces every caller-owned field. Validation is all-or-nothing: no
// field changes unless all of them pass.
func (w *Workspace) Update(title string, description, color *string, position int) error {
	if strings.TrimSpace(title) == "" {
		return ErrWorkspaceTitleEmpty
	}

	w.Title = title
	w.Description = description
	w.Color = color
	w.Position = position
	w.touch()
	return nil
}

// SetPosition overwrites the ordering hint without renumbering siblings.
func (w *Workspace) SetPosition(position int) {
	w.Position = position
	w.touch()
}

func (w *Workspace) touch() {
	now := time.Now().UTC()
	w.UpdatedAt = &now
}
