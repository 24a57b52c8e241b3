package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Tag is a user-owned label attachable to many tasks.
type Tag struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	Color     string     `json:"color" db:"color"`
	UserID    string     `json:"user_id" db:"user_id"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at" db:"updated_at"`
}

// NewTag validates and constructs a tag.
func NewTag(name, color, userID string) (*Tag, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrTagNameEmpty
	}
	if strings.TrimSpace(color) == "" {
		return nil, ErrTagColorEmpty
	}
	if strings.TrimSpace(userID) == "" {
		return nil, ErrTagUserEmpty
	}

	return &Tag{
		ID:        uuid.New(),
		Name:      name,
		Color:     color,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Owner returns the id of the owning user.
func (t *Tag) Owner() string {
	return t.UserID
}

// Update replaces name and color after re-validating them.
func (t *Tag) Update(name, color string) error {
	if strings.TrimSpace(name) == "" {
		return ErrTagNameEmpty
	}
	if strings.TrimSpace(color) == "" {
		return ErrTagColorEmpty
	}

	t.Name = name
	t.Color = color
	now := time.Now().UTC()
	t.UpdatedAt = &now
	return nil
}
