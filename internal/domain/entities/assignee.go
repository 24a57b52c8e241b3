package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Assignee is a user-owned person record attachable to many tasks. It is not
// an account of its own; it only exists within the owning user's board.
type Assignee struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	AvatarURL *string    `json:"avatar_url" db:"avatar_url"`
	UserID    string     `json:"user_id" db:"user_id"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at" db:"updated_at"`
}

// NewAssignee validates and constructs an assignee.
func NewAssignee(name string, avatarURL *string, userID string) (*Assignee, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrAssigneeNameEmpty
	}
	if strings.TrimSpace(userID) == "" {
		return nil, ErrAssigneeUserEmpty
	}

	return &Assignee{
		ID:        uuid.New(),
		Name:      name,
		AvatarURL: avatarURL,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Owner returns the id of the owning user.
func (a *Assignee) Owner() string {
	return a.UserID
}

// Update replaces name and avatar after re-validating them.
func (a *Assignee) Update(name string, avatarURL *string) error {
	if strings.TrimSpace(name) == "" {
		return ErrAssigneeNameEmpty
	}

	a.Name = name
	a.AvatarURL = avatarURL
	now := time.Now().UTC()
	a.UpdatedAt = &now
	return nil
}
