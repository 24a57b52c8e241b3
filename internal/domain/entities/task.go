package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TaskPriority is the urgency level of a task.
type TaskPriority int

const (
	PriorityLow TaskPriority = iota + 1
	PriorityMedium
	PriorityHigh
)

// IsValid reports whether the priority is one of the declared enum members.
func (p TaskPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

func (p TaskPriority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// ProjectTask is a unit of work positioned within a column. WorkspaceID is
// denormalized so ownership checks never need to join through the column.
// Assignees and Tags are id-based association sets loaded by the repository,
// not live object graphs.
type ProjectTask struct {
	ID          uuid.UUID    `json:"id" db:"id"`
	Title       string       `json:"title" db:"title"`
	Description *string      `json:"description" db:"description"`
	DueDate     *time.Time   `json:"due_date" db:"due_date"`
	Priority    TaskPriority `json:"priority" db:"priority"`
	Position    int          `json:"position" db:"position"`
	ColumnID    uuid.UUID    `json:"column_id" db:"column_id"`
	WorkspaceID uuid.UUID    `json:"workspace_id" db:"workspace_id"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt   *time.Time   `json:"updated_at" db:"updated_at"`

	Assignees []Assignee `json:"assignees" db:"-"`
	Tags      []Tag      `json:"tags" db:"-"`
}

// NewProjectTask validates and constructs a task. Position is assigned by the
// service (max sibling position in the column + 1).
func NewProjectTask(workspaceID, columnID uuid.UUID, title string, priority TaskPriority, position int, description *string, dueDate *time.Time) (*ProjectTask, error) {
	if workspaceID == uuid.Nil {
		return nil, ErrTaskWorkspaceEmpty
	}
	if columnID == uuid.Nil {
		return nil, ErrTaskColumnEmpty
	}
	if strings.TrimSpace(title) == "" {
		return nil, ErrTaskTitleEmpty
	}
	if !priority.IsValid() {
		return nil, ErrInvalidPriority
	}

	return &ProjectTask{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Priority:    priority,
		Position:    position,
		ColumnID:    columnID,
		WorkspaceID: workspaceID,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// UpdateDetails replaces the descriptive fields after re-validating them.
func (t *ProjectTask) UpdateDetails(title string, description *string, dueDate *time.Time, priority TaskPriority) error {
	if strings.TrimSpace(title) == "" {
		return ErrTaskTitleEmpty
	}
	if !priority.IsValid() {
		return ErrInvalidPriority
	}

	t.Title = title
	t.Description = description
	t.DueDate = dueDate
	t.Priority = priority
	t.touch()
	return nil
}

// UpdatePosition overwrites the ordering hint without renumbering siblings.
func (t *ProjectTask) UpdatePosition(position int) {
	t.Position = position
	t.touch()
}

// MoveToColumn relocates the task to another column at an explicit position.
func (t *ProjectTask) MoveToColumn(columnID uuid.UUID, position int) error {
	if columnID == uuid.Nil {
		return ErrTaskMoveColumnEmpty
	}

	t.ColumnID = columnID
	t.Position = position
	t.touch()
	return nil
}

func (t *ProjectTask) touch() {
	now := time.Now().UTC()
	t.UpdatedAt = &now
}
