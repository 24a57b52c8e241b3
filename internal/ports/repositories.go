package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/projectboard/core/internal/domain/entities"
)

// Owned is implemented by entities whose ownership is recorded directly on
// the record rather than resolved through a workspace.
type Owned interface {
	Owner() string
}

// OwnedRepository is the lookup capability shared by repositories of directly
// user-owned entities. Services use it to run the existence-then-ownership
// check once instead of per entity type.
type OwnedRepository[T Owned] interface {
	GetByID(ctx context.Context, id uuid.UUID) (T, error)
}

// WorkspaceRepository defines the data operations for workspaces. GetByID
// returns *entities.NotFoundError when no row matches.
type WorkspaceRepository interface {
	GetAllByUserID(ctx context.Context, userID string) ([]*entities.Workspace, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Workspace, error)
	Create(ctx context.Context, workspace *entities.Workspace) error
	Update(ctx context.Context, workspace *entities.Workspace) error
	Delete(ctx context.Context, id uuid.UUID) error
	// GetMaxPosition returns the highest position among the user's
	// workspaces, or -1 when the user has none.
	GetMaxPosition(ctx context.Context, userID string) (int, error)
	// UserHasAccess reports whether the workspace exists and belongs to the
	// user. All ownership checks for workspace-scoped children go through it.
	UserHasAccess(ctx context.Context, workspaceID uuid.UUID, userID string) (bool, error)
}

// ColumnRepository defines the data operations for columns.
type ColumnRepository interface {
	GetAllByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]*entities.Column, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Column, error)
	Create(ctx context.Context, column *entities.Column) error
	Update(ctx context.Context, column *entities.Column) error
	Delete(ctx context.Context, id uuid.UUID) error
	// GetMaxPosition returns the highest position among the workspace's
	// columns, or -1 when the workspace has none.
	GetMaxPosition(ctx context.Context, workspaceID uuid.UUID) (int, error)
	WorkspaceExists(ctx context.Context, workspaceID uuid.UUID) (bool, error)
	ExistsInWorkspace(ctx context.Context, columnID, workspaceID uuid.UUID) (bool, error)
}

// ProjectTaskRepository defines the data operations for tasks, including the
// task↔assignee and task↔tag association sets.
type ProjectTaskRepository interface {
	GetAllByWorkspaceID(ctx context.Context, workspaceID uuid.UUID) ([]*entities.ProjectTask, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.ProjectTask, error)
	Create(ctx context.Context, task *entities.ProjectTask) error
	Update(ctx context.Context, task *entities.ProjectTask) error
	Delete(ctx context.Context, id uuid.UUID) error
	// GetMaxPosition returns the highest position among the column's tasks,
	// or -1 when the column has none.
	GetMaxPosition(ctx context.Context, columnID uuid.UUID) (int, error)
	AddAssignee(ctx context.Context, taskID, assigneeID uuid.UUID) error
	RemoveAssignee(ctx context.Context, taskID, assigneeID uuid.UUID) error
	AddTag(ctx context.Context, taskID, tagID uuid.UUID) error
	RemoveTag(ctx context.Context, taskID, tagID uuid.UUID) error
}

// TagRepository defines the data operations for tags.
type TagRepository interface {
	GetAllByUserID(ctx context.Context, userID string) ([]*entities.Tag, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Tag, error)
	Create(ctx context.Context, tag *entities.Tag) error
	Update(ctx context.Context, tag *entities.Tag) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AssigneeRepository defines the data operations for assignees.
type AssigneeRepository interface {
	GetAllByUserID(ctx context.Context, userID string) ([]*entities.Assignee, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Assignee, error)
	Create(ctx context.Context, assignee *entities.Assignee) error
	Update(ctx context.Context, assignee *entities.Assignee) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Repositories bundles the stores that participate in a transaction.
type Repositories struct {
	Workspaces WorkspaceRepository
	Columns    ColumnRepository
	Tasks      ProjectTaskRepository
	Tags       TagRepository
	Assignees  AssigneeRepository
}

// Transactor runs a function against repositories bound to a single database
// transaction. The transaction commits when fn returns nil and rolls back
// otherwise.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}

// UserRepository defines the data operations for identity accounts.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
}

// TokenRepository defines the refresh token store.
type TokenRepository interface {
	CreateRefreshToken(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error
	GetRefreshToken(ctx context.Context, tokenHash string) (*RefreshToken, error)
	RevokeRefreshToken(ctx context.Context, tokenHash string) error
}

// RefreshToken is a stored refresh token record.
type RefreshToken struct {
	ID        int        `json:"id" db:"id"`
	UserID    uuid.UUID  `json:"user_id" db:"user_id"`
	TokenHash string     `json:"token_hash" db:"token_hash"`
	ExpiresAt time.Time  `json:"expires_at" db:"expires_at"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	RevokedAt *time.Time `json:"revoked_at" db:"revoked_at"`
}

// IsValid reports whether the token is neither expired nor revoked.
func (rt *RefreshToken) IsValid() bool {
	return rt.RevokedAt == nil && time.Now().Before(rt.ExpiresAt)
}
