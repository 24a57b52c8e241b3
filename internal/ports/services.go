package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/projectboard/core/internal/domain/entities"
)

// AuthService interface for the identity provider.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// WorkspaceService interface for workspace operations.
type WorkspaceService interface {
	GetAll(ctx context.Context, userID string) ([]WorkspaceResponse, error)
	GetByID(ctx context.Context, id uuid.UUID, userID string) (*WorkspaceResponse, error)
	Create(ctx context.Context, req CreateWorkspaceRequest, userID string) (*WorkspaceResponse, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateWorkspaceRequest, userID string) (*WorkspaceResponse, error)
	Delete(ctx context.Context, id uuid.UUID, userID string) error
}

// ColumnService interface for column operations within a workspace.
type ColumnService interface {
	GetAll(ctx context.Context, workspaceID uuid.UUID, userID string) ([]ColumnResponse, error)
	GetByID(ctx context.Context, id uuid.UUID, userID string) (*ColumnResponse, error)
	Create(ctx context.Context, workspaceID uuid.UUID, req CreateColumnRequest, userID string) (*ColumnResponse, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateColumnRequest, userID string) (*ColumnResponse, error)
	Delete(ctx context.Context, id uuid.UUID, userID string) error
}

// ProjectTaskService interface for task operations, including the assignee
// and tag association sets.
type ProjectTaskService interface {
	GetAllByWorkspace(ctx context.Context, workspaceID uuid.UUID, userID string) ([]TaskResponse, error)
	GetByID(ctx context.Context, id uuid.UUID, userID string) (*TaskResponse, error)
	Create(ctx context.Context, workspaceID, columnID uuid.UUID, req CreateTaskRequest, userID string) (*TaskResponse, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateTaskRequest, userID string) (*TaskResponse, error)
	Delete(ctx context.Context, id uuid.UUID, userID string) error
	AddAssignee(ctx context.Context, taskID, assigneeID uuid.UUID, userID string) (*TaskResponse, error)
	RemoveAssignee(ctx context.Context, taskID, assigneeID uuid.UUID, userID string) (*TaskResponse, error)
	AddTag(ctx context.Context, taskID, tagID uuid.UUID, userID string) (*TaskResponse, error)
	RemoveTag(ctx context.Context, taskID, tagID uuid.UUID, userID string) (*TaskResponse, error)
}

// TagService interface for tag operations.
type TagService interface {
	GetAll(ctx context.Context, userID string) ([]TagResponse, error)
	GetByID(ctx context.Context, id uuid.UUID, userID string) (*TagResponse, error)
	Create(ctx context.Context, req CreateTagRequest, userID string) (*TagResponse, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateTagRequest, userID string) (*TagResponse, error)
	Delete(ctx context.Context, id uuid.UUID, userID string) error
}

// AssigneeService interface for assignee operations.
type AssigneeService interface {
	GetAll(ctx context.Context, userID string) ([]AssigneeResponse, error)
	GetByID(ctx context.Context, id uuid.UUID, userID string) (*AssigneeResponse, error)
	Create(ctx context.Context, req CreateAssigneeRequest, userID string) (*AssigneeResponse, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateAssigneeRequest, userID string) (*AssigneeResponse, error)
	Delete(ctx context.Context, id uuid.UUID, userID string) error
}

// OnboardingService seeds a freshly registered user with sample data.
type OnboardingService interface {
	CreateInitialData(ctx context.Context, userID string) error
}

// Auth related types

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type AuthResponse struct {
	AccessToken         string  `json:"access_token"`
	RefreshToken        string  `json:"refresh_token"`
	TokenType           string  `json:"token_type"`
	ExpiresIn           int64   `json:"expires_in"`
	OnboardingCompleted bool    `json:"onboarding_completed,omitempty"`
	OnboardingError     *string `json:"onboarding_error,omitempty"`
}

// Claims is the identity carried by a validated access token.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// Workspace related types

type CreateWorkspaceRequest struct {
	Title       string  `json:"title" validate:"required,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Color       *string `json:"color" validate:"omitempty,len=7,startswith=#"`
}

type UpdateWorkspaceRequest struct {
	Title       string  `json:"title" validate:"required,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Color       *string `json:"color" validate:"omitempty,len=7,startswith=#"`
	Position    int     `json:"position" validate:"min=0"`
}

type WorkspaceResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Color       *string   `json:"color"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
}

// Column related types

type CreateColumnRequest struct {
	Title string  `json:"title" validate:"required,max=100"`
	Color *string `json:"color" validate:"omitempty,max=50"`
}

type UpdateColumnRequest struct {
	Title    string  `json:"title" validate:"required,max=100"`
	Color    *string `json:"color" validate:"omitempty,max=50"`
	Position int     `json:"position" validate:"min=0"`
}

type ColumnResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Color       *string   `json:"color"`
	Position    int       `json:"position"`
	WorkspaceID uuid.UUID `json:"workspace_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// Task related types

type CreateTaskRequest struct {
	Title       string                `json:"title" validate:"required,max=200"`
	Description *string               `json:"description" validate:"omitempty,max=1000"`
	DueDate     *time.Time            `json:"due_date"`
	Priority    entities.TaskPriority `json:"priority" validate:"required"`
}

type UpdateTaskRequest struct {
	Title       string                `json:"title" validate:"required,max=200"`
	Description *string               `json:"description" validate:"omitempty,max=1000"`
	DueDate     *time.Time            `json:"due_date"`
	Priority    entities.TaskPriority `json:"priority" validate:"required"`
	Position    int                   `json:"position" validate:"min=0"`
	// ColumnID moves the task to another column when it differs from the
	// task's current one.
	ColumnID *uuid.UUID `json:"column_id"`
}

type TaskResponse struct {
	ID          uuid.UUID             `json:"id"`
	Title       string                `json:"title"`
	Description *string               `json:"description"`
	DueDate     *time.Time            `json:"due_date"`
	Priority    entities.TaskPriority `json:"priority"`
	Position    int                   `json:"position"`
	ColumnID    uuid.UUID             `json:"column_id"`
	WorkspaceID uuid.UUID             `json:"workspace_id"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   *time.Time            `json:"updated_at"`
	Assignees   []AssigneeResponse    `json:"assignees"`
	Tags        []TagResponse         `json:"tags"`
}

// Tag related types

type CreateTagRequest struct {
	Name  string `json:"name" validate:"required,max=50"`
	Color string `json:"color" validate:"required,len=7,startswith=#"`
}

type UpdateTagRequest struct {
	Name  string `json:"name" validate:"required,max=50"`
	Color string `json:"color" validate:"required,len=7,startswith=#"`
}

type TagResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Color     string     `json:"color"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// Assignee related types

type CreateAssigneeRequest struct {
	Name      string  `json:"name" validate:"required,max=100"`
	AvatarURL *string `json:"avatar_url" validate:"omitempty,max=500"`
}

type UpdateAssigneeRequest struct {
	Name      string  `json:"name" validate:"required,max=100"`
	AvatarURL *string `json:"avatar_url" validate:"omitempty,max=500"`
}

type AssigneeResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	AvatarURL *string    `json:"avatar_url"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
