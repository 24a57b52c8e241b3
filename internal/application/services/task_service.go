package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/projectboard/core/internal/domain/entities"
	"github.com/projectboard/core/internal/infrastructure/logger"
	"github.com/projectboard/core/internal/ports"
)

// ProjectTaskService handles task operations, including the task↔assignee
// and task↔tag association sets. Task ownership always resolves through the
// owning workspace even though the task carries its own workspace id.
type ProjectTaskService struct {
	taskRepo      ports.ProjectTaskRepository
	workspaceRepo ports.WorkspaceRepository
	columnRepo    ports.ColumnRepository
	assigneeRepo  ports.AssigneeRepository
	tagRepo       ports.TagRepository
	logger        *logger.Logger
}

// NewProjectTaskService creates a new task service.
func NewProjectTaskService(
	taskRepo ports.ProjectTaskRepository,
	workspaceRepo ports.WorkspaceRepository,
	columnRepo ports.ColumnRepository,
	assigneeRepo ports.AssigneeRepository,
	tagRepo ports.TagRepository,
	logger *logger.Logger,
) *ProjectTaskService {
	return &ProjectTaskService{
		taskRepo:      taskRepo,
		workspaceRepo: workspaceRepo,
		columnRepo:    columnRepo,
		assigneeRepo:  assigneeRepo,
		tagRepo:       tagRepo,
		logger:        logger,
	}
}

// GetAllByWorkspace lists a workspace's tasks with their assignee and tag
// sets, ordered by position.
func (s *ProjectTaskService) GetAllByWorkspace(ctx context.Context, workspaceID uuid.UUID, userID string) ([]ports.TaskResponse, error) {
	if err := requireWorkspaceAccess(ctx, s.workspaceRepo, workspaceID, userID, "workspace", workspaceID); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.GetAllByWorkspaceID(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	out := make([]ports.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}
	return out, nil
}

// GetByID returns a single task after the existence and ownership checks.
func (s *ProjectTaskService) GetByID(ctx context.Context, id uuid.UUID, userID string) (*ports.TaskResponse, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := requireWorkspaceAccess(ctx, s.workspaceRepo, task.WorkspaceID, userID, "task", id); err != nil {
		return nil, err
	}

	resp := toTaskResponse(task)
	return &resp, nil
}

// Create appends a new task at the end of the target column. Absence of the
// workspace or of the column within it reports NotFound before ownership.
func (s *ProjectTaskService) Create(ctx context.Context, workspaceID, columnID uuid.UUID, req ports.CreateTaskRequest, userID string) (*ports.TaskResponse, error) {
	exists, err := s.columnRepo.WorkspaceExists(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("check workspace: %w", err)
	}
	if !exists {
		return nil, entities.NewNotFoundError("Workspace", workspaceID)
	}

	if err := requireWorkspaceAccess(ctx, s.workspaceRepo, workspaceID, userID, "workspace", workspaceID); err != nil {
		return nil, err
	}

	inWorkspace, err := s.columnRepo.ExistsInWorkspace(ctx, columnID, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("check column: %w", err)
	}
	if !inWorkspace {
		return nil, entities.NewNotFoundError("Column", columnID)
	}

	maxPosition, err := s.taskRepo.GetMaxPosition(ctx, columnID)
	if err != nil {
		return nil, fmt.Errorf("get max task position: %w", err)
	}

	task, err := entities.NewProjectTask(workspaceID, columnID, req.Title, req.Priority, maxPosition+1, req.Description, req.DueDate)
	if err != nil {
		return nil, err
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	s.logger.Infow("Task created", "task_id", task.ID, "column_id", columnID, "user_id", userID)

	resp := toTaskResponse(task)
	return &resp, nil
}

// Update replaces the task's descriptive fields and position. A differing
// column id in the request moves the task, after validating that the target
// column belongs to the same workspace.
func (s *ProjectTaskService) Update(ctx context.Context, id uuid.UUID, req ports.UpdateTaskRequest, userID string) (*ports.TaskResponse, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := requireWorkspaceAccess(ctx, s.workspaceRepo, task.WorkspaceID, userID, "task", id); err != nil {
		return nil, err
	}

	if err := task.UpdateDetails(req.Title, req.Description, req.DueDate, req.Priority); err != nil {
		return nil, err
	}

	if req.ColumnID != nil && *req.ColumnID != task.ColumnID {
		inWorkspace, err := s.columnRepo.ExistsInWorkspace(ctx, *req.ColumnID, task.WorkspaceID)
		if err != nil {
			return nil, fmt.Errorf("check column: %w", err)
		}
		if !inWorkspace {
			return nil, entities.NewNotFoundError("Column", *req.ColumnID)
		}
		if err := task.MoveToColumn(*req.ColumnID, req.Position); err != nil {
			return nil, err
		}
	} else {
		task.UpdatePosition(req.Position)
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}

	resp := toTaskResponse(task)
	return &resp, nil
}

// Delete removes the task.
func (s *ProjectTaskService) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := requireWorkspaceAccess(ctx, s.workspaceRepo, task.WorkspaceID, userID, "task", id); err != nil {
		return err
	}

	if err := s.taskRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	s.logger.Infow("Task deleted", "task_id", id, "user_id", userID)
	return nil
}

// AddAssignee attaches an assignee to the task. Both sides are authorized:
// the task through its workspace and the assignee against its own owner.
func (s *ProjectTaskService) AddAssignee(ctx context.Context, taskID, assigneeID uuid.UUID, userID string) (*ports.TaskResponse, error) {
	if err := s.authorizeTask(ctx, taskID, userID); err != nil {
		return nil, err
	}
	if _, err := fetchOwned[*entities.Assignee](ctx, s.assigneeRepo, "assignee", assigneeID, userID); err != nil {
		return nil, err
	}

	if err := s.taskRepo.AddAssignee(ctx, taskID, assigneeID); err != nil {
		return nil, fmt.Errorf("add assignee to task: %w", err)
	}

	return s.reload(ctx, taskID)
}

// RemoveAssignee detaches an assignee from the task.
func (s *ProjectTaskService) RemoveAssignee(ctx context.Context, taskID, assigneeID uuid.UUID, userID string) (*ports.TaskResponse, error) {
	if err := s.authorizeTask(ctx, taskID, userID); err != nil {
		return nil, err
	}
	if _, err := fetchOwned[*entities.Assignee](ctx, s.assigneeRepo, "assignee", assigneeID, userID); err != nil {
		return nil, err
	}

	if err := s.taskRepo.RemoveAssignee(ctx, taskID, assigneeID); err != nil {
		return nil, fmt.Errorf("remove assignee from task: %w", err)
	}

	return s.reload(ctx, taskID)
}

// AddTag attaches a tag to the task, with the same double authorization as
// assignees: another user's tag is forbidden even on the caller's own task.
func (s *ProjectTaskService) AddTag(ctx context.Context, taskID, tagID uuid.UUID, userID string) (*ports.TaskResponse, error) {
	if err := s.authorizeTask(ctx, taskID, userID); err != nil {
		return nil, err
	}
	if _, err := fetchOwned[*entities.Tag](ctx, s.tagRepo, "tag", tagID, userID); err != nil {
		return nil, err
	}

	if err := s.taskRepo.AddTag(ctx, taskID, tagID); err != nil {
		return nil, fmt.Errorf("add tag to task: %w", err)
	}

	return s.reload(ctx, taskID)
}

// RemoveTag detaches a tag from the task.
func (s *ProjectTaskService) RemoveTag(ctx context.Context, taskID, tagID uuid.UUID, userID string) (*ports.TaskResponse, error) {
	if err := s.authorizeTask(ctx, taskID, userID); err != nil {
		return nil, err
	}
	if _, err := fetchOwned[*entities.Tag](ctx, s.tagRepo, "tag", tagID, userID); err != nil {
		return nil, err
	}

	if err := s.taskRepo.RemoveTag(ctx, taskID, tagID); err != nil {
		return nil, fmt.Errorf("remove tag from task: %w", err)
	}

	return s.reload(ctx, taskID)
}

func (s *ProjectTaskService) authorizeTask(ctx context.Context, taskID uuid.UUID, userID string) error {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	return requireWorkspaceAccess(ctx, s.workspaceRepo, task.WorkspaceID, userID, "task", taskID)
}

func (s *ProjectTaskService) reload(ctx context.Context, taskID uuid.UUID) (*ports.TaskResponse, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("reload task: %w", err)
	}

	resp := toTaskResponse(task)
	return &resp, nil
}

func toTaskResponse(t *entities.ProjectTask) ports.TaskResponse {
	assignees := make([]ports.AssigneeResponse, 0, len(t.Assignees))
	for i := range t.Assignees {
		assignees = append(assignees, toAssigneeResponse(&t.Assignees[i]))
	}

	tags := make([]ports.TagResponse, 0, len(t.Tags))
	for i := range t.Tags {
		tags = append(tags, toTagResponse(&t.Tags[i]))
	}

	return ports.TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Priority:    t.Priority,
		Position:    t.Position,
		ColumnID:    t.ColumnID,
		WorkspaceID: t.WorkspaceID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		Assignees:   assignees,
		Tags:        tags,
	}
}
