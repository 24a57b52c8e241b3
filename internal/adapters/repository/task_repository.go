package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/projectboard/core/internal/domain/entities"
	"github.com/projectboard/core/internal/ports"
)

// ProjectTaskRepositoryImpl implements the ProjectTaskRepository interface.
// Tasks are returned with their assignee and tag sets loaded; list queries
// batch the association loads with an IN query instead of going per task.
type ProjectTaskRepositoryImpl struct {
	db DBTX
}

// NewProjectTaskRepository creates a new task repository
func NewProjectTaskRepository(db DBTX) ports.ProjectTaskRepository {
	return &ProjectTaskRepositoryImpl{db: db}
}

func (r *ProjectTaskRepositoryImpl) GetAllByWorkspaceID(ctx context.Context, workspaceID uuid.UUID) ([]*entities.ProjectTask, error) {
	query := `
		SELECT id, title, description, due_date, priority, position, column_id, workspace_id, created_at, updated_at
		FROM tasks
		WHERE workspace_id = $1
		ORDER BY position`

	var tasks []*entities.ProjectTask
	if err := r.db.SelectContext(ctx, &tasks, query, workspaceID); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	if err := r.loadAssociations(ctx, tasks); err != nil {
		return nil, err
	}

	return tasks, nil
}

func (r *ProjectTaskRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.ProjectTask, error) {
	query := `
		SELECT id, title, description, due_date, priority, position, column_id, workspace_id, created_at, updated_at
		FROM tasks
		WHERE id = $1`

	var task entities.ProjectTask
	if err := r.db.GetContext(ctx, &task, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.NewNotFoundError("Task", id)
		}
		return nil, fmt.Errorf("get task by id: %w", err)
	}

	if err := r.loadAssociations(ctx, []*entities.ProjectTask{&task}); err != nil {
		return nil, err
	}

	return &task, nil
}

func (r *ProjectTaskRepositoryImpl) Create(ctx context.Context, task *entities.ProjectTask) error {
	query := `
		INSERT INTO tasks (id, title, description, due_date, priority, position, column_id, workspace_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		task.ID, task.Title, task.Description, task.DueDate, task.Priority,
		task.Position, task.ColumnID, task.WorkspaceID, task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}

	return nil
}

func (r *ProjectTaskRepositoryImpl) Update(ctx context.Context, task *entities.ProjectTask) error {
	query := `
		UPDATE tasks
		SET title = $2, description = $3, due_date = $4, priority = $5, position = $6, column_id = $7, updated_at = $8
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		task.ID, task.Title, task.Description, task.DueDate, task.Priority,
		task.Position, task.ColumnID, task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entities.NewNotFoundError("Task", task.ID)
	}

	return nil
}

func (r *ProjectTaskRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM tasks WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entities.NewNotFoundError("Task", id)
	}

	return nil
}

func (r *ProjectTaskRepositoryImpl) GetMaxPosition(ctx context.Context, columnID uuid.UUID) (int, error) {
	query := `SELECT COALESCE(MAX(position), -1) FROM tasks WHERE column_id = $1`

	var maxPosition int
	if err := r.db.GetContext(ctx, &maxPosition, query, columnID); err != nil {
		return 0, fmt.Errorf("get max task position: %w", err)
	}

	return maxPosition, nil
}

func (r *ProjectTaskRepositoryImpl) AddAssignee(ctx context.Context, taskID, assigneeID uuid.UUID) error {
	query := `
		INSERT INTO task_assignees (task_id, assignee_id)
		VALUES ($1, $2)
		ON CONFLICT (task_id, assignee_id) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, query, taskID, assigneeID); err != nil {
		return fmt.Errorf("add task assignee: %w", err)
	}

	return nil
}

func (r *ProjectTaskRepositoryImpl) RemoveAssignee(ctx context.Context, taskID, assigneeID uuid.UUID) error {
	query := `DELETE FROM task_assignees WHERE task_id = $1 AND assignee_id = $2`

	if _, err := r.db.ExecContext(ctx, query, taskID, assigneeID); err != nil {
		return fmt.Errorf("remove task assignee: %w", err)
	}

	return nil
}

func (r *ProjectTaskRepositoryImpl) AddTag(ctx context.Context, taskID, tagID uuid.UUID) error {
	query := `
		INSERT INTO task_tags (task_id, tag_id)
		VALUES ($1, $2)
		ON CONFLICT (task_id, tag_id) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, query, taskID, tagID); err != nil {
		return fmt.Errorf("add task tag: %w", err)
	}

	return nil
}

func (r *ProjectTaskRepositoryImpl) RemoveTag(ctx context.Context, taskID, tagID uuid.UUID) error {
	query := `DELETE FROM task_tags WHERE task_id = $1 AND tag_id = $2`

	if _, err := r.db.ExecContext(ctx, query, taskID, tagID); err != nil {
		return fmt.Errorf("remove task tag: %w", err)
	}

	return nil
}

type taskAssigneeRow struct {
	TaskID uuid.UUID `db:"task_id"`
	entities.Assignee
}

type taskTagRow struct {
	TaskID uuid.UUID `db:"task_id"`
	entities.Tag
}

func (r *ProjectTaskRepositoryImpl) loadAssociations(ctx context.Context, tasks []*entities.ProjectTask) error {
	if len(tasks) == 0 {
		return nil
	}

	taskIDs := make([]uuid.UUID, 0, len(tasks))
	byID := make(map[uuid.UUID]*entities.ProjectTask, len(tasks))
	for _, t := range tasks {
		t.Assignees = []entities.Assignee{}
		t.Tags = []entities.Tag{}
		taskIDs = append(taskIDs, t.ID)
		byID[t.ID] = t
	}

	assigneeQuery := `
		SELECT ta.task_id, a.id, a.name, a.avatar_url, a.user_id, a.created_at, a.updated_at
		FROM task_assignees ta
		JOIN assignees a ON a.id = ta.assignee_id
		WHERE ta.task_id IN (?)
		ORDER BY a.name`

	query, args, err := sqlx.In(assigneeQuery, taskIDs)
	if err != nil {
		return fmt.Errorf("build assignee query: %w", err)
	}

	var assigneeRows []taskAssigneeRow
	if err := r.db.SelectContext(ctx, &assigneeRows, r.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("load task assignees: %w", err)
	}
	for _, row := range assigneeRows {
		task := byID[row.TaskID]
		task.Assignees = append(task.Assignees, row.Assignee)
	}

	tagQuery := `
		SELECT tt.task_id, t.id, t.name, t.color, t.user_id, t.created_at, t.updated_at
		FROM task_tags tt
		JOIN tags t ON t.id = tt.tag_id
		WHERE tt.task_id IN (?)
		ORDER BY t.name`

	query, args, err = sqlx.In(tagQuery, taskIDs)
	if err != nil {
		return fmt.Errorf("build tag query: %w", err)
	}

	var tagRows []taskTagRow
	if err := r.db.SelectContext(ctx, &tagRows, r.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("load task tags: %w", err)
	}
	for _, row := range tagRows {
		task := byID[row.TaskID]
		task.Tags = append(task.Tags, row.Tag)
	}

	return nil
}
