package services

import (
	"context"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/projectboard/core/internal/domain/entities"
	"github.com/projectboard/core/internal/infrastructure/config"
	"github.com/projectboard/core/internal/infrastructure/logger"
	"github.com/projectboard/core/internal/ports"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	l, err := logger.New(config.LoggerConfig{Level: "error", Format: "json", Output: "stdout"})
	require.NoError(t, err)
	return l
}

// In-memory repository fakes. They mirror the persistence contracts exactly:
// lookups return NotFoundError on a miss and GetMaxPosition reports -1 for an
// empty scope.

type memWorkspaceRepo struct {
	workspaces map[uuid.UUID]*entities.Workspace
}

func newMemWorkspaceRepo() *memWorkspaceRepo {
	return &memWorkspaceRepo{workspaces: make(map[uuid.UUID]*entities.Workspace)}
}

func (r *memWorkspaceRepo) GetAllByUserID(_ context.Context, userID string) ([]*entities.Workspace, error) {
	var out []*entities.Workspace
	for _, ws := range r.workspaces {
		if ws.UserID == userID {
			out = append(out, ws)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (r *memWorkspaceRepo) GetByID(_ context.Context, id uuid.UUID) (*entities.Workspace, error) {
	ws, ok := r.workspaces[id]
	if !ok {
		return nil, entities.NewNotFoundError("Workspace", id)
	}
	copied := *ws
	return &copied, nil
}

func (r *memWorkspaceRepo) Create(_ context.Context, ws *entities.Workspace) error {
	copied := *ws
	r.workspaces[ws.ID] = &copied
	return nil
}

func (r *memWorkspaceRepo) Update(_ context.Context, ws *entities.Workspace) error {
	if _, ok := r.workspaces[ws.ID]; !ok {
		return entities.NewNotFoundError("Workspace", ws.ID)
	}
	copied := *ws
	r.workspaces[ws.ID] = &copied
	return nil
}

func (r *memWorkspaceRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.workspaces[id]; !ok {
		return entities.NewNotFoundError("Workspace", id)
	}
	delete(r.workspaces, id)
	return nil
}

func (r *memWorkspaceRepo) GetMaxPosition(_ context.Context, userID string) (int, error) {
	max := -1
	for _, ws := range r.workspaces {
		if ws.UserID == userID && ws.Position > max {
			max = ws.Position
		}
	}
	return max, nil
}

func (r *memWorkspaceRepo) UserHasAccess(_ context.Context, workspaceID uuid.UUID, userID string) (bool, error) {
	ws, ok := r.workspaces[workspaceID]
	return ok && ws.UserID == userID, nil
}

type memColumnRepo struct {
	columns    map[uuid.UUID]*entities.Column
	workspaces *memWorkspaceRepo
}

func newMemColumnRepo(workspaces *memWorkspaceRepo) *memColumnRepo {
	return &memColumnRepo{
		columns:    make(map[uuid.UUID]*entities.Column),
		workspaces: workspaces,
	}
}

func (r *memColumnRepo) GetAllByWorkspace(_ context.Context, workspaceID uuid.UUID) ([]*entities.Column, error) {
	var out []*entities.Column
	for _, col := range r.columns {
		if col.WorkspaceID == workspaceID {
			out = append(out, col)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (r *memColumnRepo) GetByID(_ context.Context, id uuid.UUID) (*entities.Column, error) {
	col, ok := r.columns[id]
	if !ok {
		return nil, entities.NewNotFoundError("Column", id)
	}
	copied := *col
	return &copied, nil
}

func (r *memColumnRepo) Create(_ context.Context, col *entities.Column) error {
	copied := *col
	r.columns[col.ID] = &copied
	return nil
}

func (r *memColumnRepo) Update(_ context.Context, col *entities.Column) error {
	if _, ok := r.columns[col.ID]; !ok {
		return entities.NewNotFoundError("Column", col.ID)
	}
	copied := *col
	r.columns[col.ID] = &copied
	return nil
}

func (r *memColumnRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.columns[id]; !ok {
		return entities.NewNotFoundError("Column", id)
	}
	delete(r.columns, id)
	return nil
}

func (r *memColumnRepo) GetMaxPosition(_ context.Context, workspaceID uuid.UUID) (int, error) {
	max := -1
	for _, col := range r.columns {
		if col.WorkspaceID == workspaceID && col.Position > max {
			max = col.Position
		}
	}
	return max, nil
}

func (r *memColumnRepo) WorkspaceExists(_ context.Context, workspaceID uuid.UUID) (bool, error) {
	_, ok := r.workspaces.workspaces[workspaceID]
	return ok, nil
}

func (r *memColumnRepo) ExistsInWorkspace(_ context.Context, columnID, workspaceID uuid.UUID) (bool, error) {
	col, ok := r.columns[columnID]
	return ok && col.WorkspaceID == workspaceID, nil
}

type memTaskRepo struct {
	tasks     map[uuid.UUID]*entities.ProjectTask
	assignees *memAssigneeRepo
	tags      *memTagRepo

	taskAssignees map[uuid.UUID][]uuid.UUID
	taskTags      map[uuid.UUID][]uuid.UUID
}

func newMemTaskRepo(assignees *memAssigneeRepo, tags *memTagRepo) *memTaskRepo {
	return &memTaskRepo{
		tasks:         make(map[uuid.UUID]*entities.ProjectTask),
		assignees:     assignees,
		tags:          tags,
		taskAssignees: make(map[uuid.UUID][]uuid.UUID),
		taskTags:      make(map[uuid.UUID][]uuid.UUID),
	}
}

func (r *memTaskRepo) loaded(task *entities.ProjectTask) *entities.ProjectTask {
	copied := *task
	copied.Assignees = []entities.Assignee{}
	copied.Tags = []entities.Tag{}
	for _, id := range r.taskAssignees[task.ID] {
		if a, ok := r.assignees.assignees[id]; ok {
			copied.Assignees = append(copied.Assignees, *a)
		}
	}
	for _, id := range r.taskTags[task.ID] {
		if tg, ok := r.tags.tags[id]; ok {
			copied.Tags = append(copied.Tags, *tg)
		}
	}
	return &copied
}

func (r *memTaskRepo) GetAllByWorkspaceID(_ context.Context, workspaceID uuid.UUID) ([]*entities.ProjectTask, error) {
	var out []*entities.ProjectTask
	for _, task := range r.tasks {
		if task.WorkspaceID == workspaceID {
			out = append(out, r.loaded(task))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (r *memTaskRepo) GetByID(_ context.Context, id uuid.UUID) (*entities.ProjectTask, error) {
	task, ok := r.tasks[id]
	if !ok {
		return nil, entities.NewNotFoundError("Task", id)
	}
	return r.loaded(task), nil
}

func (r *memTaskRepo) Create(_ context.Context, task *entities.ProjectTask) error {
	copied := *task
	r.tasks[task.ID] = &copied
	return nil
}

func (r *memTaskRepo) Update(_ context.Context, task *entities.ProjectTask) error {
	if _, ok := r.tasks[task.ID]; !ok {
		return entities.NewNotFoundError("Task", task.ID)
	}
	copied := *task
	r.tasks[task.ID] = &copied
	return nil
}

func (r *memTaskRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.tasks[id]; !ok {
		return entities.NewNotFoundError("Task", id)
	}
	delete(r.tasks, id)
	return nil
}

func (r *memTaskRepo) GetMaxPosition(_ context.Context, columnID uuid.UUID) (int, error) {
	max := -1
	for _, task := range r.tasks {
		if task.ColumnID == columnID && task.Position > max {
			max = task.Position
		}
	}
	return max, nil
}

func (r *memTaskRepo) AddAssignee(_ context.Context, taskID, assigneeID uuid.UUID) error {
	for _, id := range r.taskAssignees[taskID] {
		if id == assigneeID {
			return nil
		}
	}
	r.taskAssignees[taskID] = append(r.taskAssignees[taskID], assigneeID)
	return nil
}

func (r *memTaskRepo) RemoveAssignee(_ context.Context, taskID, assigneeID uuid.UUID) error {
	ids := r.taskAssignees[taskID]
	for i, id := range ids {
		if id == assigneeID {
			r.taskAssignees[taskID] = append(ids[:i], ids[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *memTaskRepo) AddTag(_ context.Context, taskID, tagID uuid.UUID) error {
	for _, id := range r.taskTags[taskID] {
		if id == tagID {
			return nil
		}
	}
	r.taskTags[taskID] = append(r.taskTags[taskID], tagID)
	return nil
}

func (r *memTaskRepo) RemoveTag(_ context.Context, taskID, tagID uuid.UUID) error {
	ids := r.taskTags[taskID]
	for i, id := range ids {
		if id == tagID {
			r.taskTags[taskID] = append(ids[:i], ids[i+1:]...)
			return nil
		}
	}
	return nil
}

type memTagRepo struct {
	tags map[uuid.UUID]*entities.Tag
}

func newMemTagRepo() *memTagRepo {
	return &memTagRepo{tags: make(map[uuid.UUID]*entities.Tag)}
}

func (r *memTagRepo) GetAllByUserID(_ context.Context, userID string) ([]*entities.Tag, error) {
	var out []*entities.Tag
	for _, tag := range r.tags {
		if tag.UserID == userID {
			out = append(out, tag)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memTagRepo) GetByID(_ context.Context, id uuid.UUID) (*entities.Tag, error) {
	tag, ok := r.tags[id]
	if !ok {
		return nil, entities.NewNotFoundError("Tag", id)
	}
	copied := *tag
	return &copied, nil
}

func (r *memTagRepo) Create(_ context.Context, tag *entities.Tag) error {
	copied := *tag
	r.tags[tag.ID] = &copied
	return nil
}

func (r *memTagRepo) Update(_ context.Context, tag *entities.Tag) error {
	if _, ok := r.tags[tag.ID]; !ok {
		return entities.NewNotFoundError("Tag", tag.ID)
	}
	copied := *tag
	r.tags[tag.ID] = &copied
	return nil
}

func (r *memTagRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.tags[id]; !ok {
		return entities.NewNotFoundError("Tag", id)
	}
	delete(r.tags, id)
	return nil
}

type memAssigneeRepo struct {
	assignees map[uuid.UUID]*entities.Assignee
}

func newMemAssigneeRepo() *memAssigneeRepo {
	return &memAssigneeRepo{assignees: make(map[uuid.UUID]*entities.Assignee)}
}

func (r *memAssigneeRepo) GetAllByUserID(_ context.Context, userID string) ([]*entities.Assignee, error) {
	var out []*entities.Assignee
	for _, a := range r.assignees {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memAssigneeRepo) GetByID(_ context.Context, id uuid.UUID) (*entities.Assignee, error) {
	a, ok := r.assignees[id]
	if !ok {
		return nil, entities.NewNotFoundError("Assignee", id)
	}
	copied := *a
	return &copied, nil
}

func (r *memAssigneeRepo) Create(_ context.Context, a *entities.Assignee) error {
	copied := *a
	r.assignees[a.ID] = &copied
	return nil
}

func (r *memAssigneeRepo) Update(_ context.Context, a *entities.Assignee) error {
	if _, ok := r.assignees[a.ID]; !ok {
		return entities.NewNotFoundError("Assignee", a.ID)
	}
	copied := *a
	r.assignees[a.ID] = &copied
	return nil
}

func (r *memAssigneeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.assignees[id]; !ok {
		return entities.NewNotFoundError("Assignee", id)
	}
	delete(r.assignees, id)
	return nil
}

// memTransactor runs the callback directly against the in-memory repos. The
// rollback behavior of a real transaction is not simulated.
type memTransactor struct {
	repos ports.Repositories
}

func (t *memTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos ports.Repositories) error) error {
	return fn(ctx, t.repos)
}

// testEnv bundles the fakes and services for the ownership and ordering tests.
type testEnv struct {
	workspaces *memWorkspaceRepo
	columns    *memColumnRepo
	tasks      *memTaskRepo
	tags       *memTagRepo
	assignees  *memAssigneeRepo

	workspaceService *WorkspaceService
	columnService    *ColumnService
	taskService      *ProjectTaskService
	tagService       *TagService
	assigneeService  *AssigneeService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log := newTestLogger(t)
	workspaces := newMemWorkspaceRepo()
	columns := newMemColumnRepo(workspaces)
	tags := newMemTagRepo()
	assignees := newMemAssigneeRepo()
	tasks := newMemTaskRepo(assignees, tags)

	return &testEnv{
		workspaces:       workspaces,
		columns:          columns,
		tasks:            tasks,
		tags:             tags,
		assignees:        assignees,
		workspaceService: NewWorkspaceService(workspaces, log),
		columnService:    NewColumnService(columns, workspaces, log),
		taskService:      NewProjectTaskService(tasks, workspaces, columns, assignees, tags, log),
		tagService:       NewTagService(tags, log),
		assigneeService:  NewAssigneeService(assignees, log),
	}
}
