package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/projectboard/core/internal/infrastructure/database"
	"github.com/projectboard/core/internal/ports"
)

// DBTX is the sqlx surface the repositories run against. Both *sqlx.DB and
// *sqlx.Tx satisfy it, so the same repository code serves plain calls and the
// onboarding transaction.
type DBTX interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// NewRepositories builds the full repository bundle over one executor.
func NewRepositories(db DBTX) ports.Repositories {
	return ports.Repositories{
		Workspaces: NewWorkspaceRepository(db),
		Columns:    NewColumnRepository(db),
		Tasks:      NewProjectTaskRepository(db),
		Tags:       NewTagRepository(db),
		Assignees:  NewAssigneeRepository(db),
	}
}

// TransactorImpl implements the Transactor interface over the database wrapper.
type TransactorImpl struct {
	db *database.DB
}

// NewTransactor creates a new transactor.
func NewTransactor(db *database.DB) ports.Transactor {
	return &TransactorImpl{db: db}
}

func (t *TransactorImpl) WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos ports.Repositories) error) error {
	return t.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		return fn(ctx, NewRepositories(tx))
	})
}
