package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/projectboard/core/internal/domain/entities"
	"github.com/projectboard/core/internal/ports"
)

// fetchOwned loads a directly user-owned entity and runs the two-step
// authorization sequence: the repository's not-found result propagates before
// ownership is ever evaluated, so an absent entity can never surface as
// forbidden.
func fetchOwned[T ports.Owned](ctx context.Context, repo ports.OwnedRepository[T], resource string, id uuid.UUID, userID string) (T, error) {
	var zero T

	item, err := repo.GetByID(ctx, id)
	if err != nil {
		return zero, err
	}
	if item.Owner() != userID {
		return zero, entities.NewForbiddenError(resource, id)
	}
	return item, nil
}

// requireWorkspaceAccess authorizes the caller against the owning workspace
// of a workspace-scoped resource. The forbidden error names the resource the
// caller asked for, not the workspace it resolved through.
func requireWorkspaceAccess(ctx context.Context, workspaces ports.WorkspaceRepository, workspaceID uuid.UUID, userID, resource string, resourceID uuid.UUID) error {
	ok, err := workspaces.UserHasAccess(ctx, workspaceID, userID)
	if err != nil {
		return fmt.Errorf("check workspace access: %w", err)
	}
	if !ok {
		return entities.NewForbiddenError(resource, resourceID)
	}
	return nil
}
