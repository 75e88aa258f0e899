package usecase

import (
	"context"

	"github.com/timeplan/backend/domain"
)

const (
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
	OperationToggle = "toggle"
)

// OperationBuffer abstracts the offline buffer so use cases stay storage-agnostic.
type OperationBuffer interface {
	BufferTask(ctx context.Context, operation string, task *domain.Task) error
	BufferGoal(ctx context.Context, operation string, goal *domain.Goal) error
}
