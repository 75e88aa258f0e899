package services

import (
	"context"
	"encoding/json"

	"github.com/timeplan/backend/domain"
	"github.com/timeplan/backend/internal/infrastructure/buffer"
	"github.com/timeplan/backend/usecase"
)

type BufferBridge struct {
	processor *BufferProcessor
}

func NewBufferBridge(processor *BufferProcessor) *BufferBridge {
	return &BufferBridge{processor: processor}
}

func (b *BufferBridge) BufferTask(ctx context.Context, operation string, task *domain.Task) error {
	if b.processor == nil || task == nil {
		return domain.ErrInvalidPayload
	}
	payload, err := json.Marshal(task)
	if err != nil {
		return err
	}
	item := buffer.Item{
		ID:        task.ID,
		UserID:    task.UserID,
		Entity:    buffer.EntityTask,
		Operation: operation,
		Data:      payload,
	}
	return b.processor.BufferOperation(ctx, item)
}

func (b *BufferBridge) BufferGoal(ctx context.Context, operation string, goal *domain.Goal) error {
	if b.processor == nil || goal == nil {
		return domain.ErrInvalidPayload
	}
	payload, err := json.Marshal(goal)
	if err != nil {
		return err
	}
	item := buffer.Item{
		ID:        goal.ID,
		UserID:    goal.UserID,
		Entity:    buffer.EntityGoal,
		Operation: operation,
		Data:      payload,
	}
	return b.processor.BufferOperation(ctx, item)
}

var _ usecase.OperationBuffer = (*BufferBridge)(nil)
