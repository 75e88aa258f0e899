package buffer

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	EntityTask = "task"
	EntityGoal = "goal"

	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
	OperationToggle = "toggle"
)

// Item represents an operation that should be retried when primary storage is unavailable.
type Item struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Entity    string          `json:"entity"`
	Operation string          `json:"operation"`
	Data      json.RawMessage `json:"data"`
	Priority  int             `json:"priority"`
	Retries   int             `json:"retries"`
	Timestamp time.Time       `json:"timestamp"`

	bucketKey []byte
}

func (i *Item) normalize() {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	if i.Priority <= 0 || i.Priority > 5 {
		i.Priority = defaultPriority(i.Entity, i.Operation)
	}
	if i.Timestamp.IsZero() {
		i.Timestamp = time.Now()
	}
}

// defaultPriority orders replay so completions land before edits; a toggle
// carries an analytics increment the user already saw on screen.
func defaultPriority(entity, operation string) int {
	switch {
	case operation == OperationToggle:
		return 1
	case entity == EntityTask:
		return 2
	case entity == EntityGoal:
		return 3
	default:
		return 3
	}
}
