package postgres

import (
	"encoding/json"

	"github.com/timeplan/backend/domain"
)

func clampLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return 100
	}
	return limit
}

func marshalMilestones(milestones []domain.Milestone) []byte {
	if len(milestones) == 0 {
		return nil
	}
	b, err := json.Marshal(milestones)
	if err != nil {
		return nil
	}
	return b
}

func unmarshalMilestones(data []byte) []domain.Milestone {
	if len(data) == 0 {
		return nil
	}
	var milestones []domain.Milestone
	if err := json.Unmarshal(data, &milestones); err != nil {
		return nil
	}
	return milestones
}
