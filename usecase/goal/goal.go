package goal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/timeplan/backend/domain"
	"github.com/timeplan/backend/repository"
	"github.com/timeplan/backend/usecase"
)

type UseCase struct {
	goals     repository.GoalRepository
	analytics repository.AnalyticsRepository
	buffer    usecase.OperationBuffer
	logger    *zap.Logger
}

func New(
	goals repository.GoalRepository,
	analytics repository.AnalyticsRepository,
	buffer usecase.OperationBuffer,
	logger *zap.Logger,
) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		goals:     goals,
		analytics: analytics,
		buffer:    buffer,
		logger:    logger,
	}
}

func (uc *UseCase) ListGoals(ctx context.Context, filter repository.GoalFilter) ([]domain.Goal, error) {
	return uc.goals.List(ctx, filter)
}

func (uc *UseCase) GetGoal(ctx context.Context, id string) (*domain.Goal, error) {
	return uc.goals.GetByID(ctx, id)
}

// CreateGoal validates the goal and seeds its milestones from the distance
// to the deadline.
func (uc *UseCase) CreateGoal(ctx context.Context, goal *domain.Goal) (*domain.Goal, error) {
	goal.Title = strings.TrimSpace(goal.Title)
	if goal.Title == "" {
		return nil, domain.ErrEmptyTitle
	}
	if goal.Category == "" {
		goal.Category = domain.GoalPersonal
	}

	if goal.ID == "" {
		goal.ID = uuid.NewString()
	}
	now := time.Now()
	goal.Progress = 0
	goal.Completed = false
	goal.CreatedAt = now
	goal.UpdatedAt = now
	goal.Milestones = Milestones(goal.Deadline, now)

	created, err := uc.goals.Create(ctx, goal)
	if err != nil {
		if uc.shouldBuffer(ctx, usecase.OperationCreate, goal) {
			return goal, nil
		}
		return nil, err
	}
	return created, nil
}

func (uc *UseCase) UpdateGoal(ctx context.Context, goal *domain.Goal) (*domain.Goal, error) {
	goal.Title = strings.TrimSpace(goal.Title)
	if goal.Title == "" {
		return nil, domain.ErrEmptyTitle
	}
	goal.UpdatedAt = time.Now()

	if err := uc.goals.Update(ctx, goal); err != nil {
		if err == domain.ErrGoalNotFound {
			return nil, err
		}
		if uc.shouldBuffer(ctx, usecase.OperationUpdate, goal) {
			return goal, nil
		}
		return nil, err
	}
	return goal, nil
}

func (uc *UseCase) DeleteGoal(ctx context.Context, id string) error {
	goal, err := uc.goals.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.goals.Delete(ctx, id); err != nil {
		if err == domain.ErrGoalNotFound {
			return err
		}
		if uc.shouldBuffer(ctx, usecase.OperationDelete, goal) {
			return nil
		}
		return err
	}
	return nil
}

// UpdateProgress clamps progress to 0-100. Reaching 100 completes the goal
// and bumps the user's achieved counter exactly once.
func (uc *UseCase) UpdateProgress(ctx context.Context, id string, progress int) (*domain.Goal, error) {
	goal, err := uc.goals.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	wasCompleted := goal.Completed
	goal.Progress = progress
	goal.Completed = progress == 100
	goal.UpdatedAt = time.Now()

	if err := uc.goals.Update(ctx, goal); err != nil {
		if !uc.shouldBuffer(ctx, usecase.OperationUpdate, goal) {
			return nil, err
		}
	}

	if goal.Completed && !wasCompleted && uc.analytics != nil {
		if _, err := uc.analytics.Apply(ctx, goal.UserID, repository.AnalyticsDelta{GoalsAchieved: 1}); err != nil {
			uc.logger.Error("failed to record achieved goal",
				zap.String("goal_id", goal.ID), zap.Error(err))
		}
	}
	return goal, nil
}

// Recommendations returns category advice plus one pacing tip keyed to how
// far away the deadline is.
func (uc *UseCase) Recommendations(ctx context.Context, id string) ([]string, error) {
	goal, err := uc.goals.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var recs []string
	switch goal.Category {
	case domain.GoalLearning:
		recs = append(recs,
			"Break down your learning goal into daily study sessions",
			"Create a practice schedule with regular reviews",
			"Find online courses or resources to support your learning",
		)
	case domain.GoalFitness:
		recs = append(recs,
			"Start with small, achievable daily exercises",
			"Track your progress with measurements or photos",
			"Find a workout buddy or join a fitness community",
		)
	case domain.GoalCareer:
		recs = append(recs,
			"Update your skills regularly with online courses",
			"Network with professionals in your field",
			"Set monthly career development check-ins",
		)
	}

	days := goal.DaysUntilDeadline(time.Now())
	switch {
	case days > 90:
		recs = append(recs, "This is a long-term goal. Break it into quarterly milestones")
	case days > 30:
		recs = append(recs, "Create weekly action plans to stay on track")
	default:
		recs = append(recs, "Focus on daily actions to achieve this goal quickly")
	}
	return recs, nil
}

// Milestones derives checkpoint entries from the deadline distance: monthly
// checkpoints past 30 days (capped at six), weekly reviews past 7 days,
// otherwise one target per remaining day with a minimum of one.
func Milestones(deadline, now time.Time) []domain.Milestone {
	days := daysBetween(now, deadline)

	var milestones []domain.Milestone
	switch {
	case days > 30:
		months := (days + 29) / 30
		if months > 6 {
			months = 6
		}
		for i := 1; i <= months; i++ {
			milestones = append(milestones, domain.Milestone{
				Title:      fmt.Sprintf("Month %d checkpoint", i),
				TargetDate: now.AddDate(0, 0, i*30),
			})
		}
	case days > 7:
		weeks := (days + 6) / 7
		for i := 1; i <= weeks; i++ {
			milestones = append(milestones, domain.Milestone{
				Title:      fmt.Sprintf("Week %d progress review", i),
				TargetDate: now.AddDate(0, 0, i*7),
			})
		}
	default:
		if days < 1 {
			days = 1
		}
		for i := 1; i <= days; i++ {
			milestones = append(milestones, domain.Milestone{
				Title:      fmt.Sprintf("Day %d target", i),
				TargetDate: now.AddDate(0, 0, i),
			})
		}
	}
	return milestones
}

func daysBetween(from, to time.Time) int {
	diff := to.Sub(from)
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return days
}

func (uc *UseCase) shouldBuffer(ctx context.Context, operation string, goal *domain.Goal) bool {
	if uc.buffer == nil {
		return false
	}
	if err := uc.buffer.BufferGoal(ctx, operation, goal); err != nil {
		uc.logger.Error("failed to buffer goal operation", zap.String("operation", operation), zap.Error(err))
		return false
	}
	uc.logger.Warn("goal operation buffered", zap.String("operation", operation))
	return true
}
