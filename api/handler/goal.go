package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/timeplan/backend/api/transport"
	"github.com/timeplan/backend/domain"
	"github.com/timeplan/backend/pkg/httpcontext"
	"github.com/timeplan/backend/repository"
	goalUC "github.com/timeplan/backend/usecase/goal"
)

type GoalHandler struct {
	baseHandler
	uc *goalUC.UseCase
}

func NewGoalHandler(uc *goalUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *GoalHandler {
	return &GoalHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List goals
// @Tags goals
// @Router /api/v1/goals [get]
func (h *GoalHandler) GetGoals(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	filter := repository.GoalFilter{
		UserID: userID,
		Limit:  parseInt(string(ctx.QueryArgs().Peek("limit")), 50),
		Offset: parseInt(string(ctx.QueryArgs().Peek("offset")), 0),
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	goals, err := h.uc.ListGoals(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, goals)
}

// @Summary Create goal
// @Tags goals
// @Router /api/v1/goals [post]
func (h *GoalHandler) CreateGoal(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.GoalRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		h.respondInvalid(ctx, "deadline must be RFC3339 or YYYY-MM-DD")
		return
	}

	goal := &domain.Goal{
		ID:       req.ID,
		UserID:   userID,
		Title:    req.Title,
		Category: domain.GoalCategory(req.Category),
		Deadline: deadline,
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.CreateGoal(stdCtx, goal)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Update goal progress
// @Tags goals
// @Router /api/v1/goals/{id}/progress [put]
func (h *GoalHandler) UpdateProgress(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	id := pathParam(ctx, "id")
	if id == "" {
		h.respondInvalid(ctx, "missing goal id")
		return
	}

	var req transport.ProgressRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	goal, err := h.uc.UpdateProgress(stdCtx, id, req.Progress)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, goal)
}

// @Summary Delete goal
// @Tags goals
// @Router /api/v1/goals/{id} [delete]
func (h *GoalHandler) DeleteGoal(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	id := pathParam(ctx, "id")
	if id == "" {
		h.respondInvalid(ctx, "missing goal id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteGoal(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

// @Summary Goal recommendations
// @Tags goals
// @Router /api/v1/goals/{id}/recommendations [get]
func (h *GoalHandler) Recommendations(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	id := pathParam(ctx, "id")
	if id == "" {
		h.respondInvalid(ctx, "missing goal id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	recs, err := h.uc.Recommendations(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, recs)
}

func parseDeadline(value string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", value)
}
