package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/timeplan/backend/api/transport"
	"github.com/timeplan/backend/domain"
	"github.com/timeplan/backend/pkg/httpcontext"
	scheduleUC "github.com/timeplan/backend/usecase/schedule"
)

type ScheduleHandler struct {
	baseHandler
	uc *scheduleUC.UseCase
}

func NewScheduleHandler(uc *scheduleUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Generate a schedule
// @Tags schedule
// @Router /api/v1/schedule/generate [post]
func (h *ScheduleHandler) Generate(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.ScheduleRequest
	if len(ctx.PostBody()) > 0 {
		if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
			h.respondInvalid(ctx, "invalid payload")
			return
		}
	}
	horizon := domain.Horizon(req.Horizon)
	if req.Horizon == "" {
		horizon = domain.HorizonDaily
	}
	if !horizon.Valid() {
		h.respondInvalid(ctx, "unknown horizon")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	generated, err := h.uc.Generate(stdCtx, userID, horizon)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, generated)
}

// @Summary Get schedule for a horizon
// @Tags schedule
// @Router /api/v1/schedule/{horizon} [get]
func (h *ScheduleHandler) Get(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	horizon := domain.Horizon(pathParam(ctx, "horizon"))
	if !horizon.Valid() {
		h.respondInvalid(ctx, "unknown horizon")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	schedule, err := h.uc.Get(stdCtx, userID, horizon)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, schedule)
}

// @Summary Export schedule as plain text
// @Tags schedule
// @Router /api/v1/schedule/{horizon}/export [get]
func (h *ScheduleHandler) Export(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	horizon := domain.Horizon(pathParam(ctx, "horizon"))
	if !horizon.Valid() {
		h.respondInvalid(ctx, "unknown horizon")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	text, err := h.uc.Export(stdCtx, userID, horizon)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.Response.Header.SetContentType("text/plain; charset=utf-8")
	ctx.Response.Header.Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("timeplan-%s.txt", horizon)))
	ctx.SetStatusCode(http.StatusOK)
	ctx.SetBodyString(text)
}
