package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/timeplan/backend/api/transport"
	"github.com/timeplan/backend/domain"
	"github.com/timeplan/backend/pkg/httpcontext"
	settingsUC "github.com/timeplan/backend/usecase/settings"
)

type SettingsHandler struct {
	baseHandler
	uc *settingsUC.UseCase
}

func NewSettingsHandler(uc *settingsUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Get preferences
// @Tags settings
// @Router /api/v1/settings [get]
func (h *SettingsHandler) Get(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	settings, err := h.uc.Get(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, settings)
}

// @Summary Save preferences
// @Tags settings
// @Router /api/v1/settings [put]
func (h *SettingsHandler) Save(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.SettingsRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	settings := &domain.Settings{
		UserID:        userID,
		WorkStart:     req.WorkStart,
		WorkEnd:       req.WorkEnd,
		AutoBreaks:    req.AutoBreaks,
		BreakDuration: req.BreakDuration,
		TaskReminders: req.TaskReminders,
		GoalReminders: req.GoalReminders,
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	saved, err := h.uc.Save(stdCtx, settings)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, saved)
}
