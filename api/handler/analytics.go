package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/timeplan/backend/pkg/httpcontext"
	analyticsUC "github.com/timeplan/backend/usecase/analytics"
)

type AnalyticsHandler struct {
	baseHandler
	uc *analyticsUC.UseCase
}

func NewAnalyticsHandler(uc *analyticsUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Productivity counters
// @Tags analytics
// @Router /api/v1/analytics [get]
func (h *AnalyticsHandler) Get(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	stats, err := h.uc.Get(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, stats)
}

// @Summary Chart series
// @Tags analytics
// @Router /api/v1/analytics/charts [get]
func (h *AnalyticsHandler) Charts(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	data, err := h.uc.ChartData(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, data)
}
