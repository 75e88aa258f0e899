package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/timeplan/backend/pkg/httpcontext"
	tipsUC "github.com/timeplan/backend/usecase/tips"
)

type TipsHandler struct {
	baseHandler
	uc *tipsUC.UseCase
}

func NewTipsHandler(uc *tipsUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *TipsHandler {
	return &TipsHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Personalized tips
// @Tags tips
// @Router /api/v1/tips [get]
func (h *TipsHandler) Get(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	bundle, err := h.uc.Bundle(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, bundle)
}
