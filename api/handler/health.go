package handler

import (
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/timeplan/backend/api/transport"
	"github.com/timeplan/backend/internal/infrastructure/monitor"
	"github.com/timeplan/backend/pkg/httpcontext"
)

type HealthHandler struct {
	baseHandler
	monitor *monitor.Monitor
}

func NewHealthHandler(mon *monitor.Monitor, adapter *httpcontext.Adapter, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		monitor:     mon,
	}
}

// @Summary Health check
// @Tags health
// @Router /health [get]
func (h *HealthHandler) Check(ctx *fasthttp.RequestCtx) {
	status := h.monitor.GetStatus()

	mode := "ok"
	switch {
	case !status.PostgreSQL:
		mode = "buffering"
	case !status.Redis:
		mode = "degraded"
	}

	payload := map[string]interface{}{
		"mode":      mode,
		"timestamp": time.Now().UTC(),
		"services": map[string]interface{}{
			"postgresql": status.PostgreSQL,
			"redis":      status.Redis,
			"buffer": map[string]interface{}{
				"online": status.Buffer,
				"size":   status.BufferSize,
			},
		},
	}

	if mode == "ok" {
		h.respondSuccess(ctx, http.StatusOK, payload)
		return
	}
	env := transport.NewError("DEGRADED", "dependencies unhealthy")
	env.Data = payload
	h.respondJSON(ctx, http.StatusServiceUnavailable, env)
}
