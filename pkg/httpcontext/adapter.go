package httpcontext

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	appLogger "github.com/timeplan/backend/pkg/logger"
)

// Key is the context value key type used for request metadata.
type Key string

const (
	KeyRemoteAddr Key = "remote_addr"
	KeyUserAgent  Key = "user_agent"
)

// Adapter bridges fasthttp.RequestCtx to a stdlib context.Context carrying a
// per-request deadline, a request ID and client metadata.
type Adapter struct {
	timeout time.Duration
}

func NewAdapter(timeout time.Duration) *Adapter {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Adapter{timeout: timeout}
}

// Attach derives a deadline-bound context for the request. The request ID is
// echoed back in the X-Request-ID response header so clients can correlate
// log entries with their calls.
func (a *Adapter) Attach(ctx *fasthttp.RequestCtx) (context.Context, context.CancelFunc) {
	stdCtx, cancel := context.WithTimeout(context.Background(), a.timeout)

	reqID := requestID(ctx)
	stdCtx = appLogger.ContextWithRequestID(stdCtx, reqID)
	ctx.Response.Header.Set("X-Request-ID", reqID)

	if remoteAddr := ctx.RemoteAddr(); remoteAddr != nil {
		stdCtx = context.WithValue(stdCtx, KeyRemoteAddr, remoteAddr.String())
	}
	if ua := string(ctx.Request.Header.UserAgent()); ua != "" {
		stdCtx = context.WithValue(stdCtx, KeyUserAgent, ua)
	}

	return stdCtx, cancel
}

// requestID reuses an inbound X-Request-ID when it is a valid UUID, otherwise
// it mints a fresh one. Arbitrary client strings never reach the logs.
func requestID(ctx *fasthttp.RequestCtx) string {
	if ctx == nil {
		return uuid.NewString()
	}
	header := strings.TrimSpace(string(ctx.Request.Header.Peek("X-Request-ID")))
	if header != "" {
		if id, err := uuid.Parse(header); err == nil {
			return id.String()
		}
	}
	return uuid.NewString()
}
