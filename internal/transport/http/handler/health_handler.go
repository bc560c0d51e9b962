package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Check func(ctx context.Context) error

type HealthHandler struct {
	checks  map[string]Check
	timeout time.Duration
	log     *zap.Logger
}

func NewHealthHandler(checks map[string]Check, l *zap.Logger) *HealthHandler {
	if l == nil {
		l = zap.NewNop()
	}
	return &HealthHandler{checks: checks, timeout: 2 * time.Second, log: l}
}

// Health 依赖全部可用 → 200 {"status":"ok"}，否则 503 {"status":"error"}
func (h *HealthHandler) Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status, code := "ok", http.StatusOK
	for _, name := range names {
		ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
		err := h.checks[name](ctx)
		cancel()
		if err != nil {
			h.log.Warn("health check failed", zap.String("check", name), zap.Error(err))
			status, code = "error", http.StatusServiceUnavailable
		}
	}
	if c.Request.Method == http.MethodHead {
		c.Status(code)
		return
	}
	c.JSON(code, gin.H{"status": status})
}

func (h *HealthHandler) Mount(r gin.IRoutes, path string) {
	r.GET(path, h.Health)
	r.HEAD(path, h.Health)
}
