package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"hair-scanner-api/internal/core/server"
	"hair-scanner-api/internal/transport/http/handler"
)

// NewAdminEngine 运维端口：/metrics + /health，只应绑定内网地址
func NewAdminEngine(l *zap.Logger, health *handler.HealthHandler) *gin.Engine {
	if l == nil {
		l = zap.NewNop()
	}
	r := server.NewRouter(l, server.Options{})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if health != nil {
		health.Mount(r, "/health")
	}
	return r
}
