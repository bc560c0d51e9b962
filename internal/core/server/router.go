package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Options struct {
	CORSOrigins []string
	// OnPanic 写出 500 响应体；为空时只返回状态码
	OnPanic gin.RecoveryFunc
}

func NewRouter(l *zap.Logger, o Options) *gin.Engine {
	r := gin.New()
	onPanic := o.OnPanic
	if onPanic == nil {
		onPanic = func(c *gin.Context, _ any) { c.AbortWithStatus(http.StatusInternalServerError) }
	}
	r.Use(ginzap.CustomRecoveryWithZap(l, true, onPanic))
	if len(o.CORSOrigins) > 0 {
		cfg := cors.DefaultConfig()
		cfg.AllowOrigins = o.CORSOrigins
		cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", "X-Request-ID")
		cfg.ExposeHeaders = []string{"X-Request-ID"}
		r.Use(cors.New(cfg))
	}
	return r
}

// StartHTTP 阻塞运行；正常关闭时返回 nil
func StartHTTP(srv *http.Server, l *zap.Logger, name string) error {
	l.Info("http starting", zap.String("server", name), zap.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func Shutdown(ctx context.Context, l *zap.Logger, servers ...*http.Server) {
	for _, s := range servers {
		if err := s.Shutdown(ctx); err != nil {
			l.Warn("http shutdown", zap.String("addr", s.Addr), zap.Error(err))
		}
	}
}

func BuildServer(addr string, handler http.Handler, rt, wt, it time.Duration) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       rt,
		ReadHeaderTimeout: rt,
		WriteTimeout:      wt,
		IdleTimeout:       it,
		MaxHeaderBytes:    1 << 20, // 1MB
	}
}

func Addr(host string, port int) string { return fmt.Sprintf("%s:%d", host, port) }
