package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hair-scanner-api/internal/core/server"
	"hair-scanner-api/internal/transport/http/handler"
	mdw "hair-scanner-api/internal/transport/http/middleware"
	resp "hair-scanner-api/internal/transport/http/response"
)

const APIPrefix = "/api"

type APIOptions struct {
	CORSOrigins    []string
	RequestTimeout time.Duration
	MaxBodyBytes   int64
	MaxInFlight    int64
}

type APIDeps struct {
	Log     *zap.Logger
	Tokens  mdw.TokenVerifier
	Users   mdw.UserFinder
	Health  *handler.HealthHandler
	Modules []Module
}

func (o *APIOptions) withDefaults() {
	if o.RequestTimeout <= 0 {
		o.RequestTimeout = 10 * time.Second
	}
	if o.MaxBodyBytes <= 0 {
		o.MaxBodyBytes = 1 << 20
	}
	if o.MaxInFlight <= 0 {
		o.MaxInFlight = 300
	}
}

func NewAPIEngine(d APIDeps, o APIOptions) *gin.Engine {
	o.withDefaults()
	l := d.Log
	if l == nil {
		l = zap.NewNop()
	}

	r := server.NewRouter(l, server.Options{
		CORSOrigins: o.CORSOrigins,
		OnPanic: func(c *gin.Context, _ any) {
			resp.Abort(c, http.StatusInternalServerError, resp.MsgInternal)
		},
	})
	r.Use(
		mdw.RequestID(),
		mdw.ConcurrencyLimit(o.MaxInFlight),
		mdw.MaxBodyBytes(o.MaxBodyBytes),
		mdw.Timeout(o.RequestTimeout),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)
	r.NoRoute(func(c *gin.Context) { resp.Abort(c, http.StatusNotFound, "") })

	api := r.Group(APIPrefix)
	if d.Health != nil {
		d.Health.Mount(api, "/health")
	}

	protected := api.Group("")
	protected.Use(mdw.AuthJWT(d.Tokens, d.Users, l))

	mountModules(api, protected, d.Modules)
	return r
}
