package ez

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	resp "hair-scanner-api/internal/transport/http/response"
)

// 绑定方式
type Binder string

const (
	BindJSON  Binder = "json"  // 从 JSON 绑定
	BindQuery Binder = "query" // 从 URL ?a=b 绑定
	BindNone  Binder = "none"  // 不绑定
)

// Action I 入参，O 出参；O 实现 StatusCoder 时以其状态码为准
type Action[I any, O any] struct {
	Method  string
	Path    string
	Binder  Binder
	Status  int // 默认 200
	Handler func(c *gin.Context, in *I) (O, error)
}

type StatusCoder interface{ HTTPStatus() int }

type EZ struct {
	g   *gin.RouterGroup
	log *zap.Logger
}

func New(g *gin.RouterGroup, l *zap.Logger) EZ {
	registerValidators()
	if l == nil {
		l = zap.NewNop()
	}
	return EZ{g: g, log: l}
}

func Register[I any, O any](e EZ, a Action[I, O]) {
	h := func(c *gin.Context) {
		var in I
		var bindErr error
		switch a.Binder {
		case BindJSON:
			bindErr = c.ShouldBindJSON(&in)
		case BindQuery:
			bindErr = c.ShouldBindQuery(&in)
		}
		if bindErr != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(bindErr, &tooLarge) {
				resp.Abort(c, http.StatusRequestEntityTooLarge, "")
				return
			}
			resp.Abort(c, http.StatusBadRequest, BindingMessage(bindErr))
			return
		}

		out, err := a.Handler(c, &in)
		if err != nil {
			resp.Fail(c, e.log, err)
			return
		}

		status := a.Status
		if sc, ok := any(out).(StatusCoder); ok {
			status = sc.HTTPStatus()
		}
		if status == 0 {
			status = http.StatusOK
		}
		c.JSON(status, out)
	}

	switch strings.ToUpper(a.Method) {
	case http.MethodGet:
		e.g.GET(a.Path, h)
	case http.MethodPut:
		e.g.PUT(a.Path, h)
	case http.MethodDelete:
		e.g.DELETE(a.Path, h)
	default: // 默认 POST
		e.g.POST(a.Path, h)
	}
}
