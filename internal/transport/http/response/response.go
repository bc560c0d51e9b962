package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hair-scanner-api/internal/domain"
)

type ErrorBody struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Timestamp  string `json:"timestamp"`
	Path       string `json:"path"`
}

type MessageBody struct {
	Message string `json:"message"`
}

func NewError(c *gin.Context, status int, msg string) ErrorBody {
	if msg == "" {
		msg = StatusMsgMap[status]
	}
	return ErrorBody{
		StatusCode: status,
		Message:    msg,
		Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
		Path:       c.Request.URL.Path,
	}
}

func Abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, NewError(c, status, msg))
}

// Fail 业务错误按类别映射；其余一律 500 + 通用文案，细节只进日志
func Fail(c *gin.Context, l *zap.Logger, err error) {
	if status, ok := KindStatus[domain.KindOf(err)]; ok {
		Abort(c, status, err.Error())
		return
	}
	if l != nil {
		l.Error("unexpected error",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
	}
	_ = c.Error(err)
	Abort(c, http.StatusInternalServerError, MsgInternal)
}
