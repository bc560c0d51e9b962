package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hair-scanner-api/internal/core/auth"
	"hair-scanner-api/internal/domain"
	resp "hair-scanner-api/internal/transport/http/response"
)

const KeyCurrentUser = "currentUser"

type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

type UserFinder interface {
	FindByID(ctx context.Context, id string) (*domain.UserRecord, error)
}

// bearerToken 只接受 "Bearer <token>"：区分大小写，单个空格，token 非空且不含空白
func bearerToken(header string) (string, bool) {
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" || strings.ContainsAny(token, " \t\r\n") {
		return "", false
	}
	return token, true
}

// AuthJWT 校验 token 并按 sub 回查用户；用户已删除同样 401
func AuthJWT(tokens TokenVerifier, users UserFinder, l *zap.Logger) gin.HandlerFunc {
	if l == nil {
		l = zap.NewNop()
	}
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			ObserveAuth("guard", "malformed_header")
			resp.Abort(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		claims, err := tokens.Verify(token)
		if err != nil {
			outcome := "invalid_token"
			if errors.Is(err, auth.ErrTokenExpired) {
				outcome = "expired_token"
			}
			ObserveAuth("guard", outcome)
			resp.Abort(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		rec, err := users.FindByID(c.Request.Context(), claims.Subject)
		if err != nil {
			resp.Fail(c, l, err)
			return
		}
		if rec == nil {
			ObserveAuth("guard", "unknown_user")
			resp.Abort(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		c.Set(KeyCurrentUser, rec.View())
		c.Next()
	}
}

func CurrentUser(c *gin.Context) (domain.UserView, bool) {
	v, ok := c.Get(KeyCurrentUser)
	if !ok {
		return domain.UserView{}, false
	}
	u, ok := v.(domain.UserView)
	return u, ok
}
