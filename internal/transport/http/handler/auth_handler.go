package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hair-scanner-api/internal/domain"
	"hair-scanner-api/internal/service"
	"hair-scanner-api/internal/transport/http/ez"
	mdw "hair-scanner-api/internal/transport/http/middleware"
	resp "hair-scanner-api/internal/transport/http/response"
)

const MsgLoggedOut = "Logged out successfully"

type Authenticator interface {
	Register(ctx context.Context, in service.SignupInput) (*domain.AuthResult, error)
	Login(ctx context.Context, in service.LoginInput) (*domain.AuthResult, error)
}

type AuthHandler struct {
	auth Authenticator
	log  *zap.Logger
}

func NewAuthHandler(auth Authenticator, l *zap.Logger) *AuthHandler {
	if l == nil {
		l = zap.NewNop()
	}
	return &AuthHandler{auth: auth, log: l}
}

func (h *AuthHandler) Priority() int { return 10 }

type signupReq struct {
	Email         string  `json:"email"         binding:"required,email"`
	Password      string  `json:"password"      binding:"required,min=8,max=72,has_upper,has_digit,has_special"`
	DisplayName   *string `json:"displayName"   binding:"omitempty,max=255"`
	AcceptedTerms bool    `json:"acceptedTerms" binding:"required"`
}

type loginReq struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Mount(public, protected *gin.RouterGroup) {
	pub := ez.New(public, h.log)
	ez.Register(pub, ez.Action[signupReq, *domain.AuthResult]{
		Method:  http.MethodPost,
		Path:    "/auth/signup",
		Binder:  ez.BindJSON,
		Status:  http.StatusCreated,
		Handler: h.signup,
	})
	ez.Register(pub, ez.Action[loginReq, *domain.AuthResult]{
		Method:  http.MethodPost,
		Path:    "/auth/login",
		Binder:  ez.BindJSON,
		Handler: h.login,
	})

	priv := ez.New(protected, h.log)
	ez.Register(priv, ez.Action[struct{}, domain.UserView]{
		Method:  http.MethodGet,
		Path:    "/auth/me",
		Binder:  ez.BindNone,
		Handler: h.me,
	})
	// 无状态 token：服务端不做吊销，客户端丢弃即可
	ez.Register(priv, ez.Action[struct{}, resp.MessageBody]{
		Method: http.MethodPost,
		Path:   "/auth/logout",
		Binder: ez.BindNone,
		Handler: func(*gin.Context, *struct{}) (resp.MessageBody, error) {
			return resp.MessageBody{Message: MsgLoggedOut}, nil
		},
	})
}

func (h *AuthHandler) signup(c *gin.Context, in *signupReq) (*domain.AuthResult, error) {
	res, err := h.auth.Register(c.Request.Context(), service.SignupInput{
		Email:         in.Email,
		Password:      in.Password,
		DisplayName:   in.DisplayName,
		AcceptedTerms: in.AcceptedTerms,
	})
	mdw.ObserveAuth("signup", outcome(err))
	if err != nil {
		return nil, err
	}
	h.log.Info("user signup", zap.String("user_id", res.User.ID))
	return res, nil
}

func (h *AuthHandler) login(c *gin.Context, in *loginReq) (*domain.AuthResult, error) {
	res, err := h.auth.Login(c.Request.Context(), service.LoginInput{
		Email:    in.Email,
		Password: in.Password,
	})
	mdw.ObserveAuth("login", outcome(err))
	if err != nil {
		if domain.KindOf(err) == domain.KindUnauthorized {
			h.log.Warn("login failed", zap.String("ip", c.ClientIP()))
		}
		return nil, err
	}
	return res, nil
}

func (h *AuthHandler) me(c *gin.Context, _ *struct{}) (domain.UserView, error) {
	u, ok := mdw.CurrentUser(c)
	if !ok {
		return domain.UserView{}, domain.Unauthorized("Unauthorized")
	}
	return u, nil
}

func outcome(err error) string {
	if err == nil {
		return "success"
	}
	if k := domain.KindOf(err); k != "" {
		return string(k)
	}
	return "error"
}
