package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hair-scanner-api/internal/domain"
	"hair-scanner-api/pkg/utils"
)

const (
	MsgInvalidCredentials = "Invalid email or password"
	MsgEmailTaken         = "An account with this email already exists"
)

// dummyHash 用户不存在时也做一次 bcrypt 比较，避免按响应时间枚举邮箱
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type PasswordHasher interface {
	Hash(pw string) (string, error)
	Compare(pw, hashed string) (bool, error)
}

type TokenSigner interface {
	Sign(sub, email string) (string, error)
}

type SignupInput struct {
	Email         string
	Password      string
	DisplayName   *string
	AcceptedTerms bool
}

type LoginInput struct {
	Email    string
	Password string
}

type Authenticator struct {
	users  domain.UserRepository
	hasher PasswordHasher
	tokens TokenSigner
}

func NewAuthenticator(users domain.UserRepository, hasher PasswordHasher, tokens TokenSigner) *Authenticator {
	return &Authenticator{users: users, hasher: hasher, tokens: tokens}
}

// Register 入参格式已由边界层校验，这里只做业务规则
func (a *Authenticator) Register(ctx context.Context, in SignupInput) (*domain.AuthResult, error) {
	exists, err := a.users.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.Conflict(MsgEmailTaken)
	}

	hash, err := a.hasher.Hash(in.Password)
	if errors.Is(err, utils.ErrPasswordTooLong) {
		return nil, domain.InvalidInput("Password must be at most 72 bytes")
	}
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	displayName := in.DisplayName
	if displayName == nil {
		name := localPart(in.Email)
		displayName = &name
	}

	user, err := a.users.Create(ctx, domain.NewUser{
		Email:        in.Email,
		PasswordHash: hash,
		DisplayName:  displayName,
	})
	if err != nil {
		// 并发注册：预检查通过但被唯一索引拦下
		if domain.KindOf(err) == domain.KindConflict {
			return nil, domain.Conflict(MsgEmailTaken)
		}
		return nil, err
	}

	token, err := a.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &domain.AuthResult{AccessToken: token, User: *user}, nil
}

func (a *Authenticator) Login(ctx context.Context, in LoginInput) (*domain.AuthResult, error) {
	user, err := a.ValidateUser(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.Unauthorized(MsgInvalidCredentials)
	}
	token, err := a.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &domain.AuthResult{AccessToken: token, User: *user}, nil
}

// ValidateUser 凭据不对返回 (nil, nil)；只有基础设施故障才返回 error
func (a *Authenticator) ValidateUser(ctx context.Context, email, password string) (*domain.UserView, error) {
	rec, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		_, _ = a.hasher.Compare(password, dummyHash)
		return nil, nil
	}
	ok, err := a.hasher.Compare(password, rec.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("compare password for user %s: %w", rec.ID, err)
	}
	if !ok {
		return nil, nil
	}
	v := rec.View()
	return &v, nil
}

func (a *Authenticator) GenerateToken(user *domain.UserView) (string, error) {
	if user == nil {
		return "", errors.New("generate token: nil user")
	}
	token, err := a.tokens.Sign(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}

func localPart(email string) string {
	if at := strings.IndexByte(email, '@'); at >= 0 {
		return email[:at]
	}
	return email
}
