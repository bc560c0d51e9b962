package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DevSecret 未配置 jwt.secret 时的开发期兜底，生产环境禁止使用
const DevSecret = "development-secret-change-in-production"

const DefaultTTL = 7 * 24 * time.Hour

var (
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
)

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type JWTer struct {
	Secret []byte
	Issuer string
	TTL    time.Duration

	devSecret bool
	now       func() time.Time
}

func NewJWTer(secret, issuer string, ttl time.Duration) *JWTer {
	j := &JWTer{Secret: []byte(secret), Issuer: issuer, TTL: ttl, now: time.Now}
	if secret == "" {
		j.Secret = []byte(DevSecret)
		j.devSecret = true
	}
	if ttl <= 0 {
		j.TTL = DefaultTTL
	}
	return j
}

func (j *JWTer) UsingDevSecret() bool { return j.devSecret }

func (j *JWTer) Sign(sub, email string) (string, error) {
	now := j.clock()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			Issuer:    j.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.TTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

// Verify 过期返回 ErrTokenExpired，其余任何失败一律 ErrTokenInvalid
func (j *JWTer) Verify(tokenStr string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.clock),
	}
	if j.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(j.Issuer))
	}
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected alg %v", token.Header["alg"])
		}
		return j.Secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid || c.Subject == "" {
		return nil, ErrTokenInvalid
	}
	return c, nil
}

func (j *JWTer) clock() time.Time {
	if j.now == nil {
		return time.Now()
	}
	return j.now()
}
