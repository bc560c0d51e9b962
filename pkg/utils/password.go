package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

const DefaultHashCost = 10

// ErrPasswordTooLong bcrypt 只接受 72 字节以内的明文
var ErrPasswordTooLong = bcrypt.ErrPasswordTooLong

// PasswordHasher bcrypt 封装；盐内嵌在摘要里
type PasswordHasher struct {
	Cost int
}

func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultHashCost
	}
	return &PasswordHasher{Cost: cost}
}

func (h *PasswordHasher) Hash(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), h.Cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Compare 密码不匹配返回 (false, nil)；只有摘要本身不合法时才返回 error
func (h *PasswordHasher) Compare(pw, hashed string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, err
	}
}
