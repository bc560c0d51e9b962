package domain

import "errors"

// Kind 业务错误类别（与传输层无关，由边界层映射为 HTTP 状态码）
type Kind string

const (
	KindNotFound     Kind = "NOT_FOUND"
	KindConflict     Kind = "CONFLICT"
	KindUnauthorized Kind = "UNAUTHORIZED"
	KindInvalidInput Kind = "INVALID_INPUT"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

func NotFound(msg string) error     { return &Error{Kind: KindNotFound, Message: msg} }
func Conflict(msg string) error     { return &Error{Kind: KindConflict, Message: msg} }
func Unauthorized(msg string) error { return &Error{Kind: KindUnauthorized, Message: msg} }
func InvalidInput(msg string) error { return &Error{Kind: KindInvalidInput, Message: msg} }

// KindOf 返回 err 链上第一个业务错误的类别；非业务错误返回 ""
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// ErrDuplicateEmail 存储层唯一约束冲突（lower(email)）
var ErrDuplicateEmail = &Error{Kind: KindConflict, Message: "An account with this email already exists"}
