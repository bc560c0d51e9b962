package ez

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var validatorsOnce sync.Once

// registerValidators 注册密码策略 tag，并让错误里的字段名使用 json 名
func registerValidators() {
	validatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
		_ = v.RegisterValidation("has_upper", runeRule(unicode.IsUpper))
		_ = v.RegisterValidation("has_digit", runeRule(func(r rune) bool { return r >= '0' && r <= '9' }))
		_ = v.RegisterValidation("has_special", runeRule(isSpecial))
	})
}

func runeRule(pred func(rune) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return strings.IndexFunc(fl.Field().String(), pred) >= 0
	}
}

// isSpecial 非 ASCII 字母数字即视为特殊字符
func isSpecial(r rune) bool {
	return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
}

// fieldMessages key: "<json 字段>.<tag>"
var fieldMessages = map[string]string{
	"email.required":          "Email is required",
	"email.email":             "Please enter a valid email address",
	"password.required":       "Password is required",
	"password.min":            "Password must be at least 8 characters",
	"password.max":            "Password must be at most 72 characters",
	"password.has_upper":      "Password must contain an uppercase letter",
	"password.has_digit":      "Password must contain a number",
	"password.has_special":    "Password must contain a special character",
	"acceptedTerms.required":  "You must accept the Terms and Conditions",
	"displayName.max":         "Display name must be at most 255 characters",
	"activeSymptoms.required": "Please select at least one symptom",
	"activeSymptoms.min":      "Please select at least one symptom",
}

// BindingMessage 取第一条校验错误，转成给人看的文案
func BindingMessage(err error) string {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		field, _, _ := strings.Cut(fe.Field(), "[")
		if msg, ok := fieldMessages[field+"."+fe.Tag()]; ok {
			return msg
		}
		if fe.Tag() == "required" {
			return field + " is required"
		}
		return "Invalid " + field
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field != "" {
			return "Invalid " + typeErr.Field
		}
		return "Validation failed"
	}
	if errors.Is(err, io.EOF) {
		return "Request body is required"
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return "Malformed JSON body"
	}
	return "Validation failed"
}
