package response

import (
	"net/http"

	"hair-scanner-api/internal/domain"
)

const MsgInternal = "An unexpected error occurred"

// KindStatus 业务错误类别 → HTTP 状态码
var KindStatus = map[domain.Kind]int{
	domain.KindNotFound:     http.StatusNotFound,
	domain.KindConflict:     http.StatusConflict,
	domain.KindUnauthorized: http.StatusUnauthorized,
	domain.KindInvalidInput: http.StatusBadRequest,
}

// StatusMsgMap 未显式给出 message 时的默认文案
var StatusMsgMap = map[int]string{
	http.StatusBadRequest:            "Bad Request",
	http.StatusUnauthorized:          "Unauthorized",
	http.StatusNotFound:              "Not Found",
	http.StatusConflict:              "Conflict",
	http.StatusRequestEntityTooLarge: "Request body too large",
	http.StatusInternalServerError:   MsgInternal,
	http.StatusServiceUnavailable:    "Server busy",
	http.StatusGatewayTimeout:        "Request timeout",
}
