package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 표준 에러 응답 구조
// 4xx 메시지는 구체적으로, 500 메시지는 일반적으로 유지한다.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondWithError 에러 응답 헬퍼
func RespondWithError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorResponse{Error: message})
}

// 자주 사용하는 에러 응답 단축 함수들

func BadRequest(c *gin.Context, message string) {
	RespondWithError(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = MsgNoToken
	}
	RespondWithError(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = MsgUnauthorized
	}
	RespondWithError(c, http.StatusForbidden, message)
}

func NotFound(c *gin.Context, message string) {
	RespondWithError(c, http.StatusNotFound, message)
}

// Conflict 중복 리소스 응답
// 관례상 409가 일반적이지만 클라이언트 계약이 400을 사용하므로 그대로 따른다.
func Conflict(c *gin.Context, message string) {
	RespondWithError(c, http.StatusBadRequest, message)
}

func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = MsgServerError
	}
	RespondWithError(c, http.StatusInternalServerError, message)
}
