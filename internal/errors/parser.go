package errors

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ErrorInfo 에러 정보 구조
type ErrorInfo struct {
	Status  int    // HTTP 상태 코드
	Message string // 클라이언트 메시지
}

// ParseError 저장소 계층 에러를 HTTP 상태와 클라이언트 메시지로 변환
// 민감한 내부 정보는 숨기고, 제약 조건 위반은 사용자가 고칠 수 있는 메시지로 바꾼다.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{Status: http.StatusInternalServerError, Message: MsgServerError}
	}

	errStrLower := strings.ToLower(err.Error())

	// 1. GORM 기본 에러
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{Status: http.StatusNotFound, Message: getNotFoundMessage(context)}
	}

	// 2. Unique constraint violation (PostgreSQL 23505, SQLite "UNIQUE constraint failed")
	if strings.Contains(errStrLower, "duplicate key") || strings.Contains(errStrLower, "unique constraint") {
		return parseDuplicateKeyError(errStrLower, context)
	}

	// 3. Foreign key constraint violation (23503)
	if strings.Contains(errStrLower, "foreign key constraint") {
		return parseForeignKeyError(errStrLower, context)
	}

	// 4. Not null constraint violation (23502)
	if strings.Contains(errStrLower, "null value") && strings.Contains(errStrLower, "violates not-null constraint") {
		return ErrorInfo{Status: http.StatusBadRequest, Message: MsgAllFieldsRequired}
	}

	// 5. 기본 내부 서버 오류
	return ErrorInfo{Status: http.StatusInternalServerError, Message: MsgServerError}
}

// parseDuplicateKeyError Unique constraint 위반 에러 파싱
func parseDuplicateKeyError(errLower string, context string) ErrorInfo {
	// 매장 이메일 중복
	if strings.Contains(errLower, "stores") || strings.Contains(context, "store") {
		return ErrorInfo{Status: http.StatusBadRequest, Message: MsgStoreEmailExists}
	}

	// 사용자 이메일 중복
	if strings.Contains(errLower, "email") || strings.Contains(errLower, "users") {
		return ErrorInfo{Status: http.StatusBadRequest, Message: MsgEmailExists}
	}

	return ErrorInfo{Status: http.StatusBadRequest, Message: MsgEmailExists}
}

// parseForeignKeyError Foreign key constraint 위반 에러 파싱
func parseForeignKeyError(errLower string, context string) ErrorInfo {
	// stores.owner_id가 존재하지 않는 사용자를 가리키는 경우
	if strings.Contains(errLower, "owner") || strings.Contains(context, "store") {
		return ErrorInfo{Status: http.StatusBadRequest, Message: MsgInvalidOwnerID}
	}
	if strings.Contains(errLower, "store_id") {
		return ErrorInfo{Status: http.StatusNotFound, Message: MsgStoreNotFound}
	}
	return ErrorInfo{Status: http.StatusBadRequest, Message: MsgInvalidOwnerID}
}

// getNotFoundMessage context에 따른 Not Found 메시지
func getNotFoundMessage(context string) string {
	contextLower := strings.ToLower(context)

	if strings.Contains(contextLower, "store") {
		return MsgStoreNotFound
	}
	if strings.Contains(contextLower, "user") {
		return MsgUserNotFound
	}
	return MsgServerError
}

// ParseAndRespond 에러를 파싱하여 응답 반환 (controller 헬퍼)
func ParseAndRespond(c *gin.Context, err error, context string) {
	info := ParseError(err, context)
	RespondWithError(c, info.Status, info.Message)
}
