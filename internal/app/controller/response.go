package controller

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/ratemystore/ratemystore-backend/internal/app/model"
	apperrors "github.com/ratemystore/ratemystore-backend/internal/errors"
	"github.com/ratemystore/ratemystore-backend/pkg/util"
)

// 성공 응답 래퍼: {"status": "Success", "data": {...}}
// 목록 응답에는 results 항목 수가 함께 내려간다.

func respondSuccess(c *gin.Context, statusCode int, data gin.H) {
	c.JSON(statusCode, gin.H{
		"status": "Success",
		"data":   data,
	})
}

func respondList(c *gin.Context, statusCode int, results int, data gin.H) {
	c.JSON(statusCode, gin.H{
		"status":  "Success",
		"results": results,
		"data":    data,
	})
}

// validationMessage maps a field validation failure to its client message.
func validationMessage(err error) string {
	switch {
	case errors.Is(err, util.ErrNameLength):
		return apperrors.MsgNameLength
	case errors.Is(err, util.ErrAddressRequired):
		return apperrors.MsgAllFieldsRequired
	case errors.Is(err, util.ErrAddressLength):
		return apperrors.MsgAddressLength
	case errors.Is(err, util.ErrInvalidEmail):
		return apperrors.MsgInvalidEmailFormat
	case errors.Is(err, util.ErrWeakPassword):
		return apperrors.MsgWeakPassword
	default:
		return apperrors.MsgAllFieldsRequired
	}
}

func userJSON(user *model.User) gin.H {
	return gin.H{
		"id":      user.ID,
		"name":    user.Name,
		"email":   user.Email,
		"address": user.Address,
		"role":    user.Role,
	}
}
