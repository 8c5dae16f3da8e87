package handler

import (
	"errors"

	"mf-api/internal/api/constant"
	"mf-api/internal/api/usecase"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	uc          usecase.UsecaseItf
	corsOrigins []string
}

func NewHandler(uc usecase.UsecaseItf, corsOrigins []string) *Handler {
	return &Handler{uc: uc, corsOrigins: corsOrigins}
}

// bindJSON binds and validates the body. Malformed JSON is reported as
// ErrInvalidBody; validation failures are passed on as they are.
func bindJSON(ctx *gin.Context, req any) bool {
	err := ctx.ShouldBindJSON(req)
	if err == nil {
		return true
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		ctx.Error(ve)
	} else {
		ctx.Error(constant.ErrInvalidBody)
	}
	return false
}

func bindQuery(ctx *gin.Context, q any) bool {
	err := ctx.ShouldBindQuery(q)
	if err == nil {
		return true
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		ctx.Error(ve)
	} else {
		ctx.Error(constant.ErrInvalidQuery)
	}
	return false
}
