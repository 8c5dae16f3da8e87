package middleware

import (
	"context"
	"errors"
	"net/http"

	"mf-api/internal/api/constant"
	"mf-api/internal/api/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const validationErrorMessage = "Validation error"

func Error() gin.HandlerFunc {
	registerFieldNames()

	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		if errors.Is(c.Request.Context().Err(), context.DeadlineExceeded) {
			c.AbortWithStatusJSON(constant.ErrRequestTimeout.StatusCode,
				dto.Failure(constant.ErrRequestTimeout.Message))
			return
		}

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors[0].Err

		// - Validation error from request binding
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			details := make([]dto.ErrorType, 0, len(ve))
			for _, fe := range ve {
				details = append(details, dto.ErrorType{
					Field:   fe.Field(),
					Message: validationMessage(fe),
				})
			}
			c.AbortWithStatusJSON(http.StatusBadRequest,
				dto.Failure(validationErrorMessage).WithData(details))
			return
		}

		// - Domain error with its own status
		var ce constant.CustomError
		if errors.As(err, &ce) {
			c.AbortWithStatusJSON(ce.StatusCode, dto.Failure(ce.Message))
			return
		}

		// - Unknown error, likely internal server error
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Failure(err.Error()))
	}
}
