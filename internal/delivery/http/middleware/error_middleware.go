package middleware

import (
	"errors"
	"net/http"

	"clinic-booking-backend/internal/delivery/http/response"
	"clinic-booking-backend/pkg/apperror"
	"clinic-booking-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("request failed",
					"status", appErr.Code,
					"error", err,
					"cause", appErr.Err,
					"path", c.FullPath(),
					"request_id", c.GetString("RequestID"),
				)
			}
			response.Error(c, appErr.Code, appErr.Message, appErr.Details)
			return
		}

		// SECURITY: never expose internal error details to clients.
		logger.Log.Error("unhandled error",
			"error", err,
			"path", c.FullPath(),
			"request_id", c.GetString("RequestID"),
		)
		response.Error(c, http.StatusInternalServerError, "Ocurrió un error inesperado. Intenta de nuevo más tarde.", nil)
	}
}
