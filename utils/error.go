package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ginmongo/dates"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				zap.L().Error("Unhandled panic", zap.Any("error", err), zap.String("path", c.Request.URL.Path))

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	zap.L().Warn(message, zap.String("details", details), zap.Int("status", status))
	c.AbortWithStatusJSON(status, ErrorResponse{Message: message, Details: details})
}

// DateError maps errors from the dates package onto HTTP responses. Unparseable
// input and unknown weekdays are the client's fault; anything else is ours.
func DateError(c *gin.Context, err error) {
	if pErr, ok := dates.AsParseError(err); ok {
		JSONError(c, http.StatusUnprocessableEntity, "Invalid date", pErr.Error())
		return
	}
	if dErr, ok := dates.AsInvalidDayOfWeekError(err); ok {
		JSONError(c, http.StatusUnprocessableEntity, "Invalid day of week", dErr.Error())
		return
	}
	zap.L().Error("date operation failed", zap.Error(err))
	JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
}
