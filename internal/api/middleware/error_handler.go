package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"speech-studio/internal/api/errors"
)

// ErrorHandler recovers from panics and renders them as internal errors
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		requestID := c.GetString(RequestIDKey)

		var apiErr *errors.APIError

		switch err := recovered.(type) {
		case *errors.APIError:
			apiErr = err
		case error:
			logger.Error("Internal server error",
				zap.Error(err),
				zap.String("request_id", requestID),
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
			)
			apiErr = errors.NewInternalError("Internal server error")
		default:
			logger.Error("Unknown panic occurred",
				zap.Any("recovered", recovered),
				zap.String("request_id", requestID),
			)
			apiErr = errors.NewInternalError("Internal server error")
		}

		apiErr.RequestID = requestID
		c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
	})
}

// HandleError renders err as a JSON APIError. Domain errors are mapped to
// their kind; anything unrecognized is logged and reported as internal.
func HandleError(c *gin.Context, logger *zap.Logger, err error) {
	if err == nil {
		return
	}

	apiErr := errors.FromError(err)
	apiErr.RequestID = c.GetString(RequestIDKey)

	switch apiErr.Kind {
	case errors.KindInternal:
		logger.Error("Request failed",
			zap.Error(err),
			zap.String("request_id", apiErr.RequestID),
			zap.String("path", c.Request.URL.Path),
		)
	case errors.KindUpstream:
		logger.Warn("Speech service call failed",
			zap.Error(err),
			zap.String("request_id", apiErr.RequestID),
			zap.String("path", c.Request.URL.Path),
		)
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
}
