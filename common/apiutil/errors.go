package apiutil

import (
	"net/http"

	"github.com/Aidin1998/apiregistry/pkg/errors"
	"github.com/Aidin1998/apiregistry/pkg/metrics"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the standard error response structure for all APIs
//
// Example:
//
//	{
//	  "error": "invalid",
//	  "message": "Missing required fields: name, path, method",
//	  "details": [{"kind": "required", "field": "method", "message": "method is required"}]
//	}
type ErrorResponse struct {
	Error   string      `json:"error"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// WriteErrorResponse writes a consistent error response to the client
func WriteErrorResponse(c *gin.Context, status int, code, message string, details interface{}) {
	c.JSON(status, ErrorResponse{
		Error:   code,
		Message: message,
		Details: details,
	})
}

// Fail records err for ErrorMiddleware and stops the handler chain.
// fallback is the message shown when err is internal.
func Fail(c *gin.Context, err error, fallback string) {
	_ = c.Error(err).SetMeta(fallback)
	c.Abort()
}

// ErrorMiddleware renders the last error recorded with Fail. Internal causes
// are logged but never sent to the client.
func ErrorMiddleware(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		last := c.Errors.Last()
		fallback, _ := last.Meta.(string)
		if fallback == "" {
			fallback = "Internal server error"
		}

		kind := errors.KindOf(last.Err)
		message := fallback
		var details interface{}

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", RequestID(c)),
			zap.Int("status", kind.StatusCode()),
			zap.String("operation", fallback),
			zap.Error(last.Err),
		}

		switch kind {
		case errors.KindInvalid, errors.KindNotFound, errors.KindConflict:
			var tagged *errors.Error
			if errors.As(last.Err, &tagged) {
				if tagged.Message != "" {
					message = tagged.Message
				}
				if len(tagged.Fields) > 0 {
					details = tagged.Fields
				}
			}
			log.Warn("request failed", fields...)
		case errors.KindInternal:
			log.Error("request failed", fields...)
		}

		metrics.EndpointErrors.WithLabelValues(string(kind)).Inc()
		WriteErrorResponse(c, kind.StatusCode(), string(kind), message, details)
	}
}

// NotFoundHandler answers unknown routes.
func NotFoundHandler(c *gin.Context) {
	WriteErrorResponse(c, http.StatusNotFound, "not_found", "The requested resource was not found", nil)
}

// MethodNotAllowedHandler answers known routes called with the wrong method.
func MethodNotAllowedHandler(c *gin.Context) {
	WriteErrorResponse(c, http.StatusMethodNotAllowed, "method_not_allowed", "The requested method is not allowed for this resource", nil)
}
