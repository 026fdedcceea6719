package utils

import (
	"errors"
	"net/http"
	"time"

	"grandhaven/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Stable machine-readable error keys carried on every error response.
const (
	KeyValidation        = "validation_error"
	KeyNotFound          = "not_found"
	KeyForbidden         = "forbidden"
	KeyConflict          = "conflict"
	KeyInvalidTransition = "invalid_transition"
	KeyUnavailable       = "unavailable"
	KeyUpstreamFailure   = "upstream_failure"
	KeyInternal          = "internal_error"
)

// APIError is the error type controllers translate into HTTP responses.
type APIError struct {
	Key       string
	Message   string
	Status    int
	Retryable bool
	cause     error
}

func (e *APIError) Error() string {
	if e.cause != nil {
		return e.Key + ": " + e.Message + ": " + e.cause.Error()
	}
	return e.Key + ": " + e.Message
}

func (e *APIError) Unwrap() error { return e.cause }

func ValidationError(msg string) *APIError {
	return &APIError{Key: KeyValidation, Message: msg, Status: http.StatusBadRequest}
}

func NotFoundError(msg string) *APIError {
	return &APIError{Key: KeyNotFound, Message: msg, Status: http.StatusNotFound}
}

func ForbiddenError(msg string) *APIError {
	return &APIError{Key: KeyForbidden, Message: msg, Status: http.StatusForbidden}
}

func ConflictError(msg string) *APIError {
	return &APIError{Key: KeyConflict, Message: msg, Status: http.StatusConflict}
}

func InvalidTransitionError(msg string) *APIError {
	return &APIError{Key: KeyInvalidTransition, Message: msg, Status: http.StatusBadRequest}
}

func UnavailableError(msg string) *APIError {
	return &APIError{Key: KeyUnavailable, Message: msg, Status: http.StatusBadRequest}
}

// UpstreamError wraps a payment-gateway or storage-provider failure. Retryable
// marks timeouts as distinct from definitive rejections.
func UpstreamError(msg string, cause error, retryable bool) *APIError {
	return &APIError{
		Key:       KeyUpstreamFailure,
		Message:   msg,
		Status:    http.StatusBadGateway,
		Retryable: retryable,
		cause:     cause,
	}
}

// ErrorResponse defines the structure of error responses.
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// ErrorHandler is a middleware to catch panics and return structured errors.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := GetLogger()
				logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Error:     KeyInternal,
					Message:   "An unexpected error occurred. Please try again later.",
					Timestamp: time.Now().UTC().Format(time.RFC3339),
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError translates an error into the standardized JSON error response.
// Upstream provider detail is logged but not leaked to the client in
// production mode.
func JSONError(c *gin.Context, err error) {
	logger := GetLogger()

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		logger.Error("Unclassified error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:     KeyInternal,
			Message:   "internal server error",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	message := apiErr.Message
	if apiErr.Key == KeyUpstreamFailure {
		logger.Error("Upstream failure", zap.String("message", apiErr.Message), zap.Error(apiErr.cause))
		if config.IsProduction() {
			message = "upstream provider error"
		}
	} else {
		logger.Warn(apiErr.Key, zap.String("message", apiErr.Message))
	}

	c.JSON(apiErr.Status, ErrorResponse{
		Error:     apiErr.Key,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
