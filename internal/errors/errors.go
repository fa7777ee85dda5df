// Package errors maps internal failures to the API's flat error
// envelope. Store failures are always reported as a fixed generic
// message; the underlying error is logged server-side and never
// reaches the client.
package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/mgrady4/civica/internal/middleware"
)

// ErrorResponse is the flat error envelope every failure uses.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// DatabaseError returns the generic 500 store-failure response. The
// wrapped error is logged with request context but never serialized.
func DatabaseError(c *gin.Context, err error) {
	if log := middleware.GetLogger(c); log != nil {
		log.Error("Database error", err, map[string]interface{}{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error: "Database error",
	})
}

// BadRequest returns a 400 with a user-correctable reason.
func BadRequest(c *gin.Context, message string) {
	if log := middleware.GetLogger(c); log != nil {
		log.Warn("Bad request", map[string]interface{}{
			"message": message,
			"path":    c.Request.URL.Path,
		})
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// Unauthorized returns a 401 with a fixed message.
func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, ErrorResponse{Error: message})
}

// Conflict returns a 409 with a user-correctable reason.
func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, ErrorResponse{Error: message})
}

// ValidationError returns a 400 with per-field reasons parsed from the
// validator library. Only the write-oriented auth endpoints surface
// these; search parameters are coerced, never rejected.
func ValidationError(c *gin.Context, validationErrors validator.ValidationErrors) {
	fields := make(map[string]string, len(validationErrors))
	for _, err := range validationErrors {
		fields[err.Field()] = formatValidationError(err)
	}

	if log := middleware.GetLogger(c); log != nil {
		log.Warn("Validation error", map[string]interface{}{
			"path":   c.Request.URL.Path,
			"fields": fields,
		})
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:  "Validation failed for one or more fields",
		Fields: fields,
	})
}

// formatValidationError converts a validator.FieldError to a human-readable message.
func formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		return "Value is too short or small (minimum: " + err.Param() + ")"
	case "max":
		return "Value is too long or large (maximum: " + err.Param() + ")"
	case "oneof":
		return "Must be one of: " + err.Param()
	default:
		return "Validation failed for tag: " + err.Tag()
	}
}
