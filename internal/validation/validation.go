// Package validation provides input validation primitives for the UPIGuard API.
package validation

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// MaxRequestSize is the maximum request body size (256KB)
const MaxRequestSize = 256 << 10

// MaxStringLength is the maximum length for free-text fields
const MaxStringLength = 500

// RequestSizeMiddleware limits request body size
func RequestSizeMiddleware(maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)
		c.Next()
	}
}

// SanitizeString trims whitespace, strips null bytes, and limits length
func SanitizeString(s string, maxLen int) string {
	s = strings.TrimSpace(s)
	if len(s) > maxLen {
		s = s[:maxLen]
	}
	s = strings.ReplaceAll(s, "\x00", "")
	return s
}

// FieldError describes a single failed field check
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is a collection of field errors. A submission either passes all
// checks or is rejected with the full list.
type Errors []FieldError

// Error implements the error interface
func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return strings.Join(parts, "; ")
}

// Collect runs the given checks and gathers any failures
func Collect(checks ...func() *FieldError) Errors {
	var errs Errors
	for _, check := range checks {
		if err := check(); err != nil {
			errs = append(errs, *err)
		}
	}
	return errs
}

// Required checks that a field is non-empty after trimming
func Required(field, value string) func() *FieldError {
	return func() *FieldError {
		if strings.TrimSpace(value) == "" {
			return &FieldError{Field: field, Message: "is required"}
		}
		return nil
	}
}

// OneOf checks that a field holds one of the allowed values.
// Empty values pass; combine with Required for mandatory fields.
func OneOf(field, value string, allowed []string) func() *FieldError {
	return func() *FieldError {
		if value == "" {
			return nil
		}
		for _, a := range allowed {
			if value == a {
				return nil
			}
		}
		return &FieldError{Field: field, Message: "must be one of: " + strings.Join(allowed, ", ")}
	}
}

// Check wraps an arbitrary predicate into a field check
func Check(field, message string, ok bool) func() *FieldError {
	return func() *FieldError {
		if !ok {
			return &FieldError{Field: field, Message: message}
		}
		return nil
	}
}
