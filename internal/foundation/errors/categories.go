package errors

import "maps"

// ErrorCategory is the broad class of an error, used for routing and exit codes.
type ErrorCategory string

const (
	// CategoryConfig covers settings that are missing, malformed or of the wrong type.
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"
	CategoryNotFound   ErrorCategory = "not_found"

	CategoryFileSystem ErrorCategory = "filesystem"
	CategoryContent    ErrorCategory = "content"
	CategoryInternal   ErrorCategory = "internal"
)

// ErrorSeverity indicates the scope of the failure.
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // the current command cannot continue
	SeverityError   ErrorSeverity = "error"   // the current entity is unusable
	SeverityWarning ErrorSeverity = "warning" // degraded output, keep going
	SeverityInfo    ErrorSeverity = "info"
)

// ErrorContext holds structured key/value context for an error.
type ErrorContext map[string]any

// Set adds or updates a context value.
func (c ErrorContext) Set(key string, value any) ErrorContext {
	if c == nil {
		c = make(ErrorContext)
	}
	c[key] = value
	return c
}

// Get retrieves a context value.
func (c ErrorContext) Get(key string) (any, bool) {
	if c == nil {
		return nil, false
	}
	v, ok := c[key]
	return v, ok
}

// GetString retrieves a string context value.
func (c ErrorContext) GetString(key string) (string, bool) {
	v, ok := c.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Merge combines two contexts, with other taking precedence.
func (c ErrorContext) Merge(other ErrorContext) ErrorContext {
	if c == nil {
		return other
	}
	if other == nil {
		return c
	}
	out := make(ErrorContext, len(c)+len(other))
	maps.Copy(out, c)
	maps.Copy(out, other)
	return out
}
