package content

import (
	"errors"
	"fmt"
	"log/slog"

	ferrors "git.home.luguber.info/inful/sitecontent/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecontent/internal/logfields"
)

// MissingFieldError names the first absent mandatory property.
type MissingFieldError struct {
	Kind  Kind
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s is missing mandatory property %q", e.Kind, e.Field)
}

// CheckProperties verifies the mandatory properties of the kind, in
// declaration order. The error is a validation ClassifiedError wrapping a
// *MissingFieldError.
func (c *Content) CheckProperties() error {
	for _, field := range c.kind.MandatoryProperties() {
		if c.has(field) {
			continue
		}
		c.recorder.IncValidationFailure(string(c.kind), field)
		return ferrors.ValidationError("missing mandatory property").
			WithCause(&MissingFieldError{Kind: c.kind, Field: field}).
			WithContext(logfields.KeyField, field).
			WithContext(logfields.KeyKind, string(c.kind)).
			Build()
	}
	return nil
}

// IsValid runs CheckProperties and logs the failing field and source when
// the item has to be skipped. A nil logger uses the content's own logger.
func IsValid(c *Content, source string, logger *slog.Logger) bool {
	err := c.CheckProperties()
	if err == nil {
		return true
	}
	if logger == nil {
		logger = c.logger
	}
	field := ""
	var missing *MissingFieldError
	if errors.As(err, &missing) {
		field = missing.Field
	}
	logger.Error("Skipping content: impossible to find mandatory information",
		logfields.File(source),
		logfields.Field(field),
		logfields.Kind(string(c.kind)))
	return false
}
