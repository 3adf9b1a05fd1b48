package contact

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"
)

const (
	MaxNameLength    = 100
	MinMessageLength = 10
	MaxMessageLength = 2000
)

// ValidationError names the offending field and is surfaced to visitors verbatim.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Normalize trims surrounding whitespace from every free-text field.
func (s Submission) Normalize() Submission {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.TrimSpace(s.Email)
	s.Phone = strings.TrimSpace(s.Phone)
	s.Message = strings.TrimSpace(s.Message)
	return s
}

// Validate applies the backend acceptance rules. It returns the first
// violation as a *ValidationError, or all of them joined when several apply.
func (s Submission) Validate() error {
	var errs []error

	switch n := utf8.RuneCountInString(s.Name); {
	case n == 0:
		errs = append(errs, &ValidationError{Field: FieldName, Reason: "is required"})
	case n > MaxNameLength:
		errs = append(errs, &ValidationError{Field: FieldName, Reason: fmt.Sprintf("must be at most %d characters", MaxNameLength)})
	}

	if s.Email == "" {
		errs = append(errs, &ValidationError{Field: FieldEmail, Reason: "is required"})
	} else if !validEmail(s.Email) {
		errs = append(errs, &ValidationError{Field: FieldEmail, Reason: "is not a valid email address"})
	}

	if n := utf8.RuneCountInString(s.Message); n > 0 && n < MinMessageLength {
		errs = append(errs, &ValidationError{Field: FieldMessage, Reason: fmt.Sprintf("must be at least %d characters", MinMessageLength)})
	} else if n > MaxMessageLength {
		errs = append(errs, &ValidationError{Field: FieldMessage, Reason: fmt.Sprintf("must be at most %d characters", MaxMessageLength)})
	}

	if !s.Experience.Valid() {
		errs = append(errs, &ValidationError{Field: FieldExperience, Reason: fmt.Sprintf("unknown level %q", s.Experience)})
	}
	if !s.SessionType.Valid() {
		errs = append(errs, &ValidationError{Field: FieldSessionType, Reason: fmt.Sprintf("unknown session type %q", s.SessionType)})
	}

	if len(errs) == 1 {
		return errs[0]
	}
	return errors.Join(errs...)
}

func validEmail(raw string) bool {
	addr, err := mail.ParseAddress(raw)
	if err != nil || addr.Address != raw {
		return false
	}
	at := strings.LastIndex(raw, "@")
	domain := raw[at+1:]
	return at > 0 && strings.Contains(domain, ".") && !strings.HasSuffix(domain, ".")
}
