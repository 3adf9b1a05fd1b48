package contact

import (
	"errors"
	"fmt"
)

// ExperienceLevel is the visitor's self-reported chess experience.
type ExperienceLevel string

const (
	ExperienceCompleteBeginner ExperienceLevel = "complete-beginner"
	ExperienceBasicKnowledge   ExperienceLevel = "basic-knowledge"
	ExperienceIntermediate     ExperienceLevel = "intermediate"
	ExperienceAdvanced         ExperienceLevel = "advanced"
	ExperienceCompetitive      ExperienceLevel = "competitive"
)

// SessionType is the kind of coaching the visitor is asking about.
type SessionType string

const (
	SessionIndividual     SessionType = "individual"
	SessionGroup          SessionType = "group"
	SessionTournamentPrep SessionType = "tournament-prep"
	SessionOnline         SessionType = "online"
	SessionOffline        SessionType = "offline"
)

// Option is a value/label pair rendered into a <select>.
type Option struct {
	Value string
	Label string
}

// ExperienceOptions lists the experience levels in display order.
func ExperienceOptions() []Option {
	return []Option{
		{Value: string(ExperienceCompleteBeginner), Label: "Complete Beginner"},
		{Value: string(ExperienceBasicKnowledge), Label: "Basic Knowledge"},
		{Value: string(ExperienceIntermediate), Label: "Intermediate Player"},
		{Value: string(ExperienceAdvanced), Label: "Advanced Player"},
		{Value: string(ExperienceCompetitive), Label: "Competitive Player"},
	}
}

// SessionOptions lists the session types in display order.
func SessionOptions() []Option {
	return []Option{
		{Value: string(SessionIndividual), Label: "Individual one-on-one"},
		{Value: string(SessionGroup), Label: "Group class"},
		{Value: string(SessionTournamentPrep), Label: "Tournament preparation"},
		{Value: string(SessionOnline), Label: "Online training"},
		{Value: string(SessionOffline), Label: "Offline training"},
	}
}

// Valid reports whether l is empty or one of the five known levels.
func (l ExperienceLevel) Valid() bool {
	if l == "" {
		return true
	}
	for _, opt := range ExperienceOptions() {
		if opt.Value == string(l) {
			return true
		}
	}
	return false
}

// Valid reports whether s is empty or one of the five known session types.
func (s SessionType) Valid() bool {
	if s == "" {
		return true
	}
	for _, opt := range SessionOptions() {
		if opt.Value == string(s) {
			return true
		}
	}
	return false
}

// Field names accepted by Submission.Set, matching the form input names.
const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldPhone       = "phone"
	FieldExperience  = "experience"
	FieldSessionType = "sessionType"
	FieldMessage     = "message"
)

// Fields lists every settable field in form order.
var Fields = []string{FieldName, FieldEmail, FieldPhone, FieldExperience, FieldSessionType, FieldMessage}

var ErrUnknownField = errors.New("unknown contact field")

// Submission is the visitor-entered form data sent to the backend.
type Submission struct {
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	Experience  ExperienceLevel `json:"experience"`
	SessionType SessionType     `json:"sessionType,omitempty"`
	Message     string          `json:"message"`
}

// Set updates exactly one named field.
func (s *Submission) Set(field, value string) error {
	switch field {
	case FieldName:
		s.Name = value
	case FieldEmail:
		s.Email = value
	case FieldPhone:
		s.Phone = value
	case FieldExperience:
		s.Experience = ExperienceLevel(value)
	case FieldSessionType:
		s.SessionType = SessionType(value)
	case FieldMessage:
		s.Message = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// Get returns the current value of a named field.
func (s Submission) Get(field string) (string, error) {
	switch field {
	case FieldName:
		return s.Name, nil
	case FieldEmail:
		return s.Email, nil
	case FieldPhone:
		return s.Phone, nil
	case FieldExperience:
		return string(s.Experience), nil
	case FieldSessionType:
		return string(s.SessionType), nil
	case FieldMessage:
		return s.Message, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, field)
}

// IsZero reports whether every field is empty.
func (s Submission) IsZero() bool {
	return s == Submission{}
}
