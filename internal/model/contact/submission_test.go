package contact

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmissionSetUpdatesOneField(t *testing.T) {
	var s Submission
	require.NoError(t, s.Set(FieldName, "Arjun"))
	require.NoError(t, s.Set(FieldExperience, "intermediate"))

	assert.Equal(t, Submission{Name: "Arjun", Experience: ExperienceIntermediate}, s)

	got, err := s.Get(FieldExperience)
	require.NoError(t, err)
	assert.Equal(t, "intermediate", got)
}

func TestSubmissionSetRejectsUnknownField(t *testing.T) {
	var s Submission
	err := s.Set("favouriteOpening", "Sicilian")
	assert.True(t, errors.Is(err, ErrUnknownField))
	assert.True(t, s.IsZero())
}

func TestSubmissionJSONOmitsEmptySessionType(t *testing.T) {
	s := Submission{Name: "Arjun", Email: "arjun@example.com", Experience: ExperienceIntermediate, Message: "Want lessons"}

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Arjun","email":"arjun@example.com","phone":"","experience":"intermediate","message":"Want lessons"}`, string(data))

	s.SessionType = SessionGroup
	data, err = json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"sessionType":"group"`)
}

func TestLevelsHaveFiveOptions(t *testing.T) {
	assert.Len(t, ExperienceOptions(), 5)
	assert.Len(t, SessionOptions(), 5)
	assert.True(t, ExperienceLevel("").Valid())
	assert.False(t, ExperienceLevel("grandmaster").Valid())
	assert.True(t, SessionTournamentPrep.Valid())
	assert.False(t, SessionType("blitz").Valid())
}

func TestValidate(t *testing.T) {
	valid := Submission{Name: "Sarah Johnson", Email: "sarah.johnson@email.com", Phone: "+1-555-0123", Experience: ExperienceIntermediate, Message: "I'd love to learn advanced strategies."}
	require.NoError(t, valid.Validate())

	cases := []struct {
		name  string
		mut   func(*Submission)
		field string
	}{
		{"empty name", func(s *Submission) { s.Name = "" }, FieldName},
		{"long name", func(s *Submission) { s.Name = strings.Repeat("a", MaxNameLength+1) }, FieldName},
		{"missing email", func(s *Submission) { s.Email = "" }, FieldEmail},
		{"invalid email", func(s *Submission) { s.Email = "not-an-email" }, FieldEmail},
		{"email without dotted domain", func(s *Submission) { s.Email = "a@localhost" }, FieldEmail},
		{"display name email", func(s *Submission) { s.Email = "Sarah <sarah@email.com>" }, FieldEmail},
		{"short message", func(s *Submission) { s.Message = "Short" }, FieldMessage},
		{"unknown experience", func(s *Submission) { s.Experience = "grandmaster" }, FieldExperience},
		{"unknown session", func(s *Submission) { s.SessionType = "blitz" }, FieldSessionType},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := valid
			tc.mut(&s)

			var verr *ValidationError
			require.True(t, errors.As(s.Validate(), &verr))
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestValidateAllowsEmptyMessage(t *testing.T) {
	s := Submission{Name: "Jane", Email: "jane@email.com"}
	assert.NoError(t, s.Validate())
}

func TestValidateJoinsMultipleViolations(t *testing.T) {
	s := Submission{Email: "invalid-email"}
	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name: is required")
	assert.Contains(t, err.Error(), "email: is not a valid email address")
}

func TestNormalizeTrims(t *testing.T) {
	s := Submission{Name: "  Arjun ", Email: " arjun@example.com\n"}.Normalize()
	assert.Equal(t, "Arjun", s.Name)
	assert.Equal(t, "arjun@example.com", s.Email)
}

func TestMemoryStoreListsNewestFirst(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	base := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, store.SaveContact(ctx, Contact{ID: "a", CreatedAt: base}))
	require.NoError(t, store.SaveContact(ctx, Contact{ID: "b", CreatedAt: base.Add(time.Hour)}))
	require.NoError(t, store.SaveContact(ctx, Contact{ID: "c", CreatedAt: base.Add(2 * time.Hour)}))

	all, err := store.ListContacts(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].ID)

	limited, err := store.ListContacts(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	got, err := store.GetContact(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "b", got.ID)

	_, err = store.GetContact(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
