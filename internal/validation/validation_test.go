package validation_test

import (
	"testing"

	"github.com/mkamath/wanderstay/internal/validation"
	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int { return &i }

func TestValidateReview(t *testing.T) {
	tests := []struct {
		name        string
		input       validation.ReviewInput
		wantOK      bool
		wantMessage string
	}{
		{
			name:   "valid with rating",
			input:  validation.ReviewInput{Comment: "lovely place", Rating: intPtr(5)},
			wantOK: true,
		},
		{
			name:   "valid without rating",
			input:  validation.ReviewInput{Comment: "decent"},
			wantOK: true,
		},
		{
			name:        "rating zero",
			input:       validation.ReviewInput{Comment: "meh", Rating: intPtr(0)},
			wantMessage: "rating must be between 1 and 5",
		},
		{
			name:        "rating six",
			input:       validation.ReviewInput{Comment: "too good", Rating: intPtr(6)},
			wantMessage: "rating must be between 1 and 5",
		},
		{
			name:        "missing comment",
			input:       validation.ReviewInput{Rating: intPtr(3)},
			wantMessage: "comment is required",
		},
		{
			name:        "whitespace comment",
			input:       validation.ReviewInput{Comment: "   ", Rating: intPtr(3)},
			wantMessage: "comment is required",
		},
		{
			name:        "both violations joined",
			input:       validation.ReviewInput{Rating: intPtr(9)},
			wantMessage: "comment is required, rating must be between 1 and 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := validation.ValidateReview(tt.input)
			if tt.wantOK {
				assert.True(t, violations.OK())
				return
			}
			assert.False(t, violations.OK())
			assert.Equal(t, tt.wantMessage, violations.Message())
		})
	}
}

func TestValidateReview_FieldNames(t *testing.T) {
	violations := validation.ValidateReview(validation.ReviewInput{Comment: "ok", Rating: intPtr(42)})
	assert.Len(t, violations, 1)
	assert.Equal(t, "rating", violations[0].Field)
	assert.Contains(t, violations.Message(), "rating")
}

func TestValidateListing(t *testing.T) {
	tests := []struct {
		name        string
		input       validation.ListingInput
		wantOK      bool
		wantMessage string
	}{
		{
			name:   "valid",
			input:  validation.ListingInput{Title: "Seaside cottage", Price: 120},
			wantOK: true,
		},
		{
			name:        "missing title",
			input:       validation.ListingInput{Price: 80},
			wantMessage: "title is required",
		},
		{
			name:        "negative price",
			input:       validation.ListingInput{Title: "Cheap", Price: -1},
			wantMessage: "price must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := validation.ValidateListing(tt.input)
			if tt.wantOK {
				assert.True(t, violations.OK())
				return
			}
			assert.Equal(t, tt.wantMessage, violations.Message())
		})
	}
}

func TestValidateRegistration(t *testing.T) {
	violations := validation.ValidateRegistration(validation.RegistrationInput{
		Username: "",
		Email:    "",
		Password: "short",
	})
	assert.Len(t, violations, 3)
	assert.Equal(t,
		"username is required, email is required, password must be at least 8 characters",
		violations.Message())

	ok := validation.ValidateRegistration(validation.RegistrationInput{
		Username: "mira",
		Email:    "mira@example.com",
		Password: "longenough",
	})
	assert.True(t, ok.OK())
}
