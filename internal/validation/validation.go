// Package validation holds the explicit payload validators that gate writes.
// Each validator returns the full set of violations rather than stopping at
// the first, so the user sees everything wrong with a submission at once.
package validation

import (
	"strings"
)

type Violation struct {
	Field   string
	Message string
}

type Violations []Violation

// Message joins every violation into the single client-facing string the
// error page renders.
func (v Violations) Message() string {
	parts := make([]string, len(v))
	for i, violation := range v {
		parts[i] = violation.Message
	}
	return strings.Join(parts, ", ")
}

func (v Violations) OK() bool { return len(v) == 0 }

type ReviewInput struct {
	Comment string
	Rating  *int
}

func ValidateReview(input ReviewInput) Violations {
	var violations Violations

	if strings.TrimSpace(input.Comment) == "" {
		violations = append(violations, Violation{Field: "comment", Message: "comment is required"})
	}
	if input.Rating != nil && (*input.Rating < 1 || *input.Rating > 5) {
		violations = append(violations, Violation{Field: "rating", Message: "rating must be between 1 and 5"})
	}

	return violations
}

type ListingInput struct {
	Title       string
	Description string
	Location    string
	Country     string
	Price       int64
}

func ValidateListing(input ListingInput) Violations {
	var violations Violations

	if strings.TrimSpace(input.Title) == "" {
		violations = append(violations, Violation{Field: "title", Message: "title is required"})
	}
	if input.Price < 0 {
		violations = append(violations, Violation{Field: "price", Message: "price must not be negative"})
	}

	return violations
}

type RegistrationInput struct {
	Username string
	Email    string
	Password string
}

func ValidateRegistration(input RegistrationInput) Violations {
	var violations Violations

	if strings.TrimSpace(input.Username) == "" {
		violations = append(violations, Violation{Field: "username", Message: "username is required"})
	}
	if strings.TrimSpace(input.Email) == "" {
		violations = append(violations, Violation{Field: "email", Message: "email is required"})
	}
	if len(input.Password) < 8 {
		violations = append(violations, Violation{Field: "password", Message: "password must be at least 8 characters"})
	}

	return violations
}
