// Package validate checks request bodies against the form rules the client
// also enforces, producing the exact field messages the client displays.
package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ayush/chat-app/backend/internal/models"
)

const (
	msgRequired         = "Required"
	msgNameTooShort     = "Must be at least 3 characters"
	msgPasswordTooShort = "Must be at least 8 characters"
	msgInvalidEmail     = "Invalid email address"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// FieldError reports the first failed check. Message is surfaced verbatim as
// the response payload.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// RegisterInput is a validated registration body. Name is trimmed; Email is
// trimmed but not yet lowercased.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register validates fields in order name, email, password and stops at the
// first failure. A missing key fails with "Required"; a present but invalid
// value fails with its field-specific message.
func Register(req *models.RegisterRequest) (*RegisterInput, *FieldError) {
	if req.Name == nil {
		return nil, &FieldError{Field: "name", Message: msgRequired}
	}
	name := strings.TrimSpace(*req.Name)
	if utf8.RuneCountInString(name) < 3 {
		return nil, &FieldError{Field: "name", Message: msgNameTooShort}
	}

	if req.Email == nil {
		return nil, &FieldError{Field: "email", Message: msgRequired}
	}
	email := strings.TrimSpace(*req.Email)
	if email == "" {
		return nil, &FieldError{Field: "email", Message: msgRequired}
	}
	if !emailPattern.MatchString(email) {
		return nil, &FieldError{Field: "email", Message: msgInvalidEmail}
	}

	if req.Password == nil {
		return nil, &FieldError{Field: "password", Message: msgRequired}
	}
	if utf8.RuneCountInString(*req.Password) < 8 {
		return nil, &FieldError{Field: "password", Message: msgPasswordTooShort}
	}

	return &RegisterInput{Name: name, Email: email, Password: *req.Password}, nil
}

// LoginInput is a validated login body.
type LoginInput struct {
	Email    string
	Password string
}

// Login only checks presence; credential quality is the auth layer's problem.
func Login(req *models.LoginRequest) (*LoginInput, *FieldError) {
	if req.Email == nil || strings.TrimSpace(*req.Email) == "" {
		return nil, &FieldError{Field: "email", Message: msgRequired}
	}
	if req.Password == nil || *req.Password == "" {
		return nil, &FieldError{Field: "password", Message: msgRequired}
	}
	return &LoginInput{Email: *req.Email, Password: *req.Password}, nil
}
