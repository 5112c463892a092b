package app

import (
	"fmt"
	"net/mail"
	"strings"
)

const (
	usernameMinLen = 4
	usernameMaxLen = 20
	passwordMinLen = 5
	// bcrypt ignores everything past 72 bytes, so longer inputs are rejected
	// rather than silently truncated.
	passwordMaxLen = 72
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors aggregates every failing field from one request; handlers
// render it as a 400 with the full list.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, fe := range v {
		msgs = append(msgs, fe.Message)
	}
	return strings.Join(msgs, "; ")
}

// isInstitutionalEmail requires exactly one "@" with the organization's
// domain after it.
func isInstitutionalEmail(email, domain string) bool {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return false
	}
	return parts[1] == domain
}

func validateRegister(input RegisterInput, emailDomain string) ValidationErrors {
	var errs ValidationErrors

	if _, err := mail.ParseAddress(input.Email); err != nil || !isInstitutionalEmail(input.Email, emailDomain) {
		errs = append(errs, FieldError{
			Field:   "email",
			Message: fmt.Sprintf("Enter a valid %s email address", emailDomain),
		})
	}
	if n := len(input.Username); n < usernameMinLen || n > usernameMaxLen {
		errs = append(errs, FieldError{
			Field:   "username",
			Message: "Username must be between 4-20 characters long",
		})
	}
	if n := len(input.Password); n < passwordMinLen || n > passwordMaxLen {
		errs = append(errs, FieldError{
			Field:   "password",
			Message: "Password must be 5-20 characters long",
		})
	}
	return errs
}

func validateLogin(input LoginInput) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(input.Username) == "" {
		errs = append(errs, FieldError{Field: "username", Message: "Username cannot be empty"})
	}
	if input.Password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "Password cannot be empty"})
	}
	return errs
}
