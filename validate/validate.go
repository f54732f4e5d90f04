// Package validate holds the client-side form checks. They are pure and
// synchronous; a non-empty result blocks the submission before any request
// is made.
package validate

import (
	"regexp"
	"strings"
)

const minPasswordLength = 8

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Errors maps field names to user-facing messages. Empty means valid.
type Errors map[string]string

// Valid reports whether no field failed.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// Email checks the syntactic shape only; deliverability is not our problem.
func Email(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// Password requires a non-empty value of at least eight characters.
func Password(password string) bool {
	return len(password) >= minPasswordLength
}

// LoginForm validates a credentials pair.
func LoginForm(email, password string) Errors {
	errs := Errors{}
	if !Email(email) {
		errs["email"] = "Enter a valid email address."
	}
	if password == "" {
		errs["password"] = "Password is required."
	}
	return errs
}

// SignupForm validates a registration.
func SignupForm(fullName, email, password string) Errors {
	errs := Errors{}
	if strings.TrimSpace(fullName) == "" {
		errs["fullName"] = "Name is required."
	}
	if !Email(email) {
		errs["email"] = "Enter a valid email address."
	}
	if !Password(password) {
		errs["password"] = "Password must be at least 8 characters."
	}
	return errs
}
