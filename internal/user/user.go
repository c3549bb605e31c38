// Package user holds the user model and its validation rules.
package user

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors returned by New.
var (
	ErrNameRequired = errors.New("name is required")
	ErrInvalidEmail = errors.New("invalid email address")
)

// User is a user in the system. Age is optional.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   *int   `json:"age,omitempty"`
}

// New creates a user after validating the required fields.
func New(name, email string, age *int) (*User, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return &User{Name: name, Email: email, Age: age}, nil
}

// Greeting returns a greeting for the user, including the age when known.
func (u *User) Greeting() string {
	if u.Age != nil {
		return fmt.Sprintf("Hello, %s (age %d)!", u.Name, *u.Age)
	}
	return fmt.Sprintf("Hello, %s!", u.Name)
}

// Names returns the names of the given users in order.
func Names(users []User) []string {
	names := make([]string, len(users))
	for i, u := range users {
		names[i] = u.Name
	}
	return names
}
