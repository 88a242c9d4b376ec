package domain

import "errors"

// User is a dashboard user. PasswordHash is a bcrypt hash; plaintext passwords
// are never stored or logged.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
}

// Validate validates the user for persistence. Returns an error describing the first validation failure.
func (u *User) Validate() error {
	if u.Email == "" {
		return errors.New("email is required")
	}
	if u.PasswordHash == "" {
		return errors.New("password hash is required")
	}
	return nil
}
