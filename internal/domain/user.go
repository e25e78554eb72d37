// internal/domain/user.go
package domain

import "github.com/google/uuid"

// User represents an account holder.
type User struct {
	UserID    string `db:"user_id" json:"userId"`
	Email     string `db:"email" json:"email"` // unique, enforced transactionally at write time
	FirstName string `db:"first_name" json:"firstName"`
	LastName  string `db:"last_name" json:"lastName"`
	Password  string `db:"password" json:"-"` // bcrypt hash, never serialized
}

// NewUser creates a new User instance with a generated identifier.
func NewUser(email, firstName, lastName, passwordHash string) *User {
	return &User{
		UserID:    uuid.NewString(),
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Password:  passwordHash,
	}
}
