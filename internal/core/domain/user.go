package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents an account in the identity store.
type User struct {
	UserID       string          `json:"userID" db:"user_id"` // Primary Key (UUID)
	FirstName    string          `json:"firstName" db:"first_name"`
	LastName     string          `json:"lastName" db:"last_name"`
	Email        string          `json:"email" db:"email"`
	PasswordHash string          `json:"-" db:"password_hash"`
	Salary       decimal.Decimal `json:"salary" db:"salary"`
	CreatedAt    time.Time       `json:"createdAt" db:"created_at"`
}

// FullName returns the display name used for snapshot fields such as
// JobApplication.ApplicantName.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
