package models

import "time"

// User is an operator account. The password hash never leaves the
// server; json tags exist only for the fields safe to expose.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
