// Package models defines server-side data models persisted in the store.
package models

import "time"

// User is the credential record owned by the user store.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	Phone        *string
	IsAdmin      bool
	CreatedAt    time.Time
}

// Principal is the identity resolved from a valid token for one request.
// It never carries the password hash.
type Principal struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Phone     *string   `json:"phone"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// Principal strips the credential from the record.
func (u *User) Principal() *Principal {
	return &Principal{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Phone:     u.Phone,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}
