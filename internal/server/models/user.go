// Package models defines the persistence-level types shared by server
// repositories and services.
package models

import "time"

// User is a registered account. PasswordHash holds a bcrypt digest; the
// plaintext password never leaves the registration/login handlers.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
