// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the identity root of the marketplace. Every profile, offer, order and
// review hangs off a User.
type User struct {
	ID           uint      // Auto-increment primary key, exposed as `user` in the API.
	Username     string    // Unique login name.
	Email        string    // Contact email, not unique.
	PasswordHash string    // bcrypt hash, never serialized.
	FirstName    string    // Optional given name.
	LastName     string    // Optional family name.
	IsStaff      bool      // Staff identities may delete orders.
	DateJoined   time.Time // Timestamp of registration.
}
