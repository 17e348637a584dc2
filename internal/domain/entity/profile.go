package entity

import (
	"strings"
	"time"
)

// ProfileType represents the role a profile holds in the marketplace.
type ProfileType string

const (
	// ProfileTypeCustomer marks an identity that buys and reviews.
	ProfileTypeCustomer ProfileType = "customer"
	// ProfileTypeBusiness marks an identity that publishes offers.
	ProfileTypeBusiness ProfileType = "business"
)

// String returns the string representation of the ProfileType.
func (t ProfileType) String() string {
	return string(t)
}

// IsValid checks if the ProfileType is a valid value.
func (t ProfileType) IsValid() bool {
	switch t {
	case ProfileTypeCustomer, ProfileTypeBusiness:
		return true
	default:
		return false
	}
}

// Profile holds the public marketplace data of a User. There is exactly one per User.
type Profile struct {
	ID           uint
	UserID       uint
	Type         ProfileType
	File         string
	Location     string
	Tel          string
	Description  string
	WorkingHours string
	CreatedAt    time.Time

	User *User // Loaded alongside the profile for output shaping.
}

// IsBusiness reports whether the profile belongs to a business.
func (p *Profile) IsBusiness() bool {
	return p != nil && p.Type == ProfileTypeBusiness
}

// IsCustomer reports whether the profile belongs to a customer.
func (p *Profile) IsCustomer() bool {
	return p != nil && p.Type == ProfileTypeCustomer
}

// InferProfileType guesses a profile type from identity hints.
// "customer" anywhere in username or email wins; otherwise "business" in either,
// or "biz" in the username, yields a business. The second return value is false
// when nothing matched.
func InferProfileType(username, email string) (ProfileType, bool) {
	username = strings.ToLower(username)
	email = strings.ToLower(email)

	if strings.Contains(username, "customer") || strings.Contains(email, "customer") {
		return ProfileTypeCustomer, true
	}

	if strings.Contains(username, "business") || strings.Contains(email, "business") ||
		strings.HasPrefix(username, "biz") || strings.Contains(username, "biz") {
		return ProfileTypeBusiness, true
	}

	return "", false
}

// ResolveProfileType returns the inferred type, then the fallback, then customer.
func ResolveProfileType(username, email string, fallback ProfileType) ProfileType {
	if inferred, ok := InferProfileType(username, email); ok {
		return inferred
	}

	if fallback.IsValid() {
		return fallback
	}

	return ProfileTypeCustomer
}
