package models

import "time"

// Profile is an authenticated account working through onboarding and owning
// at most one business.
type Profile struct {
	ID             string    `bson:"id" json:"id"`
	Email          string    `bson:"email" json:"email"`
	EmailConfirmed bool      `bson:"email_confirmed" json:"email_confirmed"`
	Phone          string    `bson:"phone,omitempty" json:"phone,omitempty"`
	PhoneVerified  bool      `bson:"phone_verified" json:"phone_verified"`
	FirstName      string    `bson:"first_name,omitempty" json:"first_name,omitempty"`
	LastName       string    `bson:"last_name,omitempty" json:"last_name,omitempty"`
	PasswordHash   string    `bson:"password_hash" json:"-"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}

// PersonalDetailsComplete reports whether the profile has both names set.
func (p Profile) PersonalDetailsComplete() bool {
	return p.FirstName != "" && p.LastName != ""
}
