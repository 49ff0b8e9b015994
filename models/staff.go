package models

import "time"

// Staff member statuses.
const (
	StaffActive   = "active"
	StaffInactive = "inactive"
)

// StaffMember is an employee of a business, used as a column key in day view.
type StaffMember struct {
	ID              string    `bson:"id" json:"id"`
	BusinessID      string    `bson:"business_id" json:"business_id"`
	FirstName       string    `bson:"first_name" json:"first_name"`
	LastName        string    `bson:"last_name" json:"last_name"`
	ProfileImageURL string    `bson:"profile_image_url,omitempty" json:"profile_image_url,omitempty"`
	Status          string    `bson:"status" json:"status"` // "active" or "inactive"
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}
