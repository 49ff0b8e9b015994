package models

import "time"

// Business is the tenant entity owning staff, services, clients and appointments.
type Business struct {
	ID             string    `bson:"id" json:"id"`
	OwnerProfileID string    `bson:"owner_profile_id" json:"owner_profile_id"`
	Name           string    `bson:"name" json:"name"` // may be empty when the onboarding step was skipped
	Phone          string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Address        string    `bson:"address,omitempty" json:"address,omitempty"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}

// BusinessHours holds the opening window for one weekday.
// Minutes are counted from midnight (e.g. 540 for 9:00 AM).
type BusinessHours struct {
	ID         string `bson:"id" json:"id"`
	BusinessID string `bson:"business_id" json:"business_id"`
	Weekday    int    `bson:"weekday" json:"weekday"` // 0 = Sunday .. 6 = Saturday
	OpenMinute int    `bson:"open_minute" json:"open_minute"`
	CloseMin   int    `bson:"close_minute" json:"close_minute"`
	Closed     bool   `bson:"closed" json:"closed"`
}

// BankAccount stores payout details. Numbers are format-validated on write
// and never processed by this service.
type BankAccount struct {
	ID            string    `bson:"id" json:"id"`
	BusinessID    string    `bson:"business_id" json:"business_id"`
	AccountHolder string    `bson:"account_holder" json:"account_holder"`
	AccountNumber string    `bson:"account_number" json:"account_number"`
	RoutingNumber string    `bson:"routing_number" json:"routing_number"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

// BookingLink is a shareable public booking URL slug.
type BookingLink struct {
	ID         string    `bson:"id" json:"id"`
	BusinessID string    `bson:"business_id" json:"business_id"`
	Slug       string    `bson:"slug" json:"slug"`
	Active     bool      `bson:"active" json:"active"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}
