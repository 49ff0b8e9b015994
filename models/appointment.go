package models

import "time"

// Appointment statuses.
const (
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

// Appointment represents a booked visit. StaffID is nil for unassigned
// appointments, which render in every staff column of the day view.
type Appointment struct {
	ID         string    `bson:"id" json:"id"`
	BusinessID string    `bson:"business_id" json:"business_id"`
	ClientID   string    `bson:"client_id" json:"client_id"`
	StaffID    *string   `bson:"staff_id,omitempty" json:"staff_id,omitempty"`
	ServiceID  string    `bson:"service_id" json:"service_id"`
	StartTime  time.Time `bson:"start_time" json:"start_time"`
	EndTime    time.Time `bson:"end_time" json:"end_time"`
	Status     string    `bson:"status" json:"status"` // "scheduled", "completed", "cancelled"
	Notes      string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}

// AppointmentDetail is an appointment joined with client and service names
// for display on the calendar.
type AppointmentDetail struct {
	Appointment `bson:",inline"`

	ClientName  string `bson:"client_name" json:"client_name"`
	ServiceName string `bson:"service_name" json:"service_name"`
}

// ValidAppointmentStatus reports whether s is a known appointment status.
func ValidAppointmentStatus(s string) bool {
	switch s {
	case AppointmentScheduled, AppointmentCompleted, AppointmentCancelled:
		return true
	}
	return false
}
