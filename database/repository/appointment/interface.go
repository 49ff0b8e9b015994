package appointmentRepo

import (
	"context"
	"time"

	"glowdesk/models"
)

// AppointmentRepository defines methods for appointment data access.
type AppointmentRepository interface {
	// Create inserts a new appointment record.
	Create(ctx context.Context, appt *models.Appointment) error
	// Update replaces an existing appointment record.
	Update(ctx context.Context, appt *models.Appointment) error
	// UpdateStatus sets the status of an appointment.
	UpdateStatus(ctx context.Context, businessID, id, status string) error
	// GetByID retrieves an appointment by its unique ID.
	GetByID(ctx context.Context, businessID, id string) (*models.Appointment, error)
	// ListByRange retrieves appointments starting within [from, to).
	ListByRange(ctx context.Context, businessID string, from, to time.Time) ([]models.Appointment, error)
	// Delete removes an appointment record by its ID.
	Delete(ctx context.Context, businessID, id string) error

	// ClientIDsCompletedSince returns distinct client IDs with a completed
	// appointment at or after the given instant.
	ClientIDsCompletedSince(ctx context.Context, businessID string, since time.Time) ([]string, error)
	// ClientIDsWithFutureScheduled returns distinct client IDs with any
	// scheduled appointment starting after the given instant.
	ClientIDsWithFutureScheduled(ctx context.Context, businessID string, after time.Time) ([]string, error)
}
