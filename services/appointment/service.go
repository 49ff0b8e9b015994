package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appointmentRepo "glowdesk/database/repository/appointment"
	clientRepo "glowdesk/database/repository/client"
	serviceRepo "glowdesk/database/repository/service"
	staffRepo "glowdesk/database/repository/staff"
	"glowdesk/models"
	"glowdesk/utils"
)

// CreateInput carries a new appointment. StaffID may be empty: the
// appointment is then unassigned and shows in every staff column.
type CreateInput struct {
	ClientID  string    `json:"client_id"`
	StaffID   string    `json:"staff_id,omitempty"`
	ServiceID string    `json:"service_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Notes     string    `json:"notes,omitempty"`
}

// AppointmentService manages appointment records.
type AppointmentService interface {
	Create(ctx context.Context, businessID string, input CreateInput) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, businessID, id, status string) error
	ListByRange(ctx context.Context, businessID string, from, to time.Time) ([]models.Appointment, error)
	Delete(ctx context.Context, businessID, id string) error
}

// DefaultAppointmentService is the default implementation.
type DefaultAppointmentService struct {
	AppointmentRepo appointmentRepo.AppointmentRepository
	ClientRepo      clientRepo.ClientRepository
	StaffRepo       staffRepo.StaffRepository
	ServiceRepo     serviceRepo.ServiceRepository
}

// Create validates references and the time window, then inserts.
func (s *DefaultAppointmentService) Create(ctx context.Context, businessID string, input CreateInput) (*models.Appointment, error) {
	if !input.StartTime.Before(input.EndTime) {
		return nil, fmt.Errorf("start time must be before end time")
	}
	if _, err := s.ClientRepo.GetByID(ctx, businessID, input.ClientID); err != nil {
		return nil, fmt.Errorf("client not found: %w", err)
	}
	if _, err := s.ServiceRepo.GetByID(ctx, businessID, input.ServiceID); err != nil {
		return nil, fmt.Errorf("service not found: %w", err)
	}

	var staffID *string
	if input.StaffID != "" {
		if _, err := s.StaffRepo.GetByID(ctx, businessID, input.StaffID); err != nil {
			return nil, fmt.Errorf("staff member not found: %w", err)
		}
		staffID = &input.StaffID
	}

	now := time.Now()
	appt := &models.Appointment{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		ClientID:   input.ClientID,
		StaffID:    staffID,
		ServiceID:  input.ServiceID,
		StartTime:  input.StartTime,
		EndTime:    input.EndTime,
		Status:     models.AppointmentScheduled,
		Notes:      input.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.AppointmentRepo.Create(ctx, appt); err != nil {
		utils.GetLogger().Error("failed to create appointment", zap.String("businessID", businessID), zap.Error(err))
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	return appt, nil
}

func (s *DefaultAppointmentService) UpdateStatus(ctx context.Context, businessID, id, status string) error {
	if !models.ValidAppointmentStatus(status) {
		return fmt.Errorf("unknown appointment status %q", status)
	}
	if err := s.AppointmentRepo.UpdateStatus(ctx, businessID, id, status); err != nil {
		return fmt.Errorf("failed to update appointment status: %w", err)
	}
	return nil
}

func (s *DefaultAppointmentService) ListByRange(ctx context.Context, businessID string, from, to time.Time) ([]models.Appointment, error) {
	if !from.Before(to) {
		return nil, fmt.Errorf("range start must be before range end")
	}
	return s.AppointmentRepo.ListByRange(ctx, businessID, from, to)
}

func (s *DefaultAppointmentService) Delete(ctx context.Context, businessID, id string) error {
	return s.AppointmentRepo.Delete(ctx, businessID, id)
}
