package calendar

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	appointmentRepo "glowdesk/database/repository/appointment"
	clientRepo "glowdesk/database/repository/client"
	serviceRepo "glowdesk/database/repository/service"
	staffRepo "glowdesk/database/repository/staff"
	"glowdesk/models"
	"glowdesk/utils"
)

// CalendarService computes calendar projections. Views are pure read-side
// projections recomputed per request; nothing here is persisted.
type CalendarService interface {
	// DayView lays out one day as hour rows by staff columns. An empty
	// staffIDs slice selects every active staff member.
	DayView(ctx context.Context, businessID string, date time.Time, staffIDs []string) (*models.DayView, error)
	// WeekView buckets one staff member's week into a 7x24 matrix.
	WeekView(ctx context.Context, businessID string, weekStart time.Time, staffID string) (*models.WeekView, error)
}

// DefaultCalendarService is the default implementation.
type DefaultCalendarService struct {
	AppointmentRepo appointmentRepo.AppointmentRepository
	StaffRepo       staffRepo.StaffRepository
	ClientRepo      clientRepo.ClientRepository
	ServiceRepo     serviceRepo.ServiceRepository

	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultCalendarService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// DayView builds the day calendar for the selected staff members.
func (s *DefaultCalendarService) DayView(ctx context.Context, businessID string, date time.Time, staffIDs []string) (*models.DayView, error) {
	logger := utils.GetLogger()

	staff, err := s.StaffRepo.ListByBusiness(ctx, businessID, true)
	if err != nil {
		logger.Error("DayView: failed to load staff", zap.String("businessID", businessID), zap.Error(err))
		return nil, fmt.Errorf("failed to load staff: %w", err)
	}
	selected := selectStaff(staff, staffIDs)

	from := dayStart(date)
	to := from.AddDate(0, 0, 1)
	appts, err := s.AppointmentRepo.ListByRange(ctx, businessID, from, to)
	if err != nil {
		logger.Error("DayView: failed to load appointments", zap.String("businessID", businessID), zap.Error(err))
		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}

	clientNames, serviceNames, err := s.displayNames(ctx, businessID)
	if err != nil {
		return nil, err
	}

	view := &models.DayView{
		Date:    date.Format("2006-01-02"),
		Columns: layoutDayColumns(date, selected, appts, clientNames, serviceNames),
		Now:     nowMarker(date, s.now()),
	}
	return view, nil
}

// WeekView builds the week calendar for a single staff member. Week view is
// single-select only; callers sending several IDs keep just the first.
func (s *DefaultCalendarService) WeekView(ctx context.Context, businessID string, weekStart time.Time, staffID string) (*models.WeekView, error) {
	logger := utils.GetLogger()

	if staffID == "" {
		return nil, fmt.Errorf("week view requires a staff member")
	}
	if _, err := s.StaffRepo.GetByID(ctx, businessID, staffID); err != nil {
		return nil, fmt.Errorf("staff member not found: %w", err)
	}

	from := dayStart(weekStart)
	to := from.AddDate(0, 0, 7)
	appts, err := s.AppointmentRepo.ListByRange(ctx, businessID, from, to)
	if err != nil {
		logger.Error("WeekView: failed to load appointments", zap.String("businessID", businessID), zap.Error(err))
		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}

	clientNames, serviceNames, err := s.displayNames(ctx, businessID)
	if err != nil {
		return nil, err
	}

	days := make([]string, 7)
	for i := range days {
		days[i] = from.AddDate(0, 0, i).Format("2006-01-02")
	}

	// The marker only renders when today falls inside the viewed week.
	var marker *models.NowMarker
	if n := s.now(); !n.Before(from) && n.Before(to) {
		marker = nowMarker(n, n)
	}

	view := &models.WeekView{
		StaffID:   staffID,
		WeekStart: from.Format("2006-01-02"),
		Days:      days,
		Cells:     bucketWeek(from, staffID, appts, clientNames, serviceNames),
		Now:       marker,
	}
	return view, nil
}

// displayNames loads the client and service name lookup tables used to join
// names onto appointment blocks.
func (s *DefaultCalendarService) displayNames(ctx context.Context, businessID string) (map[string]string, map[string]string, error) {
	clients, err := s.ClientRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load clients: %w", err)
	}
	services, err := s.ServiceRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load services: %w", err)
	}

	clientNames := make(map[string]string, len(clients))
	for _, c := range clients {
		clientNames[c.ID] = c.FullName()
	}
	serviceNames := make(map[string]string, len(services))
	for _, svc := range services {
		serviceNames[svc.ID] = svc.Name
	}
	return clientNames, serviceNames, nil
}

// selectStaff filters the staff list down to the requested IDs. An empty
// request keeps everyone (the "select all" toggle).
func selectStaff(staff []models.StaffMember, staffIDs []string) []models.StaffMember {
	if len(staffIDs) == 0 {
		return staff
	}
	want := make(map[string]bool, len(staffIDs))
	for _, id := range staffIDs {
		want[id] = true
	}
	selected := make([]models.StaffMember, 0, len(staff))
	for _, member := range staff {
		if want[member.ID] {
			selected = append(selected, member)
		}
	}
	return selected
}
