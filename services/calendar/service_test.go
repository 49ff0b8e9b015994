package calendar

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glowdesk/models"
)

type fakeStaffRepo struct {
	staff []models.StaffMember
}

func (f *fakeStaffRepo) Create(ctx context.Context, staff *models.StaffMember) error { return nil }
func (f *fakeStaffRepo) GetByID(ctx context.Context, businessID, id string) (*models.StaffMember, error) {
	for i := range f.staff {
		if f.staff[i].ID == id {
			return &f.staff[i], nil
		}
	}
	return nil, fmt.Errorf("staff %s not found", id)
}
func (f *fakeStaffRepo) ListByBusiness(ctx context.Context, businessID string, activeOnly bool) ([]models.StaffMember, error) {
	return f.staff, nil
}
func (f *fakeStaffRepo) Update(ctx context.Context, staff *models.StaffMember) error { return nil }
func (f *fakeStaffRepo) Delete(ctx context.Context, businessID, id string) error     { return nil }

type fakeAppointmentRepo struct {
	appts []models.Appointment
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, appt *models.Appointment) error { return nil }
func (f *fakeAppointmentRepo) Update(ctx context.Context, appt *models.Appointment) error { return nil }
func (f *fakeAppointmentRepo) UpdateStatus(ctx context.Context, businessID, id, status string) error {
	return nil
}
func (f *fakeAppointmentRepo) GetByID(ctx context.Context, businessID, id string) (*models.Appointment, error) {
	return nil, fmt.Errorf("not found")
}
func (f *fakeAppointmentRepo) ListByRange(ctx context.Context, businessID string, from, to time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if !a.StartTime.Before(from) && a.StartTime.Before(to) {
			out = append(out, a)
		}
	}
	return out, nil
}
func (f *fakeAppointmentRepo) Delete(ctx context.Context, businessID, id string) error { return nil }
func (f *fakeAppointmentRepo) ClientIDsCompletedSince(ctx context.Context, businessID string, since time.Time) ([]string, error) {
	return nil, nil
}
func (f *fakeAppointmentRepo) ClientIDsWithFutureScheduled(ctx context.Context, businessID string, after time.Time) ([]string, error) {
	return nil, nil
}

type fakeClientRepo struct {
	clients []models.Client
}

func (f *fakeClientRepo) Create(ctx context.Context, client *models.Client) error       { return nil }
func (f *fakeClientRepo) CreateMany(ctx context.Context, clients []models.Client) error { return nil }
func (f *fakeClientRepo) GetByID(ctx context.Context, businessID, id string) (*models.Client, error) {
	return nil, fmt.Errorf("not found")
}
func (f *fakeClientRepo) ListByBusiness(ctx context.Context, businessID string) ([]models.Client, error) {
	return f.clients, nil
}
func (f *fakeClientRepo) CountByBusiness(ctx context.Context, businessID string) (int64, error) {
	return int64(len(f.clients)), nil
}
func (f *fakeClientRepo) Update(ctx context.Context, client *models.Client) error { return nil }
func (f *fakeClientRepo) Delete(ctx context.Context, businessID, id string) error { return nil }

type fakeServiceRepo struct {
	services []models.Service
}

func (f *fakeServiceRepo) Create(ctx context.Context, svc *models.Service) error { return nil }
func (f *fakeServiceRepo) GetByID(ctx context.Context, businessID, id string) (*models.Service, error) {
	return nil, fmt.Errorf("not found")
}
func (f *fakeServiceRepo) ListByBusiness(ctx context.Context, businessID string) ([]models.Service, error) {
	return f.services, nil
}
func (f *fakeServiceRepo) Update(ctx context.Context, svc *models.Service) error   { return nil }
func (f *fakeServiceRepo) Delete(ctx context.Context, businessID, id string) error { return nil }

func newTestService(staff []models.StaffMember, appts []models.Appointment, now time.Time) *DefaultCalendarService {
	return &DefaultCalendarService{
		AppointmentRepo: &fakeAppointmentRepo{appts: appts},
		StaffRepo:       &fakeStaffRepo{staff: staff},
		ClientRepo: &fakeClientRepo{clients: []models.Client{
			{ID: "client-1", FirstName: "Maya", LastName: "Reyes"},
		}},
		ServiceRepo: &fakeServiceRepo{services: []models.Service{
			{ID: "service-1", Name: "Haircut"},
		}},
		Now: func() time.Time { return now },
	}
}

func TestDayView(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	staff := []models.StaffMember{{ID: "staff-1"}, {ID: "staff-2"}}
	appts := []models.Appointment{
		{
			ID:        "appt-1",
			ClientID:  "client-1",
			ServiceID: "service-1",
			StaffID:   strPtr("staff-1"),
			StartTime: time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local),
			EndTime:   time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local),
		},
	}
	svc := newTestService(staff, appts, now)

	t.Run("renders today with the now marker", func(t *testing.T) {
		view, err := svc.DayView(context.Background(), "biz-1", now, nil)
		require.NoError(t, err)
		assert.Equal(t, "2026-03-10", view.Date)
		require.Len(t, view.Columns, 2)
		require.NotNil(t, view.Now)
		assert.InDelta(t, 50.0, view.Now.Position, 0.0001)

		require.Len(t, view.Columns[0].Blocks, 1)
		block := view.Columns[0].Blocks[0]
		assert.Equal(t, "Maya Reyes", block.ClientName)
		assert.Equal(t, "Haircut", block.ServiceName)
	})

	t.Run("no marker on another date", func(t *testing.T) {
		view, err := svc.DayView(context.Background(), "biz-1", now.AddDate(0, 0, 1), nil)
		require.NoError(t, err)
		assert.Nil(t, view.Now)
	})

	t.Run("staff filter narrows columns", func(t *testing.T) {
		view, err := svc.DayView(context.Background(), "biz-1", now, []string{"staff-2"})
		require.NoError(t, err)
		require.Len(t, view.Columns, 1)
		assert.Equal(t, "staff-2", view.Columns[0].Staff.ID)
	})
}

func TestWeekView(t *testing.T) {
	now := time.Date(2026, 3, 10, 6, 0, 0, 0, time.Local)
	staff := []models.StaffMember{{ID: "staff-1"}}
	appts := []models.Appointment{
		{
			ID:        "appt-1",
			ClientID:  "client-1",
			ServiceID: "service-1",
			StaffID:   strPtr("staff-1"),
			StartTime: time.Date(2026, 3, 11, 15, 0, 0, 0, time.Local),
			EndTime:   time.Date(2026, 3, 11, 16, 0, 0, 0, time.Local),
		},
	}
	svc := newTestService(staff, appts, now)
	weekStart := time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local)

	t.Run("buckets by day and hour", func(t *testing.T) {
		view, err := svc.WeekView(context.Background(), "biz-1", weekStart, "staff-1")
		require.NoError(t, err)
		assert.Equal(t, "2026-03-09", view.WeekStart)
		require.Len(t, view.Days, 7)
		assert.Equal(t, "2026-03-15", view.Days[6])
		require.Len(t, view.Cells[2][15].Appointments, 1)
		assert.Equal(t, "appt-1", view.Cells[2][15].Appointments[0].AppointmentID)
	})

	t.Run("marker only when today is inside the week", func(t *testing.T) {
		view, err := svc.WeekView(context.Background(), "biz-1", weekStart, "staff-1")
		require.NoError(t, err)
		assert.NotNil(t, view.Now)

		view, err = svc.WeekView(context.Background(), "biz-1", weekStart.AddDate(0, 0, 7), "staff-1")
		require.NoError(t, err)
		assert.Nil(t, view.Now)
	})

	t.Run("requires a staff member", func(t *testing.T) {
		_, err := svc.WeekView(context.Background(), "biz-1", weekStart, "")
		assert.Error(t, err)
	})

	t.Run("unknown staff member fails", func(t *testing.T) {
		_, err := svc.WeekView(context.Background(), "biz-1", weekStart, "nope")
		assert.Error(t, err)
	})
}
