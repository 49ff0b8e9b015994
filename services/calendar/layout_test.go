package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glowdesk/models"
)

func strPtr(s string) *string { return &s }

func TestBlockGeometry(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)

	t.Run("morning appointment", func(t *testing.T) {
		start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
		end := time.Date(2026, 3, 10, 10, 30, 0, 0, time.Local)

		top, height := blockGeometry(day, start, end)
		assert.InDelta(t, 37.5, top, 0.0001)
		assert.InDelta(t, 6.25, height, 0.0001)
	})

	t.Run("top plus height equals top of end time", func(t *testing.T) {
		start := time.Date(2026, 3, 10, 14, 15, 0, 0, time.Local)
		end := time.Date(2026, 3, 10, 16, 45, 0, 0, time.Local)

		top, height := blockGeometry(day, start, end)
		endTop, _ := blockGeometry(day, end, end)
		assert.InDelta(t, endTop, top+height, 0.0001)
	})

	t.Run("cross midnight clamps to the grid", func(t *testing.T) {
		start := time.Date(2026, 3, 10, 23, 0, 0, 0, time.Local)
		end := time.Date(2026, 3, 11, 1, 0, 0, 0, time.Local)

		top, height := blockGeometry(day, start, end)
		assert.InDelta(t, float64(23*60)/1440*100, top, 0.0001)
		assert.InDelta(t, 100, top+height, 0.0001)
	})

	t.Run("appointment before the viewed day clamps to zero", func(t *testing.T) {
		start := time.Date(2026, 3, 9, 22, 0, 0, 0, time.Local)
		end := time.Date(2026, 3, 9, 23, 0, 0, 0, time.Local)

		top, height := blockGeometry(day, start, end)
		assert.Zero(t, top)
		assert.Zero(t, height)
	})

	t.Run("values stay within bounds", func(t *testing.T) {
		start := time.Date(2026, 3, 9, 6, 0, 0, 0, time.Local)
		end := time.Date(2026, 3, 12, 6, 0, 0, 0, time.Local)

		top, height := blockGeometry(day, start, end)
		assert.GreaterOrEqual(t, top, 0.0)
		assert.LessOrEqual(t, top+height, 100.0)
	})
}

func TestLayoutDayColumns(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	staff := []models.StaffMember{
		{ID: "staff-1", FirstName: "Ana"},
		{ID: "staff-2", FirstName: "Bea"},
	}
	appts := []models.Appointment{
		{
			ID:        "appt-1",
			StaffID:   strPtr("staff-1"),
			StartTime: time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local),
			EndTime:   time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local),
		},
		{
			ID:        "appt-unassigned",
			StartTime: time.Date(2026, 3, 10, 11, 0, 0, 0, time.Local),
			EndTime:   time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local),
		},
		{
			ID:        "appt-other",
			StaffID:   strPtr("staff-elsewhere"),
			StartTime: time.Date(2026, 3, 10, 13, 0, 0, 0, time.Local),
			EndTime:   time.Date(2026, 3, 10, 14, 0, 0, 0, time.Local),
		},
	}

	columns := layoutDayColumns(day, staff, appts, nil, nil)
	require.Len(t, columns, 2)

	ids := func(blocks []models.AppointmentBlock) []string {
		out := make([]string, len(blocks))
		for i, b := range blocks {
			out[i] = b.AppointmentID
		}
		return out
	}

	// The unassigned appointment is broadcast into every column; the one
	// assigned to a staff member outside the rendered set is dropped.
	assert.ElementsMatch(t, []string{"appt-1", "appt-unassigned"}, ids(columns[0].Blocks))
	assert.ElementsMatch(t, []string{"appt-unassigned"}, ids(columns[1].Blocks))

	for _, block := range columns[0].Blocks {
		if block.AppointmentID == "appt-unassigned" {
			assert.True(t, block.Unassigned)
		} else {
			assert.False(t, block.Unassigned)
		}
	}
}

func TestNowMarker(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

	t.Run("viewing today", func(t *testing.T) {
		marker := nowMarker(time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local), now)
		require.NotNil(t, marker)
		assert.InDelta(t, 50.0, marker.Position, 0.0001)
	})

	t.Run("viewing another day", func(t *testing.T) {
		assert.Nil(t, nowMarker(time.Date(2026, 3, 11, 0, 0, 0, 0, time.Local), now))
		assert.Nil(t, nowMarker(time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local), now))
	})
}

func TestBucketWeek(t *testing.T) {
	weekStart := time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local) // Monday
	appts := []models.Appointment{
		{
			ID:        "appt-wed",
			StaffID:   strPtr("staff-1"),
			StartTime: time.Date(2026, 3, 11, 14, 30, 0, 0, time.Local),
			EndTime:   time.Date(2026, 3, 11, 15, 0, 0, 0, time.Local),
		},
		{
			ID:        "appt-unassigned",
			StartTime: time.Date(2026, 3, 9, 8, 0, 0, 0, time.Local),
			EndTime:   time.Date(2026, 3, 9, 9, 0, 0, 0, time.Local),
		},
		{
			ID:        "appt-other-staff",
			StaffID:   strPtr("staff-2"),
			StartTime: time.Date(2026, 3, 11, 14, 0, 0, 0, time.Local),
			EndTime:   time.Date(2026, 3, 11, 15, 0, 0, 0, time.Local),
		},
		{
			ID:        "appt-next-week",
			StaffID:   strPtr("staff-1"),
			StartTime: time.Date(2026, 3, 17, 10, 0, 0, 0, time.Local),
			EndTime:   time.Date(2026, 3, 17, 11, 0, 0, 0, time.Local),
		},
	}

	cells := bucketWeek(weekStart, "staff-1", appts, nil, nil)

	require.Len(t, cells[2][14].Appointments, 1)
	assert.Equal(t, "appt-wed", cells[2][14].Appointments[0].AppointmentID)

	require.Len(t, cells[0][8].Appointments, 1)
	assert.Equal(t, "appt-unassigned", cells[0][8].Appointments[0].AppointmentID)

	total := 0
	for d := 0; d < 7; d++ {
		for h := 0; h < 24; h++ {
			total += len(cells[d][h].Appointments)
		}
	}
	assert.Equal(t, 2, total)
}

func TestSelectStaff(t *testing.T) {
	staff := []models.StaffMember{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	t.Run("empty selection keeps everyone", func(t *testing.T) {
		assert.Len(t, selectStaff(staff, nil), 3)
	})

	t.Run("explicit selection filters", func(t *testing.T) {
		selected := selectStaff(staff, []string{"c", "a"})
		require.Len(t, selected, 2)
		assert.Equal(t, "a", selected[0].ID)
		assert.Equal(t, "c", selected[1].ID)
	})

	t.Run("unknown ids select nothing", func(t *testing.T) {
		assert.Empty(t, selectStaff(staff, []string{"zzz"}))
	})
}
