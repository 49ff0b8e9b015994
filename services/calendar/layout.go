package calendar

import (
	"time"

	"glowdesk/models"
)

const minutesPerDay = 1440

// dayStart returns local midnight of the calendar day containing t.
func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// blockGeometry computes top and height percentages for an appointment on the
// grid of the viewed day. Both values are relative to the local calendar day
// and clamped to [0,100] so cross-midnight spillover stays on the grid.
func blockGeometry(viewedDay, start, end time.Time) (top, height float64) {
	base := dayStart(viewedDay)

	startMin := start.Sub(base).Minutes()
	endMin := end.Sub(base).Minutes()

	if startMin < 0 {
		startMin = 0
	}
	if startMin > minutesPerDay {
		startMin = minutesPerDay
	}
	if endMin < startMin {
		endMin = startMin
	}
	if endMin > minutesPerDay {
		endMin = minutesPerDay
	}

	top = startMin / minutesPerDay * 100
	height = (endMin - startMin) / minutesPerDay * 100
	return top, height
}

// makeBlock positions one appointment and joins display names.
func makeBlock(viewedDay time.Time, appt models.Appointment, clientNames, serviceNames map[string]string) models.AppointmentBlock {
	top, height := blockGeometry(viewedDay, appt.StartTime, appt.EndTime)
	return models.AppointmentBlock{
		AppointmentID: appt.ID,
		ClientName:    clientNames[appt.ClientID],
		ServiceName:   serviceNames[appt.ServiceID],
		Status:        appt.Status,
		StartTime:     appt.StartTime.Format(time.RFC3339),
		EndTime:       appt.EndTime.Format(time.RFC3339),
		TopPercent:    top,
		HeightPercent: height,
		Unassigned:    appt.StaffID == nil,
	}
}

// layoutDayColumns assigns appointments to staff columns. An appointment
// belongs to a column when its staff ID matches, or when it has no staff at
// all: unassigned appointments are broadcast into every rendered column.
// Appointments assigned to staff outside the rendered set are dropped.
func layoutDayColumns(viewedDay time.Time, staff []models.StaffMember, appts []models.Appointment, clientNames, serviceNames map[string]string) []models.StaffColumn {
	columns := make([]models.StaffColumn, 0, len(staff))
	for _, member := range staff {
		col := models.StaffColumn{Staff: member, Blocks: []models.AppointmentBlock{}}
		for _, appt := range appts {
			if appt.StaffID != nil && *appt.StaffID != member.ID {
				continue
			}
			col.Blocks = append(col.Blocks, makeBlock(viewedDay, appt, clientNames, serviceNames))
		}
		columns = append(columns, col)
	}
	return columns
}

// nowMarker returns the current-time indicator when the viewed date is the
// real current date, compared as "2006-01-02" strings in local time.
func nowMarker(viewedDay, now time.Time) *models.NowMarker {
	if viewedDay.Format("2006-01-02") != now.Format("2006-01-02") {
		return nil
	}
	minutes := now.Sub(dayStart(now)).Minutes()
	return &models.NowMarker{Position: minutes / minutesPerDay * 100}
}

// bucketWeek distributes a single staff member's appointments into a
// 7-day by 24-hour matrix, keyed by day index and hour of start.
func bucketWeek(weekStart time.Time, staffID string, appts []models.Appointment, clientNames, serviceNames map[string]string) [7][24]models.WeekCell {
	var cells [7][24]models.WeekCell
	base := dayStart(weekStart)

	for _, appt := range appts {
		// Unassigned appointments stay visible whichever staff member is viewed.
		if appt.StaffID != nil && *appt.StaffID != staffID {
			continue
		}
		day := int(dayStart(appt.StartTime).Sub(base).Hours() / 24)
		if day < 0 || day > 6 {
			continue
		}
		hour := appt.StartTime.Hour()
		block := makeBlock(appt.StartTime, appt, clientNames, serviceNames)
		cells[day][hour].Appointments = append(cells[day][hour].Appointments, block)
	}
	return cells
}
