package models

// AppointmentBlock is a positioned appointment on the day-view grid.
// Percentages are relative to the full 24-hour day column.
type AppointmentBlock struct {
	AppointmentID string  `json:"appointment_id"`
	ClientName    string  `json:"client_name"`
	ServiceName   string  `json:"service_name"`
	Status        string  `json:"status"`
	StartTime     string  `json:"start_time"` // RFC 3339
	EndTime       string  `json:"end_time"`
	TopPercent    float64 `json:"top_percent"`
	HeightPercent float64 `json:"height_percent"`
	Unassigned    bool    `json:"unassigned"` // true when the appointment has no staff member
}

// StaffColumn is one column of the day view.
type StaffColumn struct {
	Staff  StaffMember        `json:"staff"`
	Blocks []AppointmentBlock `json:"blocks"`
}

// NowMarker is the current-time indicator, present only when the viewed
// date is today.
type NowMarker struct {
	Position float64 `json:"position"` // percent from the top of the grid
}

// DayView is the day calendar: hour rows by staff columns.
type DayView struct {
	Date    string        `json:"date"` // "2006-01-02"
	Columns []StaffColumn `json:"columns"`
	Now     *NowMarker    `json:"now,omitempty"`
}

// WeekCell is one (day, hour) bucket of the week view.
type WeekCell struct {
	Appointments []AppointmentBlock `json:"appointments,omitempty"`
}

// WeekView is the week calendar for a single staff member: a 7-day by
// 24-hour matrix. Appointments are bucketed by hour of start, without
// sub-hour layout.
type WeekView struct {
	StaffID   string          `json:"staff_id"`
	WeekStart string          `json:"week_start"` // "2006-01-02"
	Days      []string        `json:"days"`       // 7 dates ascending
	Cells     [7][24]WeekCell `json:"cells"`
	Now       *NowMarker      `json:"now,omitempty"`
}
