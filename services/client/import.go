package client

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"glowdesk/models"
)

// ImportReport summarizes a CSV import: rows that parsed and saved, and
// per-row errors for the rest.
type ImportReport struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// csvColumns is the expected header, matched case-insensitively.
var csvColumns = []string{"First Name", "Last Name", "Email", "Phone"}

// ImportCSV parses client rows from CSV data. The header row is required.
// Rows missing both names are skipped with an error entry; valid rows are
// inserted in one batch.
func (s *DefaultClientService) ImportCSV(ctx context.Context, businessID string, data []byte) (*ImportReport, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	report := &ImportReport{}
	var batch []models.Client
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			report.Skipped++
			report.Errors = append(report.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}

		c := models.Client{
			ID:         uuid.New().String(),
			BusinessID: businessID,
			FirstName:  field(record, cols["first name"]),
			LastName:   field(record, cols["last name"]),
			Email:      field(record, cols["email"]),
			Phone:      field(record, cols["phone"]),
			CreatedAt:  time.Now(),
		}
		if c.FirstName == "" && c.LastName == "" {
			report.Skipped++
			report.Errors = append(report.Errors, fmt.Sprintf("line %d: missing name", line))
			continue
		}
		batch = append(batch, c)
	}

	if len(batch) > 0 {
		if err := s.Repo.CreateMany(ctx, batch); err != nil {
			return nil, fmt.Errorf("failed to insert imported clients: %w", err)
		}
	}
	report.Imported = len(batch)
	return report, nil
}

// mapColumns resolves the index of each expected column in the header.
func mapColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, want := range csvColumns {
		if _, ok := cols[strings.ToLower(want)]; !ok {
			return nil, fmt.Errorf("CSV is missing required column %q", want)
		}
	}
	return cols, nil
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
