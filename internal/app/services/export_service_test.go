package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcabrera/studentrecords/internal/app/models"
)

func TestExportCSVHeaderRow(t *testing.T) {
	svc := NewExportService(newFakeStudentRepo())

	csv, err := svc.ExportCSV(context.Background())
	require.NoError(t, err)

	assert.Equal(t,
		"Student ID,Full Name,Email,Phone,Date of Birth,Enrollment Date,Street,Barangay,City,Province,Postal Code,Guardian Name,Guardian Phone,Program,Year Level,Status",
		csv,
		"an empty record set exports the header row alone, no trailing newline")
}

func TestExportCSVQuotesFreeTextFields(t *testing.T) {
	repo := newFakeStudentRepo()
	require.NoError(t, repo.Create(context.Background(), &models.Student{
		StudentID:      "2024-0001",
		FullName:       "Juan Dela Cruz",
		Email:          "juan.delacruz@email.com",
		Phone:          "09171234567",
		DateOfBirth:    "2005-03-15",
		EnrollmentDate: "2024-06-01",
		Street:         "123 Rizal Street",
		Barangay:       "San Jose",
		City:           "Quezon City",
		Province:       "Metro Manila",
		PostalCode:     "1100",
		GuardianName:   "Maria Dela Cruz",
		GuardianPhone:  "09181234567",
		Program:        "BSIT",
		YearLevel:      "1st Year",
		Status:         models.StatusActive,
	}))

	svc := NewExportService(repo)
	csv, err := svc.ExportCSV(context.Background())
	require.NoError(t, err)

	lines := strings.Split(csv, "\n")
	require.Len(t, lines, 2)

	assert.Equal(t,
		`2024-0001,"Juan Dela Cruz",juan.delacruz@email.com,09171234567,2005-03-15,2024-06-01,"123 Rizal Street","San Jose","Quezon City","Metro Manila",1100,"Maria Dela Cruz",09181234567,BSIT,1st Year,active`,
		lines[1])
}

func TestExportCSVNewestFirst(t *testing.T) {
	repo := newFakeStudentRepo()
	for _, id := range []string{"2024-0001", "2024-0002", "2024-0003"} {
		require.NoError(t, repo.Create(context.Background(), &models.Student{
			StudentID: id,
			FullName:  "Student " + id,
			Status:    models.StatusActive,
		}))
	}

	svc := NewExportService(repo)
	csv, err := svc.ExportCSV(context.Background())
	require.NoError(t, err)

	lines := strings.Split(csv, "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "2024-0003,"))
	assert.True(t, strings.HasPrefix(lines[3], "2024-0001,"))
}

func TestExportFilenameCarriesDate(t *testing.T) {
	svc := NewExportService(newFakeStudentRepo())

	day := time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "student-records-2026-08-31.csv", svc.Filename(day))
}
