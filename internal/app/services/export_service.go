package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rcabrera/studentrecords/internal/app/models"
	"github.com/rcabrera/studentrecords/internal/app/repositories"
)

// csvHeaders is the fixed sixteen-column header row of the export.
var csvHeaders = []string{
	"Student ID",
	"Full Name",
	"Email",
	"Phone",
	"Date of Birth",
	"Enrollment Date",
	"Street",
	"Barangay",
	"City",
	"Province",
	"Postal Code",
	"Guardian Name",
	"Guardian Phone",
	"Program",
	"Year Level",
	"Status",
}

// ExportService defines the interface for the CSV export of student records
type ExportService interface {
	ExportCSV(ctx context.Context) (string, error)
	Filename(now time.Time) string
}

// exportServiceImpl implements the ExportService interface
type exportServiceImpl struct {
	studentRepo repositories.IStudentRepository
}

// NewExportService creates a new export service instance
func NewExportService(studentRepo repositories.IStudentRepository) ExportService {
	return &exportServiceImpl{
		studentRepo: studentRepo,
	}
}

// ExportCSV serializes all student records, newest first, to CSV text.
// Free-text fields are wrapped in double quotes; embedded quotes and
// commas are not escaped, matching the historical export format.
func (s *exportServiceImpl) ExportCSV(ctx context.Context) (string, error) {
	students, err := s.studentRepo.GetAll(ctx, "")
	if err != nil {
		return "", fmt.Errorf("error retrieving students for export: %w", err)
	}

	rows := make([]string, 0, len(students)+1)
	rows = append(rows, strings.Join(csvHeaders, ","))
	for _, student := range students {
		rows = append(rows, exportRow(student))
	}

	return strings.Join(rows, "\n"), nil
}

// Filename returns the attachment filename for the given export date
func (s *exportServiceImpl) Filename(now time.Time) string {
	return fmt.Sprintf("student-records-%s.csv", now.Format("2006-01-02"))
}

func exportRow(student *models.Student) string {
	fields := []string{
		student.StudentID,
		`"` + student.FullName + `"`,
		student.Email,
		student.Phone,
		student.DateOfBirth,
		student.EnrollmentDate,
		`"` + student.Street + `"`,
		`"` + student.Barangay + `"`,
		`"` + student.City + `"`,
		`"` + student.Province + `"`,
		student.PostalCode,
		`"` + student.GuardianName + `"`,
		student.GuardianPhone,
		student.Program,
		student.YearLevel,
		string(student.Status),
	}
	return strings.Join(fields, ",")
}
