package dto

import (
	"github.com/rcabrera/studentrecords/internal/app/models"
)

// CreateStudentRequest carries the fields for a new student record.
// Required-field checks run in the service in a fixed order, so no
// binding tags here; Status is optional and defaults to active.
type CreateStudentRequest struct {
	StudentID      string `json:"studentId"`
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	DateOfBirth    string `json:"dateOfBirth"`
	EnrollmentDate string `json:"enrollmentDate"`
	Street         string `json:"street"`
	Barangay       string `json:"barangay"`
	City           string `json:"city"`
	Province       string `json:"province"`
	PostalCode     string `json:"postalCode"`
	GuardianName   string `json:"guardianName"`
	GuardianPhone  string `json:"guardianPhone"`
	Program        string `json:"program"`
	YearLevel      string `json:"yearLevel"`
	Status         string `json:"status"`
}

// UpdateStudentRequest is a per-field patch for an existing record.
// There is deliberately no StudentID field: the enrollment number is
// immutable, so the allow-list excludes it by construction. A studentId
// key in the JSON body is silently ignored.
type UpdateStudentRequest struct {
	FullName       *string `json:"fullName"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	DateOfBirth    *string `json:"dateOfBirth"`
	EnrollmentDate *string `json:"enrollmentDate"`
	Street         *string `json:"street"`
	Barangay       *string `json:"barangay"`
	City           *string `json:"city"`
	Province       *string `json:"province"`
	PostalCode     *string `json:"postalCode"`
	GuardianName   *string `json:"guardianName"`
	GuardianPhone  *string `json:"guardianPhone"`
	Program        *string `json:"program"`
	YearLevel      *string `json:"yearLevel"`
	Status         *string `json:"status"`
}

// StudentResponse wraps a single student record
type StudentResponse struct {
	Student *models.Student `json:"student"`
}

// StudentListResponse wraps a list of student records
type StudentListResponse struct {
	Students []*models.Student `json:"students"`
}
