package models

import (
	"time"
)

// StudentStatus defines the enrollment status of a student record
type StudentStatus string

const (
	StatusActive    StudentStatus = "active"
	StatusInactive  StudentStatus = "inactive"
	StatusGraduated StudentStatus = "graduated"
)

// IsValid reports whether the status is one of the enumerated values
func (s StudentStatus) IsValid() bool {
	return s == StatusActive || s == StatusInactive || s == StatusGraduated
}

// Programs lists the program codes offered on the enrollment form.
var Programs = []string{"BSIT", "BSCS", "BSA", "BSBA", "BSN", "BSED", "BSCE", "BSEE"}

// YearLevels lists the accepted year levels.
var YearLevels = []string{"1st Year", "2nd Year", "3rd Year", "4th Year"}

// Student defines the student record model based on the 'students' table.
// StudentID is the caller-assigned enrollment number, unique across all
// records and immutable once set; ID is the system key used for updates
// and deletion.
type Student struct {
	ID             int64         `json:"id" db:"id"`
	StudentID      string        `json:"studentId" db:"student_id"`
	FullName       string        `json:"fullName" db:"full_name"`
	Email          string        `json:"email" db:"email"`
	Phone          string        `json:"phone" db:"phone"`
	DateOfBirth    string        `json:"dateOfBirth" db:"date_of_birth"`
	EnrollmentDate string        `json:"enrollmentDate" db:"enrollment_date"`
	Street         string        `json:"street" db:"street"`
	Barangay       string        `json:"barangay" db:"barangay"`
	City           string        `json:"city" db:"city"`
	Province       string        `json:"province" db:"province"`
	PostalCode     string        `json:"postalCode" db:"postal_code"`
	GuardianName   string        `json:"guardianName" db:"guardian_name"`
	GuardianPhone  string        `json:"guardianPhone" db:"guardian_phone"`
	Program        string        `json:"program" db:"program"`
	YearLevel      string        `json:"yearLevel" db:"year_level"`
	Status         StudentStatus `json:"status" db:"status"`
	CreatedAt      time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time     `json:"updatedAt" db:"updated_at"`
}
