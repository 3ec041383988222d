package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rcabrera/studentrecords/internal/app/models"
	"github.com/rcabrera/studentrecords/internal/app/models/dto"
	"github.com/rcabrera/studentrecords/internal/app/repositories"
	"github.com/rcabrera/studentrecords/internal/pkg/apperrors"
)

// requiredFields lists the create-time required fields in the order they
// are checked. The first absent field wins.
var requiredFields = []struct {
	name  string
	value func(*dto.CreateStudentRequest) string
}{
	{"studentId", func(r *dto.CreateStudentRequest) string { return r.StudentID }},
	{"fullName", func(r *dto.CreateStudentRequest) string { return r.FullName }},
	{"email", func(r *dto.CreateStudentRequest) string { return r.Email }},
	{"phone", func(r *dto.CreateStudentRequest) string { return r.Phone }},
	{"dateOfBirth", func(r *dto.CreateStudentRequest) string { return r.DateOfBirth }},
	{"enrollmentDate", func(r *dto.CreateStudentRequest) string { return r.EnrollmentDate }},
	{"street", func(r *dto.CreateStudentRequest) string { return r.Street }},
	{"barangay", func(r *dto.CreateStudentRequest) string { return r.Barangay }},
	{"city", func(r *dto.CreateStudentRequest) string { return r.City }},
	{"province", func(r *dto.CreateStudentRequest) string { return r.Province }},
	{"postalCode", func(r *dto.CreateStudentRequest) string { return r.PostalCode }},
	{"guardianName", func(r *dto.CreateStudentRequest) string { return r.GuardianName }},
	{"guardianPhone", func(r *dto.CreateStudentRequest) string { return r.GuardianPhone }},
	{"program", func(r *dto.CreateStudentRequest) string { return r.Program }},
	{"yearLevel", func(r *dto.CreateStudentRequest) string { return r.YearLevel }},
}

// StudentService defines the interface for student record operations
type StudentService interface {
	List(ctx context.Context, search string) ([]*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	Create(ctx context.Context, req *dto.CreateStudentRequest, callerRole models.Role) (*models.Student, error)
	Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error)
	Delete(ctx context.Context, id int64, callerRole models.Role) error
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo repositories.IStudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo repositories.IStudentRepository) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
	}
}

// List retrieves student records, newest first. An empty search term
// returns the full set.
func (s *studentServiceImpl) List(ctx context.Context, search string) ([]*models.Student, error) {
	students, err := s.studentRepo.GetAll(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// GetByID retrieves a single record by its system id
func (s *studentServiceImpl) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return student, nil
}

// Create validates and inserts a new student record. Only staff and admin
// may create records; all fifteen caller-supplied fields are required and
// checked in a fixed order; status defaults to active when omitted.
func (s *studentServiceImpl) Create(ctx context.Context, req *dto.CreateStudentRequest, callerRole models.Role) (*models.Student, error) {
	if callerRole != models.RoleStaff && callerRole != models.RoleAdmin {
		return nil, apperrors.ErrRoleRequired
	}

	for _, field := range requiredFields {
		if field.value(req) == "" {
			return nil, apperrors.NewMissingFieldError(field.name)
		}
	}

	status := models.StatusActive
	if req.Status != "" {
		status = models.StudentStatus(req.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: status must be active, inactive or graduated", apperrors.ErrValidationFailed)
		}
	}

	student := &models.Student{
		StudentID:      req.StudentID,
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		DateOfBirth:    req.DateOfBirth,
		EnrollmentDate: req.EnrollmentDate,
		Street:         req.Street,
		Barangay:       req.Barangay,
		City:           req.City,
		Province:       req.Province,
		PostalCode:     req.PostalCode,
		GuardianName:   req.GuardianName,
		GuardianPhone:  req.GuardianPhone,
		Program:        req.Program,
		YearLevel:      req.YearLevel,
		Status:         status,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// Update merges the patch onto the existing record and bumps updatedAt.
// The enrollment number cannot change: the patch type has no studentId
// field, so nothing needs to be discarded at runtime.
func (s *studentServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyPatch(student, req)
	student.UpdatedAt = time.Now()

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// Delete permanently removes a record. Admin only.
func (s *studentServiceImpl) Delete(ctx context.Context, id int64, callerRole models.Role) error {
	if callerRole != models.RoleAdmin {
		return apperrors.ErrAdminRequired
	}

	return s.studentRepo.Delete(ctx, id)
}

// applyPatch copies every set field of the patch onto the record
func applyPatch(student *models.Student, req *dto.UpdateStudentRequest) {
	if req.FullName != nil {
		student.FullName = *req.FullName
	}
	if req.Email != nil {
		student.Email = *req.Email
	}
	if req.Phone != nil {
		student.Phone = *req.Phone
	}
	if req.DateOfBirth != nil {
		student.DateOfBirth = *req.DateOfBirth
	}
	if req.EnrollmentDate != nil {
		student.EnrollmentDate = *req.EnrollmentDate
	}
	if req.Street != nil {
		student.Street = *req.Street
	}
	if req.Barangay != nil {
		student.Barangay = *req.Barangay
	}
	if req.City != nil {
		student.City = *req.City
	}
	if req.Province != nil {
		student.Province = *req.Province
	}
	if req.PostalCode != nil {
		student.PostalCode = *req.PostalCode
	}
	if req.GuardianName != nil {
		student.GuardianName = *req.GuardianName
	}
	if req.GuardianPhone != nil {
		student.GuardianPhone = *req.GuardianPhone
	}
	if req.Program != nil {
		student.Program = *req.Program
	}
	if req.YearLevel != nil {
		student.YearLevel = *req.YearLevel
	}
	if req.Status != nil {
		student.Status = models.StudentStatus(*req.Status)
	}
}
