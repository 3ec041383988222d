package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/rcabrera/studentrecords/internal/app/models"
	appRepos "github.com/rcabrera/studentrecords/internal/app/repositories"
	"github.com/rcabrera/studentrecords/internal/pkg/auth"
)

// defaultUsers are the accounts provisioned on first start. User accounts
// have no self-service registration path; this is the only way they are
// created outside of admin tooling.
var defaultUsers = []struct {
	username string
	password string
	role     appModels.Role
}{
	{"admin", "admin123", appModels.RoleAdmin},
	{"staff", "staff123", appModels.RoleStaff},
}

// sampleStudents are inserted once, when the students table is empty.
var sampleStudents = []appModels.Student{
	{
		StudentID:      "2024-0001",
		FullName:       "Juan Dela Cruz",
		Email:          "juan.delacruz@example.com",
		Phone:          "0917-123-4567",
		DateOfBirth:    "2005-03-15",
		EnrollmentDate: "2024-08-15",
		Street:         "123 Rizal Street",
		Barangay:       "Barangay San Jose",
		City:           "Manila",
		Province:       "Metro Manila",
		PostalCode:     "1000",
		GuardianName:   "Maria Dela Cruz",
		GuardianPhone:  "0918-234-5678",
		Program:        "BSIT",
		YearLevel:      "1st Year",
		Status:         appModels.StatusActive,
	},
	{
		StudentID:      "2024-0002",
		FullName:       "Maria Santos",
		Email:          "maria.santos@example.com",
		Phone:          "0919-345-6789",
		DateOfBirth:    "2004-07-22",
		EnrollmentDate: "2024-08-15",
		Street:         "456 Bonifacio Avenue",
		Barangay:       "Barangay Poblacion",
		City:           "Quezon City",
		Province:       "Metro Manila",
		PostalCode:     "1100",
		GuardianName:   "Jose Santos",
		GuardianPhone:  "0920-456-7890",
		Program:        "BSCS",
		YearLevel:      "2nd Year",
		Status:         appModels.StatusActive,
	},
}

// CreateDefaultData seeds the default users and sample student records.
// Idempotent: existing usernames and student IDs are left untouched.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	studentRepo := appRepos.NewStudentRepository(dbPool)

	var finalErr error

	for _, u := range defaultUsers {
		exists, err := userRepo.UsernameExists(ctx, u.username)
		if err != nil {
			lgr.Error().Err(err).Str("username", u.username).Msg("Error checking default user")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if exists {
			continue
		}

		hash, err := auth.HashPassword(u.password)
		if err != nil {
			lgr.Error().Err(err).Str("username", u.username).Msg("Error hashing default password")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		user := &appModels.User{
			Username:     u.username,
			PasswordHash: hash,
			Role:         u.role,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			lgr.Error().Err(err).Str("username", u.username).Msg("Error creating default user")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		lgr.Info().Str("username", u.username).Str("role", string(u.role)).Msg("Default user created")
	}

	// Sample records only on a fresh database
	existing, err := studentRepo.GetAll(ctx, "")
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking existing student records")
		return errors.Join(finalErr, err)
	}
	if len(existing) > 0 {
		return finalErr
	}

	for i := range sampleStudents {
		student := sampleStudents[i]
		if err := studentRepo.Create(ctx, &student); err != nil {
			lgr.Error().Err(err).Str("studentId", student.StudentID).Msg("Error creating sample student")
			finalErr = errors.Join(finalErr, err)
		}
	}
	lgr.Info().Int("count", len(sampleStudents)).Msg("Sample student records created")

	return finalErr
}
