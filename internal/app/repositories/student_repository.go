package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rcabrera/studentrecords/internal/app/models"
	"github.com/rcabrera/studentrecords/internal/pkg/apperrors"
	"github.com/rcabrera/studentrecords/internal/pkg/dberrors"
)

const studentColumns = `id, student_id, full_name, email, phone, date_of_birth, enrollment_date,
		street, barangay, city, province, postal_code, guardian_name, guardian_phone,
		program, year_level, status, created_at, updated_at`

// IStudentRepository defines the interface for student record database operations
type IStudentRepository interface {
	GetAll(ctx context.Context, search string) ([]*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
}

// StudentRepository handles database operations for student records
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.ID,
		&s.StudentID,
		&s.FullName,
		&s.Email,
		&s.Phone,
		&s.DateOfBirth,
		&s.EnrollmentDate,
		&s.Street,
		&s.Barangay,
		&s.City,
		&s.Province,
		&s.PostalCode,
		&s.GuardianName,
		&s.GuardianPhone,
		&s.Program,
		&s.YearLevel,
		&s.Status,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetAll retrieves all student records ordered by creation time, newest first.
// A non-empty search term keeps only records where the full name, student ID,
// program, year level or email contains the term (case-sensitive LIKE).
func (r *StudentRepository) GetAll(ctx context.Context, search string) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students`

	var rows pgx.Rows
	var err error
	if search != "" {
		query += `
		WHERE full_name LIKE $1 OR student_id LIKE $1 OR program LIKE $1
			OR year_level LIKE $1 OR email LIKE $1
		ORDER BY created_at DESC`
		rows, err = r.db.Query(ctx, query, "%"+search+"%")
	} else {
		query += `
		ORDER BY created_at DESC`
		rows, err = r.db.Query(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// GetByID retrieves a single student record by its system id
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// Create inserts a new student record. The unique constraint on student_id
// guarantees that concurrent creates with the same enrollment number resolve
// to exactly one winner; the loser gets apperrors.ErrStudentIDExists.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (student_id, full_name, email, phone, date_of_birth, enrollment_date,
			street, barangay, city, province, postal_code, guardian_name, guardian_phone,
			program, year_level, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		student.StudentID,
		student.FullName,
		student.Email,
		student.Phone,
		student.DateOfBirth,
		student.EnrollmentDate,
		student.Street,
		student.Barangay,
		student.City,
		student.Province,
		student.PostalCode,
		student.GuardianName,
		student.GuardianPhone,
		student.Program,
		student.YearLevel,
		student.Status,
	).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrStudentIDExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// Update writes all mutable columns of an existing record. student_id is
// never part of the SET list; the column is immutable after creation.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET full_name = $1, email = $2, phone = $3, date_of_birth = $4, enrollment_date = $5,
			street = $6, barangay = $7, city = $8, province = $9, postal_code = $10,
			guardian_name = $11, guardian_phone = $12, program = $13, year_level = $14,
			status = $15, updated_at = $16
		WHERE id = $17
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.FullName,
		student.Email,
		student.Phone,
		student.DateOfBirth,
		student.EnrollmentDate,
		student.Street,
		student.Barangay,
		student.City,
		student.Province,
		student.PostalCode,
		student.GuardianName,
		student.GuardianPhone,
		student.Program,
		student.YearLevel,
		student.Status,
		student.UpdatedAt,
		student.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete permanently removes a student record by its system id
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
