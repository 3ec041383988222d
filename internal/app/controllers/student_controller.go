package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rcabrera/studentrecords/internal/app/models"
	"github.com/rcabrera/studentrecords/internal/app/models/dto"
	"github.com/rcabrera/studentrecords/internal/app/services"
	"github.com/rcabrera/studentrecords/internal/middleware"
)

// StudentController handles student record operations
type StudentController struct {
	studentService services.StudentService
	exportService  services.ExportService
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService, exportService services.ExportService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentService: studentService,
		exportService:  exportService,
		logger:         logger,
	}
}

func parseStudentID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Student ID must be a valid number"))
		return 0, false
	}
	return id, true
}

// ListStudents retrieves all student records with optional search
// @Summary List students
// @Description Retrieves all student records, newest first, optionally filtered by a search term
// @Tags students
// @Produce json
// @Param search query string false "Substring matched against name, student ID, program, year level and email"
// @Success 200 {object} dto.StudentListResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	search := ctx.Query("search")

	students, err := c.studentService.List(ctx.Request.Context(), search)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list students")
		middleware.HandleAPIError(ctx, err)
		return
	}

	if students == nil {
		students = []*models.Student{}
	}

	ctx.JSON(http.StatusOK, dto.StudentListResponse{Students: students})
}

// GetStudent retrieves a single student record
// @Summary Get student by ID
// @Tags students
// @Produce json
// @Param id path int true "Student record ID"
// @Success 200 {object} dto.StudentResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	id, ok := parseStudentID(ctx)
	if !ok {
		return
	}

	student, err := c.studentService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentResponse{Student: student})
}

// CreateStudent creates a new student record (staff and admin only)
// @Summary Create student
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student record fields"
// @Success 201 {object} dto.StudentResponse
// @Failure 400 {object} dto.ErrorResponse "Missing required field"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Role not allowed to create records"
// @Failure 409 {object} dto.ErrorResponse "Student ID already exists"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	student, err := c.studentService.Create(ctx.Request.Context(), &req, middleware.CallerRole(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("studentId", student.StudentID).Int64("id", student.ID).Msg("Student record created")
	ctx.JSON(http.StatusCreated, dto.StudentResponse{Student: student})
}

// UpdateStudent merges a patch onto an existing record. Any authenticated
// role may update; the studentId field is immutable and ignored if sent.
// @Summary Update student
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student record ID"
// @Param request body dto.UpdateStudentRequest true "Fields to change"
// @Success 200 {object} dto.StudentResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := parseStudentID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	student, err := c.studentService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentResponse{Student: student})
}

// DeleteStudent permanently removes a record (admin only, enforced by
// the AdminRequired middleware on the route)
// @Summary Delete student
// @Tags students
// @Produce json
// @Param id path int true "Student record ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseStudentID(ctx)
	if !ok {
		return
	}

	if err := c.studentService.Delete(ctx.Request.Context(), id, middleware.CallerRole(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("id", id).Msg("Student record deleted")
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// ExportStudents streams the full record set as a CSV attachment
// @Summary Export students as CSV
// @Tags students
// @Produce text/csv
// @Success 200 {string} string "CSV content"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /students/export [get]
func (c *StudentController) ExportStudents(ctx *gin.Context) {
	csv, err := c.exportService.ExportCSV(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to export students")
		middleware.HandleAPIError(ctx, err)
		return
	}

	filename := c.exportService.Filename(time.Now())
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, "text/csv", []byte(csv))
}
