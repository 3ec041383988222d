package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rcabrera/studentrecords/internal/app/controllers"
	"github.com/rcabrera/studentrecords/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	pageController *controllers.PageController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// --- Browser pages, behind the front-door redirect gate ---
	pages := router.Group("")
	pages.Use(middleware.PageGuard())
	{
		pages.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusFound, "/dashboard")
		})
		pages.GET("/login", pageController.Login)
		pages.GET("/dashboard", pageController.Dashboard)
	}

	// --- API, gated by the session cookie (never redirected) ---
	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
		auth.GET("/session", authController.Session)
	}

	students := api.Group("/students")
	students.Use(authMiddleware.SessionAuth())
	{
		students.GET("", studentController.ListStudents)
		students.GET("/export", studentController.ExportStudents)
		students.GET("/:id", studentController.GetStudent)

		// Creation is restricted to staff and admin inline in the service,
		// not by a shared gate: every current role may create.
		students.POST("", studentController.CreateStudent)
		students.PUT("/:id", studentController.UpdateStudent)

		// Deletion is the only admin-gated verb
		studentsAdmin := students.Group("")
		studentsAdmin.Use(authMiddleware.AdminRequired())
		{
			studentsAdmin.DELETE("/:id", studentController.DeleteStudent)
		}
	}

	// Health check endpoint (public)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
