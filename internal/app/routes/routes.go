package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/internlink/internal/app/controllers"
	"github.com/yigit/internlink/internal/app/models"
	"github.com/yigit/internlink/internal/app/models/dto"
	"github.com/yigit/internlink/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	internshipController *controllers.InternshipController,
	applicationController *controllers.ApplicationController,
	profileController *controllers.ProfileController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewMessageResponse("InternLink API"))
	})

	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)

		// Resume endpoints: students upload their own, companies read
		authStudent := auth.Group("")
		authStudent.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(string(models.RoleStudent)))
		{
			authStudent.POST("/upload-resume", authController.UploadResume)
		}

		authCompany := auth.Group("")
		authCompany.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(string(models.RoleCompany)))
		{
			authCompany.GET("/student/:userId/resume", authController.GetStudentResume)
			authCompany.GET("/download/resume/:userId", authController.DownloadResume)
		}
	}

	// --- Internship routes ---
	internships := api.Group("/internships")
	{
		// Public browsing
		internships.GET("", internshipController.GetAll)
		internships.GET("/:id", internshipController.GetByID)

		// Company-scoped routes
		company := internships.Group("")
		company.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(string(models.RoleCompany)))
		{
			company.POST("", internshipController.Create)
			company.PUT("/:id", internshipController.Update)
			company.DELETE("/:id", internshipController.Delete)
			company.PUT("/:id/status", internshipController.UpdateStatus)
			company.GET("/:id/applicants", internshipController.GetApplicants)
			company.GET("/company/internships", internshipController.GetCompanyInternships)
			company.GET("/company/profile", profileController.GetCompanyProfile)
			company.PUT("/company/profile", profileController.UpdateCompanyProfile)
			company.PATCH("/applications/:id", applicationController.UpdateStatus)
		}

		// Student-scoped routes
		student := internships.Group("")
		student.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(string(models.RoleStudent)))
		{
			student.POST("/:id/apply", applicationController.Apply)
			student.GET("/student/applications", applicationController.GetStudentApplications)
			student.GET("/student/profile", profileController.GetStudentProfile)
			student.PUT("/student/profile", profileController.UpdateStudentProfile)
		}
	}

	// --- Admin routes ---
	admin := api.Group("/admin")
	admin.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(string(models.RoleAdmin)))
	{
		admin.GET("/users", adminController.GetUsers)
		admin.GET("/students", adminController.GetStudents)
		admin.GET("/companies", adminController.GetCompanies)
		admin.GET("/internships", adminController.GetInternships)

		admin.DELETE("/users/:id", adminController.DeleteUser)
		admin.DELETE("/companies/:id", adminController.DeleteCompany)
		admin.DELETE("/internships/:id", adminController.DeleteInternship)

		admin.PATCH("/internships/:id/approve", adminController.ApproveInternship)
		admin.PATCH("/internships/:id/reject", adminController.RejectInternship)
		admin.PATCH("/users/:id/role", adminController.ChangeUserRole)
	}
}
