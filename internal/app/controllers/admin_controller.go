package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/internlink/internal/app/models"
	"github.com/yigit/internlink/internal/app/models/dto"
	"github.com/yigit/internlink/internal/app/services"
	"github.com/yigit/internlink/internal/middleware"
)

// AdminController handles moderation and account administration endpoints
type AdminController struct {
	adminService *services.AdminService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService *services.AdminService) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

// GetUsers lists all accounts
func (c *AdminController) GetUsers(ctx *gin.Context) {
	users, err := c.adminService.GetUsers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := make([]dto.AdminUserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.AdminUserResponse{
			ID:    u.ID,
			Email: u.Email,
			Role:  string(u.Role),
		})
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// GetStudents lists all student profiles
func (c *AdminController) GetStudents(ctx *gin.Context) {
	students, err := c.adminService.GetStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students))
}

// GetCompanies lists all company profiles
func (c *AdminController) GetCompanies(ctx *gin.Context) {
	companies, err := c.adminService.GetCompanies(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(companies))
}

// GetInternships lists every internship regardless of status
func (c *AdminController) GetInternships(ctx *gin.Context) {
	internships, err := c.adminService.GetInternships(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(internships))
}

// DeleteUser removes an account
func (c *AdminController) DeleteUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.adminService.DeleteUser(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("User deleted"))
}

// DeleteCompany removes a company profile
func (c *AdminController) DeleteCompany(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.adminService.DeleteCompany(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Company deleted"))
}

// DeleteInternship removes any internship
func (c *AdminController) DeleteInternship(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.adminService.DeleteInternship(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Internship deleted"))
}

// ApproveInternship publishes a pending internship
func (c *AdminController) ApproveInternship(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.adminService.ApproveInternship(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Internship approved"))
}

// RejectInternship marks an internship as rejected
func (c *AdminController) RejectInternship(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.adminService.RejectInternship(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Internship rejected"))
}

// ChangeUserRole updates an account's role
func (c *AdminController) ChangeUserRole(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ChangeRoleRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.adminService.ChangeUserRole(ctx, id, models.Role(req.Role)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("User role updated"))
}
