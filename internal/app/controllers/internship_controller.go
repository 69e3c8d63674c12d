package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/internlink/internal/app/models"
	"github.com/yigit/internlink/internal/app/models/dto"
	"github.com/yigit/internlink/internal/app/services"
	"github.com/yigit/internlink/internal/middleware"
)

// InternshipController handles internship endpoints
type InternshipController struct {
	internshipService *services.InternshipService
}

// NewInternshipController creates a new InternshipController
func NewInternshipController(internshipService *services.InternshipService) *InternshipController {
	return &InternshipController{
		internshipService: internshipService,
	}
}

// GetAll returns the public listing of approved internships
func (c *InternshipController) GetAll(ctx *gin.Context) {
	internships, err := c.internshipService.GetPublicListing(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(internships))
}

// GetByID returns a single internship
func (c *InternshipController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	internship, err := c.internshipService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(internship))
}

// Create posts a new internship for the calling company
func (c *InternshipController) Create(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateInternshipRequest
	if !bindJSON(ctx, &req) {
		return
	}

	internship, err := c.internshipService.Create(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(internship))
}

// GetCompanyInternships returns the calling company's own postings
func (c *InternshipController) GetCompanyInternships(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	internships, err := c.internshipService.GetCompanyListing(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(internships))
}

// Update edits an internship owned by the caller
func (c *InternshipController) Update(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateInternshipRequest
	if !bindJSON(ctx, &req) {
		return
	}

	internship, err := c.internshipService.Update(ctx, userID, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(internship))
}

// UpdateStatus changes the status of an internship owned by the caller
func (c *InternshipController) UpdateStatus(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateInternshipStatusRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.internshipService.UpdateStatus(ctx, userID, id, models.InternshipStatus(req.Status)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Internship status updated"))
}

// Delete removes an internship owned by the caller
func (c *InternshipController) Delete(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.internshipService.Delete(ctx, userID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Internship deleted"))
}

// GetApplicants lists the applications for an internship owned by the caller
func (c *InternshipController) GetApplicants(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	applicants, err := c.internshipService.GetApplicants(ctx, userID, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(applicants))
}
