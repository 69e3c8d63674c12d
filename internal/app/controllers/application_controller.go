package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/internlink/internal/app/models/dto"
	"github.com/yigit/internlink/internal/app/services"
	"github.com/yigit/internlink/internal/middleware"
)

// ApplicationController handles application endpoints
type ApplicationController struct {
	applicationService *services.ApplicationService
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService *services.ApplicationService) *ApplicationController {
	return &ApplicationController{
		applicationService: applicationService,
	}
}

// Apply submits an application for the calling student
func (c *ApplicationController) Apply(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	internshipID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	// The cover letter is optional, an empty body is fine
	var req dto.ApplyRequest
	if ctx.Request.ContentLength > 0 {
		if !bindJSON(ctx, &req) {
			return
		}
	}

	application, err := c.applicationService.Apply(ctx, userID, internshipID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(application))
}

// GetStudentApplications returns the calling student's applications
func (c *ApplicationController) GetStudentApplications(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	applications, err := c.applicationService.GetStudentListing(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(applications))
}

// UpdateStatus moves an application through its review states, for the
// company that owns the internship.
func (c *ApplicationController) UpdateStatus(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	applicationID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !bindJSON(ctx, &req) {
		return
	}

	application, err := c.applicationService.UpdateStatus(ctx, userID, applicationID, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(application))
}
