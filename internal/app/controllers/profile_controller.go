package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/internlink/internal/app/models/dto"
	"github.com/yigit/internlink/internal/app/services"
	"github.com/yigit/internlink/internal/middleware"
)

// ProfileController handles student and company profile endpoints
type ProfileController struct {
	profileService *services.ProfileService
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService *services.ProfileService) *ProfileController {
	return &ProfileController{
		profileService: profileService,
	}
}

// GetStudentProfile returns the calling student's profile
func (c *ProfileController) GetStudentProfile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	student, err := c.profileService.GetStudentProfile(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// UpdateStudentProfile partially updates the calling student's profile
func (c *ProfileController) UpdateStudentProfile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var patch dto.StudentProfilePatch
	if !bindJSON(ctx, &patch) {
		return
	}

	student, err := c.profileService.UpdateStudentProfile(ctx, userID, &patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// GetCompanyProfile returns the calling company's profile
func (c *ProfileController) GetCompanyProfile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	company, err := c.profileService.GetCompanyProfile(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(company))
}

// UpdateCompanyProfile partially updates the calling company's profile
func (c *ProfileController) UpdateCompanyProfile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var patch dto.CompanyProfilePatch
	if !bindJSON(ctx, &patch) {
		return
	}

	company, err := c.profileService.UpdateCompanyProfile(ctx, userID, &patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(company))
}
