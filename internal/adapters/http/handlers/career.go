package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/plazasales/storefront/internal/adapters/http/dto"
	"github.com/plazasales/storefront/internal/ports"
)

// CareerHandler serves the career pages, saved jobs and applications.
type CareerHandler struct {
	service ports.CareerService
}

// NewCareerHandler creates a new career handler.
func NewCareerHandler(service ports.CareerService) *CareerHandler {
	return &CareerHandler{service: service}
}

// ListCareers handles GET /api/v1/careers.
func (h *CareerHandler) ListCareers(c *gin.Context) {
	views, err := h.service.CareersPage(c.Request.Context())
	if err != nil {
		dto.RespondWithError(c, err)
		return
	}

	careers := make([]dto.CareerResponse, 0, len(views))
	for _, v := range views {
		careers = append(careers, dto.NewCareerResponse(v))
	}

	c.JSON(http.StatusOK, gin.H{"careers": careers})
}

// GetCareer handles GET /api/v1/careers/:slug.
func (h *CareerHandler) GetCareer(c *gin.Context) {
	view, err := h.service.CareerDetail(c.Request.Context(), c.Param("slug"))
	if err != nil {
		dto.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCareerResponse(*view))
}

// Apply handles POST /api/v1/careers/:slug/apply.
//
// @Summary Submit a job application
// @Description Multipart form with name, email, phone, resume and an optional coverLetter.
// @Tags careers
// @Accept multipart/form-data
// @Produce json
// @Param slug path string true "Career slug"
// @Param X-Recaptcha-Token header string true "reCAPTCHA v3 token"
// @Success 202 {object} dto.AcceptedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/v1/careers/{slug}/apply [post]
func (h *CareerHandler) Apply(c *gin.Context) {
	var req dto.ApplicationRequest
	if err := c.ShouldBindWith(&req, binding.FormMultipart); err != nil {
		dto.RespondWithError(c, fmt.Errorf("%w: %w", dto.ErrBinding, err))
		return
	}

	if err := dto.Validate(&req); err != nil {
		dto.RespondWithError(c, err)
		return
	}

	resume, err := formFile(c, dto.FieldResume)
	if err != nil {
		dto.RespondWithError(c, err)
		return
	}

	coverLetter, err := formFile(c, dto.FieldCoverLetter)
	if err != nil {
		dto.RespondWithError(c, err)
		return
	}

	err = h.service.Apply(c.Request.Context(), c.Param("slug"), req.Form(resume, coverLetter), dto.CaptchaProof(c))
	if err != nil {
		dto.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, dto.Accepted("application submitted"))
}

// formFile returns the named upload, or nil when the field is absent.
func formFile(c *gin.Context, field string) (*multipart.FileHeader, error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", dto.ErrBinding, field, err)
	}

	return fh, nil
}

// ToggleSave handles POST /api/v1/careers/:slug/save.
func (h *CareerHandler) ToggleSave(c *gin.Context) {
	view, err := h.service.ToggleSavedJob(c.Request.Context(), c.Param("slug"))
	if err != nil {
		dto.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewToggleResponse(view))
}

// SavedJobs handles GET /api/v1/visitor/saved-jobs.
func (h *CareerHandler) SavedJobs(c *gin.Context) {
	jobs, err := h.service.SavedJobs(c.Request.Context())
	if err != nil {
		dto.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSavedJobsResponse(jobs))
}

// RegisterRoutes registers the career routes on the given router group.
func (h *CareerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	careers := rg.Group("/careers")
	careers.GET("", h.ListCareers)
	careers.GET("/:slug", h.GetCareer)
	careers.POST("/:slug/apply", h.Apply)
	careers.POST("/:slug/save", h.ToggleSave)

	rg.GET("/visitor/saved-jobs", h.SavedJobs)
}
