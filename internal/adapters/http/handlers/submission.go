package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/plazasales/storefront/internal/adapters/http/dto"
	"github.com/plazasales/storefront/internal/ports"
)

// SubmissionHandler accepts contact messages, inquiries and newsletter signups.
type SubmissionHandler struct {
	service ports.SubmissionService
}

// NewSubmissionHandler creates a new submission handler.
func NewSubmissionHandler(service ports.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{service: service}
}

// Contact handles POST /api/v1/contact.
//
// @Summary Send a contact message
// @Tags submissions
// @Accept json
// @Produce json
// @Param X-Recaptcha-Token header string true "reCAPTCHA v3 token"
// @Success 202 {object} dto.AcceptedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/v1/contact [post]
func (h *SubmissionHandler) Contact(c *gin.Context) {
	var req dto.ContactRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithError(c, err)
		return
	}

	if err := h.service.SubmitContact(c.Request.Context(), req.Form(), dto.CaptchaProof(c)); err != nil {
		dto.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, dto.Accepted("message sent"))
}

// Inquiry handles POST /api/v1/inquiries.
func (h *SubmissionHandler) Inquiry(c *gin.Context) {
	var req dto.InquiryRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithError(c, err)
		return
	}

	if err := h.service.SubmitInquiry(c.Request.Context(), req.Inquiry(), dto.CaptchaProof(c)); err != nil {
		dto.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, dto.Accepted("inquiry sent"))
}

// Subscribe handles POST /api/v1/newsletter/subscribe.
// Subscribing an address that is already on the list still succeeds.
func (h *SubmissionHandler) Subscribe(c *gin.Context) {
	var req dto.NewsletterRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithError(c, err)
		return
	}

	if err := h.service.SubscribeNewsletter(c.Request.Context(), req.Signup()); err != nil {
		dto.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Accepted("subscribed"))
}

// Dismiss handles POST /api/v1/newsletter/dismiss.
func (h *SubmissionHandler) Dismiss(c *gin.Context) {
	if err := h.service.DismissNewsletter(c.Request.Context()); err != nil {
		dto.RespondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// NewsletterStatus handles GET /api/v1/visitor/newsletter.
func (h *SubmissionHandler) NewsletterStatus(c *gin.Context) {
	status, err := h.service.NewsletterStatus(c.Request.Context())
	if err != nil {
		dto.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewNewsletterStatusResponse(status))
}

// RegisterRoutes registers the submission routes on the given router group.
func (h *SubmissionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/contact", h.Contact)
	rg.POST("/inquiries", h.Inquiry)

	newsletter := rg.Group("/newsletter")
	newsletter.POST("/subscribe", h.Subscribe)
	newsletter.POST("/dismiss", h.Dismiss)

	rg.GET("/visitor/newsletter", h.NewsletterStatus)
}
