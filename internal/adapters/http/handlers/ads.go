package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/plazasales/storefront/internal/adapters/http/dto"
	"github.com/plazasales/storefront/internal/domain"
	"github.com/plazasales/storefront/internal/ports"
)

const adsPageSize = 10

// AdHandler serves ads and records engagement.
type AdHandler struct {
	service ports.AdService
}

// NewAdHandler creates a new ad handler.
func NewAdHandler(service ports.AdService) *AdHandler {
	return &AdHandler{service: service}
}

// ListAds handles GET /api/v1/ads.
func (h *AdHandler) ListAds(c *gin.Context) {
	var req dto.PageRequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		dto.RespondWithError(c, err)
		return
	}

	q := req.Query().WithDefaults(adsPageSize)

	page, err := h.service.Ads(c.Request.Context(), q)
	if err != nil {
		dto.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPaginatedResponse(
		page.Ads,
		dto.NewPagination(q.Page, q.Limit, page.Total, 0),
		dto.NewAdResponse,
	))
}

// Click handles POST /api/v1/ads/:id/click.
func (h *AdHandler) Click(c *gin.Context) {
	h.record(c, h.service.RecordAdClick)
}

// Impression handles POST /api/v1/ads/:id/impression.
func (h *AdHandler) Impression(c *gin.Context) {
	h.record(c, h.service.RecordAdImpression)
}

func (h *AdHandler) record(c *gin.Context, fn func(ctx context.Context, id string, proof domain.CaptchaProof) error) {
	if err := fn(c.Request.Context(), c.Param("id"), dto.CaptchaProof(c)); err != nil {
		dto.RespondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RegisterRoutes registers the ad routes on the given router group.
func (h *AdHandler) RegisterRoutes(rg *gin.RouterGroup) {
	ads := rg.Group("/ads")
	ads.GET("", h.ListAds)
	ads.POST("/:id/click", h.Click)
	ads.POST("/:id/impression", h.Impression)
}
