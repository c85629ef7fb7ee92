package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/plazasales/storefront/internal/adapters/http/dto"
	"github.com/plazasales/storefront/internal/ports"
)

// BrandHandler serves the brand pages.
type BrandHandler struct {
	service ports.BrandService
}

// NewBrandHandler creates a new brand handler.
func NewBrandHandler(service ports.BrandService) *BrandHandler {
	return &BrandHandler{service: service}
}

// ListBrands handles GET /api/v1/brands.
func (h *BrandHandler) ListBrands(c *gin.Context) {
	brands, err := h.service.BrandsPage(c.Request.Context())
	if err != nil {
		dto.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBrandsResponse(brands))
}

// GetBrand handles GET /api/v1/brands/:slug.
func (h *BrandHandler) GetBrand(c *gin.Context) {
	page, err := h.service.BrandDetail(c.Request.Context(), c.Param("slug"))
	if err != nil {
		dto.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBrandDetailResponse(page))
}

// RegisterRoutes registers the brand routes on the given router group.
func (h *BrandHandler) RegisterRoutes(rg *gin.RouterGroup) {
	brands := rg.Group("/brands")
	brands.GET("", h.ListBrands)
	brands.GET("/:slug", h.GetBrand)
}

// BlogHandler serves the blog pages.
type BlogHandler struct {
	service ports.BlogService
}

// NewBlogHandler creates a new blog handler.
func NewBlogHandler(service ports.BlogService) *BlogHandler {
	return &BlogHandler{service: service}
}

// ListBlogs handles GET /api/v1/blogs.
//
// @Summary Paged blog summaries with excerpts and reading time
// @Tags blogs
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.PaginatedResponse[dto.BlogSummaryResponse]
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/blogs [get]
func (h *BlogHandler) ListBlogs(c *gin.Context) {
	var q dto.PageRequest
	if err := dto.BindQueryAndValidate(c, &q); err != nil {
		dto.RespondWithError(c, err)
		return
	}

	page, err := h.service.BlogsPage(c.Request.Context(), q.Query())
	if err != nil {
		dto.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBlogListResponse(page, q.Limit))
}

// GetBlog handles GET /api/v1/blogs/:slug.
func (h *BlogHandler) GetBlog(c *gin.Context) {
	page, err := h.service.BlogDetail(c.Request.Context(), c.Param("slug"))
	if err != nil {
		dto.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBlogDetailResponse(page))
}

// RegisterRoutes registers the blog routes on the given router group.
func (h *BlogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	blogs := rg.Group("/blogs")
	blogs.GET("", h.ListBlogs)
	blogs.GET("/:slug", h.GetBlog)
}

// SEOHandler serves SEO metadata to the rendering layer.
type SEOHandler struct {
	service ports.SEOService
}

// NewSEOHandler creates a new SEO handler.
func NewSEOHandler(service ports.SEOService) *SEOHandler {
	return &SEOHandler{service: service}
}

// ListSEO handles GET /api/v1/seo.
func (h *SEOHandler) ListSEO(c *gin.Context) {
	var q dto.SEOQuery
	if err := dto.BindQueryAndValidate(c, &q); err != nil {
		dto.RespondWithError(c, err)
		return
	}

	query := q.Query()

	page, err := h.service.ListSEO(c.Request.Context(), query)
	if err != nil {
		dto.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPaginatedResponse(
		page.Records,
		dto.NewPagination(query.Page, query.Limit, page.Total, 0),
		dto.NewSEOResponse,
	))
}

// SiteSEO handles GET /api/v1/seo/site.
func (h *SEOHandler) SiteSEO(c *gin.Context) {
	site, err := h.service.SiteSEO(c.Request.Context())
	if err != nil {
		dto.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSiteSEOResponse(site))
}

// GetSEO handles GET /api/v1/seo/:slug.
func (h *SEOHandler) GetSEO(c *gin.Context) {
	meta, err := h.service.SEOBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		dto.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSEOResponse(*meta))
}

// RegisterRoutes registers the SEO routes on the given router group.
func (h *SEOHandler) RegisterRoutes(rg *gin.RouterGroup) {
	seo := rg.Group("/seo")
	seo.GET("", h.ListSEO)
	seo.GET("/site", h.SiteSEO)
	seo.GET("/:slug", h.GetSEO)
}
