package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/plazasales/storefront/internal/adapters/http/dto"
	"github.com/plazasales/storefront/internal/ports"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// CatalogHandler serves the home page and the product pages.
type CatalogHandler struct {
	service ports.CatalogService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// HomePage handles GET /api/v1/pages/home.
// Sections that fail to load come back empty.
func (h *CatalogHandler) HomePage(c *gin.Context) {
	page, err := h.service.HomePage(c.Request.Context())
	if err != nil {
		dto.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewHomePageResponse(page))
}

// ListProducts handles GET /api/v1/products.
//
// @Summary Product listing with brand, category and subcategory facets
// @Tags products
// @Produce json
// @Param page query int false "Page number"
// @Param search query string false "Search term"
// @Param brand query string false "Brand slug"
// @Param categories query string false "Comma-separated category slugs"
// @Success 200 {object} dto.ProductsPageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	var q dto.ProductsQuery
	if err := dto.BindQueryAndValidate(c, &q); err != nil {
		dto.RespondWithError(c, err)
		return
	}

	page, err := h.service.ProductsPage(c.Request.Context(), q.Filter())
	if err != nil {
		dto.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewProductsPageResponse(page))
}

// GetProduct handles GET /api/v1/products/:slug.
//
// @Summary Product detail with pricing, downloads and SEO
// @Tags products
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} dto.ProductDetailResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/products/{slug} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	page, err := h.service.ProductDetail(c.Request.Context(), c.Param("slug"))
	if err != nil {
		dto.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewProductDetailResponse(page))
}

// DownloadSpecSheet handles GET /api/v1/products/:slug/specification.xlsx.
// The workbook is rendered in memory so a failure still gets a JSON error.
func (h *CatalogHandler) DownloadSpecSheet(c *gin.Context) {
	slug := c.Param("slug")

	var buf bytes.Buffer
	if err := h.service.ProductSpecSheet(c.Request.Context(), slug, &buf); err != nil {
		dto.RespondWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", slug+"-specification.xlsx"))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// RegisterRoutes registers the catalog routes on the given router group.
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/pages/home", h.HomePage)

	products := rg.Group("/products")
	products.GET("", h.ListProducts)
	products.GET("/:slug", h.GetProduct)
	products.GET("/:slug/specification.xlsx", h.DownloadSpecSheet)
}
