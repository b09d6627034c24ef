// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/app"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/domain/notification"
)

// CatalogHandler handles catalog endpoints
type CatalogHandler struct {
	catalog       *catalog.Store
	notifications *notification.Center
	config        *config.Config
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(a *app.App) *CatalogHandler {
	return &CatalogHandler{
		catalog:       a.Catalog,
		notifications: a.Notifications,
		config:        a.Config,
	}
}

// FilterRequest carries the filter form fields. Filters are replaced
// wholesale: omitted fields fall back to their defaults, not to the
// previously active values.
type FilterRequest struct {
	Search    string   `json:"search"`
	Category  string   `json:"category"`
	MinPrice  float64  `json:"min_price"`
	MaxPrice  *float64 `json:"max_price"`
	MinRating float64  `json:"min_rating"`
}

// LoadCatalog handles POST /catalog/load
func (h *CatalogHandler) LoadCatalog(c *gin.Context) {
	if err := h.catalog.Load(c.Request.Context()); err != nil {
		if errors.Is(err, catalog.ErrLoadSuperseded) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "Catalog load superseded by a newer load",
			})
			return
		}

		h.notifications.Error("Failed to load products. Please try again.")
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to load catalog",
			"data":  h.catalog.View(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Catalog loaded successfully",
		"data":    h.catalog.View(),
	})
}

// GetCatalog handles GET /catalog
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Catalog retrieved successfully",
		"data":    h.catalog.View(),
	})
}

// ApplyFilters handles PUT /catalog/filters
func (h *CatalogHandler) ApplyFilters(c *gin.Context) {
	var req FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	criteria := catalog.FilterCriteria{
		Search:    req.Search,
		Category:  req.Category,
		MinPrice:  req.MinPrice,
		MaxPrice:  h.config.Store.DefaultMaxPrice,
		MinRating: req.MinRating,
	}
	if criteria.Category == "" {
		criteria.Category = catalog.CategoryAll
	}
	if req.MaxPrice != nil {
		criteria.MaxPrice = *req.MaxPrice
	}

	h.catalog.Apply(criteria)

	c.JSON(http.StatusOK, gin.H{
		"message": "Filters applied successfully",
		"data":    h.catalog.View(),
	})
}

// ClearFilters handles DELETE /catalog/filters
func (h *CatalogHandler) ClearFilters(c *gin.Context) {
	h.catalog.ClearFilters()

	c.JSON(http.StatusOK, gin.H{
		"message": "Filters cleared successfully",
		"data":    h.catalog.View(),
	})
}
