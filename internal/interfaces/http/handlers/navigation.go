// internal/interfaces/http/handlers/navigation.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/app"
	"github.com/your-org/storefront/internal/domain/navigation"
	"github.com/your-org/storefront/internal/domain/notification"
)

// NavigationHandler handles page navigation endpoints
type NavigationHandler struct {
	nav           *navigation.Navigator
	notifications *notification.Center
}

// NewNavigationHandler creates a new navigation handler
func NewNavigationHandler(a *app.App) *NavigationHandler {
	return &NavigationHandler{
		nav:           a.Nav,
		notifications: a.Notifications,
	}
}

// NavigateRequest names the page to activate
type NavigateRequest struct {
	Page string `json:"page" binding:"required"`
}

// GetNavigation handles GET /navigation
func (h *NavigationHandler) GetNavigation(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Navigation state retrieved successfully",
		"data":    h.nav.View(),
	})
}

// Navigate handles POST /navigation
func (h *NavigationHandler) Navigate(c *gin.Context) {
	var req NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	page, err := h.nav.NavigateTo(navigation.Page(req.Page))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Navigated successfully",
		"data": gin.H{
			"page": page,
		},
	})
}

// ProceedToCheckout handles POST /navigation/checkout
func (h *NavigationHandler) ProceedToCheckout(c *gin.Context) {
	page, err := h.nav.ProceedToCheckout()
	if err != nil {
		h.notifications.Error(err.Error())

		status := http.StatusConflict
		if errors.Is(err, navigation.ErrLoginRequired) {
			status = http.StatusUnauthorized
		}
		c.JSON(status, gin.H{
			"error": err.Error(),
			"data": gin.H{
				"page": page,
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Proceeding to checkout",
		"data": gin.H{
			"page": page,
		},
	})
}

// ToggleTheme handles POST /navigation/theme
func (h *NavigationHandler) ToggleTheme(c *gin.Context) {
	darkMode := h.nav.ToggleTheme()

	c.JSON(http.StatusOK, gin.H{
		"message": "Theme toggled successfully",
		"data": gin.H{
			"dark_mode": darkMode,
		},
	})
}
