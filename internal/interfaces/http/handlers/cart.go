// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/app"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/domain/notification"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	cart          *cart.Ledger
	catalog       *catalog.Store
	notifications *notification.Center
	config        *config.Config
}

// NewCartHandler creates a new cart handler
func NewCartHandler(a *app.App) *CartHandler {
	return &CartHandler{
		cart:          a.Cart,
		catalog:       a.Catalog,
		notifications: a.Notifications,
		config:        a.Config,
	}
}

// AddToCartRequest represents the add-to-cart payload
type AddToCartRequest struct {
	ProductID int `json:"product_id" binding:"required"`
	Quantity  int `json:"quantity"`
}

// UpdateCartItemRequest carries a quantity delta for an existing line
type UpdateCartItemRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    h.cart.View(),
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	if err := h.cart.AddItem(req.ProductID, quantity); err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	if product, ok := h.catalog.Product(req.ProductID); ok {
		h.notifications.Success(fmt.Sprintf("%s added to cart!", product.Title))
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    h.cart.View(),
	})
}

// UpdateCartItem handles PATCH /cart/items/:id
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	h.cart.ChangeQuantity(productID, req.Delta)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    h.cart.View(),
	})
}

// RemoveCartItem handles DELETE /cart/items/:id
func (h *CartHandler) RemoveCartItem(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	h.cart.RemoveItem(productID)
	h.notifications.Info("Item removed from cart")

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    h.cart.View(),
	})
}
