// internal/interfaces/http/handlers/order.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/app"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/navigation"
	"github.com/your-org/storefront/internal/domain/notification"
	"github.com/your-org/storefront/internal/domain/order"
	"github.com/your-org/storefront/internal/pkg/receipt"
)

// OrderHandler handles checkout and order endpoints
type OrderHandler struct {
	orders         *order.Service
	nav            *navigation.Navigator
	notifications  *notification.Center
	receiptService *receipt.Service
	config         *config.Config
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(a *app.App) *OrderHandler {
	return &OrderHandler{
		orders:         a.Orders,
		nav:            a.Nav,
		notifications:  a.Notifications,
		receiptService: a.Receipts,
		config:         a.Config,
	}
}

// PlaceOrder handles POST /checkout/order
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req order.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	placed, err := h.orders.PlaceOrder(req)
	if err != nil {
		h.notifications.Error(err.Error())

		status := http.StatusBadRequest
		if errors.Is(err, order.ErrEmptyCart) {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{
			"error": err.Error(),
		})
		return
	}

	page, _ := h.nav.NavigateTo(navigation.PageConfirmation)
	h.notifications.Success("Order placed successfully!")

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"data": gin.H{
			"order":        placed,
			"confirmation": placed.Confirmation(),
			"page":         page,
		},
	})
}

// ListOrders handles GET /orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"data":    h.orders.Orders(),
	})
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	o, err := h.orders.Order(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data":    o,
	})
}

// GenerateReceipt handles GET /orders/:id/receipt
func (h *OrderHandler) GenerateReceipt(c *gin.Context) {
	o, err := h.orders.Order(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
		return
	}

	pdfBuffer, err := h.receiptService.GenerateReceipt(&o)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate receipt",
		})
		return
	}

	// Set headers for PDF download
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%s.pdf", o.ID))
	c.Header("Content-Length", strconv.Itoa(len(pdfBuffer.Bytes())))

	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())
}
