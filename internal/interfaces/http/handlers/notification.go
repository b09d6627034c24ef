// internal/interfaces/http/handlers/notification.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/app"
	"github.com/your-org/storefront/internal/domain/notification"
)

// NotificationHandler handles notification endpoints
type NotificationHandler struct {
	notifications *notification.Center
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(a *app.App) *NotificationHandler {
	return &NotificationHandler{
		notifications: a.Notifications,
	}
}

// GetNotifications handles GET /notifications
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Notifications retrieved successfully",
		"data":    h.notifications.Active(),
	})
}
