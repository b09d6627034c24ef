// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/app"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/navigation"
	"github.com/your-org/storefront/internal/domain/notification"
	"github.com/your-org/storefront/internal/domain/user"
	"github.com/your-org/storefront/internal/pkg/auth"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	users         *user.Registry
	nav           *navigation.Navigator
	notifications *notification.Center
	jwtManager    *auth.JWTManager
	config        *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(a *app.App) *AuthHandler {
	return &AuthHandler{
		users:         a.Users,
		nav:           a.Nav,
		notifications: a.Notifications,
		jwtManager:    a.JWT,
		config:        a.Config,
	}
}

// LoginRequest represents the login form
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignupRequest represents the signup form
type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	u, err := h.users.Login(req.Email, req.Password)
	if err != nil {
		h.notifications.Error(err.Error())
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": err.Error(),
		})
		return
	}

	accessToken, err := h.jwtManager.GenerateAccessToken(u.Email, u.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate access token",
		})
		return
	}

	page, _ := h.nav.NavigateTo(navigation.PageHome)
	h.notifications.Success(fmt.Sprintf("Welcome back, %s!", u.Username))

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data": gin.H{
			"user":         gin.H{"username": u.Username, "email": u.Email},
			"access_token": accessToken,
			"page":         page,
		},
	})
}

// Signup handles POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	u, err := h.users.Signup(req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			h.notifications.Error(err.Error())
			c.JSON(http.StatusConflict, gin.H{
				"error": err.Error(),
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	accessToken, err := h.jwtManager.GenerateAccessToken(u.Email, u.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate access token",
		})
		return
	}

	page, _ := h.nav.NavigateTo(navigation.PageHome)
	h.notifications.Success(fmt.Sprintf("Welcome, %s!", u.Username))

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
		"data": gin.H{
			"user":         gin.H{"username": u.Username, "email": u.Email},
			"access_token": accessToken,
			"page":         page,
		},
	})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.users.Logout()
	page, _ := h.nav.NavigateTo(navigation.PageHome)
	h.notifications.Info("You have been logged out")

	c.JSON(http.StatusOK, gin.H{
		"message": "Logout successful",
		"data": gin.H{
			"page": page,
		},
	})
}

// GetProfile handles GET /auth/profile
func (h *AuthHandler) GetProfile(c *gin.Context) {
	profile, err := h.users.Profile()
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile retrieved successfully",
		"data":    profile,
	})
}
