package handlers

import (
	"net/http"
	"strings"

	"grandhaven/middleware"
	"grandhaven/models"
	"grandhaven/services/guest"
	"grandhaven/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GuestHandler exposes account and session endpoints.
type GuestHandler struct {
	Service guest.GuestService
}

// NewGuestHandler creates a GuestHandler.
func NewGuestHandler(svc guest.GuestService) *GuestHandler {
	return &GuestHandler{Service: svc}
}

// RegisterHandler handles POST /api/auth/register.
func (h *GuestHandler) RegisterHandler(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Phone    string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, utils.ValidationError(err.Error()))
		return
	}

	result, err := h.Service.Register(req.Name, req.Email, req.Password, req.Phone)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// RegisterEmployeeHandler handles POST /api/admin/employees (admin only).
func (h *GuestHandler) RegisterEmployeeHandler(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Phone    string `json:"phone"`
		Role     string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, utils.ValidationError(err.Error()))
		return
	}

	result, err := h.Service.RegisterEmployee(req.Name, req.Email, req.Password, req.Phone, models.Role(req.Role))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// LoginHandler handles POST /api/auth/login.
func (h *GuestHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, utils.ValidationError(err.Error()))
		return
	}

	result, err := h.Service.Login(req.Email, req.Password)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// LogoutHandler handles POST /api/auth/logout.
func (h *GuestHandler) LogoutHandler(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if err := h.Service.Logout(token); err != nil {
		utils.GetLogger().Error("Logout failed", zap.Error(err))
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// ProfileHandler handles GET /api/auth/profile.
func (h *GuestHandler) ProfileHandler(c *gin.Context) {
	user, err := h.Service.GetProfile(middleware.CurrentUserID(c))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ListEmployeesHandler handles GET /api/admin/employees?role=staff.
func (h *GuestHandler) ListEmployeesHandler(c *gin.Context) {
	role := models.Role(c.DefaultQuery("role", string(models.RoleStaff)))
	users, err := h.Service.ListEmployees(role)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}
