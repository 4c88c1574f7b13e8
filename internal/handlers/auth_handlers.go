package handlers

import (
	"errors"
	"net/http"

	"repair_shop_backend/internal/permissions"
	"repair_shop_backend/internal/services"
	"repair_shop_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler holds the auth service.
type AuthHandler struct {
	authService services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as services.AuthService) *AuthHandler {
	return &AuthHandler{authService: as}
}

// Login handles staff sign-in and issues an access token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	resp, err := h.authService.Login(req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid email or password.", ""))
			return
		}
		utils.LogError(err, "Login: Error from authService.Login")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to sign in.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetCurrentUser handles fetching the logged-in staff member's own profile.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	staffIDVal, exists := c.Get("staffID")
	if !exists {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Staff identity not found in session.", "Missing staffID in context"))
		return
	}
	staffID, ok := staffIDVal.(int64)
	if !ok {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to resolve staff identity.", "Invalid staffID type in context"))
		return
	}

	staff, err := h.authService.GetProfile(staffID)
	if err != nil {
		utils.LogError(err, "GetCurrentUser: Error from authService.GetProfile")
		if errors.Is(err, services.ErrStaffNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Staff member no longer exists.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch profile.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, staff)
}

// GetPermissions exports the full role-to-capability table so the UI can
// hide controls the current role cannot use.
func (h *AuthHandler) GetPermissions(c *gin.Context) {
	c.JSON(http.StatusOK, permissions.All())
}
