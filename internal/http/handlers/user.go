package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habitloop/habitloop-backend/internal/http/response"
	"github.com/habitloop/habitloop-backend/internal/services"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GET /me
func (uh *UserHandler) GetMe(c *gin.Context) {
	me, err := uh.userService.GetMe(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "get_me_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"me": me})
}

// PATCH /user/display_name
// body: { "display_name": "..." }
func (uh *UserHandler) ChangeDisplayName(c *gin.Context) {
	var req struct {
		DisplayName string `json:"display_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	user, err := uh.userService.UpdateDisplayName(c.Request.Context(), req.DisplayName)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "change_display_name_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"user": user})
}

// PATCH /user/archetype
// body: { "archetype": "straight_shooter" | "steady_builder" | "analyst" | "competitor" | "minimalist" }
func (uh *UserHandler) ChangeArchetype(c *gin.Context) {
	var req struct {
		Archetype string `json:"archetype"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	user, err := uh.userService.UpdateArchetype(c.Request.Context(), req.Archetype)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "change_archetype_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"user": user})
}

// PATCH /user/theme
// body: { "preferred_theme": "light" | "dark" | "system" }
func (uh *UserHandler) ChangeTheme(c *gin.Context) {
	var req struct {
		PreferredTheme string `json:"preferred_theme"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	user, err := uh.userService.UpdatePreferredTheme(c.Request.Context(), req.PreferredTheme)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "change_theme_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"user": user})
}
