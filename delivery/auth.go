package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kelias-gh/CRM/domain"
	"github.com/kelias-gh/CRM/dto"
	"github.com/kelias-gh/CRM/middleware"
	"github.com/kelias-gh/CRM/utils"
)

type AuthHandler struct {
	authUC domain.AuthUseCase
}

func NewAuthHandler(r *gin.Engine, authUC domain.AuthUseCase) {
	handler := &AuthHandler{authUC: authUC}

	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimit("auth_login"), handler.Login)
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload dto.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.PrintLogInfo(nil, 400, "Login", &err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   utils.TranslateValidationError(err),
			"message": "Failed to Login",
		})
		return
	}

	token, user, err := h.authUC.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		utils.PrintLogInfo(nil, 401, "Login", &err)
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to Login",
		})
		return
	}

	utils.PrintLogInfo(&user.Name, 200, "Login", nil)
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"access_token": token,
		"data": gin.H{
			"id":   user.ID,
			"name": user.Name,
			"role": user.Role,
		},
	})
}
