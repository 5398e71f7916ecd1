package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/minewatch-gh/minewatch-backend-go/internal/service"
	"github.com/minewatch-gh/minewatch-backend-go/pkg/response"
)

// AuthHandler issues API tokens.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type tokenRequest struct {
	InspectorKey string `json:"inspectorKey" binding:"required"`
	Subject      string `json:"subject"`
}

// Token handles POST /api/v1/auth/token.
func (h *AuthHandler) Token(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "inspectorKey is required")
		return
	}

	token, err := h.service.IssueToken(req.InspectorKey, req.Subject)
	if err != nil {
		response.Unauthorized(c, "Invalid inspector credential")
		return
	}

	response.Success(c, gin.H{"token": token})
}
