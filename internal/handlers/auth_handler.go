package handlers

import (
	"context"
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/shamsy/home-services-api/internal/httperr"
	"github.com/shamsy/home-services-api/internal/httpresp"
	"github.com/shamsy/home-services-api/internal/middleware"
	"github.com/shamsy/home-services-api/internal/models"
	ucidentity "github.com/shamsy/home-services-api/internal/usecase/identity"
)

type RegisterUsecase interface {
	Execute(ctx context.Context, in ucidentity.RegisterInput) (*models.User, *models.AuthToken, error)
}

type LoginUsecase interface {
	Execute(ctx context.Context, in ucidentity.LoginInput) (*models.User, *models.AuthToken, error)
}

type LogoutUsecase interface {
	Execute(ctx context.Context, tokenValue string) error
}

type AuthHandler struct {
	register RegisterUsecase
	login    LoginUsecase
	logout   LogoutUsecase
}

func NewAuthHandler(register RegisterUsecase, login LoginUsecase, logout LogoutUsecase) *AuthHandler {
	return &AuthHandler{
		register: register,
		login:    login,
		logout:   logout,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
}

type LoginRequest struct {
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
}

// Privilege flags clients must never set themselves.
var forbiddenRegisterFields = []string{"is_staff", "is_superuser", "is_active"}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		httperr.Write(c, httperr.Validation("invalid request body"))
		return
	}

	// The forbidden-field check runs on the raw payload so escalation
	// attempts fail even though the bind below would ignore the keys.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		httperr.Write(c, httperr.Validation("invalid request body"))
		return
	}
	for _, field := range forbiddenRegisterFields {
		if _, ok := raw[field]; ok {
			httperr.Write(c, httperr.Validation("%s: Not allowed.", field))
			return
		}
	}

	var req RegisterRequest
	if err := json.Unmarshal(body, &req); err != nil {
		httperr.Write(c, httperr.Validation("invalid request body"))
		return
	}

	user, token, err := h.register.Execute(c.Request.Context(), ucidentity.RegisterInput{
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		httperr.Write(c, err)
		return
	}

	httpresp.Created(c, "User registered successfully", credentialsPayload(user, token))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Write(c, httperr.Validation("invalid request body"))
		return
	}

	user, token, err := h.login.Execute(c.Request.Context(), ucidentity.LoginInput{
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		httperr.Write(c, err)
		return
	}

	httpresp.OK(c, "Login successful", credentialsPayload(user, token))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.logout.Execute(c.Request.Context(), middleware.CurrentToken(c)); err != nil {
		httperr.Write(c, err)
		return
	}

	httpresp.OK(c, "Logged out successfully", nil)
}

func credentialsPayload(user *models.User, token *models.AuthToken) gin.H {
	return gin.H{
		"id":           user.ID,
		"full_name":    user.FullName,
		"phone_number": user.PhoneNumber,
		"token":        token.TokenValue,
	}
}
