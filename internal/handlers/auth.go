package handlers

import (
	"net/http"

	"github.com/pixperk/pocketmind-server/internal/config"
	"github.com/pixperk/pocketmind-server/internal/models"
	"github.com/pixperk/pocketmind-server/internal/services"
	"github.com/pixperk/pocketmind-server/internal/utils"
	"github.com/pixperk/pocketmind-server/pkg/validator"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
	config      *config.Config
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		config:      cfg,
	}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.UserSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		utils.ValidationError(c, validator.FormatErrors(err))
		return
	}

	user, err := h.authService.Signup(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Created(c, "user created", models.UserResponse{User: user.Public()})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.UserLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		utils.ValidationError(c, validator.FormatErrors(err))
		return
	}

	user, err := h.authService.Login(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	token, err := utils.GenerateToken(user.ID, h.config.JWT.Secret, h.config.JWT.ExpireSeconds)
	if err != nil {
		utils.InternalError(c)
		return
	}

	utils.Success(c, models.UserResponse{User: user.Public(), Token: token})
}
