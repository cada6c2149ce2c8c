package handlers

import (
	"github.com/Dittner/DerTutor/internal/config"
	"github.com/Dittner/DerTutor/internal/middleware"
	"github.com/Dittner/DerTutor/internal/models"
	"github.com/Dittner/DerTutor/internal/services"
	"github.com/Dittner/DerTutor/internal/utils"
	pkgvalidator "github.com/Dittner/DerTutor/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	authService *services.AuthService
	tokens      *utils.TokenManager
	cfg         config.TokenConfig
	validator   *validator.Validate
}

func NewAuthHandler(authService *services.AuthService, tokens *utils.TokenManager, cfg config.TokenConfig) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		tokens:      tokens,
		cfg:         cfg,
		validator:   pkgvalidator.GetValidator(),
	}
}

func (h *AuthHandler) GetUsers(c *gin.Context) {
	users, err := h.authService.GetUsers()
	if err != nil {
		utils.ServiceError(c, err)
		return
	}
	utils.Success(c, users)
}

func (h *AuthHandler) GetMe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, "")
		return
	}
	utils.Success(c, user)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.UserAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	user, err := h.authService.Register(req.Username, req.Password)
	if err != nil {
		utils.ServiceError(c, err)
		return
	}
	utils.Success(c, user)
}

// Login verifies the credentials and sets both token cookies on the
// response.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.UserAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	user, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		utils.ServiceError(c, err)
		return
	}

	access, refresh, err := h.tokens.IssuePair(user.ID)
	if err != nil {
		utils.InternalError(c)
		return
	}
	utils.WriteTokenCookies(c, access, refresh, h.cfg.SecureCookies)

	utils.Success(c, user)
}

// Logout clears both token cookies unconditionally.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearTokenCookies(c, h.cfg.SecureCookies)
	utils.Success(c, gin.H{"message": "Logged out"})
}
