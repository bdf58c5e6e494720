package api

import (
	"errors"
	"net/http"

	reqdto "workshop-enroll/internal/handler/dto/request"
	resdto "workshop-enroll/internal/handler/dto/response"
	"workshop-enroll/internal/handler/middleware"
	"workshop-enroll/internal/pkg/config"
	"workshop-enroll/internal/pkg/cookie"
	"workshop-enroll/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth commands.AuthCommands
	cfg  config.Config
}

func NewAuthHandler(auth commands.AuthCommands, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		auth: auth,
		cfg:  cfg,
	}
}

// @Summary Account login
// @Description Login with email and password; merges any guest cart into the account cart
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	sessionKey := cookie.GetCartSessionKey(c)

	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Password, sessionKey)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	cookie.SetTokenCookie(c, h.cfg.Cookie, result.Token, h.cfg.JWT.Duration)

	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.Token,
		Account:     resdto.FromAccount(result.Account),
	})
}

// @Summary Account logout
// @Description Clear the auth cookie
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookie(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Get current account
// @Description Get the authenticated account
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.AccountResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Not authenticated",
		})
		return
	}

	acct, err := h.auth.Me(c.Request.Context(), accountID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrAccountNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Account not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAccount(acct))
}
