package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/reelstream/reelstream/internal/application"
	repo "github.com/reelstream/reelstream/internal/domain/repository"
	"github.com/reelstream/reelstream/pkg/helpers"
	"github.com/reelstream/reelstream/pkg/response"
	"github.com/reelstream/reelstream/pkg/validation"
)

type AuthHandler struct {
	Svc     *application.AuthService
	JWT     *helpers.JWTManager
	Logger  *logrus.Logger
	Cookies *helpers.CookieManager
}

func NewAuthHandler(svc *application.AuthService, jwt *helpers.JWTManager, logger *logrus.Logger, cookies *helpers.CookieManager) *AuthHandler {
	return &AuthHandler{Svc: svc, JWT: jwt, Logger: logger, Cookies: cookies}
}

type credentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register POST /api/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "email and password required", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repo.ErrEmailTaken) {
			response.Error(c, http.StatusConflict, "email already registered", nil)
			return
		}
		h.Logger.WithError(err).Error("register failed")
		response.Error(c, http.StatusInternalServerError, "registration failed", nil)
		return
	}

	token, exp, err := h.JWT.Sign(u.ID, u.Email)
	if err != nil {
		h.Logger.WithError(err).Error("token signing failed")
		response.Error(c, http.StatusInternalServerError, "registration failed", nil)
		return
	}
	h.Cookies.SetSession(c, token, exp)

	// identity only, the hash never leaves the store
	c.JSON(http.StatusCreated, gin.H{"user": gin.H{"id": u.ID, "email": u.Email}})
}

// Login POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "email and password required", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// unknown email and wrong password share the status code
		response.Error(c, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}

	token, exp, err := h.JWT.Sign(u.ID, u.Email)
	if err != nil {
		h.Logger.WithError(err).Error("token signing failed")
		response.Error(c, http.StatusInternalServerError, "login failed", nil)
		return
	}
	h.Cookies.SetSession(c, token, exp)

	response.Message(c, http.StatusOK, "login success")
}

// Logout POST /api/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Cookies.Clear(c)
	response.Message(c, http.StatusOK, "logged out")
}

// Me GET /api/me — identity from the verified token, the authoritative tier
// behind the gate's cheap cookie check.
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"id":    c.GetString("userID"),
		"email": c.GetString("userEmail"),
	})
}
