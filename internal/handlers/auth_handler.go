package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/trainer-manager/internal/config"
	"github.com/BruksfildServices01/trainer-manager/internal/httperr"
	"github.com/BruksfildServices01/trainer-manager/internal/middleware"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	config *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{config: cfg}
}

// --------- Requests ---------

type LoginRequest struct {
	Pin string `json:"pin" binding:"required"`
}

// --------- Handlers ---------

// Login troca o PIN do treinador por um token.
func (h *AuthHandler) Login(c *gin.Context) {
	if !h.config.AuthEnabled() {
		httperr.BadRequest(c, "auth_disabled", "Autenticação desativada.")
		return
	}

	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.config.TrainerPinHash), []byte(req.Pin)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "PIN inválido.")
		return
	}

	token, expires, err := h.generateToken()
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"expires_at": expires,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken() (string, time.Time, error) {
	now := time.Now()
	expires := now.Add(tokenTTL)

	claims := jwt.MapClaims{
		"sub": middleware.TrainerSubject,
		"exp": expires.Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.config.JWTSecret))
	return signed, expires, err
}
