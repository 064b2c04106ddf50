package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/trainer-manager/internal/config"
	"github.com/BruksfildServices01/trainer-manager/internal/httperr"
)

const (
	ContextSubject   = "subject"
	ContextRequestID = "requestID"

	// único usuário do app
	TrainerSubject = "trainer"
)

// AuthMiddleware exige um bearer token assinado com JWT_SECRET.
// Sem TRAINER_PIN_HASH configurado a autenticação fica desligada.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.AuthEnabled() {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Token ausente.")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Cabeçalho inválido.")
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			httperr.Unauthorized(c, "invalid_token", "Token inválido.")
			return
		}

		sub, err := token.Claims.GetSubject()
		if err != nil || sub != TrainerSubject {
			httperr.Unauthorized(c, "invalid_token_payload", "Token inválido.")
			return
		}

		c.Set(ContextSubject, sub)
		c.Next()
	}
}
