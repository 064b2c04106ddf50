package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/trainer-manager/internal/domain/trainer"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Unavailable(c *gin.Context, code, message string) {
	Write(c, http.StatusServiceUnavailable, code, message)
}

// ======================================================
// Erros de domínio → HTTP
// ======================================================

// Handle traduz um erro vindo do service para a resposta padrão.
// Erros desconhecidos viram 500 e são anexados ao contexto para o log.
func Handle(c *gin.Context, err error) {
	var be BusinessError

	switch {
	case errors.As(err, &be):
		BadRequest(c, be.Code, be.Message())
	case errors.Is(err, domain.ErrClientNotFound):
		NotFound(c, "client_not_found", "Cliente não encontrado.")
	case errors.Is(err, domain.ErrNotFound):
		NotFound(c, "not_found", "Registro não encontrado.")
	case errors.Is(err, domain.ErrInvalidInput):
		BadRequest(c, "invalid_input", err.Error())
	case errors.Is(err, domain.ErrNotInitialized):
		Unavailable(c, "storage_not_initialized", "Armazenamento não inicializado.")
	default:
		_ = c.Error(err)
		Internal(c, "internal_error", "Erro interno.")
	}
}
