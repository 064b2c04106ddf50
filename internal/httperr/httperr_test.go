package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/trainer-manager/internal/domain/trainer"
)

func TestHandle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err    error
		status int
		code   string
	}{
		{ErrBusiness(CodePaymentAlreadyPaid), http.StatusBadRequest, CodePaymentAlreadyPaid},
		{domain.ErrClientNotFound, http.StatusNotFound, "client_not_found"},
		{fmt.Errorf("get: %w", domain.ErrNotFound), http.StatusNotFound, "not_found"},
		{fmt.Errorf("%w: name required", domain.ErrInvalidInput), http.StatusBadRequest, "invalid_input"},
		{domain.ErrNotInitialized, http.StatusServiceUnavailable, "storage_not_initialized"},
		{errors.New("disk full"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		Handle(c, tc.err)

		assert.Equal(t, tc.status, w.Code, tc.err.Error())
		var body HTTPError
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, tc.code, body.Code)
		assert.True(t, c.IsAborted())
	}
}

func TestIsBusiness(t *testing.T) {
	err := fmt.Errorf("wrap: %w", ErrBusiness("x"))
	assert.True(t, IsBusiness(err, "x"))
	assert.False(t, IsBusiness(err, "y"))
	assert.False(t, IsBusiness(errors.New("x"), "x"))
}

func TestBusinessMessage(t *testing.T) {
	assert.Equal(t, "Pagamento já registrado como pago.", BusinessError{Code: CodePaymentAlreadyPaid}.Message())
	assert.Equal(t, "Operação não permitida.", BusinessError{Code: "other"}.Message())
}
