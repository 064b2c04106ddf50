package routes

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/trainer-manager/internal/config"
	"github.com/BruksfildServices01/trainer-manager/internal/events"
	"github.com/BruksfildServices01/trainer-manager/internal/infra/kv"
	"github.com/BruksfildServices01/trainer-manager/internal/infra/repository"
	"github.com/BruksfildServices01/trainer-manager/internal/middleware"
	"github.com/BruksfildServices01/trainer-manager/internal/settings"
	"github.com/BruksfildServices01/trainer-manager/internal/timezone"
	ucTrainer "github.com/BruksfildServices01/trainer-manager/internal/usecase/trainer"
	"github.com/BruksfildServices01/trainer-manager/internal/whatsapp"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	clock := timezone.Fixed(time.Date(2026, 10, 17, 15, 4, 0, 0, time.UTC))
	backend := kv.NewMemory()

	store := repository.NewTrainerKVRepository(backend, clock, logger)
	require.NoError(t, store.Init(t.Context()))

	bus := events.NewBus(logger)
	t.Cleanup(bus.Close)

	svc := ucTrainer.NewService(ucTrainer.Options{
		Store:    store,
		Events:   bus,
		Clock:    clock,
		Logger:   logger,
		WhatsApp: whatsapp.NewFormatter(cfg.WhatsAppCountryCode),
	})

	r := gin.New()
	RegisterRoutes(r, Deps{
		Config:   cfg,
		Service:  svc,
		Settings: settings.NewStore(backend, bus, clock),
		Bus:      bus,
		Clock:    clock,
		Logger:   logger,
	})
	return r
}

func serve(r http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestRoutesWithoutAuth(t *testing.T) {
	r := newRouter(t, &config.Config{JWTSecret: "s", WhatsAppCountryCode: "54"})

	w := serve(r, http.MethodGet, "/api/clients")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/payments/overdue").Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/dashboard").Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(r, http.MethodPost, "/api/backup").Code)
}

func TestRoutesWithAuth(t *testing.T) {
	r := newRouter(t, &config.Config{JWTSecret: "s", TrainerPinHash: "hash", WhatsAppCountryCode: "54"})

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/health").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodGet, "/api/clients").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodGet, "/api/events").Code)

	// login fica fora do grupo protegido; sem corpo a resposta é 400
	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodPost, "/api/auth/login").Code)
}
