package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/trainer-manager/internal/httpresp"
	ucTrainer "github.com/BruksfildServices01/trainer-manager/internal/usecase/trainer"
)

type HealthHandler struct {
	svc *ucTrainer.Service
}

func NewHealthHandler(svc *ucTrainer.Service) *HealthHandler {
	return &HealthHandler{svc: svc}
}

func (h *HealthHandler) Get(c *gin.Context) {
	httpresp.OK(c, gin.H{
		"status":  "ok",
		"backend": h.svc.Store().Backend(),
	})
}
