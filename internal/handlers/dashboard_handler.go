package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/trainer-manager/internal/httperr"
	"github.com/BruksfildServices01/trainer-manager/internal/httpresp"
	ucTrainer "github.com/BruksfildServices01/trainer-manager/internal/usecase/trainer"
)

type DashboardHandler struct {
	svc *ucTrainer.Service
}

func NewDashboardHandler(svc *ucTrainer.Service) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (h *DashboardHandler) Get(c *gin.Context) {
	d, err := h.svc.Dashboard(c.Request.Context())
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.OK(c, d)
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.svc.DashboardStats(c.Request.Context())
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.OK(c, stats)
}
