package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/trainer-manager/internal/httperr"
	"github.com/BruksfildServices01/trainer-manager/internal/httpresp"
	"github.com/BruksfildServices01/trainer-manager/internal/models"
	"github.com/BruksfildServices01/trainer-manager/internal/settings"
)

type SettingsHandler struct {
	store *settings.Store
}

func NewSettingsHandler(store *settings.Store) *SettingsHandler {
	return &SettingsHandler{store: store}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	s, err := h.store.Get(c.Request.Context())
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.OK(c, s)
}

func (h *SettingsHandler) Put(c *gin.Context) {
	var req models.Settings
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.store.Save(c.Request.Context(), req)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.OK(c, s)
}
