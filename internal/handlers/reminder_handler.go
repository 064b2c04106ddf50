package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/trainer-manager/internal/httperr"
	"github.com/BruksfildServices01/trainer-manager/internal/httpresp"
	"github.com/BruksfildServices01/trainer-manager/internal/models"
	ucTrainer "github.com/BruksfildServices01/trainer-manager/internal/usecase/trainer"
)

type ReminderHandler struct {
	svc *ucTrainer.Service
}

func NewReminderHandler(svc *ucTrainer.Service) *ReminderHandler {
	return &ReminderHandler{svc: svc}
}

func (h *ReminderHandler) List(c *gin.Context) {
	reminders, err := h.svc.ListReminders(c.Request.Context())
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.List(c, reminders)
}

func (h *ReminderHandler) Create(c *gin.Context) {
	var req models.Reminder
	if !bindJSON(c, &req) {
		return
	}

	r, err := h.svc.CreateReminder(c.Request.Context(), req)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.Created(c, r)
}

// Update não diferencia id inexistente: lembretes são atualizados em silêncio.
func (h *ReminderHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var patch models.ReminderPatch
	if !bindJSON(c, &patch) {
		return
	}

	if err := h.svc.UpdateReminder(c.Request.Context(), id, patch); err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.NoContent(c)
}

func (h *ReminderHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteReminder(c.Request.Context(), id); err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.NoContent(c)
}
