package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/trainer-manager/internal/httperr"
	"github.com/BruksfildServices01/trainer-manager/internal/httpresp"
	"github.com/BruksfildServices01/trainer-manager/internal/models"
	ucTrainer "github.com/BruksfildServices01/trainer-manager/internal/usecase/trainer"
)

type SessionHandler struct {
	svc *ucTrainer.Service
}

func NewSessionHandler(svc *ucTrainer.Service) *SessionHandler {
	return &SessionHandler{svc: svc}
}

// ======================================================
// LIST (?range=today|week&status=)
// ======================================================
func (h *SessionHandler) List(c *gin.Context) {
	sessions, err := h.svc.ListSessions(c.Request.Context(), ucTrainer.SessionFilter{
		Range:  ucTrainer.SessionRange(c.Query("range")),
		Status: models.SessionStatus(c.Query("status")),
	})
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.List(c, sessions)
}

func (h *SessionHandler) Today(c *gin.Context) {
	sessions, err := h.svc.TodaysSessions(c.Request.Context())
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.List(c, sessions)
}

func (h *SessionHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	s, err := h.svc.GetSession(c.Request.Context(), id)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.OK(c, s)
}

func (h *SessionHandler) Create(c *gin.Context) {
	var req models.Session
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.svc.CreateSession(c.Request.Context(), req)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.Created(c, s)
}

func (h *SessionHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var patch models.SessionPatch
	if !bindJSON(c, &patch) {
		return
	}

	s, err := h.svc.UpdateSession(c.Request.Context(), id, patch)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.OK(c, s)
}

func (h *SessionHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteSession(c.Request.Context(), id); err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.NoContent(c)
}

func (h *SessionHandler) Remind(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	d, err := h.svc.SendSessionReminder(c.Request.Context(), id)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.Created(c, d)
}
