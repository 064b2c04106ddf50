package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/trainer-manager/internal/httperr"
	"github.com/BruksfildServices01/trainer-manager/internal/httpresp"
	"github.com/BruksfildServices01/trainer-manager/internal/models"
	ucTrainer "github.com/BruksfildServices01/trainer-manager/internal/usecase/trainer"
)

type ClientHandler struct {
	svc *ucTrainer.Service
}

func NewClientHandler(svc *ucTrainer.Service) *ClientHandler {
	return &ClientHandler{svc: svc}
}

type MessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// ======================================================
// LIST CLIENTS (?query=)
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.svc.ListClients(c.Request.Context(), c.Query("query"))
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.List(c, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	client, err := h.svc.GetClient(c.Request.Context(), id)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.OK(c, client)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req models.Client
	if !bindJSON(c, &req) {
		return
	}

	client, err := h.svc.CreateClient(c.Request.Context(), req)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.Created(c, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var patch models.ClientPatch
	if !bindJSON(c, &patch) {
		return
	}

	client, err := h.svc.UpdateClient(c.Request.Context(), id, patch)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.OK(c, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteClient(c.Request.Context(), id); err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.NoContent(c)
}

// ======================================================
// MENSAGEM PERSONALIZADA (WhatsApp)
// ======================================================
func (h *ClientHandler) Message(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req MessageRequest
	if !bindJSON(c, &req) {
		return
	}

	d, err := h.svc.SendCustomMessage(c.Request.Context(), id, req.Message)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.Created(c, d)
}
