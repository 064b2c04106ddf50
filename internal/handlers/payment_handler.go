package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/trainer-manager/internal/httperr"
	"github.com/BruksfildServices01/trainer-manager/internal/httpresp"
	"github.com/BruksfildServices01/trainer-manager/internal/models"
	"github.com/BruksfildServices01/trainer-manager/internal/report"
	"github.com/BruksfildServices01/trainer-manager/internal/timezone"
	ucTrainer "github.com/BruksfildServices01/trainer-manager/internal/usecase/trainer"
)

type PaymentHandler struct {
	svc    *ucTrainer.Service
	clock  timezone.Clock
	logger *slog.Logger
}

func NewPaymentHandler(svc *ucTrainer.Service, clock timezone.Clock, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{svc: svc, clock: clock, logger: logger}
}

type PayRequest struct {
	PaymentMethod string `json:"payment_method"`
}

type PaymentListResponse struct {
	Data    []models.Payment      `json:"data"`
	Total   int                   `json:"total"`
	Summary models.PaymentSummary `json:"summary"`
}

// ======================================================
// LIST (?status=), roda a varredura de vencidos
// ======================================================
func (h *PaymentHandler) List(c *gin.Context) {
	payments, summary, err := h.svc.ListPayments(c.Request.Context(), models.PaymentStatus(c.Query("status")))
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.OK(c, PaymentListResponse{
		Data:    payments,
		Total:   len(payments),
		Summary: summary,
	})
}

func (h *PaymentHandler) Overdue(c *gin.Context) {
	payments, err := h.svc.OverduePayments(c.Request.Context())
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.List(c, payments)
}

func (h *PaymentHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	p, err := h.svc.GetPayment(c.Request.Context(), id)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.OK(c, p)
}

func (h *PaymentHandler) Create(c *gin.Context) {
	var req models.Payment
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.svc.CreatePayment(c.Request.Context(), req)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.Created(c, p)
}

func (h *PaymentHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var patch models.PaymentPatch
	if !bindJSON(c, &patch) {
		return
	}

	p, err := h.svc.UpdatePayment(c.Request.Context(), id, patch)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.OK(c, p)
}

// Pay marca como pago; o corpo é opcional.
func (h *PaymentHandler) Pay(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req PayRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	p, err := h.svc.MarkPaymentAsPaid(c.Request.Context(), id, req.PaymentMethod)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.OK(c, p)
}

func (h *PaymentHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.svc.DeletePayment(c.Request.Context(), id); err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.NoContent(c)
}

// Remind monta o lembrete de WhatsApp (com link de checkout, se houver).
func (h *PaymentHandler) Remind(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	d, err := h.svc.SendPaymentReminder(c.Request.Context(), id)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	httpresp.Created(c, d)
}

// ======================================================
// EXPORT (.xlsx)
// ======================================================
func (h *PaymentHandler) Export(c *gin.Context) {
	payments, _, err := h.svc.ListPayments(c.Request.Context(), models.PaymentStatus(c.Query("status")))
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	raw, err := report.PaymentsXLSX(payments)
	if err != nil {
		h.logger.Error("payments export failed", "error", err)
		httperr.Internal(c, "export_failed", "Erro ao gerar planilha.")
		return
	}

	fileName := fmt.Sprintf("pagos-%s.xlsx", timezone.Today(h.clock()))
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Data(200, report.ContentType, raw)
}
