package handlers

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/trainer-manager/internal/backup"
	"github.com/BruksfildServices01/trainer-manager/internal/httperr"
	"github.com/BruksfildServices01/trainer-manager/internal/httpresp"
	"github.com/BruksfildServices01/trainer-manager/internal/timezone"
	ucTrainer "github.com/BruksfildServices01/trainer-manager/internal/usecase/trainer"
)

type BackupHandler struct {
	svc      *ucTrainer.Service
	uploader *backup.S3Uploader
	clock    timezone.Clock
	logger   *slog.Logger
}

// NewBackupHandler aceita uploader nil quando o backup em S3 está desligado.
func NewBackupHandler(svc *ucTrainer.Service, uploader *backup.S3Uploader, clock timezone.Clock, logger *slog.Logger) *BackupHandler {
	return &BackupHandler{svc: svc, uploader: uploader, clock: clock, logger: logger}
}

// Run envia um snapshot agora para o bucket configurado.
func (h *BackupHandler) Run(c *gin.Context) {
	if h.uploader == nil {
		httperr.Unavailable(c, "backup_disabled", "Backup não configurado.")
		return
	}

	key, err := h.uploader.Backup(c.Request.Context(), h.svc)
	if err != nil {
		h.logger.Error("manual backup failed", "error", err)
		httperr.Internal(c, "backup_failed", "Erro ao enviar backup.")
		return
	}

	httpresp.Created(c, gin.H{"key": key})
}

// Export devolve o snapshot completo como download JSON.
func (h *BackupHandler) Export(c *gin.Context) {
	ds, err := h.svc.Snapshot(c.Request.Context())
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	fileName := fmt.Sprintf("trainer-%s.json", timezone.Today(h.clock()))
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	httpresp.OK(c, ds)
}
