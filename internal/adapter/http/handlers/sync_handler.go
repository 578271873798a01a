package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	response "github.com/eduardopaniago/GestaoFrota/internal/adapter/http/dto/response"
	"github.com/eduardopaniago/GestaoFrota/internal/usecase"
	"github.com/eduardopaniago/GestaoFrota/internal/usecase/interfaces"
	"github.com/eduardopaniago/GestaoFrota/pkg"
)

type SyncHandler struct {
	sync  *usecase.SyncUseCase
	store *usecase.LedgerStore
}

func NewSyncHandler(sync *usecase.SyncUseCase, store *usecase.LedgerStore) *SyncHandler {
	return &SyncHandler{sync: sync, store: store}
}

func (h *SyncHandler) Status(c *gin.Context) {
	backend := h.sync.BackendName()
	c.JSON(http.StatusOK, response.SyncStatusResponse{
		Enabled:  backend != "",
		Backend:  backend,
		LastSync: h.store.Snapshot().LastSync,
	})
}

func (h *SyncHandler) Upload(c *gin.Context) {
	stamp, err := h.sync.Upload(c.Request.Context())
	if err != nil {
		abortWithError(c, mapSyncError(err))
		return
	}
	c.JSON(http.StatusOK, response.SyncUploadResponse{LastSync: stamp})
}

func (h *SyncHandler) Download(c *gin.Context) {
	if err := h.sync.Download(c.Request.Context()); err != nil {
		abortWithError(c, mapSyncError(err))
		return
	}
	c.JSON(http.StatusOK, response.SyncDownloadResponse{
		Restored: true,
		LastSync: h.store.Snapshot().LastSync,
	})
}

func mapSyncError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrSyncUnavailable):
		return pkg.NewDomainError("SYNC_DISABLED", "No sync backend configured", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrSyncBusy):
		return pkg.NewDomainError("SYNC_BUSY", "A sync operation is already running", err, http.StatusConflict)
	case errors.Is(err, interfaces.ErrRemoteNotFound):
		return pkg.NewDomainError("BACKUP_NOT_FOUND", "No remote backup found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrBackupPayload), errors.Is(err, usecase.ErrBackupVersion):
		return pkg.NewDomainError("BACKUP_INVALID", err.Error(), err, http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("SYNC_FAILED", "Sync operation failed", err, http.StatusBadGateway)
	}
}
