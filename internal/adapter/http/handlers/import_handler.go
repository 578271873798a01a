package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduardopaniago/GestaoFrota/internal/usecase"
	"github.com/eduardopaniago/GestaoFrota/pkg"
)

type ImportHandler struct {
	importer *usecase.ImportUseCase
}

func NewImportHandler(importer *usecase.ImportUseCase) *ImportHandler {
	return &ImportHandler{importer: importer}
}

// ImportCSV ingests a spreadsheet. Accepts multipart form uploads (field
// "file") and raw CSV bodies.
func (h *ImportHandler) ImportCSV(c *gin.Context) {
	body := c.Request.Body
	if file, _, err := c.Request.FormFile("file"); err == nil {
		defer file.Close()
		body = file
	}

	result, err := h.importer.ImportCSV(body)
	if err != nil {
		appErr := mapLedgerError(err)
		if appErr.Code == "INTERNAL_ERROR" {
			appErr = pkg.NewDomainError("IMPORT_FAILED", err.Error(), err, http.StatusBadRequest)
		}
		abortWithError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, result)
}
