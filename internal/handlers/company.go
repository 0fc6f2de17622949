package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/safarnesia/umrah-backend/internal/logger"
	"github.com/safarnesia/umrah-backend/internal/services"
)

type CompanyHandler struct {
	log            *logger.Logger
	invoiceService services.InvoiceService
}

func NewCompanyHandler(log *logger.Logger, invoiceService services.InvoiceService) *CompanyHandler {
	return &CompanyHandler{
		log:            log.With("handler", "CompanyHandler"),
		invoiceService: invoiceService,
	}
}

// Get returns the letterhead used on billing documents.
func (h *CompanyHandler) Get(c *gin.Context) {
	settings, err := h.invoiceService.Letterhead(c.Request.Context())
	if err != nil {
		h.log.Error("Load company settings failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "load_company_failed", err)
		return
	}
	RespondOK(c, settings)
}
