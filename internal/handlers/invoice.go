package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/safarnesia/umrah-backend/internal/logger"
	"github.com/safarnesia/umrah-backend/internal/services"
)

type InvoiceHandler struct {
	log            *logger.Logger
	invoiceService services.InvoiceService
}

func NewInvoiceHandler(log *logger.Logger, invoiceService services.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{
		log:            log.With("handler", "InvoiceHandler"),
		invoiceService: invoiceService,
	}
}

type generateBatchRequest struct {
	JamaahIDs  []uuid.UUID `json:"jamaahIds" binding:"required"`
	OperatorID *uuid.UUID  `json:"operatorId"`
	Sender     string      `json:"sender"`
	Receiver   string      `json:"receiver"`
}

// GenerateBatch runs the whole batch inside the request. Progress events go
// out over SSE while the client waits; the final body carries the documents
// and the per-jamaah failures.
func (h *InvoiceHandler) GenerateBatch(c *gin.Context) {
	var req generateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if len(req.JamaahIDs) == 0 {
		RespondError(c, http.StatusBadRequest, "empty_selection", nil)
		return
	}

	batchID := uuid.New()
	job, err := h.invoiceService.GenerateBatch(c.Request.Context(), batchID, req.JamaahIDs, req.OperatorID, req.Sender, req.Receiver)
	if err != nil {
		if job != nil && job.Completed > 0 {
			// Cancelled mid-run. Return what settled so the client can
			// still offer the finished documents.
			c.JSON(http.StatusOK, gin.H{
				"batch_id":  batchID,
				"partial":   true,
				"completed": job.Completed,
				"total":     job.Total,
				"documents": job.Results,
				"failures":  job.FailureMessages(),
			})
			return
		}
		h.log.Error("GenerateBatch failed", "error", err, "batch_id", batchID)
		RespondError(c, http.StatusInternalServerError, "generate_batch_failed", err)
		return
	}

	RespondOK(c, gin.H{
		"batch_id":  batchID,
		"completed": job.Completed,
		"total":     job.Total,
		"documents": job.Results,
		"failures":  job.FailureMessages(),
	})
}

func (h *InvoiceHandler) Preview(c *gin.Context) {
	jamaahID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_jamaah_id", err)
		return
	}

	var operatorID *uuid.UUID
	if raw := c.Query("operatorId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_operator_id", err)
			return
		}
		operatorID = &id
	}

	doc, err := h.invoiceService.Preview(c.Request.Context(), jamaahID, operatorID, c.Query("sender"), c.Query("receiver"))
	if err != nil {
		h.log.Error("Preview failed", "error", err, "jamaah_id", jamaahID)
		RespondError(c, http.StatusInternalServerError, "preview_failed", err)
		return
	}
	RespondOK(c, doc)
}
