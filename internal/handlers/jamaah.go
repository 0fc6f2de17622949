package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/safarnesia/umrah-backend/internal/logger"
	"github.com/safarnesia/umrah-backend/internal/services"
)

type JamaahHandler struct {
	log                *logger.Logger
	jamaahService      services.JamaahService
	transactionService services.TransactionService
}

func NewJamaahHandler(log *logger.Logger, jamaahService services.JamaahService, transactionService services.TransactionService) *JamaahHandler {
	return &JamaahHandler{
		log:                log.With("handler", "JamaahHandler"),
		jamaahService:      jamaahService,
		transactionService: transactionService,
	}
}

func (h *JamaahHandler) List(c *gin.Context) {
	var packageID *uuid.UUID
	if raw := c.Query("packageId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_package_id", err)
			return
		}
		packageID = &id
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			RespondError(c, http.StatusBadRequest, "invalid_limit", err)
			return
		}
		limit = n
	}

	jamaah, err := h.jamaahService.List(c.Request.Context(), packageID, limit)
	if err != nil {
		h.log.Error("List jamaah failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "list_jamaah_failed", err)
		return
	}
	RespondOK(c, jamaah)
}

func (h *JamaahHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_jamaah_id", err)
		return
	}

	jamaah, err := h.jamaahService.Get(c.Request.Context(), id)
	if err != nil {
		h.log.Error("Get jamaah failed", "error", err, "jamaah_id", id)
		RespondError(c, http.StatusNotFound, "jamaah_not_found", err)
		return
	}
	RespondOK(c, jamaah)
}

func (h *JamaahHandler) Payments(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_jamaah_id", err)
		return
	}

	payments, err := h.transactionService.PaymentHistory(c.Request.Context(), id)
	if err != nil {
		h.log.Error("Payment history failed", "error", err, "jamaah_id", id)
		RespondError(c, http.StatusInternalServerError, "payment_history_failed", err)
		return
	}
	RespondOK(c, payments)
}
