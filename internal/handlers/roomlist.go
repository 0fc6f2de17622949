package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/safarnesia/umrah-backend/internal/logger"
	"github.com/safarnesia/umrah-backend/internal/rooming"
	"github.com/safarnesia/umrah-backend/internal/services"
)

type RoomListHandler struct {
	log             *logger.Logger
	roomListService services.RoomListService
}

func NewRoomListHandler(log *logger.Logger, roomListService services.RoomListService) *RoomListHandler {
	return &RoomListHandler{
		log:             log.With("handler", "RoomListHandler"),
		roomListService: roomListService,
	}
}

func (h *RoomListHandler) GetRoomList(c *gin.Context) {
	packageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_package_id", err)
		return
	}

	view, err := h.roomListService.GetRoomList(c.Request.Context(), packageID, c.Query("search"))
	if err != nil {
		h.log.Error("GetRoomList failed", "error", err, "package_id", packageID)
		RespondError(c, http.StatusInternalServerError, "load_room_list_failed", err)
		return
	}
	RespondOK(c, view)
}

type assignRoomRequest struct {
	JamaahIDs  []uuid.UUID `json:"jamaahIds" binding:"required"`
	RoomNumber string      `json:"roomNumber"`
	RoomType   string      `json:"roomType"`
	Override   bool        `json:"override"`
}

func (h *RoomListHandler) AssignRoom(c *gin.Context) {
	packageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_package_id", err)
		return
	}

	var req assignRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	err = h.roomListService.AssignRoom(c.Request.Context(), packageID, req.JamaahIDs, req.RoomNumber, req.RoomType, req.Override)
	if err != nil {
		var capErr *rooming.CapacityExceededError
		switch {
		case errors.As(err, &capErr):
			// Not a hard failure: the client confirms and retries with override.
			c.JSON(http.StatusConflict, gin.H{
				"code":      "capacity_exceeded",
				"requested": capErr.Requested,
				"capacity":  capErr.Capacity,
				"roomType":  capErr.RoomType,
			})
		case errors.Is(err, rooming.ErrEmptySelection), errors.Is(err, rooming.ErrEmptyRoomNumber):
			RespondError(c, http.StatusBadRequest, "validation_failed", err)
		default:
			h.log.Error("AssignRoom failed", "error", err, "package_id", packageID)
			RespondError(c, http.StatusInternalServerError, "assign_room_failed", err)
		}
		return
	}
	RespondOK(c, gin.H{"assigned": len(req.JamaahIDs)})
}

type unassignRequest struct {
	PackageID uuid.UUID `json:"packageId" binding:"required"`
	JamaahID  uuid.UUID `json:"jamaahId" binding:"required"`
}

func (h *RoomListHandler) Unassign(c *gin.Context) {
	var req unassignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	if err := h.roomListService.RemoveFromRoom(c.Request.Context(), req.PackageID, req.JamaahID); err != nil {
		h.log.Error("Unassign failed", "error", err, "jamaah_id", req.JamaahID)
		RespondError(c, http.StatusInternalServerError, "unassign_failed", err)
		return
	}
	RespondOK(c, gin.H{"unassigned": req.JamaahID})
}

type dismissRoomRequest struct {
	RoomNumber string `json:"roomNumber" binding:"required"`
	RoomType   string `json:"roomType"`
}

func (h *RoomListHandler) DismissRoom(c *gin.Context) {
	packageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_package_id", err)
		return
	}

	var req dismissRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	if err := h.roomListService.DismissRoom(c.Request.Context(), packageID, req.RoomNumber, req.RoomType); err != nil {
		h.log.Error("DismissRoom failed", "error", err, "package_id", packageID, "room_number", req.RoomNumber)
		RespondError(c, http.StatusInternalServerError, "dismiss_room_failed", err)
		return
	}
	RespondOK(c, gin.H{"dismissed": req.RoomNumber})
}
