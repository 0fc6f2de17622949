package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/safarnesia/umrah-backend/internal/logger"
	"github.com/safarnesia/umrah-backend/internal/services"
)

type PackageHandler struct {
	log            *logger.Logger
	packageService services.PackageService
}

func NewPackageHandler(log *logger.Logger, packageService services.PackageService) *PackageHandler {
	return &PackageHandler{
		log:            log.With("handler", "PackageHandler"),
		packageService: packageService,
	}
}

func (h *PackageHandler) List(c *gin.Context) {
	packages, err := h.packageService.List(c.Request.Context())
	if err != nil {
		h.log.Error("List packages failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "list_packages_failed", err)
		return
	}
	RespondOK(c, packages)
}

func (h *PackageHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_package_id", err)
		return
	}

	pkg, err := h.packageService.Get(c.Request.Context(), id)
	if err != nil {
		h.log.Error("Get package failed", "error", err, "package_id", id)
		RespondError(c, http.StatusNotFound, "package_not_found", err)
		return
	}
	RespondOK(c, pkg)
}
