package app

import (
	"github.com/gin-gonic/gin"

	"github.com/safarnesia/umrah-backend/internal/logger"
	"github.com/safarnesia/umrah-backend/internal/server"
)

func wireRouter(log *logger.Logger, cfg Config, h Handlers) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		Log:             log,
		AllowOrigins:    cfg.AllowOrigins,
		PackageHandler:  h.Package,
		JamaahHandler:   h.Jamaah,
		RoomListHandler: h.RoomList,
		InvoiceHandler:  h.Invoice,
		CompanyHandler:  h.Company,
		RealtimeHandler: h.Realtime,
	})
}
