package app

import (
	"github.com/safarnesia/umrah-backend/internal/handlers"
	"github.com/safarnesia/umrah-backend/internal/logger"
	"github.com/safarnesia/umrah-backend/internal/sse"
)

type Handlers struct {
	Package  *handlers.PackageHandler
	Jamaah   *handlers.JamaahHandler
	RoomList *handlers.RoomListHandler
	Invoice  *handlers.InvoiceHandler
	Company  *handlers.CompanyHandler
	Realtime *handlers.RealtimeHandler
}

func wireHandlers(log *logger.Logger, s Services, hub *sse.SSEHub) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Package:  handlers.NewPackageHandler(log, s.Package),
		Jamaah:   handlers.NewJamaahHandler(log, s.Jamaah, s.Transaction),
		RoomList: handlers.NewRoomListHandler(log, s.RoomList),
		Invoice:  handlers.NewInvoiceHandler(log, s.Invoice),
		Company:  handlers.NewCompanyHandler(log, s.Invoice),
		Realtime: handlers.NewRealtimeHandler(log, hub),
	}
}
