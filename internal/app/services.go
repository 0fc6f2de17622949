package app

import (
	"gorm.io/gorm"

	"github.com/safarnesia/umrah-backend/internal/billing"
	"github.com/safarnesia/umrah-backend/internal/clients/redis"
	"github.com/safarnesia/umrah-backend/internal/logger"
	"github.com/safarnesia/umrah-backend/internal/services"
	"github.com/safarnesia/umrah-backend/internal/sse"
)

type Services struct {
	Package     services.PackageService
	Jamaah      services.JamaahService
	Transaction services.TransactionService
	RoomList    services.RoomListService
	Invoice     services.InvoiceService
	Notifier    services.Notifier
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, r Repos, hub *sse.SSEHub, bus redis.SSEBus) Services {
	log.Info("Wiring services...")
	notifier := services.NewSSENotifier(log, hub, bus)
	pipeline := billing.NewPipeline(cfg.InvoiceFetchWidth, log)
	return Services{
		Package:     services.NewPackageService(db, log, r.Package),
		Jamaah:      services.NewJamaahService(db, log, r.Jamaah),
		Transaction: services.NewTransactionService(db, log, r.Transaction),
		RoomList:    services.NewRoomListService(db, log, r.Jamaah, r.Package, notifier),
		Invoice:     services.NewInvoiceService(db, log, r.Jamaah, r.Transaction, r.CompanySettings, r.User, pipeline, notifier),
		Notifier:    notifier,
	}
}
