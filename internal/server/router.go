package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/safarnesia/umrah-backend/internal/handlers"
	"github.com/safarnesia/umrah-backend/internal/logger"
	"github.com/safarnesia/umrah-backend/internal/middleware"
)

type RouterConfig struct {
	Log             *logger.Logger
	AllowOrigins    []string
	PackageHandler  *handlers.PackageHandler
	JamaahHandler   *handlers.JamaahHandler
	RoomListHandler *handlers.RoomListHandler
	InvoiceHandler  *handlers.InvoiceHandler
	CompanyHandler  *handlers.CompanyHandler
	RealtimeHandler *handlers.RealtimeHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLog(cfg.Log))

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	// SSE
	router.GET("/sse/stream", cfg.RealtimeHandler.Stream)
	router.POST("/sse/subscribe", cfg.RealtimeHandler.Subscribe)
	router.POST("/sse/unsubscribe", cfg.RealtimeHandler.Unsubscribe)

	api := router.Group("/api")
	{
		// Packages and rooming
		api.GET("/packages", cfg.PackageHandler.List)
		api.GET("/packages/:id", cfg.PackageHandler.Get)
		api.GET("/packages/:id/rooms", cfg.RoomListHandler.GetRoomList)
		api.POST("/packages/:id/rooms/assign", cfg.RoomListHandler.AssignRoom)
		api.POST("/packages/:id/rooms/dismiss", cfg.RoomListHandler.DismissRoom)
		api.POST("/rooms/unassign", cfg.RoomListHandler.Unassign)

		// Jamaah
		api.GET("/jamaah", cfg.JamaahHandler.List)
		api.GET("/jamaah/:id", cfg.JamaahHandler.Get)
		api.GET("/jamaah/:id/payments", cfg.JamaahHandler.Payments)

		// Invoices
		api.POST("/invoices/batch", cfg.InvoiceHandler.GenerateBatch)
		api.GET("/invoices/:id/preview", cfg.InvoiceHandler.Preview)

		// Letterhead
		api.GET("/company", cfg.CompanyHandler.Get)
	}

	return router
}
