package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/plateapp/reservations/controllers"
	"github.com/plateapp/reservations/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	tableCtrl := controllers.NewTableController(db)
	reservationCtrl := controllers.NewReservationController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Guests browse availability without any account
	r.GET("/tables", tableCtrl.GetAllTables)
	r.GET("/tables/available", tableCtrl.GetAvailableTables)
	r.GET("/tables/:table_id", tableCtrl.GetTableByID)

	// Reservation lifecycle; writes share a rate limiter
	writes := r.Group("/reservations")
	writes.Use(middlewares.NewWriteRateLimiter())
	{
		writes.POST("", reservationCtrl.CreateReservation)
		writes.DELETE("/:reservation_id", reservationCtrl.CancelReservation)
	}
	r.GET("/reservations/:reservation_id", reservationCtrl.GetReservationByID)

	// ----------------------------------------------------------------
	//                      STAFF ROUTES
	// ----------------------------------------------------------------
	admin := r.Group("/admin")

	// TABLES (provisioning, not the reservation hot path)
	admin.POST("/tables", tableCtrl.CreateTable)
	admin.DELETE("/tables/:table_id", tableCtrl.DeleteTable)

	// RESERVATIONS (full ledger)
	admin.GET("/reservations", reservationCtrl.GetAllReservations)

	return r
}
