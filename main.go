package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/plateapp/reservations/config"
	"github.com/plateapp/reservations/middlewares"
	"github.com/plateapp/reservations/models"
	"github.com/plateapp/reservations/router"
	"github.com/plateapp/reservations/utils"
)

func main() {
	// Load .env before anything reads the environment
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	utils.InitDB(db)

	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)
	seedTables(db)

	// Per-IP rate limiter (50 requests per second per IP)
	rateLimiter := middlewares.NewRateLimiter(50, 1)

	r := router.SetupRouter(db)
	r.Use(rateLimiter.RateLimit())

	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Table{},
		&models.Reservation{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}

// seedTables provisions a default floor plan on an empty database so a fresh
// install can take reservations immediately.
func seedTables(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Table{}).Count(&count).Error; err != nil {
		utils.ErrorLogger.Printf("Error counting tables, skipping seed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	sections := map[string][]uint{
		"italian": {2, 2, 4, 4, 4, 6, 8, 12},
		"kbbq":    {2, 4, 4, 6, 8, 10, 16},
	}
	seeded := 0
	for section, capacities := range sections {
		for _, capacity := range capacities {
			table := models.Table{Section: section, Capacity: capacity, IsAvailable: true}
			if err := db.Create(&table).Error; err != nil {
				utils.ErrorLogger.Printf("Error seeding table (section=%s capacity=%d): %v",
					section, capacity, err)
				continue
			}
			seeded++
		}
	}
	utils.InfoLogger.Printf("Seeded %d default tables", seeded)
}
