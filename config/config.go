package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the database selected through the environment. MySQL is the
// production driver; sqlite keeps local development self-contained. Called
// once from main; the handle is injected into everything downstream.
func InitDB() (*gorm.DB, error) {
	driver := os.Getenv("DB_DRIVER")
	switch driver {
	case "", "mysql":
		return gorm.Open(mysql.Open(mysqlDSN()), &gorm.Config{})
	case "sqlite":
		path := os.Getenv("DB_DSN")
		if path == "" {
			path = "plate.db"
		}
		return gorm.Open(sqlite.Open(path), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}

func mysqlDSN() string {
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		return dsn
	}

	user := envOr("DB_USER", "root")
	password := os.Getenv("DB_PASSWORD")
	host := envOr("DB_HOST", "127.0.0.1")
	port := envOr("DB_PORT", "3306")
	name := envOr("DB_NAME", "plate_reservations")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, password, host, port, name)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
