package utils

import (
	"sync"

	"gorm.io/gorm"
)

var (
	db   *gorm.DB
	once sync.Once
	mu   sync.RWMutex
)

// InitDB stores the database handle opened in main. The connection is
// constructed once per process; later calls are no-ops.
func InitDB(database *gorm.DB) {
	once.Do(func() {
		mu.Lock()
		defer mu.Unlock()
		db = database
	})
}

// GetDB returns the shared database handle.
func GetDB() *gorm.DB {
	mu.RLock()
	defer mu.RUnlock()
	return db
}
