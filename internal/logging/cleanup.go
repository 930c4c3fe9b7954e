package logging

import (
	"log/slog"
	"time"

	"github.com/calotrack/backend/internal/models"
	"gorm.io/gorm"
)

const retention = 30 * 24 * time.Hour

// StartCleanup launches a goroutine that prunes system_logs rows older than
// the retention window. It sweeps once at startup and then daily; closing
// done stops it.
func StartCleanup(db *gorm.DB, done chan struct{}) {
	go func() {
		sweep(db)
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				sweep(db)
			case <-done:
				return
			}
		}
	}()
}

func sweep(db *gorm.DB) {
	cutoff := time.Now().Add(-retention)
	res := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
	if res.Error != nil {
		slog.Error("log cleanup failed", "error", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		slog.Info("log cleanup completed", "deleted", res.RowsAffected)
	}
}
