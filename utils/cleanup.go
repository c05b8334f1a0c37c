package utils

import (
	"log"
	"time"

	"github.com/poolhub/consultant-pool-backend/config"
	"github.com/poolhub/consultant-pool-backend/models"
)

// CleanupExpiredTokens deletes password-reset tokens that expired or were used.
func CleanupExpiredTokens() {
	db := config.DB

	result := db.Where("expires_at < ? OR used = ?", time.Now(), true).
		Delete(&models.PasswordReset{})

	if result.Error != nil {
		log.Printf("failed to delete password reset tokens: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("deleted %d expired/used password reset tokens", result.RowsAffected)
	}
}

// StartCleanupJob runs the token cleanup once at startup and then every 6 hours.
func StartCleanupJob() {
	CleanupExpiredTokens()

	ticker := time.NewTicker(6 * time.Hour)

	go func() {
		defer ticker.Stop()
		for range ticker.C {
			CleanupExpiredTokens()
		}
	}()

	log.Println("password reset cleanup job started (every 6 hours)")
}
