package scheduler

import (
	"log"
	"strconv"
	"time"

	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	authModel "schoolku_backend/internals/features/users/auth/model"
)

// StartTokenCleanupScheduler jalanin pembersihan berkala token kadaluarsa.
// Interval & umur simpan bisa dioverride lewat env.
func StartTokenCleanupScheduler(db *gorm.DB) {
	interval := 6 * time.Hour
	if raw := configs.GetEnv("TOKEN_CLEANUP_INTERVAL_HOURS", ""); raw != "" {
		if h, err := strconv.Atoi(raw); err == nil && h > 0 {
			interval = time.Duration(h) * time.Hour
		}
	}

	retentionDays := 7
	if raw := configs.GetEnv("TOKEN_BLACKLIST_TTL_DAYS", ""); raw != "" {
		if d, err := strconv.Atoi(raw); err == nil && d > 0 {
			retentionDays = d
		}
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		// langsung sekali di awal biar tabel nggak numpuk setelah restart
		runCleanup(db, retentionDays)
		for range ticker.C {
			runCleanup(db, retentionDays)
		}
	}()
	log.Printf("🧹 Token cleanup scheduler aktif (tiap %s, retensi %d hari)", interval, retentionDays)
}

func runCleanup(db *gorm.DB, retentionDays int) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	res := db.Unscoped().
		Where("expired_at < ?", cutoff).
		Delete(&authModel.TokenBlacklist{})
	if res.Error != nil {
		log.Printf("[ERROR] cleanup token blacklist: %v", res.Error)
	} else if res.RowsAffected > 0 {
		log.Printf("🧹 Hapus %d token blacklist kadaluarsa", res.RowsAffected)
	}

	res = db.
		Where("expires_at < ? OR revoked_at < ?", cutoff, cutoff).
		Delete(&authModel.RefreshTokenModel{})
	if res.Error != nil {
		log.Printf("[ERROR] cleanup refresh tokens: %v", res.Error)
	} else if res.RowsAffected > 0 {
		log.Printf("🧹 Hapus %d refresh token kadaluarsa", res.RowsAffected)
	}
}
