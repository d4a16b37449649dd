package utils

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Database bool `json:"database"`
	Redis    bool `json:"redis"`
}

// CheckHealth pings the database and the cache with a short deadline.
func CheckHealth(db *gorm.DB) HealthStatus {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	status := HealthStatus{}

	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			status.Database = sqlDB.PingContext(ctx) == nil
		}
	}
	if CacheClient != nil {
		status.Redis = CacheClient.Ping(ctx).Err() == nil
	}
	return status
}
