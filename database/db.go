package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/pyetrosoares0910-source/pms-backend-sub000/config"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/models"
)

// DB is the global GORM handle.
var DB *gorm.DB

// InitDB opens the Postgres connection and migrates the schema.
func InitDB() {
	logLevel := gormlogger.Warn
	if !config.IsProduction() {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(config.AppConfig.DatabaseURL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		log.Fatalf("failed to connect to Postgres: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Guest{},
		&models.Stay{},
		&models.Room{},
		&models.Reservation{},
		&models.Maid{},
		&models.CleaningSchedule{},
		&models.MaintenanceTask{},
		&models.MaintenanceOccurrence{},
		&models.InventoryItem{},
		&models.InventoryMovement{},
	); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	DB = db
	log.Println("Connected to Postgres successfully!")
}

// GetDB returns the global handle, initializing it on first use.
func GetDB() *gorm.DB {
	if DB == nil {
		InitDB()
	}
	return DB
}
