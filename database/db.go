package database

import (
	"log"
	"time"

	"lacquer/config"
	"lacquer/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DB is the global gorm handle.
var DB *gorm.DB

// InitDB opens the relational store and migrates the schema. A postgres DSN
// in DATABASE_URL takes priority; otherwise a local sqlite file is used so
// the server runs with zero external setup in development.
func InitDB() {
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	var (
		db  *gorm.DB
		err error
	)
	if dsn := config.AppConfig.DatabaseURL; dsn != "" {
		db, err = gorm.Open(postgres.Open(dsn), gormCfg)
	} else {
		db, err = gorm.Open(sqlite.Open(config.AppConfig.SQLitePath), gormCfg)
	}
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("db.DB(): %v", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := AutoMigrate(db); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	DB = db
	log.Println("Connected to database successfully!")
}

// AutoMigrate creates or updates the tables for every entity.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Service{},
		&models.OpenHour{},
		&models.BlockedDate{},
		&models.Appointment{},
		&models.AdminUser{},
	)
}
