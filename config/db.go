package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kelias-gh/CRM/domain"
	"github.com/kelias-gh/CRM/utils"
)

func GetDatabaseURL() string {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_SSLMODE"),
	)
	return dsn
}

func BootDB() (*gorm.DB, error) {
	address := GetDatabaseURL()

	// Setup logger level (debug mode vs production)
	var gormLogger logger.Interface
	if os.Getenv("APP_ENV") == "development" {
		gormLogger = logger.Default.LogMode(logger.Info) // show all SQL
	} else {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(postgres.Open(address), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Setup connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(30 * time.Minute)

	err = db.AutoMigrate(
		&domain.User{},
		&domain.Customer{},
		&domain.Product{},
		&domain.Order{},
		&domain.OrderItem{},
		&domain.Contact{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to auto-migrate database schemas: %w", err)
	}

	if err := seedAdminUser(db); err != nil {
		return nil, err
	}

	log.Print("Connected to ", utils.ColorText("Database", utils.Green), " successfully")
	return db, nil
}

// seedAdminUser creates the initial admin from env when no admin exists yet.
func seedAdminUser(db *gorm.DB) error {
	var count int64
	db.Model(&domain.User{}).Where("role = ?", domain.RoleAdmin).Count(&count)
	if count > 0 {
		return nil
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPass := os.Getenv("ADMIN_PASSWORD")
	adminName := os.Getenv("ADMIN_NAME")

	if adminEmail == "" || adminPass == "" {
		log.Print("Skipping admin seeding, missing ADMIN_EMAIL or ADMIN_PASSWORD in env")
		return nil
	}
	if adminName == "" {
		adminName = "Admin User"
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPass), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	adminUser := domain.User{
		Name:     adminName,
		Email:    &adminEmail,
		Password: string(hashed),
		Role:     domain.RoleAdmin,
	}

	if err := db.Create(&adminUser).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	log.Printf("Seeded admin user: %s", adminEmail)
	return nil
}
