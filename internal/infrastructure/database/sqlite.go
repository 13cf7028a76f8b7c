package database

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tavolo/tavolo-api/internal/config"
	"github.com/tavolo/tavolo-api/internal/domain/entity"
	"github.com/tavolo/tavolo-api/internal/domain/enum"
)

// NewSQLiteDB opens the SQLite database file used by the shop.
// Foreign keys are enabled and busy_timeout keeps concurrent writers from
// failing immediately while SQLite serializes them.
func NewSQLiteDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=5000", cfg.Path)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite allows one writer at a time; a single connection avoids
	// SQLITE_BUSY churn under concurrent requests.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	log.Printf("Opened SQLite database at %s", cfg.Path)
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities. Migrations are
// additive: new columns and tables are introduced idempotently at startup.
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Menu entities
		&entity.Subcategory{},
		&entity.Item{},

		// Live order entities
		&entity.Order{},
		&entity.OrderLine{},

		// Settlement history entities
		&entity.HistoryBill{},
		&entity.HistoryLine{},

		// System entities
		&entity.User{},
		&entity.Printer{},
		&entity.Shop{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed")
	return nil
}

// SeedDefaultData creates the shop profile and an admin account when the
// database is empty. Credentials come from ADMIN_USERNAME / ADMIN_PASSWORD;
// without them no account is seeded.
func SeedDefaultData(db *gorm.DB) error {
	var shopCount int64
	if err := db.Model(&entity.Shop{}).Count(&shopCount).Error; err != nil {
		return err
	}
	if shopCount == 0 {
		shop := entity.Shop{
			Name:     viper.GetString("SHOP_NAME"),
			Currency: "$",
		}
		if shop.Name == "" {
			shop.Name = "Tavolo"
		}
		if err := db.Create(&shop).Error; err != nil {
			return fmt.Errorf("failed to seed shop profile: %w", err)
		}
		log.Printf("Seeded shop profile %q", shop.Name)
	}

	adminUsername := viper.GetString("ADMIN_USERNAME")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	if adminUsername == "" || adminPassword == "" {
		return nil
	}

	var existing entity.User
	if err := db.Where("username = ?", adminUsername).First(&existing).Error; err == nil {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := entity.User{
		Username: adminUsername,
		FullName: "Administrator",
		Password: string(hashed),
		Role:     enum.RoleAdmin,
		Active:   true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	log.Printf("Admin user created: %s", adminUsername)
	return nil
}
