package initializers

import (
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/arun20071/arun-chaudhary-ecommerce/catalog"
	"github.com/arun20071/arun-chaudhary-ecommerce/models"
)

// SyncDatabase migrates the schema and seeds the static catalog.
// Existing product rows are left untouched; the catalog is reference
// data, not user state.
func SyncDatabase(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		return err
	}

	products := catalog.Products
	err = db.Clauses(clause.OnConflict{DoNothing: true}).Create(&products).Error
	if err != nil {
		return err
	}

	log.Println("Database synced successfully.")
	return nil
}
