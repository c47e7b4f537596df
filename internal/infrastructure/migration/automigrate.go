package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/huddle-inc/huddle/internal/infrastructure/persistence/models"
)

// AutoMigrate syncs the schema from the model structs. Development only;
// production environments run the versioned scripts instead.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.NotificationModel{},
		&models.NotificationPreferenceModel{},
		&models.DeliveryLogModel{},
		&models.SubscriptionModel{},
	); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}
	return nil
}
