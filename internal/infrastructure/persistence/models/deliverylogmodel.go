package models

import (
	"time"

	"github.com/huddle-inc/huddle/internal/shared/constants"
)

// DeliveryLogModel rows are append-only: there is no update path and no
// soft delete, only the retention sweeper's hard prune by age.
type DeliveryLogModel struct {
	ID                uint      `gorm:"primaryKey"`
	SID               string    `gorm:"uniqueIndex;not null;size:32"`
	NotificationID    uint      `gorm:"not null;index"`
	Channel           string    `gorm:"size:20;not null"`
	Status            string    `gorm:"size:20;not null"`
	ProviderMessageID *string   `gorm:"size:128"`
	Reason            *string   `gorm:"size:500"`
	CreatedAt         time.Time `gorm:"index"`
}

func (DeliveryLogModel) TableName() string {
	return constants.TableDeliveryLogs
}
