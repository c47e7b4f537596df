package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/huddle-inc/huddle/internal/shared/constants"
)

type NotificationModel struct {
	ID          uint   `gorm:"primaryKey"`
	SID         string `gorm:"uniqueIndex;not null;size:32"`
	GroupID     uint   `gorm:"not null;index:idx_recipient_group,priority:2"`
	RecipientID uint   `gorm:"not null;index:idx_recipient_group,priority:1"`
	ActorID     *uint
	Type        string  `gorm:"size:50;not null"`
	Title       string  `gorm:"size:255;not null"`
	Body        string  `gorm:"type:longtext;not null"`
	DeepLink    *string `gorm:"size:500"`
	Data        datatypes.JSON
	BatchKey    string `gorm:"size:128;not null;index:idx_batch_key_created,priority:1"`
	ReadAt      *time.Time
	ArchivedAt  *time.Time
	CreatedAt   time.Time `gorm:"index:idx_batch_key_created,priority:2"`
	UpdatedAt   time.Time
}

func (NotificationModel) TableName() string {
	return constants.TableNotifications
}
