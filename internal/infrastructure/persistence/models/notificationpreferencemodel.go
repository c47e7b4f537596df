package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/huddle-inc/huddle/internal/shared/constants"
)

type NotificationPreferenceModel struct {
	ID                uint `gorm:"primaryKey"`
	RecipientID       uint `gorm:"not null;uniqueIndex:idx_recipient_group_pref,priority:1"`
	GroupID           uint `gorm:"not null;uniqueIndex:idx_recipient_group_pref,priority:2"`
	InAppEnabled      bool `gorm:"not null;default:true"`
	PushEnabled       bool `gorm:"not null;default:true"`
	CategoryOverrides datatypes.JSON
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (NotificationPreferenceModel) TableName() string {
	return constants.TableNotificationPreferences
}
