package models

import (
	"time"

	"github.com/huddle-inc/huddle/internal/shared/constants"
)

type SubscriptionModel struct {
	ID                     uint   `gorm:"primaryKey"`
	GroupID                uint   `gorm:"not null;index:idx_group_status,priority:1"`
	Status                 string `gorm:"size:30;not null;index:idx_group_status,priority:2"`
	Tier                   string `gorm:"size:30;not null"`
	CurrentPeriodEnd       *time.Time
	CancelAtPeriodEnd      bool   `gorm:"not null;default:false"`
	Provider               string `gorm:"size:50"`
	ProviderSubscriptionID string `gorm:"size:128;index"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}
