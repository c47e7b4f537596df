package dto

import (
	"time"
)

type NotifyRequest struct {
	GroupID     uint           `json:"group_id" binding:"required"`
	RecipientID uint           `json:"recipient_id" binding:"required"`
	ActorID     *uint          `json:"actor_id"`
	Type        string         `json:"type" binding:"required"`
	Title       string         `json:"title" binding:"required,max=200"`
	Body        string         `json:"body" binding:"required"`
	DeepLink    *string        `json:"deep_link"`
	Data        map[string]any `json:"data"`
}

type NotifyManyRequest struct {
	GroupID      uint           `json:"group_id" binding:"required"`
	RecipientIDs []uint         `json:"recipient_ids" binding:"required,min=1"`
	ActorID      *uint          `json:"actor_id"`
	Type         string         `json:"type" binding:"required"`
	Title        string         `json:"title" binding:"required,max=200"`
	Body         string         `json:"body" binding:"required"`
	DeepLink     *string        `json:"deep_link"`
	Data         map[string]any `json:"data"`
}

type ListNotificationsRequest struct {
	RecipientID uint
	GroupID     uint
	Limit       int
	Offset      int
	Status      string `json:"status" binding:"omitempty,oneof=read unread"`
}

type UpdatePreferencesRequest struct {
	InAppEnabled      *bool           `json:"in_app_enabled"`
	PushEnabled       *bool           `json:"push_enabled"`
	CategoryOverrides map[string]bool `json:"category_overrides"`
}

type NotificationResponse struct {
	ID         string         `json:"id"`
	InternalID uint           `json:"-"`
	Type       string         `json:"type"`
	Title      string         `json:"title"`
	Body       string         `json:"body"`
	BodyHTML   string         `json:"body_html"`
	DeepLink   *string        `json:"deep_link,omitempty"`
	Data       map[string]any `json:"data,omitempty"`
	ActorID    *uint          `json:"actor_id,omitempty"`
	IsRead     bool           `json:"is_read"`
	ReadAt     *time.Time     `json:"read_at,omitempty"`
	ArchivedAt *time.Time     `json:"archived_at,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

type NotifyManyResponse struct {
	Delivered []*NotificationResponse `json:"delivered"`
	Failed    []NotifyFailure         `json:"failed,omitempty"`
}

type NotifyFailure struct {
	RecipientID uint   `json:"recipient_id"`
	Error       string `json:"error"`
}

type PreferencesResponse struct {
	RecipientID       uint            `json:"recipient_id"`
	GroupID           uint            `json:"group_id"`
	InAppEnabled      bool            `json:"in_app_enabled"`
	PushEnabled       bool            `json:"push_enabled"`
	CategoryOverrides map[string]bool `json:"category_overrides"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

type ListResponse struct {
	Items  interface{} `json:"items"`
	Total  int64       `json:"total"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}
