package dto

import (
	"github.com/huddle-inc/huddle/internal/domain/notification"
	vo "github.com/huddle-inc/huddle/internal/domain/notification/valueobjects"
	"github.com/huddle-inc/huddle/internal/shared/mapper"
)

type MarkdownService interface {
	ToHTMLSanitized(markdown string) (string, error)
}

func ToNotificationResponse(n *notification.Notification, markdownSvc MarkdownService) (*NotificationResponse, error) {
	if n == nil {
		return nil, nil
	}

	bodyHTML := ""
	if markdownSvc != nil {
		html, err := markdownSvc.ToHTMLSanitized(n.Body())
		if err == nil {
			bodyHTML = html
		}
	}

	return &NotificationResponse{
		ID:         n.SID(),
		InternalID: n.ID(),
		Type:       n.Type().String(),
		Title:      n.Title(),
		Body:       n.Body(),
		BodyHTML:   bodyHTML,
		DeepLink:   n.DeepLink(),
		Data:       n.Data(),
		ActorID:    n.ActorID(),
		IsRead:     n.IsRead(),
		ReadAt:     n.ReadAt(),
		ArchivedAt: n.ArchivedAt(),
		CreatedAt:  n.CreatedAt(),
	}, nil
}

func ToNotificationResponseList(notifications []*notification.Notification, markdownSvc MarkdownService) ([]*NotificationResponse, error) {
	return mapper.MapSliceWithError(notifications, func(n *notification.Notification) (*NotificationResponse, error) {
		return ToNotificationResponse(n, markdownSvc)
	})
}

func ToPreferencesResponse(p *notification.Preferences) *PreferencesResponse {
	if p == nil {
		return nil
	}

	overrides := make(map[string]bool, len(p.CategoryOverrides()))
	for t, enabled := range p.CategoryOverrides() {
		overrides[t.String()] = enabled
	}

	return &PreferencesResponse{
		RecipientID:       p.RecipientID(),
		GroupID:           p.GroupID(),
		InAppEnabled:      p.InAppEnabled(),
		PushEnabled:       p.PushEnabled(),
		CategoryOverrides: overrides,
		UpdatedAt:         p.UpdatedAt(),
	}
}

// ParseCategoryOverrides converts request override keys into typed categories,
// dropping unknown type names rather than failing the whole update.
func ParseCategoryOverrides(raw map[string]bool) map[vo.NotificationType]bool {
	if raw == nil {
		return nil
	}

	overrides := make(map[vo.NotificationType]bool, len(raw))
	for name, enabled := range raw {
		t := vo.NotificationType(name)
		if t.IsValid() {
			overrides[t] = enabled
		}
	}
	return overrides
}
