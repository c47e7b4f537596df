package valueobjects

import (
	"fmt"
	"time"
)

type NotificationType string

const (
	NotificationTypeDirectMessage   NotificationType = "direct_message"
	NotificationTypeMilestone       NotificationType = "milestone"
	NotificationTypeKudosSent       NotificationType = "kudos_sent"
	NotificationTypeTodoAssigned    NotificationType = "todo_assigned"
	NotificationTypeTodoNudge       NotificationType = "todo_nudge"
	NotificationTypeTodoCompleted   NotificationType = "todo_completed"
	NotificationTypeEventCreated    NotificationType = "event_created"
	NotificationTypeEventReminder   NotificationType = "event_reminder"
	NotificationTypeEventChanged    NotificationType = "event_changed"
	NotificationTypeAchievement     NotificationType = "achievement"
	NotificationTypeLimitAlert      NotificationType = "limit_alert"
	NotificationTypeSurveyCreated   NotificationType = "survey_created"
	NotificationTypeMemberJoined    NotificationType = "member_joined"
	NotificationTypeMemberInvited   NotificationType = "member_invited"
	NotificationTypeSettingsChanged NotificationType = "settings_changed"
)

var validNotificationTypes = map[NotificationType]bool{
	NotificationTypeDirectMessage:   true,
	NotificationTypeMilestone:       true,
	NotificationTypeKudosSent:       true,
	NotificationTypeTodoAssigned:    true,
	NotificationTypeTodoNudge:       true,
	NotificationTypeTodoCompleted:   true,
	NotificationTypeEventCreated:    true,
	NotificationTypeEventReminder:   true,
	NotificationTypeEventChanged:    true,
	NotificationTypeAchievement:     true,
	NotificationTypeLimitAlert:      true,
	NotificationTypeSurveyCreated:   true,
	NotificationTypeMemberJoined:    true,
	NotificationTypeMemberInvited:   true,
	NotificationTypeSettingsChanged: true,
}

// DefaultActivityThreshold applies to any type missing from the threshold
// table. Unknown types are not an error; they fall back to this value.
const DefaultActivityThreshold = 120 * time.Second

// activityThresholds maps each notification type to the presence window used
// by the delivery decision: a recipient seen within the window is treated as
// active and receives the notification in-app instead of via push. The values
// are per-type constants, not tenant configuration.
var activityThresholds = map[NotificationType]time.Duration{
	NotificationTypeDirectMessage:   300 * time.Second,
	NotificationTypeMilestone:       300 * time.Second,
	NotificationTypeKudosSent:       300 * time.Second,
	NotificationTypeTodoAssigned:    120 * time.Second,
	NotificationTypeTodoNudge:       60 * time.Second,
	NotificationTypeTodoCompleted:   180 * time.Second,
	NotificationTypeEventCreated:    120 * time.Second,
	NotificationTypeEventReminder:   60 * time.Second,
	NotificationTypeEventChanged:    120 * time.Second,
	NotificationTypeAchievement:     180 * time.Second,
	NotificationTypeLimitAlert:      60 * time.Second,
	NotificationTypeSurveyCreated:   120 * time.Second,
	NotificationTypeMemberJoined:    120 * time.Second,
	NotificationTypeMemberInvited:   120 * time.Second,
	NotificationTypeSettingsChanged: 120 * time.Second,
}

func (t NotificationType) String() string {
	return string(t)
}

func (t NotificationType) IsValid() bool {
	return validNotificationTypes[t]
}

// ActivityThreshold returns the presence window for this type.
func (t NotificationType) ActivityThreshold() time.Duration {
	if threshold, ok := activityThresholds[t]; ok {
		return threshold
	}
	return DefaultActivityThreshold
}

func NewNotificationType(s string) (NotificationType, error) {
	t := NotificationType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid notification type: %s", s)
	}
	return t, nil
}
