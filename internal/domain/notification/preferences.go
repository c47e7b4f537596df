package notification

import (
	"fmt"
	"time"

	vo "github.com/huddle-inc/huddle/internal/domain/notification/valueobjects"
)

// Preferences holds a recipient's per-group delivery opt-ins. A missing
// record is not an error anywhere in the pipeline: DefaultPreferences is
// used instead, so recipients are fully opted in until they say otherwise.
type Preferences struct {
	recipientID       uint
	groupID           uint
	inAppEnabled      bool
	pushEnabled       bool
	categoryOverrides map[vo.NotificationType]bool
	updatedAt         time.Time
}

// DefaultPreferences returns the opt-in defaults used when no stored record
// exists for the (recipient, group) pair.
func DefaultPreferences(recipientID, groupID uint) *Preferences {
	return &Preferences{
		recipientID:       recipientID,
		groupID:           groupID,
		inAppEnabled:      true,
		pushEnabled:       true,
		categoryOverrides: make(map[vo.NotificationType]bool),
		updatedAt:         time.Now().UTC(),
	}
}

func NewPreferences(recipientID, groupID uint, inAppEnabled, pushEnabled bool, overrides map[vo.NotificationType]bool) (*Preferences, error) {
	if recipientID == 0 {
		return nil, fmt.Errorf("recipient ID is required")
	}
	if groupID == 0 {
		return nil, fmt.Errorf("group ID is required")
	}

	if overrides == nil {
		overrides = make(map[vo.NotificationType]bool)
	}

	return &Preferences{
		recipientID:       recipientID,
		groupID:           groupID,
		inAppEnabled:      inAppEnabled,
		pushEnabled:       pushEnabled,
		categoryOverrides: overrides,
		updatedAt:         time.Now().UTC(),
	}, nil
}

func ReconstructPreferences(recipientID, groupID uint, inAppEnabled, pushEnabled bool, overrides map[vo.NotificationType]bool, updatedAt time.Time) *Preferences {
	if overrides == nil {
		overrides = make(map[vo.NotificationType]bool)
	}
	return &Preferences{
		recipientID:       recipientID,
		groupID:           groupID,
		inAppEnabled:      inAppEnabled,
		pushEnabled:       pushEnabled,
		categoryOverrides: overrides,
		updatedAt:         updatedAt,
	}
}

func (p *Preferences) RecipientID() uint {
	return p.recipientID
}

func (p *Preferences) GroupID() uint {
	return p.groupID
}

func (p *Preferences) InAppEnabled() bool {
	return p.inAppEnabled
}

func (p *Preferences) PushEnabled() bool {
	return p.pushEnabled
}

func (p *Preferences) CategoryOverrides() map[vo.NotificationType]bool {
	return p.categoryOverrides
}

func (p *Preferences) UpdatedAt() time.Time {
	return p.updatedAt
}

// AllowsCategory reports whether the given type is enabled. Types without an
// override are allowed; overrides only restrict.
func (p *Preferences) AllowsCategory(t vo.NotificationType) bool {
	if enabled, ok := p.categoryOverrides[t]; ok {
		return enabled
	}
	return true
}

// OptedOut reports whether both delivery channels are disabled.
func (p *Preferences) OptedOut() bool {
	return !p.inAppEnabled && !p.pushEnabled
}

func (p *Preferences) SetInAppEnabled(enabled bool) {
	p.inAppEnabled = enabled
	p.updatedAt = time.Now().UTC()
}

func (p *Preferences) SetPushEnabled(enabled bool) {
	p.pushEnabled = enabled
	p.updatedAt = time.Now().UTC()
}

func (p *Preferences) SetCategoryOverride(t vo.NotificationType, enabled bool) {
	p.categoryOverrides[t] = enabled
	p.updatedAt = time.Now().UTC()
}
