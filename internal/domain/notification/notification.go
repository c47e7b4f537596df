package notification

import (
	"fmt"
	"time"

	vo "github.com/huddle-inc/huddle/internal/domain/notification/valueobjects"
)

const (
	maxTitleLength = 200
	maxBodyLength  = 5000
)

// Notification is the inbox entry aggregate. Every outbound notification is
// durably recorded here before any delivery decision is made; the stored
// fields never change after creation except the one-way readAt and
// archivedAt transitions.
type Notification struct {
	id          uint
	sid         string
	groupID     uint
	recipientID uint
	actorID     *uint
	notifType   vo.NotificationType
	title       string
	body        string
	deepLink    *string
	data        map[string]any
	batchKey    string
	readAt      *time.Time
	archivedAt  *time.Time
	createdAt   time.Time
}

func NewNotification(
	sid string,
	groupID uint,
	recipientID uint,
	actorID *uint,
	notifType vo.NotificationType,
	title string,
	body string,
	deepLink *string,
	data map[string]any,
	batchKey string,
) (*Notification, error) {
	if sid == "" {
		return nil, fmt.Errorf("notification SID is required")
	}
	if groupID == 0 {
		return nil, fmt.Errorf("group ID is required")
	}
	if recipientID == 0 {
		return nil, fmt.Errorf("recipient ID is required")
	}
	// Unrecognized types are accepted: they flow through the pipeline with
	// the default activity threshold rather than being rejected.
	if notifType == "" {
		return nil, fmt.Errorf("notification type is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("body is required")
	}
	if len(body) > maxBodyLength {
		return nil, fmt.Errorf("body exceeds maximum length of %d characters", maxBodyLength)
	}
	if batchKey == "" {
		return nil, fmt.Errorf("batch key is required")
	}

	if data == nil {
		data = make(map[string]any)
	}

	return &Notification{
		sid:         sid,
		groupID:     groupID,
		recipientID: recipientID,
		actorID:     actorID,
		notifType:   notifType,
		title:       title,
		body:        body,
		deepLink:    deepLink,
		data:        data,
		batchKey:    batchKey,
		createdAt:   time.Now().UTC(),
	}, nil
}

// ReconstructNotification rebuilds a notification from persistence.
func ReconstructNotification(
	id uint,
	sid string,
	groupID uint,
	recipientID uint,
	actorID *uint,
	notifType vo.NotificationType,
	title string,
	body string,
	deepLink *string,
	data map[string]any,
	batchKey string,
	readAt *time.Time,
	archivedAt *time.Time,
	createdAt time.Time,
) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	if sid == "" {
		return nil, fmt.Errorf("notification SID is required")
	}
	if groupID == 0 {
		return nil, fmt.Errorf("group ID is required")
	}
	if recipientID == 0 {
		return nil, fmt.Errorf("recipient ID is required")
	}
	if notifType == "" {
		return nil, fmt.Errorf("notification type is required")
	}

	if data == nil {
		data = make(map[string]any)
	}

	return &Notification{
		id:          id,
		sid:         sid,
		groupID:     groupID,
		recipientID: recipientID,
		actorID:     actorID,
		notifType:   notifType,
		title:       title,
		body:        body,
		deepLink:    deepLink,
		data:        data,
		batchKey:    batchKey,
		readAt:      readAt,
		archivedAt:  archivedAt,
		createdAt:   createdAt,
	}, nil
}

func (n *Notification) ID() uint {
	return n.id
}

func (n *Notification) SID() string {
	return n.sid
}

func (n *Notification) GroupID() uint {
	return n.groupID
}

func (n *Notification) RecipientID() uint {
	return n.recipientID
}

func (n *Notification) ActorID() *uint {
	return n.actorID
}

func (n *Notification) Type() vo.NotificationType {
	return n.notifType
}

func (n *Notification) Title() string {
	return n.title
}

func (n *Notification) Body() string {
	return n.body
}

func (n *Notification) DeepLink() *string {
	return n.deepLink
}

func (n *Notification) Data() map[string]any {
	return n.data
}

func (n *Notification) BatchKey() string {
	return n.batchKey
}

func (n *Notification) ReadAt() *time.Time {
	return n.readAt
}

func (n *Notification) ArchivedAt() *time.Time {
	return n.archivedAt
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// SetID sets the notification ID (only for persistence layer use)
func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

func (n *Notification) IsRead() bool {
	return n.readAt != nil
}

func (n *Notification) IsArchived() bool {
	return n.archivedAt != nil
}

// MarkAsRead records the read timestamp. The transition is one way: calling
// it again is a no-op and never overwrites the original timestamp.
func (n *Notification) MarkAsRead() error {
	if n.readAt != nil {
		return nil
	}

	now := time.Now().UTC()
	n.readAt = &now
	return nil
}

// Archive records the archive timestamp, one way like MarkAsRead.
func (n *Notification) Archive() error {
	if n.archivedAt != nil {
		return fmt.Errorf("notification is already archived")
	}

	now := time.Now().UTC()
	n.archivedAt = &now
	return nil
}
