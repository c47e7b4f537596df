package notification

import (
	"fmt"
	"time"

	vo "github.com/huddle-inc/huddle/internal/domain/notification/valueobjects"
)

// DeliveryLog is one append-only row per (notification, channel) delivery
// attempt. Rows are never updated after insert; retries or channel changes
// produce new rows.
type DeliveryLog struct {
	id                uint
	sid               string
	notificationID    uint
	channel           vo.DeliveryChannel
	status            vo.DeliveryStatus
	providerMessageID *string
	reason            *string
	createdAt         time.Time
}

func NewDeliveryLog(
	sid string,
	notificationID uint,
	channel vo.DeliveryChannel,
	status vo.DeliveryStatus,
	providerMessageID *string,
	reason *string,
) (*DeliveryLog, error) {
	if sid == "" {
		return nil, fmt.Errorf("delivery log SID is required")
	}
	if notificationID == 0 {
		return nil, fmt.Errorf("notification ID is required")
	}
	if !channel.IsValid() {
		return nil, fmt.Errorf("invalid delivery channel: %s", channel)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid delivery status: %s", status)
	}

	return &DeliveryLog{
		sid:               sid,
		notificationID:    notificationID,
		channel:           channel,
		status:            status,
		providerMessageID: providerMessageID,
		reason:            reason,
		createdAt:         time.Now().UTC(),
	}, nil
}

func ReconstructDeliveryLog(
	id uint,
	sid string,
	notificationID uint,
	channel vo.DeliveryChannel,
	status vo.DeliveryStatus,
	providerMessageID *string,
	reason *string,
	createdAt time.Time,
) (*DeliveryLog, error) {
	if id == 0 {
		return nil, fmt.Errorf("delivery log ID cannot be zero")
	}
	if !channel.IsValid() {
		return nil, fmt.Errorf("invalid delivery channel: %s", channel)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid delivery status: %s", status)
	}

	return &DeliveryLog{
		id:                id,
		sid:               sid,
		notificationID:    notificationID,
		channel:           channel,
		status:            status,
		providerMessageID: providerMessageID,
		reason:            reason,
		createdAt:         createdAt,
	}, nil
}

func (d *DeliveryLog) ID() uint {
	return d.id
}

func (d *DeliveryLog) SID() string {
	return d.sid
}

func (d *DeliveryLog) NotificationID() uint {
	return d.notificationID
}

func (d *DeliveryLog) Channel() vo.DeliveryChannel {
	return d.channel
}

func (d *DeliveryLog) Status() vo.DeliveryStatus {
	return d.status
}

func (d *DeliveryLog) ProviderMessageID() *string {
	return d.providerMessageID
}

func (d *DeliveryLog) Reason() *string {
	return d.reason
}

func (d *DeliveryLog) CreatedAt() time.Time {
	return d.createdAt
}

// SetID sets the delivery log ID (only for persistence layer use)
func (d *DeliveryLog) SetID(id uint) error {
	if d.id != 0 {
		return fmt.Errorf("delivery log ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("delivery log ID cannot be zero")
	}
	d.id = id
	return nil
}
