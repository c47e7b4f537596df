package valueobjects

import "fmt"

type DeliveryStatus string

const (
	DeliveryStatusSent    DeliveryStatus = "sent"
	DeliveryStatusSkipped DeliveryStatus = "skipped"
	DeliveryStatusFailed  DeliveryStatus = "failed"
)

var validDeliveryStatuses = map[DeliveryStatus]bool{
	DeliveryStatusSent:    true,
	DeliveryStatusSkipped: true,
	DeliveryStatusFailed:  true,
}

func (s DeliveryStatus) String() string {
	return string(s)
}

func (s DeliveryStatus) IsValid() bool {
	return validDeliveryStatuses[s]
}

func NewDeliveryStatus(str string) (DeliveryStatus, error) {
	s := DeliveryStatus(str)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid delivery status: %s", str)
	}
	return s, nil
}
