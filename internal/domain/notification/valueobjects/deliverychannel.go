package valueobjects

import "fmt"

type DeliveryChannel string

const (
	DeliveryChannelInApp DeliveryChannel = "in_app"
	DeliveryChannelPush  DeliveryChannel = "push"
)

var validDeliveryChannels = map[DeliveryChannel]bool{
	DeliveryChannelInApp: true,
	DeliveryChannelPush:  true,
}

func (c DeliveryChannel) String() string {
	return string(c)
}

func (c DeliveryChannel) IsValid() bool {
	return validDeliveryChannels[c]
}

func NewDeliveryChannel(s string) (DeliveryChannel, error) {
	c := DeliveryChannel(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid delivery channel: %s", s)
	}
	return c, nil
}
