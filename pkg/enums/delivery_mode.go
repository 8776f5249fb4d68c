package enums

import (
	"fmt"
	"strings"
)

// DeliveryMode is the checkout-time fulfilment choice.
type DeliveryMode string

const (
	DeliveryModePickup   DeliveryMode = "pickup"
	DeliveryModeDelivery DeliveryMode = "delivery"
)

var validDeliveryModes = []DeliveryMode{
	DeliveryModePickup,
	DeliveryModeDelivery,
}

// String implements fmt.Stringer.
func (m DeliveryMode) String() string {
	return string(m)
}

// IsValid reports whether the value is a known DeliveryMode.
func (m DeliveryMode) IsValid() bool {
	for _, candidate := range validDeliveryModes {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseDeliveryMode converts raw input into a DeliveryMode. Empty input means pickup.
func ParseDeliveryMode(value string) (DeliveryMode, error) {
	clean := strings.ToLower(strings.TrimSpace(value))
	if clean == "" {
		return DeliveryModePickup, nil
	}
	for _, candidate := range validDeliveryModes {
		if string(candidate) == clean {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid delivery mode %q", value)
}
