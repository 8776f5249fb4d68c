package checkout

import (
	"strings"
	"unicode/utf8"

	"github.com/jacmel/storefront-backend/pkg/enums"
	pkgerrors "github.com/jacmel/storefront-backend/pkg/errors"
)

// MinAddressLength is the shortest trimmed delivery address accepted.
const MinAddressLength = 5

// ErrInvalidAddress blocks checkout when a delivery has no usable address.
var ErrInvalidAddress = pkgerrors.New(pkgerrors.CodeInvalidAddress, "Veuillez entrer une adresse de livraison valide.")

// DeliverySelection is the checkout-time fulfilment choice.
type DeliverySelection struct {
	Mode    enums.DeliveryMode `json:"mode"`
	Address string             `json:"address,omitempty"`
}

// IsDelivery reports whether the order is to be delivered.
func (d DeliverySelection) IsDelivery() bool {
	return d.Mode == enums.DeliveryModeDelivery
}

// ValidateCheckout is the only gate before an order is formatted.
func ValidateCheckout(selection DeliverySelection) error {
	if !selection.IsDelivery() {
		return nil
	}
	if utf8.RuneCountInString(strings.TrimSpace(selection.Address)) < MinAddressLength {
		return ErrInvalidAddress.WithDetails(map[string]any{"min_length": MinAddressLength})
	}
	return nil
}
