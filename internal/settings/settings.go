package settings

import (
	"strings"
	"unicode"

	"github.com/jacmel/storefront-backend/pkg/config"
	"github.com/shopspring/decimal"
)

// Settings is the single storefront settings record.
type Settings struct {
	Name           string          `json:"name"`
	ContactNumber  string          `json:"contact_number"`
	WelcomeMessage string          `json:"welcome_message"`
	DeliveryFee    decimal.Decimal `json:"delivery_fee"`
	Logo           string          `json:"logo,omitempty"`
}

// Defaults builds the record served before an admin saves one.
func Defaults(cfg config.StorefrontConfig) Settings {
	return Settings{
		Name:           cfg.BusinessName,
		ContactNumber:  cfg.ContactNumber,
		WelcomeMessage: cfg.WelcomeMessage,
		DeliveryFee:    cfg.DeliveryFeeAmount(),
	}
}

// ContactDigits strips everything but digits from the contact number.
func (s Settings) ContactDigits() string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) && r <= unicode.MaxASCII {
			return r
		}
		return -1
	}, s.ContactNumber)
}
