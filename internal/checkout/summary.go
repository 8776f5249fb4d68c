package checkout

import (
	"fmt"
	"strings"
	"time"

	"github.com/jacmel/storefront-backend/internal/cart"
	"github.com/jacmel/storefront-backend/internal/settings"
	"github.com/shopspring/decimal"
)

const (
	DefaultCurrency = "HTG"

	summaryRule  = "━━━━━━━━━━━━━━━"
	dateLayout   = "02/01/2006"
	timeLayout   = "15:04"
	keycapSuffix = "\uFE0F\u20E3"
)

// SummaryLine is one enumerated order line.
type SummaryLine struct {
	Position  int             `json:"position"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Options   []string        `json:"options,omitempty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// OrderSummary holds everything the chat message and the receipt print.
// Both renderings read the same values.
type OrderSummary struct {
	BusinessName string            `json:"business_name"`
	Lines        []SummaryLine     `json:"lines"`
	Selection    DeliverySelection `json:"selection"`
	Totals       OrderTotals       `json:"totals"`
	Currency     string            `json:"currency"`
	PlacedAt     time.Time         `json:"placed_at"`
}

// FormatOrderSummary captures the order as of now. now should already be in
// the storefront's time zone.
func FormatOrderSummary(c cart.Cart, store settings.Settings, totals OrderTotals, selection DeliverySelection, now time.Time) OrderSummary {
	lines := make([]SummaryLine, 0, len(c.Lines))
	for i, line := range c.Lines {
		var options []string
		if len(line.SelectedOptions) > 0 {
			options = append([]string(nil), line.SelectedOptions...)
		}
		lines = append(lines, SummaryLine{
			Position:  i + 1,
			Name:      line.Name,
			Quantity:  line.Quantity,
			Options:   options,
			UnitPrice: line.Price,
			LineTotal: line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))),
		})
	}
	selection.Address = strings.TrimSpace(selection.Address)
	if !selection.IsDelivery() {
		selection.Address = ""
	}
	return OrderSummary{
		BusinessName: store.Name,
		Lines:        lines,
		Selection:    selection,
		Totals:       totals,
		Currency:     DefaultCurrency,
		PlacedAt:     now,
	}
}

func (s OrderSummary) Date() string { return s.PlacedAt.Format(dateLayout) }

func (s OrderSummary) Time() string { return s.PlacedAt.Format(timeLayout) }

func (s OrderSummary) ModeLabel() string {
	if s.Selection.IsDelivery() {
		return "Livraison"
	}
	return "À emporter"
}

// Money formats an amount with the order currency.
func (s OrderSummary) Money(amount decimal.Decimal) string {
	currency := s.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	return amount.String() + " " + currency
}

// Text renders the chat message.
func (s OrderSummary) Text() string {
	var b strings.Builder
	b.WriteString("🍽️ *NOUVELLE COMMANDE*\n")
	fmt.Fprintf(&b, "📍 %s\n\n", s.BusinessName)
	b.WriteString("📋 *Détails de la commande:*\n\n")

	for _, line := range s.Lines {
		fmt.Fprintf(&b, "%d%s *%s* × %d\n", line.Position, keycapSuffix, line.Name, line.Quantity)
		for _, option := range line.Options {
			fmt.Fprintf(&b, "   _+ %s_\n", option)
		}
		fmt.Fprintf(&b, "   Prix unitaire: %s\n", s.Money(line.UnitPrice))
		fmt.Fprintf(&b, "   Sous-total: %s\n\n", s.Money(line.LineTotal))
	}

	b.WriteString(summaryRule + "\n")
	if s.Selection.IsDelivery() {
		b.WriteString("🛵 *MODE: LIVRAISON*\n")
		fmt.Fprintf(&b, "📍 Adresse: %s\n", s.Selection.Address)
		fmt.Fprintf(&b, "📦 Frais: %s\n", s.Money(s.Totals.DeliveryFee))
	} else {
		b.WriteString("🛍️ *MODE: À EMPORTER*\n")
	}
	b.WriteString(summaryRule + "\n")
	fmt.Fprintf(&b, "💰 *TOTAL FINAL: %s*\n", s.Money(s.Totals.Total))
	b.WriteString(summaryRule + "\n\n")

	fmt.Fprintf(&b, "📅 Date: %s\n", s.Date())
	fmt.Fprintf(&b, "🕐 Heure: %s\n", s.Time())
	return b.String()
}
