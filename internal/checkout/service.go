package checkout

import (
	"bytes"
	"context"
	"time"

	"github.com/jacmel/storefront-backend/internal/cart"
	"github.com/jacmel/storefront-backend/internal/settings"
	pkgerrors "github.com/jacmel/storefront-backend/pkg/errors"
	"github.com/jacmel/storefront-backend/pkg/logger"
	"github.com/jacmel/storefront-backend/pkg/metrics"
)

type cartStore interface {
	Get(ctx context.Context, sessionID string) (cart.Cart, error)
	Clear(ctx context.Context, sessionID string) (cart.Cart, error)
}

type settingsReader interface {
	Get(ctx context.Context) (settings.Settings, error)
}

// Quote is the cart priced for a delivery choice.
type Quote struct {
	Cart      cart.Cart   `json:"cart"`
	ItemCount int         `json:"item_count"`
	Totals    OrderTotals `json:"totals"`
}

// Result is what checkout hands to the caller: the deep link to open and the
// message embedded in it.
type Result struct {
	Link    string       `json:"link"`
	Message string       `json:"message"`
	Summary OrderSummary `json:"summary"`
}

// Service prices, validates and hands off orders.
type Service interface {
	Quote(ctx context.Context, sessionID string, selection DeliverySelection) (Quote, error)
	Checkout(ctx context.Context, sessionID string, selection DeliverySelection) (Result, error)
	Receipt(ctx context.Context, sessionID string, selection DeliverySelection) ([]byte, error)
}

// ServiceParams groups dependencies for the checkout service.
type ServiceParams struct {
	Carts       cartStore
	Settings    settingsReader
	ChatBaseURL string
	Currency    string
	City        string
	Location    *time.Location
	Clock       func() time.Time
	Logger      *logger.Logger
	Metrics     *metrics.StorefrontMetrics
}

type service struct {
	carts    cartStore
	settings settingsReader
	chatURL  string
	currency string
	city     string
	loc      *time.Location
	now      func() time.Time
	logg     *logger.Logger
	metrics  *metrics.StorefrontMetrics
}

func NewService(params ServiceParams) (Service, error) {
	if params.Carts == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart service required")
	}
	if params.Settings == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "settings service required")
	}
	svc := &service{
		carts:    params.Carts,
		settings: params.Settings,
		chatURL:  params.ChatBaseURL,
		currency: params.Currency,
		city:     params.City,
		loc:      params.Location,
		now:      params.Clock,
		logg:     params.Logger,
		metrics:  params.Metrics,
	}
	if svc.chatURL == "" {
		svc.chatURL = DefaultChatBaseURL
	}
	if svc.currency == "" {
		svc.currency = DefaultCurrency
	}
	if svc.loc == nil {
		svc.loc = time.UTC
	}
	if svc.now == nil {
		svc.now = time.Now
	}
	if svc.logg == nil {
		svc.logg = logger.Nop()
	}
	return svc, nil
}

func (s *service) Quote(ctx context.Context, sessionID string, selection DeliverySelection) (Quote, error) {
	c, store, err := s.load(ctx, sessionID)
	if err != nil {
		return Quote{}, err
	}
	return Quote{
		Cart:      c,
		ItemCount: c.ItemCount(),
		Totals:    ComputeTotals(c, selection, store.DeliveryFee),
	}, nil
}

// Checkout validates and formats the order, then clears the cart whether or
// not the customer ever sends the message.
func (s *service) Checkout(ctx context.Context, sessionID string, selection DeliverySelection) (Result, error) {
	summary, store, err := s.summarize(ctx, sessionID, selection)
	if err != nil {
		return Result{}, err
	}

	message := summary.Text()
	link := BuildExternalOrderLinkWithBase(s.chatURL, message, store.ContactNumber)
	if store.ContactDigits() == "" {
		s.logg.Warn(ctx, "checkout.contact_number_has_no_digits")
	}

	if _, err := s.carts.Clear(ctx, sessionID); err != nil {
		s.logg.WarnErr(ctx, "checkout.clear_cart_failed", err)
	}
	s.metrics.ObserveCheckout(string(selection.Mode), summary.Totals.Total)
	s.logg.Info(s.logg.WithFields(ctx, map[string]any{
		"session_id": sessionID,
		"mode":       selection.Mode,
		"line_count": len(summary.Lines),
		"total":      summary.Totals.Total.String(),
	}), "checkout.link_generated")

	return Result{Link: link, Message: message, Summary: summary}, nil
}

// Receipt renders the printable receipt. The cart is left as is.
func (s *service) Receipt(ctx context.Context, sessionID string, selection DeliverySelection) ([]byte, error) {
	summary, _, err := s.summarize(ctx, sessionID, selection)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := RenderReceipt(&buf, summary, s.city); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "render receipt")
	}
	return buf.Bytes(), nil
}

func (s *service) summarize(ctx context.Context, sessionID string, selection DeliverySelection) (OrderSummary, settings.Settings, error) {
	if err := ValidateCheckout(selection); err != nil {
		return OrderSummary{}, settings.Settings{}, err
	}
	c, store, err := s.load(ctx, sessionID)
	if err != nil {
		return OrderSummary{}, settings.Settings{}, err
	}
	if c.IsEmpty() {
		return OrderSummary{}, settings.Settings{}, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	totals := ComputeTotals(c, selection, store.DeliveryFee)
	summary := FormatOrderSummary(c, store, totals, selection, s.now().In(s.loc))
	summary.Currency = s.currency
	return summary, store, nil
}

func (s *service) load(ctx context.Context, sessionID string) (cart.Cart, settings.Settings, error) {
	c, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return cart.Cart{}, settings.Settings{}, err
	}
	store, err := s.settings.Get(ctx)
	if err != nil {
		return cart.Cart{}, settings.Settings{}, err
	}
	return c, store, nil
}
