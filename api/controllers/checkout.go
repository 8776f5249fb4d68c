package controllers

import (
	"net/http"

	"github.com/jacmel/storefront-backend/api/controllers/cart"
	"github.com/jacmel/storefront-backend/api/middleware"
	"github.com/jacmel/storefront-backend/api/responses"
	"github.com/jacmel/storefront-backend/api/validators"
	"github.com/jacmel/storefront-backend/internal/checkout"
	"github.com/jacmel/storefront-backend/pkg/enums"
	pkgerrors "github.com/jacmel/storefront-backend/pkg/errors"
	"github.com/jacmel/storefront-backend/pkg/logger"
)

// DeliveryRequest carries the fulfilment choice made at checkout.
type DeliveryRequest struct {
	Mode    string `json:"mode" validate:"omitempty,oneof=pickup delivery"`
	Address string `json:"address" validate:"max=500"`
}

func (d DeliveryRequest) selection() (checkout.DeliverySelection, error) {
	mode, err := enums.ParseDeliveryMode(d.Mode)
	if err != nil {
		return checkout.DeliverySelection{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid delivery mode")
	}
	return checkout.DeliverySelection{Mode: mode, Address: d.Address}, nil
}

type quoteResponse struct {
	Cart   cart.CartView        `json:"cart"`
	Totals checkout.OrderTotals `json:"totals"`
}

type checkoutResponse struct {
	Link    string               `json:"link"`
	Message string               `json:"message"`
	Totals  checkout.OrderTotals `json:"totals"`
}

// CartQuote prices the session's cart for a delivery choice.
func CartQuote(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		selection, err := decodeSelection(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		quote, err := svc.Quote(r.Context(), middleware.SessionIDFromContext(r.Context()), selection)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, quoteResponse{Cart: cart.NewCartView(quote.Cart), Totals: quote.Totals})
	}
}

// Checkout builds the order message and chat deep link, then empties the cart.
func Checkout(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		selection, err := decodeSelection(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Checkout(r.Context(), middleware.SessionIDFromContext(r.Context()), selection)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, checkoutResponse{
			Link:    result.Link,
			Message: result.Message,
			Totals:  result.Summary.Totals,
		})
	}
}

// CheckoutReceipt renders the printable HTML receipt for the current cart.
func CheckoutReceipt(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		selection, err := decodeSelection(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		body, err := svc.Receipt(r.Context(), middleware.SessionIDFromContext(r.Context()), selection)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteHTML(w, http.StatusOK, body)
	}
}

func decodeSelection(r *http.Request) (checkout.DeliverySelection, error) {
	var payload DeliveryRequest
	if err := validators.DecodeJSONBody(r, &payload); err != nil {
		return checkout.DeliverySelection{}, err
	}
	return payload.selection()
}
