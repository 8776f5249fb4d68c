package cart

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jacmel/storefront-backend/api/middleware"
	"github.com/jacmel/storefront-backend/api/responses"
	"github.com/jacmel/storefront-backend/api/validators"
	cartsvc "github.com/jacmel/storefront-backend/internal/cart"
	pkgerrors "github.com/jacmel/storefront-backend/pkg/errors"
	"github.com/jacmel/storefront-backend/pkg/logger"
)

// CartFetch returns the session's cart.
func CartFetch(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		c, err := svc.Get(r.Context(), middleware.SessionIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, NewCartView(c))
	}
}

// CartAddItems adds a dish and/or drinks to the session's cart.
func CartAddItems(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload AddItemsRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		c, err := svc.AddItems(r.Context(), middleware.SessionIDFromContext(r.Context()), toAddItemsInput(payload))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, NewCartView(c))
	}
}

// CartUpdateLine changes a line's quantity by the requested delta.
func CartUpdateLine(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload UpdateLineRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		c, err := svc.UpdateQuantity(r.Context(), middleware.SessionIDFromContext(r.Context()), lineIDParam(r), payload.Delta)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, NewCartView(c))
	}
}

// CartRemoveLine drops a line from the cart.
func CartRemoveLine(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		c, err := svc.RemoveLine(r.Context(), middleware.SessionIDFromContext(r.Context()), lineIDParam(r))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, NewCartView(c))
	}
}

// CartClear empties the cart.
func CartClear(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		c, err := svc.Clear(r.Context(), middleware.SessionIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, NewCartView(c))
	}
}

func lineIDParam(r *http.Request) string {
	return strings.TrimSpace(chi.URLParam(r, "lineId"))
}
