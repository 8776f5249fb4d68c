package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jacmel/storefront-backend/api/controllers"
	cartcontrollers "github.com/jacmel/storefront-backend/api/controllers/cart"
	"github.com/jacmel/storefront-backend/api/middleware"
	"github.com/jacmel/storefront-backend/internal/cart"
	"github.com/jacmel/storefront-backend/internal/catalog"
	checkoutsvc "github.com/jacmel/storefront-backend/internal/checkout"
	"github.com/jacmel/storefront-backend/internal/media"
	"github.com/jacmel/storefront-backend/internal/settings"
	"github.com/jacmel/storefront-backend/pkg/config"
	"github.com/jacmel/storefront-backend/pkg/logger"
	"github.com/jacmel/storefront-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	store controllers.Pinger,
	gatherer prometheus.Gatherer,
	recorder *metrics.StorefrontMetrics,
	catalogService catalog.Service,
	settingsService settings.Service,
	cartService cart.Service,
	checkoutService checkoutsvc.Service,
	mediaService media.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg, recorder),
		middleware.CORS(cfg.Storefront.AllowedOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, store))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/settings", controllers.SettingsFetch(settingsService, logg))

		r.Route("/menu", func(r chi.Router) {
			r.Get("/", controllers.MenuSections(catalogService, logg))
			r.Get("/featured", controllers.MenuFeatured(catalogService, logg))
			r.Get("/drinks", controllers.MenuDrinks(catalogService, logg))
			r.Get("/options", controllers.SideOptions(catalogService, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Session(logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cartcontrollers.CartFetch(cartService, logg))
				r.Post("/items", cartcontrollers.CartAddItems(cartService, logg))
				r.Patch("/lines/{lineId}", cartcontrollers.CartUpdateLine(cartService, logg))
				r.Delete("/lines/{lineId}", cartcontrollers.CartRemoveLine(cartService, logg))
				r.Delete("/", cartcontrollers.CartClear(cartService, logg))
				r.Post("/quote", controllers.CartQuote(checkoutService, logg))
			})

			r.Post("/checkout", controllers.Checkout(checkoutService, logg))
			r.Post("/checkout/receipt", controllers.CheckoutReceipt(checkoutService, logg))
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Get("/menu", controllers.AdminMenuList(catalogService, logg))
		r.Post("/menu", controllers.AdminMenuCreate(catalogService, logg))
		r.Put("/menu/{entryId}", controllers.AdminMenuUpdate(catalogService, logg))
		r.Delete("/menu/{entryId}", controllers.AdminMenuDelete(catalogService, logg))
		r.Put("/settings", controllers.AdminSettingsUpdate(settingsService, logg))
		r.Post("/media", controllers.AdminMediaUpload(mediaService, logg))
	})

	return r
}
