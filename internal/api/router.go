package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/spfbase/payments/docs" // swagger docs

	"github.com/spfbase/payments/internal/entity"
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)
		r.HandleFunc("/swagger/*", httpSwagger.Handler())

		r.Route("/services", func(r chi.Router) {
			r.Get("/", h.Services)
			r.Get("/{id}", h.Service)

			r.Group(func(r chi.Router) {
				r.Use(mw.BearerAuth, mw.RequirePermission(entity.PermissionServiceControl))
				r.Post("/", h.CreateService)
				r.Patch("/{id}", h.EditService)
				r.Delete("/{id}", h.DeleteService)
			})
		})

		r.Route("/payments", func(r chi.Router) {
			// The unguessable payment id is the only credential a buyer has,
			// so the checkout redirect and the receipt image stay open.
			r.Get("/{id}/checkout", h.Checkout)
			r.Get("/{id}/receipt.png", h.ReceiptPNG)

			r.Group(func(r chi.Router) {
				r.Use(mw.BearerAuth, mw.RequirePermission(entity.PermissionPaymentControl))
				r.Post("/", h.CreatePayment)
				r.Get("/", h.Payments)
				r.Get("/{id}", h.Payment)
				r.Patch("/{id}", h.EditPayment)
				r.Delete("/{id}", h.DeletePayment)
			})
		})

		r.Route("/callbacks", func(r chi.Router) {
			// The gateway proves itself with the SHA-1 signature inside the
			// form body; the API key (off by default) additionally fences the
			// route when a fronting proxy injects one.
			r.Use(mw.APIKeyAuth)
			r.Post("/gateway", h.GatewayWebhook)
		})
	})

	return mux
}
