package http

import (
	"net/http"

	"github.com/agroandes/trazabilidad/internal/application"
	"github.com/agroandes/trazabilidad/internal/domain"
	"github.com/go-chi/chi/v5"
)

// Handler is the HTTP adapter entrypoint. Only the application service is
// held here to keep the adapter boundary clean.
type Handler struct {
	service *application.Service
}

func NewHandler(service *application.Service) *Handler {
	return &Handler{service: service}
}

// NewRouter registers all routes and the shared middleware stack. Role gates
// mirror the packhouse split: traceability staff run orders and production,
// dispatch staff run shipments, admins run everything including accounts.
func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(recoverMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.healthz)
	r.Get("/readyz", handler.readyz)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", handler.login)

		r.Group(func(r chi.Router) {
			r.Use(handler.authMiddleware)

			r.Post("/auth/logout", handler.logout)
			r.Get("/auth/me", handler.currentUser)
			r.Get("/dashboard", handler.dashboard)

			r.Group(func(r chi.Router) {
				r.Use(requireRoles(domain.RoleAdmin, domain.RoleTrazabilidad))

				r.Get("/reference-data", handler.referenceData)

				r.Route("/orders", func(r chi.Router) {
					r.Post("/", handler.createOrder)
					r.Get("/", handler.listOrders)
					r.Get("/pending", handler.listPendingOrders)
					r.Get("/{order_id}", handler.getOrder)
					r.Put("/{order_id}", handler.updateOrder)
					r.Delete("/{order_id}", handler.deleteOrder)
				})

				r.Route("/pallets", func(r chi.Router) {
					r.Post("/", handler.createPallet)
					r.Get("/", handler.listPallets)
					r.Get("/{numero}", handler.getPallet)
					r.Put("/{numero}", handler.updatePallet)
					r.Delete("/{numero}", handler.deletePallet)
				})

				r.Route("/reports", func(r chi.Router) {
					r.Get("/camera-balance", handler.cameraBalanceReport)
					r.Get("/shortfall", handler.shortfallReport)
					r.Get("/orders-by-week", handler.ordersByWeekReport)
					r.Get("/weeks", handler.availableWeeks)
					r.Get("/produced-totals", handler.producedTotalsReport)
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(requireRoles(domain.RoleAdmin, domain.RoleDispatch))

				r.Route("/dispatches", func(r chi.Router) {
					r.Post("/", handler.createDispatch)
					r.Get("/", handler.listDispatches)
					r.Get("/orders", handler.listDispatchableOrders)
					r.Get("/orders/{order_id}/pallets", handler.listDispatchablePallets)
					r.Get("/{dispatch_id}", handler.getDispatch)
					r.Put("/{dispatch_id}", handler.updateDispatch)
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(requireRoles(domain.RoleAdmin))

				r.Route("/users", func(r chi.Router) {
					r.Post("/", handler.createUser)
					r.Get("/", handler.listUsers)
					r.Put("/{user_id}", handler.updateUser)
					r.Put("/{user_id}/password", handler.changeUserPassword)
				})
			})
		})
	})

	return r
}
