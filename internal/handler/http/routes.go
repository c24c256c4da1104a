package http

import (
	"net/http"

	"github.com/MKhiriev/asset-management/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.metrics != nil {
		router.Use(h.metrics.Middleware)
	}
	router.Use(middleware.Compress(5, "application/json"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}
	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/v1", func(r chi.Router) {
		// routes without authorization
		r.Post("/auth/login", h.login)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Post("/auth/first-change-password", h.firstChangePassword)
			r.Post("/auth/change-password", h.changePassword)

			r.Get("/assignments/me", h.getMyAssignments)
			r.Get("/assignments/{id}", h.getAssignment)
			r.Put("/assignments/{id}/respond", h.respondAssignment)
			r.Post("/assignments/{id}/returning-request", h.createReturningRequest)

			r.Group(func(r chi.Router) {
				r.Use(h.requireRole(models.RoleAdmin))

				r.Route("/users", func(r chi.Router) {
					r.Post("/", h.createUser)
					r.Get("/", h.getUsers)
					r.Get("/assignment", h.getUsersForAssignment)
					r.Post("/generate-username", h.generateUsername)
					r.Get("/{id}", h.getUser)
					r.Put("/{id}", h.editUser)
					r.Delete("/{id}", h.disableUser)
					r.Get("/{id}/current-assignment", h.existsCurrentAssignment)
				})

				r.Get("/locations", h.getLocations)
				r.Get("/categories", h.getCategories)
				r.Post("/categories", h.createCategory)

				r.Route("/assets", func(r chi.Router) {
					r.Post("/", h.createAsset)
					r.Get("/", h.getAssets)
					r.Get("/{id}", h.getAsset)
					r.Get("/{id}/history", h.getAssetHistory)
					r.Put("/{id}", h.editAsset)
					r.Delete("/{id}", h.deleteAsset)
				})

				r.Post("/assignments", h.createAssignment)
				r.Get("/assignments", h.getAssignments)
				r.Put("/assignments/{id}", h.editAssignment)
				r.Delete("/assignments/{id}", h.deleteAssignment)

				r.Get("/returning-requests", h.getReturningRequests)
				r.Put("/returning-requests/{id}/complete", h.completeReturningRequest)
				r.Delete("/returning-requests/{id}", h.cancelReturningRequest)

				r.Get("/reports", h.getReport)
			})
		})
	})

	return router
}
