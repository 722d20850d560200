package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hobfurniture/orderdesk-backend/api/controllers"
	"github.com/hobfurniture/orderdesk-backend/api/middleware"
	"github.com/hobfurniture/orderdesk-backend/internal/autosave"
	"github.com/hobfurniture/orderdesk-backend/internal/drafts"
	"github.com/hobfurniture/orderdesk-backend/internal/emails"
	"github.com/hobfurniture/orderdesk-backend/internal/export"
	"github.com/hobfurniture/orderdesk-backend/internal/state"
	"github.com/hobfurniture/orderdesk-backend/pkg/config"
	"github.com/hobfurniture/orderdesk-backend/pkg/logger"
)

// Params carry everything the router wires together.
type Params struct {
	Config   *config.Config
	Logger   *logger.Logger
	Engine   *state.Engine
	Autosave *autosave.Scheduler
	Thread   *emails.Thread
	Drafts   *drafts.Service
	Renderer *export.Renderer
	Backend  controllers.Pinger
}

// NewRouter assembles the HTTP surface of the portal backend.
func NewRouter(params Params) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(params.Logger),
		middleware.RequestID(params.Logger),
		middleware.Logging(params.Logger),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(params.Config))
		r.Get("/ready", controllers.HealthReady(params.Config, params.Logger, params.Backend))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/documents/{kind}", func(r chi.Router) {
			r.Get("/", controllers.GetDocument(params.Engine, params.Autosave, params.Logger))
			r.Patch("/number", controllers.UpdateDocumentNumber(params.Engine, params.Logger))
			r.Get("/pdf", controllers.ExportDocument(params.Engine, params.Autosave, params.Renderer, params.Logger))
		})

		r.Route("/order", func(r chi.Router) {
			r.Get("/", controllers.GetOrder(params.Engine))
			r.Patch("/", controllers.UpdateOrder(params.Engine, params.Logger))
			r.Post("/items", controllers.AddOrderItem(params.Engine))
			r.Patch("/items/{index}", controllers.UpdateOrderItem(params.Engine, params.Logger))
			r.Delete("/items/{index}", controllers.RemoveOrderItem(params.Engine, params.Logger))
			r.Put("/amount-paid", controllers.UpdateAmountPaid(params.Engine, params.Logger))
		})

		r.Get("/company", controllers.GetCompany(params.Engine))
		r.Put("/company", controllers.UpdateCompany(params.Engine, params.Logger))
		r.Get("/customer", controllers.GetCustomer(params.Engine))
		r.Put("/customer", controllers.UpdateCustomer(params.Engine, params.Logger))

		r.Route("/gallery", func(r chi.Router) {
			r.Get("/", controllers.ListGallery(params.Engine))
			r.Post("/", controllers.AddGalleryItem(params.Engine, params.Logger))
			r.Delete("/{id}", controllers.RemoveGalleryItem(params.Engine))
		})

		r.Route("/emails", func(r chi.Router) {
			r.Get("/", controllers.ListEmails(params.Thread))
			r.Post("/draft", controllers.DraftReply(params.Engine, params.Thread, params.Drafts, params.Logger))
		})
	})

	return r
}
