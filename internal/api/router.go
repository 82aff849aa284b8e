package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/blaisecz/vitals-tracker/docs"
	"github.com/blaisecz/vitals-tracker/internal/api/handler"
	"github.com/blaisecz/vitals-tracker/internal/api/middleware"
	"github.com/blaisecz/vitals-tracker/internal/telemetry"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type Router struct {
	userHandler *handler.UserHandler
	dayHandler  *handler.DayHandler
	metrics     *telemetry.Metrics
	log         *zap.Logger
}

func NewRouter(userHandler *handler.UserHandler, dayHandler *handler.DayHandler, metrics *telemetry.Metrics, log *zap.Logger) *Router {
	if log == nil {
		log = zap.NewNop()
	}
	return &Router{
		userHandler: userHandler,
		dayHandler:  dayHandler,
		metrics:     metrics,
		log:         log,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery(rt.log))
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(rt.log))
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	r.Method(http.MethodGet, "/metrics", rt.metrics.Handler())

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)
			r.Get("/{userId}", rt.userHandler.GetByID)
			r.Patch("/{userId}", rt.userHandler.Update)

			r.Get("/{userId}/summaries", rt.dayHandler.ListSummaries)

			// Days (nested under users)
			r.Route("/{userId}/days/{date}", func(r chi.Router) {
				r.Post("/readings", rt.dayHandler.Ingest)
				r.Delete("/readings/{readingId}", rt.dayHandler.RemoveReading)
				r.Post("/deletions", rt.dayHandler.Deletions)
				r.Get("/summary", rt.dayHandler.Summary)
			})
		})
	})

	return r
}
