package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/venturechess/portfolio/backend/internal/config"
	"github.com/venturechess/portfolio/backend/internal/handler/contact"
	"github.com/venturechess/portfolio/backend/internal/handler/site"
	"github.com/venturechess/portfolio/backend/internal/handler/system"
	middlewarePkg "github.com/venturechess/portfolio/backend/internal/middleware"
	"github.com/venturechess/portfolio/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services. The /api subtree is only
// mounted when both API handlers are given.
func NewRouter(logger *zap.Logger, corsCfg config.CORSConfig, siteHandler *site.Handler, contactHandler *contact.Handler, systemHandler *system.Handler) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewarePkg.RequestLogger(logger))
	r.Use(middleware.Recoverer)

	// Page routes
	siteHandler.RegisterRoutes(r)

	if contactHandler == nil || systemHandler == nil {
		logger.Info("contact API not mounted in this process")
		return r
	}

	r.Route("/api", func(api chi.Router) {
		api.Use(middlewarePkg.CORS(corsCfg.AllowedOrigins))

		// Root, health and status checks
		systemHandler.RegisterRoutes(api)

		// Contact submissions and live feed
		contactHandler.RegisterRoutes(api)

		api.NotFound(func(w http.ResponseWriter, _ *http.Request) {
			utils.RespondError(w, http.StatusNotFound, "Not Found")
		})
		api.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
			utils.RespondError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		})
	})

	return r
}
