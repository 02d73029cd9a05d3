package api

import (
	"net/http"
	"time"

	// This blank import is required by swaggo to find the API definitions.
	_ "realty-flow/backend/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter creates and configures a chi router with all the application's routes.
func NewRouter(assistantHandler *AssistantHandler, staticDir string) *chi.Mux {
	r := chi.NewRouter()

	// --- Global Middleware ---
	r.Use(middleware.RequestID) // Injects a unique request ID into the context.
	r.Use(middleware.RealIP)    // Sets the remote address to the real IP from proxy headers.
	r.Use(middleware.Logger)    // Logs the start and end of each request.
	r.Use(middleware.Recoverer) // Recovers from panics and returns a 500 error.

	// Older frontends call the health probe at the root; newer ones under
	// /api. It never fails for a missing credential.
	r.Get("/health", assistantHandler.HandleHealth)

	r.Route("/api", func(r chi.Router) {
		// Serves the auto-generated Swagger UI for API documentation.
		r.Get("/swagger/*", httpSwagger.WrapHandler)

		r.Get("/health", assistantHandler.HandleHealth)

		// Every assistant endpoint performs at most one upstream completion
		// call; the timeout bounds a hung upstream connection.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(60 * time.Second))

			r.Post("/chat", assistantHandler.HandleChat)
			r.Post("/organize-task", assistantHandler.HandleOrganizeTask)
			r.Post("/schedule-meeting", assistantHandler.HandleScheduleMeeting)
		})
	})

	// --- Frontend File Server ---
	// Serves the static landing page and assets. In production this would
	// usually sit behind Nginx; serving it here keeps local setups simple.
	fileServer := http.FileServer(http.Dir(staticDir))
	r.Handle("/*", http.StripPrefix("/", fileServer))

	return r
}
