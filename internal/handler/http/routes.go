package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Development mode adds CORS; production mode serves
// the client bundle for every GET path not matched by an API route.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if h.development {
		router.Use(withCORS())
	}

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	router.Get("/health", h.health)
	router.Get("/version", h.getServerVersion)

	router.Route("/example", func(r chi.Router) {
		r.Get("/orjson-resp", h.getOrjsonResponse)
		r.Post("/num", h.receiveNumber)
		r.Get("/users", h.listUsers)
		r.Post("/user", h.addUser)
		r.Post("/txt-file", h.saveTxtFile)
		r.Post("/handle-txt-file", h.handleTxtFile)
	})

	if !h.development {
		router.Get("/*", h.serveClient())
	}

	return router
}
