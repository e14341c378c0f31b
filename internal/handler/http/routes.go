package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{traceIDHeader, totalCountHeader, totalPagesHeader, hasNextHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	router.Use(h.limiter.withRateLimit)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}
	router.Use(withGZip)

	router.Get("/", h.welcome)
	router.Get("/api/version/", h.getServerVersion)

	router.Post("/contacts/", h.createContact)
	router.Get("/contacts/", h.listContacts)
	router.Get("/contacts/{id}", h.getContact)
	router.Put("/contacts/{id}", h.updateContact)
	router.Delete("/contacts/{id}", h.deleteContact)

	router.Post("/notes/", h.createNote)
	router.Get("/notes/", h.listNotes)
	router.Get("/notes/{id}", h.getNote)
	router.Put("/notes/{id}", h.updateNote)
	router.Delete("/notes/{id}", h.deleteNote)

	router.Post("/credentials/", h.createCredential)
	router.Get("/credentials/", h.listCredentials)
	router.Get("/credentials/{id}", h.getCredential)
	router.Put("/credentials/{id}", h.updateCredential)
	router.Delete("/credentials/{id}", h.deleteCredential)

	router.Post("/tasks/", h.createTask)
	router.Get("/tasks/", h.listTasks)
	router.Get("/tasks/{id}", h.getTask)
	router.Put("/tasks/{id}", h.updateTask)
	router.Delete("/tasks/{id}", h.deleteTask)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
