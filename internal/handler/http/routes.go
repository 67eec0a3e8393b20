package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.welcome)
		r.Post("/login", h.login)
		r.Post("/users", h.register)
	})

	// routes requiring a bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/users/{username}", h.getUser)
		r.Put("/users/{username}", h.updateUser)
		r.Delete("/users/{username}", h.deleteUser)

		r.Post("/users/{username}/items/{itemID}", h.addCartItem)
		r.Delete("/users/{username}/items/{itemID}", h.removeCartItem)

		r.Get("/items", h.listItems)
		r.Get("/items/{itemID}", h.getItem)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) welcome(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Welcome to the shoe shop!"))
}
