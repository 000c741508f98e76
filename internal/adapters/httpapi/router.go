// Package httpapi translates HTTP requests into TodoService calls and service
// results into JSON responses.
package httpapi

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/example/todod/internal/ports/primary"
)

// NewRouter registers every todo route on a chi router.
// A trailing slash is accepted on every path.
func NewRouter(service primary.TodoService, logger *log.Logger) (http.Handler, error) {
	h, err := NewHandlers(service)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(middleware.StripSlashes)
	r.Use(RequestID)
	r.Use(AccessLog(logger))
	r.Use(middleware.Recoverer)

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	r.Get("/", h.Status)
	r.Route("/todos", func(r chi.Router) {
		r.Get("/", h.GetTodos)
		r.Post("/", h.CreateTodo)
		r.Get("/{list_id}/items", h.GetItems)
		r.Put("/{list_id}/items/{item_id}", h.CheckItem)
	})

	return r, nil
}
