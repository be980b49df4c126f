// Package httpapi exposes the marketplace over REST/JSON: chi routing,
// CORS, bearer authentication and the user, item and order endpoints.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/tamakara/booth/internal/logging"
)

func NewRouter(h *Handlers, v TokenVerifier, allowedOrigins []string, log logging.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(RequestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeText(w, "OK")
	})

	r.Group(func(r chi.Router) {
		r.Use(Authenticate(v))

		r.Post("/user/register", h.Register)
		r.Post("/user/login", h.Login)
		r.Get("/user/vo/user", h.GetUser)
		r.Get("/item/vo/items", h.ListItems)
		r.Get("/item/vo/item/{itemId}", h.GetItem)

		r.Group(func(r chi.Router) {
			r.Use(RequireUser)

			r.Post("/item/create", h.CreateItem)
			r.Post("/order/create/{itemId}", h.CreateOrder)
			r.Get("/order/vo/order/{orderId}", h.GetOrder)
			r.Post("/user/favorite/{itemId}", h.Favorite)
			r.Delete("/user/unfavorite/{itemId}", h.Unfavorite)
		})
	})

	return r
}
