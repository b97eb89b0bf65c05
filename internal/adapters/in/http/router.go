// internal/adapters/in/http/router.go
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"storefront/internal/adapters/in/http/handler"
	"storefront/internal/adapters/in/http/middleware"
)

// Deps carries everything the router mounts.
type Deps struct {
	Auth     *middleware.Auth
	Carts    *handler.CartHandler
	Orders   *handler.OrderHandler
	Products *handler.ProductHandler
	Account  *handler.AuthHandler
}

// NewRouter wires the storefront API.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Session-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	if d.Auth != nil {
		r.Use(d.Auth.Handler)
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signin", d.Account.SignIn)
		r.Post("/signup", d.Account.SignUp)
		r.Post("/signout", d.Account.SignOut)
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", d.Products.List)
		r.Post("/", d.Products.Add)
		r.Put("/{productID}", d.Products.Edit)
	})

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", d.Carts.Get)
		r.Delete("/", d.Carts.Clear)
		r.Post("/items", d.Carts.AddItem)
		r.Put("/items/{productID}", d.Carts.SetQuantity)
		r.Delete("/items/{productID}", d.Carts.RemoveItem)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", d.Orders.List)
		r.Post("/checkout", d.Orders.PlaceOrder)
		r.Post("/{orderID}/cancel", d.Orders.Cancel)
		r.Post("/{orderID}/return", d.Orders.Return)
		r.Delete("/{orderID}", d.Orders.Delete)
	})

	return r
}
