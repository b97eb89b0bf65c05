// internal/platform/di/container.go
package di

import (
	"context"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	apihttp "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/in/http/handler"
	"storefront/internal/adapters/in/http/middleware"
	"storefront/internal/adapters/out/firebaseauth"
	fsrepo "storefront/internal/adapters/out/firestore"
	"storefront/internal/adapters/out/localstore"
	"storefront/internal/adapters/out/memory"
	usecase "storefront/internal/application/usecase"
	cartdom "storefront/internal/domain/cart"
	categorydom "storefront/internal/domain/category"
	orderdom "storefront/internal/domain/order"
	principaldom "storefront/internal/domain/principal"
	productdom "storefront/internal/domain/product"
)

// Container wires repositories, usecases and the HTTP router.
type Container struct {
	Infra   *Infra
	Watcher *principaldom.Watcher
	Router  http.Handler
}

// NewContainer builds the application graph on top of infra. When no
// Firestore client is available the order and catalog repositories fall
// back to in-memory adapters so the service still runs locally.
func NewContainer(_ context.Context, infra *Infra) (*Container, error) {
	watcher := principaldom.NewWatcher()

	var (
		orderRepo    orderdom.Repository
		productRepo  productdom.Repository
		categoryRepo categorydom.Repository
		profiles     usecase.ProfileWriter
	)
	if infra.Firestore != nil {
		orderRepo = fsrepo.NewOrderRepositoryFS(infra.Firestore)
		productRepo = fsrepo.NewProductRepositoryFS(infra.Firestore)
		categoryRepo = fsrepo.NewCategoryRepositoryFS(infra.Firestore)
		profiles = fsrepo.NewUserRepositoryFS(infra.Firestore)
	} else {
		log.Printf("[di.container] using in-memory repositories")
		orderRepo = memory.NewOrderRepositoryMem()
		productRepo = memory.NewProductRepositoryMem()
		categoryRepo = memory.NewCategoryRepositoryMem()
	}

	var (
		admin         usecase.UserAdmin
		tokenVerifier middleware.TokenVerifier
	)
	if infra.FirebaseAuth != nil {
		fb := firebaseauth.NewUserAdminFB(infra.FirebaseAuth)
		admin = fb
		tokenVerifier = fb
	}

	var verifier usecase.PasswordVerifier
	if infra.PasswordAuth != nil {
		verifier = infra.PasswordAuth
	}

	mirrorDir := infra.Config.CartMirrorDir
	carts := usecase.NewCartRegistry(func(sessionID string) cartdom.Store {
		return localstore.NewCartStore(filepath.Join(mirrorDir, mirrorFileName(sessionID)))
	})

	orders := usecase.NewOrderUsecase(orderRepo)
	checkout := usecase.NewCheckoutUsecase(orders, watcher)
	products := usecase.NewProductUsecase(productRepo, categoryRepo)
	auth := usecase.NewAuthUsecase(verifier, admin, profiles, watcher)

	router := apihttp.NewRouter(apihttp.Deps{
		Auth:     &middleware.Auth{Verifier: tokenVerifier, Watcher: watcher},
		Carts:    handler.NewCartHandler(carts),
		Orders:   handler.NewOrderHandler(orders, checkout, carts),
		Products: handler.NewProductHandler(products),
		Account:  handler.NewAuthHandler(auth),
	})

	return &Container{
		Infra:   infra,
		Watcher: watcher,
		Router:  router,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	return c.Infra.Close()
}

// mirrorFileName maps a session id to a safe mirror file name. Session ids
// arrive from the X-Session-Id header and must not escape the mirror dir.
func mirrorFileName(sessionID string) string {
	var b strings.Builder
	for _, r := range sessionID {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	name := b.String()
	if name == "" {
		name = "anonymous"
	}
	return name + ".json"
}
