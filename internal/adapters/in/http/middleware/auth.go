// internal/adapters/in/http/middleware/auth.go
package middleware

import (
	"context"
	"net/http"
	"strings"

	principaldom "storefront/internal/domain/principal"
)

type ctxKey string

const (
	ctxKeyPrincipal ctxKey = "principal"
	ctxKeySessionID ctxKey = "sessionId"
)

// TokenVerifier checks a bearer ID token against the auth provider.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (principaldom.Principal, error)
}

// Auth resolves the request identity.
//
// - A valid bearer token yields a principal in the request context and a
//   principal-changed publish when the signed-in user changed (the token
//   layer is the auth provider's session signal here).
// - Without a token the request stays anonymous; the cart still works via
//   the X-Session-Id header.
//
// Verification failures do not reject the request at this layer; actions
// that require a principal fail with unauthenticated in the usecase.
type Auth struct {
	Verifier TokenVerifier
	Watcher  *principaldom.Watcher
}

func (m *Auth) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if sid := strings.TrimSpace(r.Header.Get("X-Session-Id")); sid != "" {
			ctx = context.WithValue(ctx, ctxKeySessionID, sid)
		}

		authHeader := r.Header.Get("Authorization")
		if m.Verifier != nil && strings.HasPrefix(authHeader, "Bearer ") {
			idToken := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
			if idToken != "" {
				if p, err := m.Verifier.VerifyIDToken(ctx, idToken); err == nil {
					ctx = context.WithValue(ctx, ctxKeyPrincipal, &p)
					if m.Watcher != nil {
						cur := m.Watcher.Current()
						if cur == nil || cur.UID != p.UID {
							m.Watcher.Publish(&p)
						}
					}
				}
			}
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// PrincipalFrom returns the verified principal for the request, if any.
func PrincipalFrom(r *http.Request) *principaldom.Principal {
	p, _ := r.Context().Value(ctxKeyPrincipal).(*principaldom.Principal)
	return p
}

// SessionIDFrom resolves the cart session: the signed-in uid when
// present, else the client-provided session id, else "anonymous".
func SessionIDFrom(r *http.Request) string {
	if p := PrincipalFrom(r); p != nil {
		return p.UID
	}
	if sid, ok := r.Context().Value(ctxKeySessionID).(string); ok && sid != "" {
		return sid
	}
	return "anonymous"
}
