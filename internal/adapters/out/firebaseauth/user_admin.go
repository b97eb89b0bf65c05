// internal/adapters/out/firebaseauth/user_admin.go
package firebaseauth

import (
	"context"
	"errors"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"

	"storefront/internal/domain/apperr"
	principaldom "storefront/internal/domain/principal"
)

// UserAdminFB manages accounts through the Firebase Admin SDK.
type UserAdminFB struct {
	Client *fbauth.Client
}

func NewUserAdminFB(client *fbauth.Client) *UserAdminFB {
	return &UserAdminFB{Client: client}
}

func (a *UserAdminFB) CreateUser(ctx context.Context, email, password, name string) (string, error) {
	if a == nil || a.Client == nil {
		return "", errors.New("firebaseauth: auth client is nil")
	}

	params := (&fbauth.UserToCreate{}).
		Email(strings.TrimSpace(email)).
		Password(password).
		DisplayName(strings.TrimSpace(name))

	u, err := a.Client.CreateUser(ctx, params)
	if err != nil {
		if fbauth.IsEmailAlreadyExists(err) {
			return "", apperr.Validation("email already registered")
		}
		return "", apperr.Remote("signup failed", err)
	}
	return u.UID, nil
}

func (a *UserAdminFB) RevokeSessions(ctx context.Context, uid string) error {
	if a == nil || a.Client == nil {
		return errors.New("firebaseauth: auth client is nil")
	}
	if err := a.Client.RevokeRefreshTokens(ctx, strings.TrimSpace(uid)); err != nil {
		return apperr.Remote("failed to revoke sessions", err)
	}
	return nil
}

// VerifyIDToken checks a bearer ID token and returns the principal.
// Used by the HTTP auth middleware.
func (a *UserAdminFB) VerifyIDToken(ctx context.Context, idToken string) (principaldom.Principal, error) {
	if a == nil || a.Client == nil {
		return principaldom.Principal{}, errors.New("firebaseauth: auth client is nil")
	}

	tok, err := a.Client.VerifyIDToken(ctx, strings.TrimSpace(idToken))
	if err != nil {
		return principaldom.Principal{}, apperr.Unauthenticated("invalid token")
	}

	p := principaldom.Principal{UID: strings.TrimSpace(tok.UID)}
	if p.UID == "" {
		return principaldom.Principal{}, apperr.Unauthenticated("invalid uid in token")
	}
	if v, ok := tok.Claims["email"].(string); ok {
		p.Email = strings.TrimSpace(v)
	}
	if v, ok := tok.Claims["name"].(string); ok {
		p.Name = strings.TrimSpace(v)
	}
	return p, nil
}
