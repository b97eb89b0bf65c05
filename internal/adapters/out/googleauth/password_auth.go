// internal/adapters/out/googleauth/password_auth.go
package googleauth

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/api/googleapi"
	identitytoolkit "google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"

	"storefront/internal/domain/apperr"
	principaldom "storefront/internal/domain/principal"
)

// PasswordAuth verifies email+password sign-ins against the Identity
// Toolkit API (the Admin SDK has no password check; this is the same
// endpoint the web SDK's signInWithEmailAndPassword uses).
type PasswordAuth struct {
	svc *identitytoolkit.Service
}

// NewPasswordAuth builds the client with the project's web API key.
func NewPasswordAuth(ctx context.Context, apiKey string) (*PasswordAuth, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("googleauth: web api key is empty")
	}

	svc, err := identitytoolkit.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &PasswordAuth{svc: svc}, nil
}

func (a *PasswordAuth) VerifyPassword(ctx context.Context, email, password string) (principaldom.Principal, error) {
	if a == nil || a.svc == nil {
		return principaldom.Principal{}, errors.New("googleauth: service is nil")
	}

	req := &identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             strings.TrimSpace(email),
		Password:          password,
		ReturnSecureToken: true,
	}

	resp, err := a.svc.Relyingparty.VerifyPassword(req).Context(ctx).Do()
	if err != nil {
		return principaldom.Principal{}, mapSignInError(err)
	}

	return principaldom.Principal{
		UID:   resp.LocalId,
		Email: resp.Email,
		Name:  resp.DisplayName,
	}, nil
}

// mapSignInError turns Identity Toolkit error codes into user-facing
// messages; everything unrecognized stays a remote failure.
func mapSignInError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		msg := strings.TrimSpace(gerr.Message)
		switch {
		case strings.Contains(msg, "EMAIL_NOT_FOUND"):
			return apperr.Unauthenticated("user not found")
		case strings.Contains(msg, "INVALID_PASSWORD"), strings.Contains(msg, "INVALID_LOGIN_CREDENTIALS"):
			return apperr.Unauthenticated("incorrect password")
		case strings.Contains(msg, "INVALID_EMAIL"):
			return apperr.Validation("invalid email address")
		case strings.Contains(msg, "TOO_MANY_ATTEMPTS"):
			return apperr.Unauthenticated("too many failed attempts, please try again later")
		}
	}
	return apperr.Remote("login failed", err)
}
