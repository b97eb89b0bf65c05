// internal/application/usecase/auth_usecase.go
package usecase

import (
	"context"
	"log"
	"strings"

	"storefront/internal/domain/apperr"
	principaldom "storefront/internal/domain/principal"
)

// PasswordVerifier checks email+password against the credential issuer
// and returns the principal on success.
type PasswordVerifier interface {
	VerifyPassword(ctx context.Context, email, password string) (principaldom.Principal, error)
}

// UserAdmin manages accounts at the credential issuer.
type UserAdmin interface {
	CreateUser(ctx context.Context, email, password, name string) (uid string, err error)
	RevokeSessions(ctx context.Context, uid string) error
}

// ProfileWriter stores the user profile document created on sign-up.
type ProfileWriter interface {
	CreateProfile(ctx context.Context, uid, name, email string) error
}

// AuthUsecase coordinates sign-in/sign-up/sign-out and publishes
// principal-changed events on the watcher.
type AuthUsecase struct {
	verifier PasswordVerifier
	admin    UserAdmin
	profiles ProfileWriter
	watcher  *principaldom.Watcher
}

func NewAuthUsecase(verifier PasswordVerifier, admin UserAdmin, profiles ProfileWriter, watcher *principaldom.Watcher) *AuthUsecase {
	return &AuthUsecase{
		verifier: verifier,
		admin:    admin,
		profiles: profiles,
		watcher:  watcher,
	}
}

// SignIn verifies credentials and publishes the new principal.
func (u *AuthUsecase) SignIn(ctx context.Context, email, password string) (principaldom.Principal, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return principaldom.Principal{}, apperr.Validation("email and password are required")
	}
	if u.verifier == nil {
		return principaldom.Principal{}, apperr.Remote("sign-in is not configured", nil)
	}

	p, err := u.verifier.VerifyPassword(ctx, email, password)
	if err != nil {
		return principaldom.Principal{}, err
	}

	if u.watcher != nil {
		u.watcher.Publish(&p)
	}
	return p, nil
}

// SignUp creates the account and its profile document. It does NOT sign
// the user in.
func (u *AuthUsecase) SignUp(ctx context.Context, email, password, name string) error {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if email == "" || password == "" || name == "" {
		return apperr.Validation("all fields are required")
	}
	if len(password) < 6 {
		return apperr.Validation("password must be at least 6 characters")
	}
	if u.admin == nil {
		return apperr.Remote("sign-up is not configured", nil)
	}

	uid, err := u.admin.CreateUser(ctx, email, password, name)
	if err != nil {
		return err
	}

	if u.profiles != nil {
		if err := u.profiles.CreateProfile(ctx, uid, name, email); err != nil {
			return err
		}
	}
	return nil
}

// SignOut clears the principal. Remote session revocation is best-effort;
// the local sign-out always succeeds.
func (u *AuthUsecase) SignOut(ctx context.Context) {
	if u.watcher == nil {
		return
	}

	if p := u.watcher.Current(); p != nil && u.admin != nil {
		if err := u.admin.RevokeSessions(ctx, p.UID); err != nil {
			log.Printf("[auth_usecase] WARN: revoke sessions failed for uid=%s: %v", p.UID, err)
		}
	}
	u.watcher.Publish(nil)
}
