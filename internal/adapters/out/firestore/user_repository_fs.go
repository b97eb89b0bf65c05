// internal/adapters/out/firestore/user_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"

	"storefront/internal/domain/apperr"
)

// UserRepositoryFS writes user profile documents (collection: users,
// docId = auth uid).
type UserRepositoryFS struct {
	Client *firestore.Client
}

func NewUserRepositoryFS(client *firestore.Client) *UserRepositoryFS {
	return &UserRepositoryFS{Client: client}
}

// CreateProfile stores {name, email, createdAt} under the uid on sign-up.
func (r *UserRepositoryFS) CreateProfile(ctx context.Context, uid, name, email string) error {
	if r == nil || r.Client == nil {
		return errors.New("user_repository_fs: firestore client is nil")
	}

	uid = strings.TrimSpace(uid)
	if uid == "" {
		return errors.New("user_repository_fs: uid is empty")
	}

	_, err := r.Client.Collection("users").Doc(uid).Set(ctx, map[string]any{
		"name":      strings.TrimSpace(name),
		"email":     strings.TrimSpace(email),
		"createdAt": firestore.ServerTimestamp,
	})
	if err != nil {
		return apperr.Remote("failed to create user profile", err)
	}
	return nil
}
