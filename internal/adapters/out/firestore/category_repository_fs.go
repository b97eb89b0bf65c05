// internal/adapters/out/firestore/category_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"storefront/internal/domain/apperr"
)

// CategoryRepositoryFS implements category.Repository using Firestore
// (collection: categories). One counter document per category name.
type CategoryRepositoryFS struct {
	Client *firestore.Client
}

func NewCategoryRepositoryFS(client *firestore.Client) *CategoryRepositoryFS {
	return &CategoryRepositoryFS{Client: client}
}

func (r *CategoryRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("categories")
}

// IncrementOrCreate bumps the counter for name, creating the document
// with count=1 when absent (check-then-write, matching the product add
// flow's shape).
func (r *CategoryRepositoryFS) IncrementOrCreate(ctx context.Context, name string, now time.Time) error {
	if r == nil || r.Client == nil {
		return errors.New("category_repository_fs: firestore client is nil")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	it := r.col().Where("name", "==", name).Limit(1).Documents(ctx)
	defer it.Stop()

	iso := now.UTC().Format(time.RFC3339)

	snap, err := it.Next()
	if err == iterator.Done {
		_, err := r.col().NewDoc().Set(ctx, map[string]any{
			"name":      name,
			"count":     1,
			"createdAt": iso,
			"updatedAt": iso,
		})
		if err != nil {
			return apperr.Remote("failed to create category", err)
		}
		return nil
	}
	if err != nil {
		return apperr.Remote("failed to look up category", err)
	}

	_, err = snap.Ref.Update(ctx, []firestore.Update{
		{Path: "count", Value: firestore.Increment(1)},
		{Path: "updatedAt", Value: iso},
	})
	if err != nil {
		return apperr.Remote("failed to update category", err)
	}
	return nil
}
