// internal/application/usecase/cart_registry_test.go
package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdom "storefront/internal/domain/cart"
)

func TestRegistryReturnsSameEnginePerSession(t *testing.T) {
	var built []string
	reg := NewCartRegistry(func(sid string) cartdom.Store {
		built = append(built, sid)
		return &fakeStore{}
	})

	a := reg.ForSession("s1")
	b := reg.ForSession("s1")
	c := reg.ForSession("s2")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.Equal(t, []string{"s1", "s2"}, built, "one mirror store per session")
}

func TestRegistryBlankSessionIsAnonymous(t *testing.T) {
	reg := NewCartRegistry(nil)

	a := reg.ForSession("")
	b := reg.ForSession("  ")
	assert.Same(t, a, b)

	require.NoError(t, a.AddItem(addInput("p1", "1.00")))
	assert.Equal(t, 1, b.Size())
}
