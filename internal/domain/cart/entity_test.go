// internal/domain/cart/entity_test.go
package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/apperr"
)

func item(id, price string, qty int) LineItem {
	p, err := decimal.NewFromString(price)
	if err != nil {
		panic(err)
	}
	return LineItem{ProductID: id, Title: "item " + id, UnitPrice: p, Quantity: qty}
}

func TestParsePrice(t *testing.T) {
	p, err := ParsePrice(" 19.99 ")
	require.NoError(t, err)
	assert.Equal(t, "19.99", p.String())

	_, err = ParsePrice("not-a-price")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = ParsePrice("-3")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestAddIsIdempotentOnIdentity(t *testing.T) {
	c := New(nil)

	require.NoError(t, c.Add(item("p1", "10.00", 0)))
	require.NoError(t, c.Add(item("p1", "10.00", 0)))

	assert.Equal(t, 1, c.Size())
	assert.Equal(t, 2, c.ItemCount())
	assert.Equal(t, "20", c.Total().String())
}

func TestAddRequiresProductID(t *testing.T) {
	c := New(nil)
	err := c.Add(item("  ", "10.00", 0))
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	assert.Equal(t, 0, c.Size())
}

func TestSetQuantityFloor(t *testing.T) {
	c := New(nil)
	require.NoError(t, c.Add(item("p1", "5.00", 0)))
	require.NoError(t, c.SetQuantity("p1", 4))
	assert.Equal(t, 4, c.ItemCount())

	err := c.SetQuantity("p1", 0)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	assert.Equal(t, 4, c.ItemCount(), "rejected update must preserve the prior quantity")

	err = c.SetQuantity("p1", -2)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	assert.Equal(t, 4, c.ItemCount())
}

func TestSetQuantityAbsentIsNoop(t *testing.T) {
	c := New(nil)
	require.NoError(t, c.SetQuantity("ghost", 3))
	assert.Equal(t, 0, c.Size())
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	c := New(nil)
	require.NoError(t, c.Add(item("p1", "5.00", 0)))

	c.Remove("ghost")
	assert.Equal(t, 1, c.Size())

	c.Remove("p1")
	assert.Equal(t, 0, c.Size())
}

func TestTotalIsExactRegardlessOfOperationOrder(t *testing.T) {
	// 0.1 * 3 must be exactly 0.3, not a float artifact.
	a := New(nil)
	require.NoError(t, a.Add(item("p1", "0.1", 0)))
	require.NoError(t, a.Add(item("p1", "0.1", 0)))
	require.NoError(t, a.Add(item("p1", "0.1", 0)))

	b := New(nil)
	require.NoError(t, b.Add(item("p1", "0.1", 0)))
	require.NoError(t, b.SetQuantity("p1", 3))

	assert.Equal(t, "0.3", a.Total().String())
	assert.True(t, a.Total().Equal(b.Total()))
}

func TestNewMergesDuplicatesAndDropsInvalid(t *testing.T) {
	c := New([]LineItem{
		item("p1", "2.50", 2),
		item("p1", "2.50", 1),
		item("", "1.00", 1),
		item("p2", "3.00", 0),
		{ProductID: "p3", UnitPrice: decimal.NewFromInt(-1), Quantity: 1},
	})

	assert.Equal(t, 1, c.Size())
	assert.Equal(t, 3, c.ItemCount())
	assert.Equal(t, "7.5", c.Total().String())
}

func TestSnapshotIsDecoupled(t *testing.T) {
	c := New(nil)
	require.NoError(t, c.Add(item("p1", "1.00", 0)))

	snap := c.Snapshot()
	c.Clear()

	assert.Len(t, snap, 1)
	assert.Equal(t, 0, c.Size())
}
