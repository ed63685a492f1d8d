package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-adoption-portal/internal/domain/products"
)

func product(id string, stock int, price string) products.Product {
	return products.Product{
		ID:          id,
		ProductName: "Product " + id,
		Price:       decimal.RequireFromString(price),
		Stock:       stock,
		InStock:     stock > 0,
	}
}

func TestIncrement_ClampsAtStock(t *testing.T) {
	c := New()
	p := product("p", 2, "1")

	n, err := c.Increment(p)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = c.Increment(p)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = c.Increment(p)
	assert.ErrorIs(t, err, ErrLimitReached)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, c.Selected("p"))
}

func TestIncrement_StockShrankSinceLastPick(t *testing.T) {
	c := New()
	_, _ = c.Increment(product("p", 3, "1"))
	_, _ = c.Increment(product("p", 3, "1"))
	_, _ = c.Increment(product("p", 3, "1"))

	n, err := c.Increment(product("p", 1, "1"))
	assert.ErrorIs(t, err, ErrLimitReached)
	assert.Equal(t, 1, n)
}

func TestDecrement_ClampsAtZero(t *testing.T) {
	c := New()
	p := product("p", 5, "1")

	n, err := c.Decrement(p)
	assert.ErrorIs(t, err, ErrMinimumReached)
	assert.Equal(t, 0, n)

	_, _ = c.Increment(p)
	n, err = c.Decrement(p)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestAdd_MergesWithinStock(t *testing.T) {
	c := New()
	p := product("p", 5, "2.50")

	require.NoError(t, c.Add(p, 2))
	require.NoError(t, c.Add(p, 2))
	assert.Len(t, c.Lines(), 1)
	assert.Equal(t, 4, c.Quantity("p"))

	err := c.Add(p, 2)
	assert.ErrorIs(t, err, ErrExceedsStock)
	assert.Equal(t, 4, c.Quantity("p"))
	assert.True(t, c.Subtotal().Equal(decimal.RequireFromString("10")))
}

func TestAdd_Rejections(t *testing.T) {
	c := New()

	assert.ErrorIs(t, c.Add(product("p", 5, "1"), 0), ErrQuantityRequired)
	assert.ErrorIs(t, c.Add(product("p", 0, "1"), 1), ErrOutOfStock)

	notFlagged := product("q", 5, "1")
	notFlagged.InStock = false
	assert.ErrorIs(t, c.Add(notFlagged, 1), ErrOutOfStock)

	assert.ErrorIs(t, c.Add(product("p", 2, "1"), 3), ErrExceedsStock)
	assert.True(t, c.Empty())
}

func TestAddSelected_ResetsPicker(t *testing.T) {
	c := New()
	p := product("p", 5, "1")

	assert.ErrorIs(t, c.AddSelected(p), ErrQuantityRequired)

	_, _ = c.Increment(p)
	_, _ = c.Increment(p)
	require.NoError(t, c.AddSelected(p))
	assert.Equal(t, 2, c.Quantity("p"))
	assert.Equal(t, 0, c.Selected("p"))
}

func TestRemoveCountClear(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(product("a", 5, "1"), 2))
	require.NoError(t, c.Add(product("b", 5, "3"), 1))
	assert.Equal(t, 3, c.Count())

	require.NoError(t, c.Remove("a"))
	assert.ErrorIs(t, c.Remove("a"), ErrLineNotFound)
	assert.Equal(t, 1, c.Count())

	c.Clear()
	assert.True(t, c.Empty())
	assert.True(t, c.Subtotal().IsZero())
}

func TestLines_ReturnsCopy(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(product("a", 5, "1"), 1))

	lines := c.Lines()
	lines[0].Quantity = 99
	assert.Equal(t, 1, c.Quantity("a"))
}
