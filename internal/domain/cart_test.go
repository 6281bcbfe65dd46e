package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_AddMergesAndCaps(t *testing.T) {
	c := NewCart("user-1")

	c.Add(1, 2, 5)
	c.Add(2, 1, 999)
	c.Add(1, 4, 5)

	require.Len(t, c.Items, 2)
	assert.Equal(t, int64(5), c.Items[0].Quantity)
	assert.Equal(t, int64(6), c.Count())
}

func TestCart_SetQuantityBelowOneRemoves(t *testing.T) {
	c := NewCart("user-1")
	c.Add(1, 3, 999)
	c.Add(2, 1, 999)

	assert.True(t, c.SetQuantity(1, 7))
	assert.Equal(t, int64(7), c.Items[0].Quantity)

	assert.True(t, c.SetQuantity(1, 0))
	require.Len(t, c.Items, 1)
	assert.Equal(t, int64(2), c.Items[0].ProductID)

	assert.False(t, c.SetQuantity(42, 3))
}

func TestLineLimit(t *testing.T) {
	assert.Equal(t, int64(12), LineLimit(12))
	assert.Equal(t, int64(DefaultMaxLineQuantity), LineLimit(0))
}

func TestWishlist_Toggle(t *testing.T) {
	w := NewWishlist("user-1")

	assert.True(t, w.Toggle(WishlistItem{ProductID: 1}))
	assert.True(t, w.Toggle(WishlistItem{ProductID: 2}))
	assert.Equal(t, int64(2), w.Items[0].ProductID)

	assert.False(t, w.Toggle(WishlistItem{ProductID: 1}))
	assert.False(t, w.Contains(1))
	assert.True(t, w.Contains(2))
}

func TestWishlist_Capped(t *testing.T) {
	w := NewWishlist("user-1")
	for id := int64(1); id <= WishlistLimit+5; id++ {
		w.Toggle(WishlistItem{ProductID: id})
	}

	require.Len(t, w.Items, WishlistLimit)
	assert.Equal(t, int64(WishlistLimit+5), w.Items[0].ProductID)
	assert.False(t, w.Contains(1))
}
