package infrastructure

import (
	"testing"

	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetExtensionFromMIME(t *testing.T) {
	ext, err := GetExtensionFromMIME("image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "jpg", ext)

	_, err = GetExtensionFromMIME("application/pdf")
	require.ErrorIs(t, err, e.ErrUnsupportedMediaType)
}

func TestObjectPrefix(t *testing.T) {
	assert.Equal(t, "green-tea-500g", ObjectPrefix("  Green Tea / 500g "))
	assert.Equal(t, "чай", ObjectPrefix("Чай!"))
	assert.Equal(t, "product", ObjectPrefix("***"))
}
