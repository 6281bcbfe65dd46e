package usecase

import (
	"context"
	"testing"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func home() domain.ShippingAddress {
	return domain.ShippingAddress{FullName: "Ann Lee", Street: "Main 1", City: "Riga", State: "LV", ZipCode: "1010", Phone: "+371 1"}
}

func TestAddress_AddListAndDefault(t *testing.T) {
	uc := NewAddressUC(newMemoryAddresses())
	ctx := context.Background()

	first, err := uc.AddAddress(ctx, &AddressReq{Owner: "u1", Address: home()})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.True(t, first.IsDefault)

	office := home()
	office.Street = "Office 2"
	second, err := uc.AddAddress(ctx, &AddressReq{Owner: "u1", Address: office, IsDefault: true})
	require.NoError(t, err)
	assert.True(t, second.IsDefault)

	list, err := uc.ListAddresses(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.False(t, list[0].IsDefault)

	list, err = uc.SetDefaultAddress(ctx, "u1", first.ID)
	require.NoError(t, err)
	assert.True(t, list[0].IsDefault)

	list, err = uc.DeleteAddress(ctx, "u1", first.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].IsDefault)
}

func TestAddress_UpdateAndErrors(t *testing.T) {
	uc := NewAddressUC(newMemoryAddresses())
	ctx := context.Background()

	a, err := uc.AddAddress(ctx, &AddressReq{Owner: "u1", Address: home()})
	require.NoError(t, err)

	changed := home()
	changed.City = "  Oslo "
	got, err := uc.UpdateAddress(ctx, &AddressReq{Owner: "u1", ID: a.ID, Address: changed})
	require.NoError(t, err)
	assert.Equal(t, "Oslo", got.City)
	assert.True(t, got.IsDefault)

	_, err = uc.UpdateAddress(ctx, &AddressReq{Owner: "u1", ID: "nope", Address: home()})
	require.ErrorIs(t, err, e.ErrAddressNotFound)

	missing := home()
	missing.Phone = ""
	_, err = uc.AddAddress(ctx, &AddressReq{Owner: "u1", Address: missing})
	require.ErrorIs(t, err, e.ErrAddressFieldsRequired)

	_, err = uc.DeleteAddress(ctx, "u1", "nope")
	require.ErrorIs(t, err, e.ErrAddressNotFound)

	_, err = uc.ListAddresses(ctx, " ")
	require.ErrorIs(t, err, e.ErrInvalidOwner)
}

func TestAddress_Limit(t *testing.T) {
	uc := NewAddressUC(newMemoryAddresses())
	ctx := context.Background()

	for range domain.AddressLimit {
		_, err := uc.AddAddress(ctx, &AddressReq{Owner: "u1", Address: home()})
		require.NoError(t, err)
	}
	_, err := uc.AddAddress(ctx, &AddressReq{Owner: "u1", Address: home()})
	require.ErrorIs(t, err, e.ErrTooManyAddresses)
}
