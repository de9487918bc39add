package helper

import (
	"fmt"
	"testing"

	"Lookbook/app/common/consts/errno"
	"Lookbook/app/services/lookgen"
	"Lookbook/app/services/storefront"
	"Lookbook/app/services/storefront/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/x/errors"
)

func TestToCodeMsg(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{storefront.ErrEmptyCart, errno.EmptyCart},
		{fmt.Errorf("%w: new -> delivered", storefront.ErrInvalidTransition), errno.InvalidStatus},
		{fmt.Errorf("%w: boom", lookgen.ErrGenerationFailed), errno.LookGenerationFailed},
		{fmt.Errorf("unexpected"), errno.InternalError},
		{errors.New(errno.InvalidParam, "bad"), errno.InvalidParam},
	}
	for _, tt := range tests {
		var cm *errors.CodeMsg
		require.ErrorAs(t, ToCodeMsg(tt.err), &cm)
		assert.Equal(t, tt.code, cm.Code)
	}
	assert.NoError(t, ToCodeMsg(nil))
}

func TestToCartResponse(t *testing.T) {
	resp := ToCartResponse(model.Cart{
		Shops: []model.CartShop{{
			StoreId:               "a",
			FreeDeliveryThreshold: 1000,
			Items:                 []model.CartLine{{ProductId: "p", Price: 300, Quantity: 2}},
		}},
		Count: 2,
	})

	require.Len(t, resp.Shops, 1)
	assert.Equal(t, int64(600), resp.Shops[0].Subtotal)
	assert.Equal(t, int64(400), resp.Shops[0].RemainingForFreeShip)
	assert.Equal(t, int64(2), resp.Count)
	assert.Equal(t, errno.StatusOK, resp.StatusCode)
}
