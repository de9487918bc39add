package helper

import (
	stderrors "errors"

	"Lookbook/app/api/storefront/internal/types"
	"Lookbook/app/common/consts/errno"
	"Lookbook/app/services/lookgen"
	"Lookbook/app/services/storefront"
	"Lookbook/app/services/storefront/model"

	"github.com/zeromicro/x/errors"
)

var codes = []struct {
	err  error
	code int
}{
	{storefront.ErrProductNotFound, errno.ProductNotFound},
	{storefront.ErrShopNotFound, errno.ShopNotFound},
	{storefront.ErrItemNotFound, errno.CartItemNotFound},
	{storefront.ErrEmptyCart, errno.EmptyCart},
	{storefront.ErrOrderNotFound, errno.OrderNotFound},
	{storefront.ErrInvalidTransition, errno.InvalidStatus},
	{storefront.ErrInvalidQuantity, errno.InvalidParam},
	{storefront.ErrNotificationNotFound, errno.NotificationNotFound},
	{lookgen.ErrGenerationFailed, errno.LookGenerationFailed},
}

// ToCodeMsg maps service errors onto api error codes. Anything unknown is an
// internal error.
func ToCodeMsg(err error) error {
	if err == nil {
		return nil
	}
	var cm *errors.CodeMsg
	if stderrors.As(err, &cm) {
		return err
	}
	for _, c := range codes {
		if stderrors.Is(err, c.err) {
			return errors.New(c.code, err.Error())
		}
	}
	return errors.New(errno.InternalError, "internal error")
}

func ToCartResponse(c model.Cart) *types.CartResponse {
	shops := make([]types.CartShop, 0, len(c.Shops))
	for _, s := range c.Shops {
		shops = append(shops, types.CartShop{
			CartShop:             s,
			Subtotal:             s.Subtotal(),
			RemainingForFreeShip: s.RemainingForFreeDelivery(),
		})
	}
	return &types.CartResponse{
		StatusCode: errno.StatusOK,
		StatusMsg:  "ok",
		Shops:      shops,
		Count:      c.Count,
	}
}
