package cart

import (
	"context"

	"Lookbook/app/api/storefront/internal/logic/helper"
	"Lookbook/app/api/storefront/internal/svc"
	"Lookbook/app/api/storefront/internal/types"
	"Lookbook/app/common/consts/errno"
	"Lookbook/app/services/storefront/model"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type UpdateCartItemLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewUpdateCartItemLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UpdateCartItemLogic {
	return &UpdateCartItemLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// UpdateCartItem either floors the line at one or, in adjust mode, lets it
// drop out of the cart.
func (l *UpdateCartItemLogic) UpdateCartItem(req *types.UpdateCartItemRequest) (resp *types.CartResponse, err error) {
	if req == nil || req.ProductId == "" || req.Delta == 0 {
		return nil, errors.New(errno.InvalidParam, "invalid cart payload")
	}

	var c model.Cart
	if req.Mode == "adjust" {
		c, err = l.svcCtx.Store.Adjust(l.ctx, model.ItemRef{ProductId: req.ProductId, Size: req.Size, Color: req.Color}, req.Delta)
	} else {
		if req.StoreId == "" {
			return nil, errors.New(errno.InvalidParam, "storeId is required")
		}
		c, err = l.svcCtx.Store.ChangeQty(l.ctx, req.ProductId, req.StoreId, req.Delta)
	}
	if err != nil {
		return nil, helper.ToCodeMsg(err)
	}
	return helper.ToCartResponse(c), nil
}
