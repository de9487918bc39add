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

type AddCartItemLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewAddCartItemLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AddCartItemLogic {
	return &AddCartItemLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *AddCartItemLogic) AddCartItem(req *types.CartItemRequest) (resp *types.CartResponse, err error) {
	if req == nil || req.ProductId == "" || req.Quantity == 0 {
		return nil, errors.New(errno.InvalidParam, "invalid cart payload")
	}

	ref := model.ItemRef{ProductId: req.ProductId, Size: req.Size, Color: req.Color}
	var c model.Cart
	if req.Quantity > 0 {
		c, err = l.svcCtx.Store.Increase(l.ctx, ref, req.Quantity)
	} else {
		// negative quantities decrement and drop the line at zero
		c, err = l.svcCtx.Store.AddItem(l.ctx, ref, req.Quantity)
	}
	if err != nil {
		return nil, helper.ToCodeMsg(err)
	}
	return helper.ToCartResponse(c), nil
}
