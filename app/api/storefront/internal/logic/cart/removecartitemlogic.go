package cart

import (
	"context"

	"Lookbook/app/api/storefront/internal/logic/helper"
	"Lookbook/app/api/storefront/internal/svc"
	"Lookbook/app/api/storefront/internal/types"
	"Lookbook/app/common/consts/errno"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type RemoveCartItemLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewRemoveCartItemLogic(ctx context.Context, svcCtx *svc.ServiceContext) *RemoveCartItemLogic {
	return &RemoveCartItemLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *RemoveCartItemLogic) RemoveCartItem(req *types.RemoveCartItemRequest) (resp *types.CartResponse, err error) {
	if req == nil || req.ProductId == "" || req.StoreId == "" {
		return nil, errors.New(errno.InvalidParam, "productId and storeId are required")
	}
	return helper.ToCartResponse(l.svcCtx.Store.RemoveItem(l.ctx, req.ProductId, req.StoreId)), nil
}
