package cart

import (
	"context"

	"Lookbook/app/api/storefront/internal/logic/helper"
	"Lookbook/app/api/storefront/internal/svc"
	"Lookbook/app/api/storefront/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type ClearCartLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewClearCartLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ClearCartLogic {
	return &ClearCartLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ClearCartLogic) ClearCart() (resp *types.CartResponse, err error) {
	l.svcCtx.Store.Clear(l.ctx)
	return helper.ToCartResponse(l.svcCtx.Store.Cart()), nil
}
