package order

import (
	"context"

	"Lookbook/app/api/storefront/internal/logic/helper"
	"Lookbook/app/api/storefront/internal/svc"
	"Lookbook/app/api/storefront/internal/types"
	"Lookbook/app/common/consts/errno"
	"Lookbook/app/common/util"

	"github.com/zeromicro/go-zero/core/logx"
)

type CheckoutLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCheckoutLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CheckoutLogic {
	return &CheckoutLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CheckoutLogic) Checkout(req *types.CheckoutRequest) (resp *types.CheckoutResponse, err error) {
	buyerId, err := util.BuyerIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	var address string
	if req != nil {
		address = req.Address
	}

	res, err := l.svcCtx.Store.Checkout(l.ctx, buyerId, address)
	if err != nil {
		l.Logger.Infof("checkout for %s failed: %v", buyerId, err)
		return nil, helper.ToCodeMsg(err)
	}

	return &types.CheckoutResponse{
		StatusCode: errno.StatusOK,
		StatusMsg:  "ok",
		OrderId:    res.OrderId,
		Number:     res.Number,
		OrderIds:   res.OrderIds,
	}, nil
}
