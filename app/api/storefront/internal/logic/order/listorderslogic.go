package order

import (
	"context"

	"Lookbook/app/api/storefront/internal/svc"
	"Lookbook/app/api/storefront/internal/types"
	"Lookbook/app/common/consts/biz"
	"Lookbook/app/common/consts/errno"
	"Lookbook/app/common/util"
	"Lookbook/app/services/storefront/model"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListOrdersLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListOrdersLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListOrdersLogic {
	return &ListOrdersLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// ListOrders shows the buyer's own orders, or the seller copies when the
// caller is a seller.
func (l *ListOrdersLogic) ListOrders(req *types.ListOrdersRequest) (resp *types.ListOrdersResponse, err error) {
	var orders []*model.Order
	if util.AudienceFromCtx(l.ctx) == biz.AudienceSeller {
		var storeId string
		if req != nil {
			storeId = req.StoreId
		}
		orders = l.svcCtx.Store.SellerOrders(storeId)
	} else {
		buyerId, err := util.BuyerIdFromCtx(l.ctx)
		if err != nil {
			return nil, err
		}
		orders = l.svcCtx.Store.Orders(buyerId)
	}

	return &types.ListOrdersResponse{
		StatusCode: errno.StatusOK,
		StatusMsg:  "ok",
		Orders:     orders,
	}, nil
}
