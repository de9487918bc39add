package order

import (
	"context"

	"Lookbook/app/api/storefront/internal/logic/helper"
	"Lookbook/app/api/storefront/internal/svc"
	"Lookbook/app/api/storefront/internal/types"
	"Lookbook/app/common/consts/biz"
	"Lookbook/app/common/consts/errno"
	"Lookbook/app/common/util"
	"Lookbook/app/services/storefront/model"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type SetOrderStatusLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSetOrderStatusLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SetOrderStatusLogic {
	return &SetOrderStatusLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// SetOrderStatus is seller driven.
func (l *SetOrderStatusLogic) SetOrderStatus(req *types.SetOrderStatusRequest) (resp *types.OrderResponse, err error) {
	if req == nil || req.OrderId == "" || req.Status == "" {
		return nil, errors.New(errno.InvalidParam, "order id and status are required")
	}
	if util.AudienceFromCtx(l.ctx) != biz.AudienceSeller {
		return nil, errors.New(errno.InvalidParam, "only sellers can change order status")
	}

	o, err := l.svcCtx.Store.SetStatus(l.ctx, req.OrderId, model.Status(req.Status))
	if err != nil {
		l.Logger.Infof("set status of %s to %s failed: %v", req.OrderId, req.Status, err)
		return nil, helper.ToCodeMsg(err)
	}

	return &types.OrderResponse{
		StatusCode: errno.StatusOK,
		StatusMsg:  "ok",
		Order:      o,
	}, nil
}
