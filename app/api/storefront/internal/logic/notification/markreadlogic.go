package notification

import (
	"context"

	"Lookbook/app/api/storefront/internal/logic/helper"
	"Lookbook/app/api/storefront/internal/svc"
	"Lookbook/app/api/storefront/internal/types"
	"Lookbook/app/common/consts/errno"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type MarkReadLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewMarkReadLogic(ctx context.Context, svcCtx *svc.ServiceContext) *MarkReadLogic {
	return &MarkReadLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *MarkReadLogic) MarkRead(req *types.MarkReadRequest) (resp *types.ActionResponse, err error) {
	if req == nil || req.NotificationId == "" {
		return nil, errors.New(errno.InvalidParam, "notification id is required")
	}
	if err := l.svcCtx.Store.MarkRead(l.ctx, req.NotificationId); err != nil {
		return nil, helper.ToCodeMsg(err)
	}
	return &types.ActionResponse{
		StatusCode: errno.StatusOK,
		StatusMsg:  "ok",
	}, nil
}
