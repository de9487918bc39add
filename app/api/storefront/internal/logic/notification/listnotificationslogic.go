package notification

import (
	"context"

	"Lookbook/app/api/storefront/internal/svc"
	"Lookbook/app/api/storefront/internal/types"
	"Lookbook/app/common/consts/errno"
	"Lookbook/app/common/util"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListNotificationsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListNotificationsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListNotificationsLogic {
	return &ListNotificationsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListNotificationsLogic) ListNotifications() (resp *types.ListNotificationsResponse, err error) {
	audience := util.AudienceFromCtx(l.ctx)
	return &types.ListNotificationsResponse{
		StatusCode:    errno.StatusOK,
		StatusMsg:     "ok",
		Notifications: l.svcCtx.Store.Notifications(audience),
		Unread:        l.svcCtx.Store.UnreadCount(audience),
	}, nil
}
