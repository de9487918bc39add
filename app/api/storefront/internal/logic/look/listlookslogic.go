package look

import (
	"context"

	"Lookbook/app/api/storefront/internal/svc"
	"Lookbook/app/api/storefront/internal/types"
	"Lookbook/app/common/consts/errno"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListLooksLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListLooksLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListLooksLogic {
	return &ListLooksLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListLooksLogic) ListLooks() (resp *types.ListLooksResponse, err error) {
	return &types.ListLooksResponse{
		StatusCode: errno.StatusOK,
		StatusMsg:  "ok",
		Looks:      l.svcCtx.Looks.Looks(),
	}, nil
}
