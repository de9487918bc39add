package look

import (
	"context"

	"Lookbook/app/api/storefront/internal/logic/helper"
	"Lookbook/app/api/storefront/internal/svc"
	"Lookbook/app/api/storefront/internal/types"
	"Lookbook/app/common/consts/errno"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type GenerateLookBatchLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGenerateLookBatchLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GenerateLookBatchLogic {
	return &GenerateLookBatchLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

const maxBatchSize = 10

func (l *GenerateLookBatchLogic) GenerateLookBatch(req *types.GenerateLookBatchRequest) (resp *types.ListLooksResponse, err error) {
	if req == nil || len(req.Prompts) == 0 || len(req.Prompts) > maxBatchSize {
		return nil, errors.New(errno.InvalidParam, "between 1 and 10 prompts are required")
	}

	looks, err := l.svcCtx.Looks.GenerateBatch(l.ctx, req.Prompts, generateOptions(req.MaxItems, req.Budget, req.Gender)...)
	if err != nil {
		l.Logger.Errorf("generate look batch failed after %d looks: %v", len(looks), err)
		return nil, helper.ToCodeMsg(err)
	}

	return &types.ListLooksResponse{
		StatusCode: errno.StatusOK,
		StatusMsg:  "ok",
		Looks:      looks,
	}, nil
}
