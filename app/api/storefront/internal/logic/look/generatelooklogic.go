package look

import (
	"context"

	"Lookbook/app/api/storefront/internal/logic/helper"
	"Lookbook/app/api/storefront/internal/svc"
	"Lookbook/app/api/storefront/internal/types"
	"Lookbook/app/common/consts/errno"
	"Lookbook/app/dal/catalog"
	"Lookbook/app/services/lookgen"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type GenerateLookLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGenerateLookLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GenerateLookLogic {
	return &GenerateLookLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GenerateLookLogic) GenerateLook(req *types.GenerateLookRequest) (resp *types.LookResponse, err error) {
	if req == nil {
		return nil, errors.New(errno.InvalidParam, "invalid look request")
	}

	lk, err := l.svcCtx.Looks.Generate(l.ctx, req.Prompt, generateOptions(req.MaxItems, req.Budget, req.Gender)...)
	if err != nil {
		l.Logger.Errorf("generate look failed: %v", err)
		return nil, helper.ToCodeMsg(err)
	}

	return &types.LookResponse{
		StatusCode: errno.StatusOK,
		StatusMsg:  "ok",
		Look:       lk,
	}, nil
}

func generateOptions(maxItems int, budget int64, gender string) []lookgen.GenerateOption {
	var opts []lookgen.GenerateOption
	if maxItems > 0 {
		opts = append(opts, lookgen.WithMaxItems(maxItems))
	}
	if budget > 0 {
		opts = append(opts, lookgen.WithBudget(budget))
	}
	if gender != "" {
		opts = append(opts, lookgen.WithGender(catalog.Gender(gender)))
	}
	return opts
}
