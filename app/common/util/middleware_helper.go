package util

import (
	"context"
	"net/http"

	"Lookbook/app/common/consts/biz"
	"Lookbook/app/common/consts/errno"

	"github.com/zeromicro/x/errors"
)

func BuyerIdFromCtx(ctx context.Context) (string, error) {
	if ctx == nil {
		return "", errors.New(int(errno.InvalidParam), "missing context")
	}

	switch val := ctx.Value(biz.BUYER_KEY).(type) {
	case string:
		if val != "" {
			return val, nil
		}
	}

	return "", errors.New(int(errno.InvalidParam), "missing buyer id")
}

// AudienceFromCtx defaults to the buyer audience.
func AudienceFromCtx(ctx context.Context) string {
	if ctx == nil {
		return biz.AudienceBuyer
	}
	if val, ok := ctx.Value(biz.AUDIENCE_KEY).(string); ok && val == biz.AudienceSeller {
		return biz.AudienceSeller
	}
	return biz.AudienceBuyer
}

func InjectSession2Ctx(r *http.Request, buyerId, audience string) {
	ctx := context.WithValue(r.Context(), biz.BUYER_KEY, buyerId)
	ctx = context.WithValue(ctx, biz.AUDIENCE_KEY, audience)
	*r = *r.WithContext(ctx)
}
