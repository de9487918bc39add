package cart

import (
	"net/http"

	"Lookbook/app/api/storefront/internal/logic/cart"
	"Lookbook/app/api/storefront/internal/svc"
	"Lookbook/app/api/storefront/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func RemoveCartItemHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.RemoveCartItemRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := cart.NewRemoveCartItemLogic(r.Context(), svcCtx)
		resp, err := l.RemoveCartItem(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
