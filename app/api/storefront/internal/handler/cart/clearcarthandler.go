package cart

import (
	"net/http"

	"Lookbook/app/api/storefront/internal/logic/cart"
	"Lookbook/app/api/storefront/internal/svc"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func ClearCartHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := cart.NewClearCartLogic(r.Context(), svcCtx)
		resp, err := l.ClearCart()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
