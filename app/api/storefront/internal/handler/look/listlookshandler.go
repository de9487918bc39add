package look

import (
	"net/http"

	"Lookbook/app/api/storefront/internal/logic/look"
	"Lookbook/app/api/storefront/internal/svc"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func ListLooksHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := look.NewListLooksLogic(r.Context(), svcCtx)
		resp, err := l.ListLooks()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
