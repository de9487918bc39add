package look

import (
	"net/http"

	"Lookbook/app/api/storefront/internal/logic/look"
	"Lookbook/app/api/storefront/internal/svc"
	"Lookbook/app/api/storefront/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func GenerateLookBatchHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.GenerateLookBatchRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := look.NewGenerateLookBatchLogic(r.Context(), svcCtx)
		resp, err := l.GenerateLookBatch(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
