package notification

import (
	"net/http"

	"Lookbook/app/api/storefront/internal/logic/notification"
	"Lookbook/app/api/storefront/internal/svc"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func ListNotificationsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := notification.NewListNotificationsLogic(r.Context(), svcCtx)
		resp, err := l.ListNotifications()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
