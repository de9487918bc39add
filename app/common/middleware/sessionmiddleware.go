package middleware

import (
	"net/http"
	"strings"

	"Lookbook/app/common/consts/biz"
	"Lookbook/app/common/util"
)

// SessionMiddleware resolves who is calling. There is no authentication: the
// buyer id comes from a header and falls back to the configured default.
type SessionMiddleware struct {
	DefaultBuyerId string
}

func NewSessionMiddleware(defaultBuyerId string) *SessionMiddleware {
	return &SessionMiddleware{
		DefaultBuyerId: defaultBuyerId,
	}
}

func (m *SessionMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		buyerId := strings.TrimSpace(r.Header.Get(biz.BUYER_HEADER))
		if buyerId == "" {
			buyerId = m.DefaultBuyerId
		}

		audience := biz.AudienceBuyer
		if strings.EqualFold(strings.TrimSpace(r.Header.Get(biz.AUDIENCE_HEADER)), biz.AudienceSeller) {
			audience = biz.AudienceSeller
		}

		util.InjectSession2Ctx(r, buyerId, audience)
		next(w, r)
	}
}
