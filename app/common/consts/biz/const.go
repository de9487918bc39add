package biz

type CtxKey string

const (
	BUYER_KEY    CtxKey = "buyer_id"
	AUDIENCE_KEY CtxKey = "audience"

	BUYER_HEADER    = "X-Buyer-Id"
	AUDIENCE_HEADER = "X-Audience"
)

const (
	AudienceBuyer  = "buyer"
	AudienceSeller = "seller"
)

// snapshot keys
const (
	SnapshotCart          = "storefront:cart"
	SnapshotBuyerOrders   = "storefront:orders:buyer"
	SnapshotSellerOrders  = "storefront:orders:seller"
	SnapshotNotifications = "storefront:notifications"
	SnapshotLooks         = "lookgen:looks"
)

const (
	TopicOrderCreated       = "order.created"
	TopicOrderStatusChanged = "order.status_changed"
)

const TaskOrderEtaCheck = "order:eta_check"
