package errno

const (
	StatusOK = 10000
)

const (
	InternalError = 50000 + iota
	InvalidParam
	ProductNotFound
	ShopNotFound
	CartItemNotFound
	EmptyCart
	OrderNotFound
	InvalidStatus
	NotificationNotFound
)

const (
	LookGenerationFailed = 60000 + iota
)
