package types

import (
	"Lookbook/app/services/lookgen/look"
	"Lookbook/app/services/storefront/model"
)

type GenerateLookRequest struct {
	Prompt   string `json:"prompt,optional"`
	MaxItems int    `json:"maxItems,optional"`
	Budget   int64  `json:"budget,optional"`
	Gender   string `json:"gender,optional"`
}

type GenerateLookBatchRequest struct {
	Prompts  []string `json:"prompts"`
	MaxItems int      `json:"maxItems,optional"`
	Budget   int64    `json:"budget,optional"`
	Gender   string   `json:"gender,optional"`
}

type LookResponse struct {
	StatusCode int        `json:"status_code"`
	StatusMsg  string     `json:"status_msg"`
	Look       *look.Look `json:"look,omitempty"`
}

type ListLooksResponse struct {
	StatusCode int          `json:"status_code"`
	StatusMsg  string       `json:"status_msg"`
	Looks      []*look.Look `json:"looks"`
}

type CartItemRequest struct {
	ProductId string       `json:"productId"`
	Quantity  int64        `json:"quantity"`
	Size      string       `json:"size,optional"`
	Color     *model.Color `json:"color,optional"`
}

// UpdateCartItemRequest moves a line by Delta. Mode "adjust" removes the line
// at zero, "floor" keeps it at one.
type UpdateCartItemRequest struct {
	ProductId string       `json:"productId"`
	StoreId   string       `json:"storeId"`
	Delta     int64        `json:"delta"`
	Mode      string       `json:"mode,default=floor,options=floor|adjust"`
	Size      string       `json:"size,optional"`
	Color     *model.Color `json:"color,optional"`
}

type RemoveCartItemRequest struct {
	ProductId string `form:"productId"`
	StoreId   string `form:"storeId"`
}

type CartShop struct {
	model.CartShop
	Subtotal             int64 `json:"subtotal"`
	RemainingForFreeShip int64 `json:"remainingForFreeDelivery"`
}

type CartResponse struct {
	StatusCode int        `json:"status_code"`
	StatusMsg  string     `json:"status_msg"`
	Shops      []CartShop `json:"shops"`
	Count      int64      `json:"count"`
}

type CheckoutRequest struct {
	Address string `json:"address,optional"`
}

type CheckoutResponse struct {
	StatusCode int      `json:"status_code"`
	StatusMsg  string   `json:"status_msg"`
	OrderId    string   `json:"orderId"`
	Number     string   `json:"number"`
	OrderIds   []string `json:"orderIds"`
}

type ListOrdersRequest struct {
	StoreId string `form:"storeId,optional"`
}

type ListOrdersResponse struct {
	StatusCode int            `json:"status_code"`
	StatusMsg  string         `json:"status_msg"`
	Orders     []*model.Order `json:"orders"`
}

type SetOrderStatusRequest struct {
	OrderId string `path:"id"`
	Status  string `json:"status"`
}

type OrderResponse struct {
	StatusCode int          `json:"status_code"`
	StatusMsg  string       `json:"status_msg"`
	Order      *model.Order `json:"order,omitempty"`
}

type ListNotificationsResponse struct {
	StatusCode    int                  `json:"status_code"`
	StatusMsg     string               `json:"status_msg"`
	Notifications []model.Notification `json:"notifications"`
	Unread        int                  `json:"unread"`
}

type MarkReadRequest struct {
	NotificationId string `path:"id"`
}

type ActionResponse struct {
	StatusCode int    `json:"status_code"`
	StatusMsg  string `json:"status_msg"`
}
