package mq

import (
	"time"

	"Lookbook/app/services/storefront/model"
)

// OrderCreatedEvent is published once per order at checkout.
type OrderCreatedEvent struct {
	OrderId   string    `json:"order_id"`
	Number    string    `json:"number"`
	BuyerId   string    `json:"buyer_id"`
	StoreId   string    `json:"store_id"`
	Total     int64     `json:"total"`
	Items     int       `json:"items"`
	CreatedAt time.Time `json:"created_at"`
}

type OrderStatusChangedEvent struct {
	OrderId string       `json:"order_id"`
	Number  string       `json:"number"`
	StoreId string       `json:"store_id"`
	From    model.Status `json:"from"`
	To      model.Status `json:"to"`
	At      time.Time    `json:"at"`
}

// EtaCheckPayload is the body of the delayed order:eta_check task.
type EtaCheckPayload struct {
	OrderId string    `json:"order_id"`
	ETA     time.Time `json:"eta"`
}
