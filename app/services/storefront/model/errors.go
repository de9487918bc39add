package model

import "errors"

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrShopNotFound         = errors.New("shop not found")
	ErrItemNotFound         = errors.New("cart item not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrInvalidQuantity      = errors.New("invalid quantity")
	ErrNotificationNotFound = errors.New("notification not found")
)
