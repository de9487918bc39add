package model

import "time"

type Status string

const (
	StatusNew       Status = "new"
	StatusPrep      Status = "prep"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancel    Status = "cancel"
	StatusReturn    Status = "return"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusPrep, StatusShipped, StatusDelivered, StatusCancel, StatusReturn:
		return true
	}
	return false
}

// Terminal statuses accept no further transitions in strict mode.
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancel || s == StatusReturn
}

type (
	Color struct {
		Name string `json:"name"`
		Hex  string `json:"hex,omitempty"`
	}

	// ItemRef identifies a cart line: product plus the chosen size and colour.
	ItemRef struct {
		ProductId string `json:"productId"`
		Size      string `json:"size,omitempty"`
		Color     *Color `json:"color,omitempty"`
	}

	CartLine struct {
		ProductId string `json:"productId"`
		Name      string `json:"name"`
		Image     string `json:"image,omitempty"`
		Price     int64  `json:"price"`
		Quantity  int64  `json:"quantity"`
		Size      string `json:"size,omitempty"`
		Color     *Color `json:"color,omitempty"`
	}

	CartShop struct {
		StoreId               string     `json:"storeId"`
		StoreName             string     `json:"storeName"`
		Items                 []CartLine `json:"items"`
		DeliveryFee           int64      `json:"deliveryFee"`
		FreeDeliveryThreshold int64      `json:"freeDeliveryThreshold,omitempty"`
	}

	Cart struct {
		Shops []CartShop `json:"shops"`
		Count int64      `json:"count"`
	}

	Fees struct {
		Subtotal    int64 `json:"subtotal"`
		DeliveryFee int64 `json:"deliveryFee"`
		ServiceFee  int64 `json:"serviceFee"`
		Total       int64 `json:"total"`
	}

	TimelineEntry struct {
		Status Status    `json:"status"`
		At     time.Time `json:"at"`
		Note   string    `json:"note"`
	}

	Order struct {
		Id        string          `json:"id"`
		Number    string          `json:"number"`
		BuyerId   string          `json:"buyerId"`
		StoreId   string          `json:"storeId"`
		StoreName string          `json:"storeName"`
		Date      time.Time       `json:"dateISO"`
		Status    Status          `json:"status"`
		Items     []CartLine      `json:"items"`
		Address   string          `json:"address"`
		Fees      Fees            `json:"fees"`
		Timeline  []TimelineEntry `json:"timeline"`
		ETA       *time.Time      `json:"eta,omitempty"`
	}

	Notification struct {
		Id          string    `json:"id"`
		Type        string    `json:"type"`
		Title       string    `json:"title"`
		Subtitle    string    `json:"subtitle"`
		CreatedAt   time.Time `json:"createdAt"`
		IsRead      bool      `json:"isRead"`
		Audience    string    `json:"audience"`
		OrderId     string    `json:"orderId,omitempty"`
		OrderNumber string    `json:"orderNumber,omitempty"`
	}

	// CheckoutResult points at the first order created by a checkout.
	CheckoutResult struct {
		OrderId  string   `json:"orderId"`
		Number   string   `json:"number"`
		OrderIds []string `json:"orderIds"`
	}

	ServiceFeeConf struct {
		Mode    string  `json:",default=percent,options=percent|flat|mixed"`
		Percent float64 `json:",optional"`
		Flat    float64 `json:",optional"`
		// MinFee and MaxFee apply when positive.
		MinFee        int64 `json:",optional"`
		MaxFee        int64 `json:",optional"`
		ApplyPerStore bool  `json:",default=true"`
	}
)

const (
	NotificationOrderCreated = "order_created"
	NotificationNewOrder     = "new_order"
	NotificationOrderStatus  = "order_status"
	NotificationOrderOverdue = "order_overdue"
)

// Equal compares colours field by field. Two nil colours are equal.
func (c *Color) Equal(o *Color) bool {
	if c == nil || o == nil {
		return c == nil && o == nil
	}
	return c.Name == o.Name && c.Hex == o.Hex
}

func (l CartLine) Matches(ref ItemRef) bool {
	return l.ProductId == ref.ProductId && l.Size == ref.Size && l.Color.Equal(ref.Color)
}

func (s CartShop) Subtotal() int64 {
	var sum int64
	for _, it := range s.Items {
		sum += it.Price * it.Quantity
	}
	return sum
}

// RemainingForFreeDelivery is how much more must be spent in this shop before
// delivery becomes free. Zero when there is no threshold or it is reached.
func (s CartShop) RemainingForFreeDelivery() int64 {
	if s.FreeDeliveryThreshold <= 0 {
		return 0
	}
	if rest := s.FreeDeliveryThreshold - s.Subtotal(); rest > 0 {
		return rest
	}
	return 0
}

// Clone copies the order deeply so the buyer and seller copies never share
// slices.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	cp := *o
	cp.Items = append([]CartLine(nil), o.Items...)
	for i := range cp.Items {
		if c := cp.Items[i].Color; c != nil {
			cc := *c
			cp.Items[i].Color = &cc
		}
	}
	cp.Timeline = append([]TimelineEntry(nil), o.Timeline...)
	if o.ETA != nil {
		eta := *o.ETA
		cp.ETA = &eta
	}
	return &cp
}
