package http

import "time"

// Error is the uniform error payload of the API.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest opens a new escrowed order.
type CreateOrderRequest struct {
	Customer string `json:"customer"`
	Amount   int64  `json:"amount"`
	Number   string `json:"number"`
}

// PayOrderRequest settles an order's amount into escrow custody.
type PayOrderRequest struct {
	Amount int64 `json:"amount"`
}

// OrderNumberRequest addresses an order by its business reference.
type OrderNumberRequest struct {
	Number string `json:"number"`
}

// AddPartnerRequest grants the delivery partner role.
type AddPartnerRequest struct {
	Address string `json:"address"`
}

// Order is the full order read model.
type Order struct {
	ID          string     `json:"id"`
	Number      string     `json:"number"`
	Customer    string     `json:"customer"`
	Amount      int64      `json:"amount"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	PaidAt      *time.Time `json:"paidAt,omitempty"`
	ShippedAt   *time.Time `json:"shippedAt,omitempty"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`
	ReturnedAt  *time.Time `json:"returnedAt,omitempty"`
	RefundedAt  *time.Time `json:"refundedAt,omitempty"`
	ClosedAt    *time.Time `json:"closedAt,omitempty"`
}

// OrderEvent is one audit trail entry.
type OrderEvent struct {
	Name       string    `json:"name"`
	Actor      string    `json:"actor"`
	Status     string    `json:"status"`
	Amount     int64     `json:"amount"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Balance is the owner settlement balance.
type Balance struct {
	Balance int64 `json:"balance"`
}

// Owner is the platform owner address.
type Owner struct {
	Owner string `json:"owner"`
}

// PartnerStatus reports delivery-partner role membership.
type PartnerStatus struct {
	Address   string `json:"address"`
	IsPartner bool   `json:"isPartner"`
}
