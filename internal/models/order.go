package models

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type Order struct {
	ID               uuid.UUID     `json:"id"`
	SessionID        string        `json:"-"`
	Items            []CartItem    `json:"items"`
	TotalItems       int           `json:"totalItems"`
	Summary          OrderSummary  `json:"summary"`
	ShippingInfo     ShippingInfo  `json:"shippingInfo"`
	PaymentMethod    PaymentMethod `json:"paymentMethod"`
	PaymentReference string        `json:"paymentReference"`
	Status           OrderStatus   `json:"status"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

// OrderPlacedEvent is published once an order is completed.
type OrderPlacedEvent struct {
	OrderID    uuid.UUID `json:"orderId"`
	Email      string    `json:"email"`
	TotalItems int       `json:"totalItems"`
	Total      float64   `json:"total"`
	Lines      []OrderLine `json:"lines"`
	PlacedAt   time.Time   `json:"placedAt"`
}

type OrderLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func NewOrderPlacedEvent(order *Order) *OrderPlacedEvent {
	event := &OrderPlacedEvent{
		OrderID:    order.ID,
		Email:      order.ShippingInfo.Email,
		TotalItems: order.TotalItems,
		Total:      order.Summary.Total,
		PlacedAt:   order.CreatedAt,
	}

	for _, item := range order.Items {
		event.Lines = append(event.Lines, OrderLine{ProductID: item.Product.ID, Quantity: item.Quantity})
	}

	return event
}
