package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopfab/shopfab/pkg/utils/cmp"
)

var ErrUnknownOrderStatus = errors.New("unknown order status")

type OrderStatus string

// status names are kept as the storefront UI displays them.
var (
	OrderNotProcessed OrderStatus = "Not Process"
	OrderProcessing   OrderStatus = "Processing"
	OrderShipped      OrderStatus = "Shipped"
	OrderDelivered    OrderStatus = "Delivered"
	OrderCancelled    OrderStatus = "Cancelled"
)

func (s OrderStatus) String() string {
	return string(s)
}

func AsOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderNotProcessed, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return OrderStatus(s), nil
	default:
		return OrderStatus(s), fmt.Errorf("%w: %s", ErrUnknownOrderStatus, s)
	}
}

// OrderItem is a snapshot of a product at checkout time, so that later
// catalog edits do not rewrite past orders.
type OrderItem struct {
	ProductId  string
	Name       string
	PriceCents int64
	Quantity   int
}

type Order struct {
	OrderId       string
	Buyer         User
	Items         []OrderItem
	TotalCents    int64
	TransactionId string
	Status        OrderStatus
	CreatedAt     time.Time
}

func (o *Order) Equal(other *Order) bool {
	if (o == nil) || (other == nil) {
		return (o == nil) && (other == nil)
	}
	return o.OrderId == other.OrderId &&
		o.Buyer.Equal(&other.Buyer) &&
		cmp.SliceEq(o.Items, other.Items) &&
		o.TotalCents == other.TotalCents &&
		o.TransactionId == other.TransactionId &&
		o.Status == other.Status &&
		o.CreatedAt.Equal(other.CreatedAt)
}

// OrderSpec is a checkout result to be recorded.
type OrderSpec struct {
	BuyerId       string
	Items         []OrderItem
	TotalCents    int64
	TransactionId string
}

type OrderInterface interface {
	// Create records a new order with status "Not Process".
	//
	// Returns ErrMissing when the buyer does not exist.
	Create(ctx context.Context, spec OrderSpec) (Order, error)

	// FindByBuyer lists orders of one buyer, newest first.
	FindByBuyer(ctx context.Context, buyerId string) ([]Order, error)

	// FindAll lists every order, newest first.
	FindAll(ctx context.Context) ([]Order, error)

	// UpdateStatus sets the status of an order and returns the updated one.
	//
	// Returns ErrMissing when no such order exists.
	UpdateStatus(ctx context.Context, orderId string, status OrderStatus) (Order, error)
}
