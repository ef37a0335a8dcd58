package mocks

import (
	"context"
	"errors"

	kdb "github.com/shopfab/shopfab/pkg/db"
)

type OrderInterface struct {
	Impl struct {
		Create       func(context.Context, kdb.OrderSpec) (kdb.Order, error)
		FindByBuyer  func(context.Context, string) ([]kdb.Order, error)
		FindAll      func(context.Context) ([]kdb.Order, error)
		UpdateStatus func(context.Context, string, kdb.OrderStatus) (kdb.Order, error)
	}
	Calls struct {
		Create      CallLog[kdb.OrderSpec]
		FindByBuyer CallLog[struct{ BuyerId string }]
		FindAll     CallLog[struct{}]
		UpdateStatus CallLog[struct {
			OrderId string
			Status  kdb.OrderStatus
		}]
	}
}

func NewOrderInterface() *OrderInterface {
	return &OrderInterface{}
}

var _ kdb.OrderInterface = &OrderInterface{}

func (m *OrderInterface) Create(ctx context.Context, spec kdb.OrderSpec) (kdb.Order, error) {
	m.Calls.Create = append(m.Calls.Create, spec)
	if m.Impl.Create != nil {
		return m.Impl.Create(ctx, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *OrderInterface) FindByBuyer(ctx context.Context, buyerId string) ([]kdb.Order, error) {
	m.Calls.FindByBuyer = append(m.Calls.FindByBuyer, struct{ BuyerId string }{BuyerId: buyerId})
	if m.Impl.FindByBuyer != nil {
		return m.Impl.FindByBuyer(ctx, buyerId)
	}
	panic(errors.New("it should not be called"))
}

func (m *OrderInterface) FindAll(ctx context.Context) ([]kdb.Order, error) {
	m.Calls.FindAll = append(m.Calls.FindAll, struct{}{})
	if m.Impl.FindAll != nil {
		return m.Impl.FindAll(ctx)
	}
	panic(errors.New("it should not be called"))
}

func (m *OrderInterface) UpdateStatus(ctx context.Context, orderId string, status kdb.OrderStatus) (kdb.Order, error) {
	m.Calls.UpdateStatus = append(m.Calls.UpdateStatus, struct {
		OrderId string
		Status  kdb.OrderStatus
	}{OrderId: orderId, Status: status})
	if m.Impl.UpdateStatus != nil {
		return m.Impl.UpdateStatus(ctx, orderId, status)
	}
	panic(errors.New("it should not be called"))
}
