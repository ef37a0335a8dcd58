package mock

import (
	"context"
	"errors"

	"github.com/shopfab/shopfab/pkg/payment"
)

type CallLog[T any] []T

func (l CallLog[T]) Times() uint {
	return uint(len(l))
}

type Gateway struct {
	Impl struct {
		ClientToken func(context.Context) (string, error)
		Sale        func(context.Context, int64, string) (payment.Transaction, error)
	}
	Calls struct {
		ClientToken CallLog[struct{}]
		Sale        CallLog[struct {
			AmountCents int64
			Nonce       string
		}]
	}
}

func NewGateway() *Gateway {
	return &Gateway{}
}

var _ payment.Gateway = &Gateway{}

func (m *Gateway) ClientToken(ctx context.Context) (string, error) {
	m.Calls.ClientToken = append(m.Calls.ClientToken, struct{}{})
	if m.Impl.ClientToken != nil {
		return m.Impl.ClientToken(ctx)
	}
	panic(errors.New("it should not be called"))
}

func (m *Gateway) Sale(ctx context.Context, amountCents int64, nonce string) (payment.Transaction, error) {
	m.Calls.Sale = append(m.Calls.Sale, struct {
		AmountCents int64
		Nonce       string
	}{AmountCents: amountCents, Nonce: nonce})
	if m.Impl.Sale != nil {
		return m.Impl.Sale(ctx, amountCents, nonce)
	}
	panic(errors.New("it should not be called"))
}
