// Package payment wraps the card-payment gateway.
//
// The storefront only forwards a payment nonce from the browser drop-in UI
// and records the resulting transaction; nothing about cards is handled
// here.
package payment

import (
	"context"
	"errors"
)

// the gateway did not accept the sale (card declined, bad nonce, ...).
var ErrDeclined = errors.New("payment declined")

// Transaction is the settled (or settling) sale, as the gateway reports it.
type Transaction struct {
	TransactionId string
	Status        string
}

type Gateway interface {
	// ClientToken generates a token for the browser-side drop-in UI.
	ClientToken(ctx context.Context) (string, error)

	// Sale submits a sale of amountCents for settlement, paying with
	// the given payment method nonce.
	//
	// Returns ErrDeclined (wrapped, with the gateway's message) when
	// the gateway does not accept the sale.
	Sale(ctx context.Context, amountCents int64, nonce string) (Transaction, error)
}
