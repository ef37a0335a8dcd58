package payment

import (
	"context"
	"errors"
	"fmt"

	braintree "github.com/braintree-go/braintree-go"
	kcs "github.com/shopfab/shopfab/pkg/configs/server"
)

var ErrUnknownGatewayEnvironment = errors.New("unknown gateway environment")

type braintreeGateway struct {
	bt *braintree.Braintree
}

var _ Gateway = &braintreeGateway{}

// NewBraintree builds a Gateway on the Braintree SDK from config.
func NewBraintree(conf kcs.GatewayConfig) (Gateway, error) {
	var env braintree.Environment
	switch conf.Environment {
	case "sandbox":
		env = braintree.Sandbox
	case "production":
		env = braintree.Production
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownGatewayEnvironment, conf.Environment)
	}

	return &braintreeGateway{
		bt: braintree.New(env, conf.MerchantId, conf.PublicKey, conf.PrivateKey),
	}, nil
}

func (g *braintreeGateway) ClientToken(ctx context.Context) (string, error) {
	return g.bt.ClientToken().Generate(ctx)
}

func (g *braintreeGateway) Sale(ctx context.Context, amountCents int64, nonce string) (Transaction, error) {
	tx, err := g.bt.Transaction().Create(ctx, &braintree.TransactionRequest{
		Type:               "sale",
		Amount:             braintree.NewDecimal(amountCents, 2),
		PaymentMethodNonce: nonce,
		Options: &braintree.TransactionOptions{
			SubmitForSettlement: true,
		},
	})
	if err != nil {
		if bterr := new(braintree.BraintreeError); errors.As(err, &bterr) {
			return Transaction{}, fmt.Errorf("%w: %s", ErrDeclined, bterr.ErrorMessage)
		}
		return Transaction{}, err
	}

	return Transaction{
		TransactionId: tx.Id,
		Status:        string(tx.Status),
	}, nil
}
