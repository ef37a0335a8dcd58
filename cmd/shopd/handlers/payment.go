package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	apierr "github.com/shopfab/shopfab/pkg/api/types/errors"
	apiorders "github.com/shopfab/shopfab/pkg/api/types/orders"
	apipayments "github.com/shopfab/shopfab/pkg/api/types/payments"
	"github.com/shopfab/shopfab/pkg/auth"
	kdb "github.com/shopfab/shopfab/pkg/db"
	"github.com/shopfab/shopfab/pkg/payment"
	"github.com/shopfab/shopfab/pkg/utils/slices"
)

// GatewayTokenHandler hands out a gateway client token for the
// browser-side drop-in UI.
func GatewayTokenHandler(gateway payment.Gateway) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		token, err := gateway.ClientToken(ctx)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apipayments.TokenResponse{ClientToken: token})
	}
}

// CheckoutHandler charges a cart and records the resulting order.
//
// The total is computed from the catalog's current prices, never from
// the client. Line items are snapshotted into the order so later catalog
// edits leave past orders intact.
func CheckoutHandler(
	gateway payment.Gateway,
	products kdb.ProductInterface,
	orders kdb.OrderInterface,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		buyerId := auth.UserIdFrom(c)

		req := apipayments.CheckoutRequest{}
		decoder := json.NewDecoder(c.Request().Body)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			return apierr.NewErrorMessage(
				http.StatusBadRequest,
				"format error",
				apierr.WithAdvice(err.Error()),
				apierr.WithError(err),
			)
		}

		if req.Nonce == "" {
			return apierr.BadRequest("payment nonce is required", nil)
		}
		if len(req.Cart) == 0 {
			return apierr.BadRequest("cart is empty", nil)
		}

		if _, found := slices.First(req.Cart, func(item apipayments.CartItem) bool {
			return item.Quantity < 1
		}); found {
			return apierr.BadRequest("quantity should be 1 or more", nil)
		}

		catalog, err := products.Get(ctx, slices.Map(
			req.Cart,
			func(item apipayments.CartItem) string { return item.ProductId },
		))
		if err != nil {
			return apierr.InternalServerError(err)
		}

		totalCents := int64(0)
		items, err := slices.MapUntilError(req.Cart, func(cartItem apipayments.CartItem) (kdb.OrderItem, error) {
			prod, ok := catalog[cartItem.ProductId]
			if !ok {
				return kdb.OrderItem{}, apierr.BadRequest("unknown product in cart: "+cartItem.ProductId, nil)
			}
			totalCents += prod.PriceCents * int64(cartItem.Quantity)
			return kdb.OrderItem{
				ProductId:  prod.ProductId,
				Name:       prod.Name,
				PriceCents: prod.PriceCents,
				Quantity:   cartItem.Quantity,
			}, nil
		})
		if err != nil {
			return err
		}

		tx, err := gateway.Sale(ctx, totalCents, req.Nonce)
		if errors.Is(err, payment.ErrDeclined) {
			return apierr.PaymentRequired(err.Error(), err)
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		order, err := orders.Create(ctx, kdb.OrderSpec{
			BuyerId:       buyerId,
			Items:         items,
			TotalCents:    totalCents,
			TransactionId: tx.TransactionId,
		})
		if err != nil {
			// charged but not recorded. keep the transaction id in the
			// error so the operator can reconcile with the gateway.
			return apierr.InternalServerError(
				fmt.Errorf("recording order for transaction %s: %w", tx.TransactionId, err),
			)
		}

		return c.JSON(http.StatusCreated, apipayments.Receipt{
			Ok:    true,
			Order: apiorders.ComposeDetail(order),
		})
	}
}
