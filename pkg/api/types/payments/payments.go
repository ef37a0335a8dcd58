package payments

import (
	apiorders "github.com/shopfab/shopfab/pkg/api/types/orders"
)

type TokenResponse struct {
	ClientToken string `json:"clientToken"`
}

// CartItem references a catalog product; the server re-reads the current
// price, the client-side cart total is never trusted.
type CartItem struct {
	ProductId string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type CheckoutRequest struct {
	Nonce string     `json:"nonce"`
	Cart  []CartItem `json:"cart"`
}

type Receipt struct {
	Ok    bool             `json:"ok"`
	Order apiorders.Detail `json:"order"`
}
