package orders

import (
	"time"

	"github.com/shopfab/shopfab/pkg/api/types/money"
	apiusers "github.com/shopfab/shopfab/pkg/api/types/users"
	kdb "github.com/shopfab/shopfab/pkg/db"
	"github.com/shopfab/shopfab/pkg/utils/cmp"
	"github.com/shopfab/shopfab/pkg/utils/slices"
)

// Item is an ordered product as it was priced at checkout time.
type Item struct {
	ProductId string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

func composeItem(i kdb.OrderItem) Item {
	return Item{
		ProductId: i.ProductId,
		Name:      i.Name,
		Price:     money.FromCents(i.PriceCents),
		Quantity:  i.Quantity,
	}
}

type Detail struct {
	OrderId       string           `json:"orderId"`
	Status        string           `json:"status"`
	Buyer         apiusers.Profile `json:"buyer"`
	Items         []Item           `json:"items"`
	Total         float64          `json:"total"`
	TransactionId string           `json:"transactionId"`
	CreatedAt     time.Time        `json:"createdAt"`
}

func (d *Detail) Equal(o *Detail) bool {
	if (d == nil) || (o == nil) {
		return (d == nil) && (o == nil)
	}
	return d.OrderId == o.OrderId &&
		d.Status == o.Status &&
		d.Buyer.Equal(&o.Buyer) &&
		cmp.SliceEq(d.Items, o.Items) &&
		d.Total == o.Total &&
		d.TransactionId == o.TransactionId &&
		d.CreatedAt.Equal(o.CreatedAt)
}

func ComposeDetail(o kdb.Order) Detail {
	return Detail{
		OrderId:       o.OrderId,
		Status:        o.Status.String(),
		Buyer:         apiusers.ComposeProfile(o.Buyer),
		Items:         slices.Map(o.Items, composeItem),
		Total:         money.FromCents(o.TotalCents),
		TransactionId: o.TransactionId,
		CreatedAt:     o.CreatedAt,
	}
}

type StatusChange struct {
	Status string `json:"status"`
}
