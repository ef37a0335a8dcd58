package products

import (
	"time"

	apicategories "github.com/shopfab/shopfab/pkg/api/types/categories"
	"github.com/shopfab/shopfab/pkg/api/types/money"
	kdb "github.com/shopfab/shopfab/pkg/db"
)

// Detail is a product on the wire. The photo is never inlined; the UI
// fetches it from the photo endpoint.
type Detail struct {
	ProductId   string                `json:"productId"`
	Name        string                `json:"name"`
	Slug        string                `json:"slug"`
	Description string                `json:"description"`
	Price       float64               `json:"price"`
	Quantity    int                   `json:"quantity"`
	Shipping    bool                  `json:"shipping"`
	Category    apicategories.Summary `json:"category"`
	CreatedAt   time.Time             `json:"createdAt"`
}

func (d *Detail) Equal(o *Detail) bool {
	if (d == nil) || (o == nil) {
		return (d == nil) && (o == nil)
	}
	return d.ProductId == o.ProductId &&
		d.Name == o.Name &&
		d.Slug == o.Slug &&
		d.Description == o.Description &&
		d.Price == o.Price &&
		d.Quantity == o.Quantity &&
		d.Shipping == o.Shipping &&
		d.Category.Equal(&o.Category) &&
		d.CreatedAt.Equal(o.CreatedAt)
}

func ComposeDetail(p kdb.Product) Detail {
	return Detail{
		ProductId:   p.ProductId,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Price:       money.FromCents(p.PriceCents),
		Quantity:    p.Quantity,
		Shipping:    p.Shipping,
		Category:    apicategories.ComposeSummary(p.Category),
		CreatedAt:   p.CreatedAt,
	}
}

// FilterRequest is the storefront filter form: checked category ids and
// a [low, high] price bracket in dollars. Both restrictions are optional.
type FilterRequest struct {
	Checked []string  `json:"checked"`
	Radio   []float64 `json:"radio"`
}

type Count struct {
	Total int `json:"total"`
}

// CategoryProducts is a category page: the category and its products.
type CategoryProducts struct {
	Category apicategories.Summary `json:"category"`
	Products []Detail              `json:"products"`
}
