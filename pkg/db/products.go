package db

import (
	"context"
	"time"
)

// ProductBody is a product without its category resolved.
type ProductBody struct {
	ProductId   string
	Name        string
	Slug        string
	Description string

	// price in cents. wire types convert to decimal dollars.
	PriceCents int64

	Quantity  int
	Shipping  bool
	CreatedAt time.Time
}

func (p *ProductBody) Equal(o *ProductBody) bool {
	if (p == nil) || (o == nil) {
		return (p == nil) && (o == nil)
	}
	return p.ProductId == o.ProductId &&
		p.Name == o.Name &&
		p.Slug == o.Slug &&
		p.Description == o.Description &&
		p.PriceCents == o.PriceCents &&
		p.Quantity == o.Quantity &&
		p.Shipping == o.Shipping &&
		p.CreatedAt.Equal(o.CreatedAt)
}

type Product struct {
	ProductBody
	Category Category
}

func (p *Product) Equal(o *Product) bool {
	if (p == nil) || (o == nil) {
		return (p == nil) && (o == nil)
	}
	return p.ProductBody.Equal(&o.ProductBody) &&
		p.Category.Equal(&o.Category)
}

// Photo is the stored product image. It is kept out of Product so that
// list queries never drag image bytes along.
type Photo struct {
	ContentType string
	Data        []byte
}

// ProductSpec is the user-provided part of a product, for create and update.
type ProductSpec struct {
	Name        string
	Slug        string
	Description string
	PriceCents  int64
	CategoryId  string
	Quantity    int
	Shipping    bool

	// nil keeps the stored photo (on update) or registers none (on create).
	Photo *Photo
}

// ProductFindQuery restricts Find. Zero value = everything.
type ProductFindQuery struct {
	// products belonging to any of these categories. empty = all.
	CategoryIds []string

	// price bracket, in cents. nil = unbounded.
	PriceMinCents *int64
	PriceMaxCents *int64

	// case-insensitive substring over name and description.
	Keyword string

	// OFFSET/LIMIT. Limit <= 0 means no limit.
	Offset int
	Limit  int
}

type ProductInterface interface {
	// Create registers a new product.
	//
	// Returns ErrDuplicate when the slug is taken,
	// ErrMissing when the category does not exist.
	Create(ctx context.Context, spec ProductSpec) (Product, error)

	// Update overwrites a product with spec. A nil spec.Photo keeps the
	// stored photo.
	//
	// Returns ErrMissing when no such product (or category) exists.
	Update(ctx context.Context, productId string, spec ProductSpec) (Product, error)

	// Delete removes a product and its photo.
	//
	// Returns ErrMissing when no such product exists.
	Delete(ctx context.Context, productId string) error

	// Get returns products for the given ids, keyed by product id.
	// Unknown ids are simply absent from the result.
	Get(ctx context.Context, productIds []string) (map[string]Product, error)

	// GetBySlug returns the product with the given slug.
	//
	// Returns ErrMissing when no such product exists.
	GetBySlug(ctx context.Context, slug string) (Product, error)

	// Find lists products matching query, newest first.
	Find(ctx context.Context, query ProductFindQuery) ([]Product, error)

	// Count counts products matching query, ignoring Offset/Limit.
	Count(ctx context.Context, query ProductFindQuery) (int, error)

	// GetPhoto returns the stored photo of a product.
	//
	// Returns ErrMissing when the product does not exist or has no photo.
	GetPhoto(ctx context.Context, productId string) (Photo, error)

	// FindRelated lists up to limit products sharing the category of the
	// given product, excluding the product itself, newest first.
	//
	// Returns ErrMissing when the product does not exist.
	FindRelated(ctx context.Context, productId string, limit int) ([]Product, error)
}
