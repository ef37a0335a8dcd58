package db

import "context"

type Category struct {
	CategoryId string
	Name       string
	Slug       string
}

func (c *Category) Equal(o *Category) bool {
	if (c == nil) || (o == nil) {
		return (c == nil) && (o == nil)
	}
	return c.CategoryId == o.CategoryId &&
		c.Name == o.Name &&
		c.Slug == o.Slug
}

type CategoryInterface interface {
	// Create registers a new category.
	//
	// Returns ErrDuplicate when the name or slug is taken.
	Create(ctx context.Context, name string, slug string) (Category, error)

	// Rename changes name and slug of a category.
	//
	// Returns ErrMissing when no such category exists,
	// ErrDuplicate when the new name or slug is taken.
	Rename(ctx context.Context, categoryId string, name string, slug string) (Category, error)

	// GetAll lists every category, sorted by name.
	GetAll(ctx context.Context) ([]Category, error)

	// GetBySlug returns the category with the given slug.
	//
	// Returns ErrMissing when no such category exists.
	GetBySlug(ctx context.Context, slug string) (Category, error)

	// Delete removes a category.
	//
	// Returns ErrMissing when no such category exists.
	Delete(ctx context.Context, categoryId string) error
}
