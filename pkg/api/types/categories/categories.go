package categories

import (
	kdb "github.com/shopfab/shopfab/pkg/db"
)

type Summary struct {
	CategoryId string `json:"categoryId"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
}

func (s *Summary) Equal(o *Summary) bool {
	if (s == nil) || (o == nil) {
		return (s == nil) && (o == nil)
	}
	return *s == *o
}

func ComposeSummary(c kdb.Category) Summary {
	return Summary{
		CategoryId: c.CategoryId,
		Name:       c.Name,
		Slug:       c.Slug,
	}
}

type Change struct {
	Name string `json:"name"`
}
