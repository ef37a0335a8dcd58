package mocks

import (
	"context"
	"errors"

	kdb "github.com/shopfab/shopfab/pkg/db"
)

type CategoryInterface struct {
	Impl struct {
		Create    func(context.Context, string, string) (kdb.Category, error)
		Rename    func(context.Context, string, string, string) (kdb.Category, error)
		GetAll    func(context.Context) ([]kdb.Category, error)
		GetBySlug func(context.Context, string) (kdb.Category, error)
		Delete    func(context.Context, string) error
	}
	Calls struct {
		Create CallLog[struct {
			Name string
			Slug string
		}]
		Rename CallLog[struct {
			CategoryId string
			Name       string
			Slug       string
		}]
		GetAll    CallLog[struct{}]
		GetBySlug CallLog[struct{ Slug string }]
		Delete    CallLog[struct{ CategoryId string }]
	}
}

func NewCategoryInterface() *CategoryInterface {
	return &CategoryInterface{}
}

var _ kdb.CategoryInterface = &CategoryInterface{}

func (m *CategoryInterface) Create(ctx context.Context, name string, slug string) (kdb.Category, error) {
	m.Calls.Create = append(m.Calls.Create, struct {
		Name string
		Slug string
	}{Name: name, Slug: slug})
	if m.Impl.Create != nil {
		return m.Impl.Create(ctx, name, slug)
	}
	panic(errors.New("it should not be called"))
}

func (m *CategoryInterface) Rename(ctx context.Context, categoryId string, name string, slug string) (kdb.Category, error) {
	m.Calls.Rename = append(m.Calls.Rename, struct {
		CategoryId string
		Name       string
		Slug       string
	}{CategoryId: categoryId, Name: name, Slug: slug})
	if m.Impl.Rename != nil {
		return m.Impl.Rename(ctx, categoryId, name, slug)
	}
	panic(errors.New("it should not be called"))
}

func (m *CategoryInterface) GetAll(ctx context.Context) ([]kdb.Category, error) {
	m.Calls.GetAll = append(m.Calls.GetAll, struct{}{})
	if m.Impl.GetAll != nil {
		return m.Impl.GetAll(ctx)
	}
	panic(errors.New("it should not be called"))
}

func (m *CategoryInterface) GetBySlug(ctx context.Context, slug string) (kdb.Category, error) {
	m.Calls.GetBySlug = append(m.Calls.GetBySlug, struct{ Slug string }{Slug: slug})
	if m.Impl.GetBySlug != nil {
		return m.Impl.GetBySlug(ctx, slug)
	}
	panic(errors.New("it should not be called"))
}

func (m *CategoryInterface) Delete(ctx context.Context, categoryId string) error {
	m.Calls.Delete = append(m.Calls.Delete, struct{ CategoryId string }{CategoryId: categoryId})
	if m.Impl.Delete != nil {
		return m.Impl.Delete(ctx, categoryId)
	}
	panic(errors.New("it should not be called"))
}
