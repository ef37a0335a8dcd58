package mocks

import (
	"context"
	"errors"

	kdb "github.com/shopfab/shopfab/pkg/db"
)

type ProductInterface struct {
	Impl struct {
		Create      func(context.Context, kdb.ProductSpec) (kdb.Product, error)
		Update      func(context.Context, string, kdb.ProductSpec) (kdb.Product, error)
		Delete      func(context.Context, string) error
		Get         func(context.Context, []string) (map[string]kdb.Product, error)
		GetBySlug   func(context.Context, string) (kdb.Product, error)
		Find        func(context.Context, kdb.ProductFindQuery) ([]kdb.Product, error)
		Count       func(context.Context, kdb.ProductFindQuery) (int, error)
		GetPhoto    func(context.Context, string) (kdb.Photo, error)
		FindRelated func(context.Context, string, int) ([]kdb.Product, error)
	}
	Calls struct {
		Create CallLog[kdb.ProductSpec]
		Update CallLog[struct {
			ProductId string
			Spec      kdb.ProductSpec
		}]
		Delete    CallLog[struct{ ProductId string }]
		Get       CallLog[struct{ ProductIds []string }]
		GetBySlug CallLog[struct{ Slug string }]
		Find      CallLog[kdb.ProductFindQuery]
		Count     CallLog[kdb.ProductFindQuery]
		GetPhoto  CallLog[struct{ ProductId string }]
		FindRelated CallLog[struct {
			ProductId string
			Limit     int
		}]
	}
}

func NewProductInterface() *ProductInterface {
	return &ProductInterface{}
}

var _ kdb.ProductInterface = &ProductInterface{}

func (m *ProductInterface) Create(ctx context.Context, spec kdb.ProductSpec) (kdb.Product, error) {
	m.Calls.Create = append(m.Calls.Create, spec)
	if m.Impl.Create != nil {
		return m.Impl.Create(ctx, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *ProductInterface) Update(ctx context.Context, productId string, spec kdb.ProductSpec) (kdb.Product, error) {
	m.Calls.Update = append(m.Calls.Update, struct {
		ProductId string
		Spec      kdb.ProductSpec
	}{ProductId: productId, Spec: spec})
	if m.Impl.Update != nil {
		return m.Impl.Update(ctx, productId, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *ProductInterface) Delete(ctx context.Context, productId string) error {
	m.Calls.Delete = append(m.Calls.Delete, struct{ ProductId string }{ProductId: productId})
	if m.Impl.Delete != nil {
		return m.Impl.Delete(ctx, productId)
	}
	panic(errors.New("it should not be called"))
}

func (m *ProductInterface) Get(ctx context.Context, productIds []string) (map[string]kdb.Product, error) {
	m.Calls.Get = append(m.Calls.Get, struct{ ProductIds []string }{ProductIds: productIds})
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, productIds)
	}
	panic(errors.New("it should not be called"))
}

func (m *ProductInterface) GetBySlug(ctx context.Context, slug string) (kdb.Product, error) {
	m.Calls.GetBySlug = append(m.Calls.GetBySlug, struct{ Slug string }{Slug: slug})
	if m.Impl.GetBySlug != nil {
		return m.Impl.GetBySlug(ctx, slug)
	}
	panic(errors.New("it should not be called"))
}

func (m *ProductInterface) Find(ctx context.Context, query kdb.ProductFindQuery) ([]kdb.Product, error) {
	m.Calls.Find = append(m.Calls.Find, query)
	if m.Impl.Find != nil {
		return m.Impl.Find(ctx, query)
	}
	panic(errors.New("it should not be called"))
}

func (m *ProductInterface) Count(ctx context.Context, query kdb.ProductFindQuery) (int, error) {
	m.Calls.Count = append(m.Calls.Count, query)
	if m.Impl.Count != nil {
		return m.Impl.Count(ctx, query)
	}
	panic(errors.New("it should not be called"))
}

func (m *ProductInterface) GetPhoto(ctx context.Context, productId string) (kdb.Photo, error) {
	m.Calls.GetPhoto = append(m.Calls.GetPhoto, struct{ ProductId string }{ProductId: productId})
	if m.Impl.GetPhoto != nil {
		return m.Impl.GetPhoto(ctx, productId)
	}
	panic(errors.New("it should not be called"))
}

func (m *ProductInterface) FindRelated(ctx context.Context, productId string, limit int) ([]kdb.Product, error) {
	m.Calls.FindRelated = append(m.Calls.FindRelated, struct {
		ProductId string
		Limit     int
	}{ProductId: productId, Limit: limit})
	if m.Impl.FindRelated != nil {
		return m.Impl.FindRelated(ctx, productId, limit)
	}
	panic(errors.New("it should not be called"))
}
