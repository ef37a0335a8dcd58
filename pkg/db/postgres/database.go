package postgres

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"
	kdb "github.com/shopfab/shopfab/pkg/db"
	kpool "github.com/shopfab/shopfab/pkg/db/postgres/pool"
	kpgschema "github.com/shopfab/shopfab/pkg/db/postgres/schema"
	xe "github.com/shopfab/shopfab/pkg/errors"
)

type shopDBPostgres struct {
	pool       *pgxpool.Pool
	users      kdb.UserInterface
	categories kdb.CategoryInterface
	products   kdb.ProductInterface
	orders     kdb.OrderInterface
	schema     kdb.SchemaInterface
}

type Config struct {
	SchemaRepository string
}

type Option func(*Config) *Config

func WithSchemaRepository(repository string) Option {
	return func(c *Config) *Config {
		c.SchemaRepository = repository
		return c
	}
}

func New(
	ctx context.Context,
	url string,
	options ...Option,
) (kdb.ShopDatabase, error) {
	pool, err := pgxpool.Connect(ctx, url)
	if err != nil {
		return nil, xe.Wrap(err)
	}

	c := Config{}
	for _, option := range options {
		c = *option(&c)
	}

	p := kpool.Wrap(pool)
	var schema kdb.SchemaInterface = kpgschema.Null()
	if c.SchemaRepository != "" {
		schema = kpgschema.New(p, c.SchemaRepository)
	}

	return &shopDBPostgres{
		pool:       pool,
		users:      newUsers(p),
		categories: newCategories(p),
		products:   newProducts(p),
		orders:     newOrders(p),
		schema:     schema,
	}, nil
}

func (s *shopDBPostgres) Users() kdb.UserInterface {
	return s.users
}

func (s *shopDBPostgres) Categories() kdb.CategoryInterface {
	return s.categories
}

func (s *shopDBPostgres) Products() kdb.ProductInterface {
	return s.products
}

func (s *shopDBPostgres) Orders() kdb.OrderInterface {
	return s.orders
}

func (s *shopDBPostgres) Schema() kdb.SchemaInterface {
	return s.schema
}

func (s *shopDBPostgres) Close() error {
	s.pool.Close()
	return nil
}
