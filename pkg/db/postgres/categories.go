package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	kdb "github.com/shopfab/shopfab/pkg/db"
	kpool "github.com/shopfab/shopfab/pkg/db/postgres/pool"
)

type categoryPG struct { // implements kdb.CategoryInterface
	pool kpool.Pool
}

func newCategories(pool kpool.Pool) *categoryPG {
	return &categoryPG{pool: pool}
}

var _ kdb.CategoryInterface = &categoryPG{}

func (c *categoryPG) Create(ctx context.Context, name string, slug string) (kdb.Category, error) {
	conn, err := c.pool.Acquire(ctx)
	if err != nil {
		return kdb.Category{}, err
	}
	defer conn.Release()

	var cat kdb.Category
	if err := conn.QueryRow(
		ctx,
		`
		insert into "categories" ("name", "slug") values ($1, $2)
		returning "category_id", "name", "slug"
		`,
		name, slug,
	).Scan(&cat.CategoryId, &cat.Name, &cat.Slug); err != nil {
		return kdb.Category{}, asDuplicate(err, "categories", name)
	}
	return cat, nil
}

func (c *categoryPG) Rename(ctx context.Context, categoryId string, name string, slug string) (kdb.Category, error) {
	conn, err := c.pool.Acquire(ctx)
	if err != nil {
		return kdb.Category{}, err
	}
	defer conn.Release()

	var cat kdb.Category
	err = conn.QueryRow(
		ctx,
		`
		update "categories" set "name" = $2, "slug" = $3
		where "category_id" = $1
		returning "category_id", "name", "slug"
		`,
		categoryId, name, slug,
	).Scan(&cat.CategoryId, &cat.Name, &cat.Slug)
	if errors.Is(err, pgx.ErrNoRows) {
		return kdb.Category{}, Missing{Table: "categories", Identity: categoryId}
	} else if err != nil {
		return kdb.Category{}, asDuplicate(err, "categories", name)
	}
	return cat, nil
}

func (c *categoryPG) GetAll(ctx context.Context) ([]kdb.Category, error) {
	conn, err := c.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(
		ctx,
		`select "category_id", "name", "slug" from "categories" order by "name"`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []kdb.Category{}
	for rows.Next() {
		var cat kdb.Category
		if err := rows.Scan(&cat.CategoryId, &cat.Name, &cat.Slug); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, nil
}

func (c *categoryPG) GetBySlug(ctx context.Context, slug string) (kdb.Category, error) {
	conn, err := c.pool.Acquire(ctx)
	if err != nil {
		return kdb.Category{}, err
	}
	defer conn.Release()

	var cat kdb.Category
	err = conn.QueryRow(
		ctx,
		`select "category_id", "name", "slug" from "categories" where "slug" = $1`,
		slug,
	).Scan(&cat.CategoryId, &cat.Name, &cat.Slug)
	if errors.Is(err, pgx.ErrNoRows) {
		return kdb.Category{}, Missing{Table: "categories", Identity: slug}
	} else if err != nil {
		return kdb.Category{}, err
	}
	return cat, nil
}

func (c *categoryPG) Delete(ctx context.Context, categoryId string) error {
	conn, err := c.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tag, err := conn.Exec(
		ctx,
		`delete from "categories" where "category_id" = $1`,
		categoryId,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return Missing{Table: "categories", Identity: categoryId}
	}
	return nil
}
