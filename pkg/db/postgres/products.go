package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
	kdb "github.com/shopfab/shopfab/pkg/db"
	kpool "github.com/shopfab/shopfab/pkg/db/postgres/pool"
	"github.com/shopfab/shopfab/pkg/utils/slices"
)

type productPG struct { // implements kdb.ProductInterface
	pool kpool.Pool
}

func newProducts(pool kpool.Pool) *productPG {
	return &productPG{pool: pool}
}

var _ kdb.ProductInterface = &productPG{}

// columns selected for every product read, category joined.
const productColumns = `
	"p"."product_id", "p"."name", "p"."slug", "p"."description",
	"p"."price_cents", "p"."quantity", "p"."shipping", "p"."created_at",
	"c"."category_id", "c"."name", "c"."slug"
`

const productFrom = `
	from "products" as "p"
	inner join "categories" as "c" on "p"."category_id" = "c"."category_id"
`

func scanProduct(rows pgx.Rows) (kdb.Product, error) {
	var p kdb.Product
	if err := rows.Scan(
		&p.ProductId, &p.Name, &p.Slug, &p.Description,
		&p.PriceCents, &p.Quantity, &p.Shipping, &p.CreatedAt,
		&p.Category.CategoryId, &p.Category.Name, &p.Category.Slug,
	); err != nil {
		return kdb.Product{}, err
	}
	return p, nil
}

// translate a find query into WHERE conditions and its placeholder values.
//
// conditions are AND-ed. empty query = no condition.
func buildProductFilter(query kdb.ProductFindQuery) ([]string, []interface{}) {
	conds := []string{}
	args := []interface{}{}

	if len(query.CategoryIds) != 0 {
		args = append(args, query.CategoryIds)
		conds = append(conds, fmt.Sprintf(`"p"."category_id" = any($%d::varchar[])`, len(args)))
	}
	if query.PriceMinCents != nil {
		args = append(args, *query.PriceMinCents)
		conds = append(conds, fmt.Sprintf(`"p"."price_cents" >= $%d`, len(args)))
	}
	if query.PriceMaxCents != nil {
		args = append(args, *query.PriceMaxCents)
		conds = append(conds, fmt.Sprintf(`"p"."price_cents" <= $%d`, len(args)))
	}
	if query.Keyword != "" {
		args = append(args, "%"+query.Keyword+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			`("p"."name" ilike $%d or "p"."description" ilike $%d)`, n, n,
		))
	}

	return conds, args
}

// assemble the full SELECT for products: WHERE from conds, newest first,
// LIMIT/OFFSET appended as placeholders continuing the numbering in args.
//
// limit or offset <= 0 means unrestricted.
func buildProductSelect(conds []string, args []interface{}, limit int, offset int) (string, []interface{}) {
	sql := `select ` + productColumns + productFrom
	if len(conds) != 0 {
		sql += ` where ` + strings.Join(conds, " and ")
	}
	sql += ` order by "p"."created_at" desc, "p"."product_id" desc`
	if 0 < limit {
		args = append(args, limit)
		sql += fmt.Sprintf(` limit $%d`, len(args))
	}
	if 0 < offset {
		args = append(args, offset)
		sql += fmt.Sprintf(` offset $%d`, len(args))
	}
	return sql, args
}

func (p *productPG) selectProducts(
	ctx context.Context, conn kpool.Queryer,
	conds []string, args []interface{},
	limit int, offset int,
) ([]kdb.Product, error) {

	sql, args := buildProductSelect(conds, args, limit, offset)
	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []kdb.Product{}
	for rows.Next() {
		prod, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, prod)
	}
	return products, nil
}

func (p *productPG) Find(ctx context.Context, query kdb.ProductFindQuery) ([]kdb.Product, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	conds, args := buildProductFilter(query)
	return p.selectProducts(ctx, conn, conds, args, query.Limit, query.Offset)
}

func (p *productPG) Count(ctx context.Context, query kdb.ProductFindQuery) (int, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	conds, args := buildProductFilter(query)
	sql := `select count(*)` + productFrom
	if len(conds) != 0 {
		sql += ` where ` + strings.Join(conds, " and ")
	}

	var count int
	if err := conn.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (p *productPG) Get(ctx context.Context, productIds []string) (map[string]kdb.Product, error) {
	if len(productIds) == 0 {
		return map[string]kdb.Product{}, nil
	}

	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	products, err := p.selectProducts(
		ctx, conn,
		[]string{`"p"."product_id" = any($1::varchar[])`},
		[]interface{}{productIds},
		0, 0,
	)
	if err != nil {
		return nil, err
	}

	return slices.ToMap(products, func(p kdb.Product) string { return p.ProductId }), nil
}

func (p *productPG) GetBySlug(ctx context.Context, slug string) (kdb.Product, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return kdb.Product{}, err
	}
	defer conn.Release()

	products, err := p.selectProducts(
		ctx, conn,
		[]string{`"p"."slug" = $1`}, []interface{}{slug},
		1, 0,
	)
	if err != nil {
		return kdb.Product{}, err
	}
	if len(products) == 0 {
		return kdb.Product{}, Missing{Table: "products", Identity: slug}
	}
	return products[0], nil
}

func (p *productPG) Create(ctx context.Context, spec kdb.ProductSpec) (kdb.Product, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return kdb.Product{}, err
	}
	defer conn.Release()

	var photo, photoType interface{}
	if spec.Photo != nil {
		photo = spec.Photo.Data
		photoType = spec.Photo.ContentType
	}

	var productId string
	if err := conn.QueryRow(
		ctx,
		`
		insert into "products"
			("name", "slug", "description", "price_cents",
			 "category_id", "quantity", "shipping", "photo", "photo_type")
		values
			($1, $2, $3, $4, $5, $6, $7, $8, $9)
		returning "product_id"
		`,
		spec.Name, spec.Slug, spec.Description, spec.PriceCents,
		spec.CategoryId, spec.Quantity, spec.Shipping, photo, photoType,
	).Scan(&productId); err != nil {
		err = asDuplicate(err, "products", spec.Slug)
		return kdb.Product{}, asMissingRef(err, "categories", spec.CategoryId)
	}

	return p.single(ctx, conn, productId)
}

func (p *productPG) Update(ctx context.Context, productId string, spec kdb.ProductSpec) (kdb.Product, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return kdb.Product{}, err
	}
	defer conn.Release()

	var photo, photoType interface{}
	if spec.Photo != nil {
		photo = spec.Photo.Data
		photoType = spec.Photo.ContentType
	}

	tag, err := conn.Exec(
		ctx,
		`
		update "products" set
			"name" = $2, "slug" = $3, "description" = $4, "price_cents" = $5,
			"category_id" = $6, "quantity" = $7, "shipping" = $8,
			"photo" = coalesce($9, "photo"),
			"photo_type" = coalesce($10, "photo_type")
		where "product_id" = $1
		`,
		productId,
		spec.Name, spec.Slug, spec.Description, spec.PriceCents,
		spec.CategoryId, spec.Quantity, spec.Shipping, photo, photoType,
	)
	if err != nil {
		err = asDuplicate(err, "products", spec.Slug)
		return kdb.Product{}, asMissingRef(err, "categories", spec.CategoryId)
	}
	if tag.RowsAffected() == 0 {
		return kdb.Product{}, Missing{Table: "products", Identity: productId}
	}

	return p.single(ctx, conn, productId)
}

func (p *productPG) single(ctx context.Context, conn kpool.Queryer, productId string) (kdb.Product, error) {
	products, err := p.selectProducts(
		ctx, conn,
		[]string{`"p"."product_id" = $1`}, []interface{}{productId},
		1, 0,
	)
	if err != nil {
		return kdb.Product{}, err
	}
	if len(products) == 0 {
		return kdb.Product{}, Missing{Table: "products", Identity: productId}
	}
	return products[0], nil
}

func (p *productPG) Delete(ctx context.Context, productId string) error {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tag, err := conn.Exec(
		ctx,
		`delete from "products" where "product_id" = $1`,
		productId,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return Missing{Table: "products", Identity: productId}
	}
	return nil
}

func (p *productPG) GetPhoto(ctx context.Context, productId string) (kdb.Photo, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return kdb.Photo{}, err
	}
	defer conn.Release()

	// photo columns are nullable; pgtype tracks presence.
	var photo pgtype.Bytea
	var photoType pgtype.Text
	err = conn.QueryRow(
		ctx,
		`select "photo", "photo_type" from "products" where "product_id" = $1`,
		productId,
	).Scan(&photo, &photoType)
	if errors.Is(err, pgx.ErrNoRows) {
		return kdb.Photo{}, Missing{Table: "products", Identity: productId}
	} else if err != nil {
		return kdb.Photo{}, err
	}

	if photo.Status != pgtype.Present || photoType.Status != pgtype.Present {
		return kdb.Photo{}, Missing{Table: "products", Identity: productId + " (photo)"}
	}

	return kdb.Photo{ContentType: photoType.String, Data: photo.Bytes}, nil
}

func (p *productPG) FindRelated(ctx context.Context, productId string, limit int) ([]kdb.Product, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	var categoryId string
	err = conn.QueryRow(
		ctx,
		`select "category_id" from "products" where "product_id" = $1`,
		productId,
	).Scan(&categoryId)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, Missing{Table: "products", Identity: productId}
	} else if err != nil {
		return nil, err
	}

	return p.selectProducts(
		ctx, conn,
		[]string{
			`"p"."category_id" = $1`,
			`"p"."product_id" <> $2`,
		},
		[]interface{}{categoryId, productId},
		limit, 0,
	)
}
