package postgres

import (
	"context"

	kdb "github.com/shopfab/shopfab/pkg/db"
	kpool "github.com/shopfab/shopfab/pkg/db/postgres/pool"
	"github.com/shopfab/shopfab/pkg/utils/slices"
)

type orderPG struct { // implements kdb.OrderInterface
	pool kpool.Pool
}

func newOrders(pool kpool.Pool) *orderPG {
	return &orderPG{pool: pool}
}

var _ kdb.OrderInterface = &orderPG{}

func (o *orderPG) Create(ctx context.Context, spec kdb.OrderSpec) (kdb.Order, error) {
	conn, err := o.pool.Acquire(ctx)
	if err != nil {
		return kdb.Order{}, err
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return kdb.Order{}, err
	}
	defer tx.Rollback(ctx)

	var orderId string
	if err := tx.QueryRow(
		ctx,
		`
		insert into "orders" ("buyer_id", "total_cents", "transaction_id")
		values ($1, $2, $3)
		returning "order_id"
		`,
		spec.BuyerId, spec.TotalCents, spec.TransactionId,
	).Scan(&orderId); err != nil {
		return kdb.Order{}, asMissingRef(err, "users", spec.BuyerId)
	}

	for _, item := range spec.Items {
		if _, err := tx.Exec(
			ctx,
			`
			insert into "order_items"
				("order_id", "product_id", "name", "price_cents", "quantity")
			values ($1, $2, $3, $4, $5)
			`,
			orderId, item.ProductId, item.Name, item.PriceCents, item.Quantity,
		); err != nil {
			return kdb.Order{}, err
		}
	}

	orders, err := o.find(ctx, tx, `"o"."order_id" = $1`, []interface{}{orderId})
	if err != nil {
		return kdb.Order{}, err
	}
	if len(orders) == 0 {
		return kdb.Order{}, Missing{Table: "orders", Identity: orderId}
	}

	if err := tx.Commit(ctx); err != nil {
		return kdb.Order{}, err
	}
	return orders[0], nil
}

// find reads orders (buyer joined, items stitched), newest first.
//
// cond restricts the "orders" table aliased as "o"; empty cond = all.
func (o *orderPG) find(ctx context.Context, conn kpool.Queryer, cond string, args []interface{}) ([]kdb.Order, error) {

	sql := `
	select
		"o"."order_id", "o"."total_cents", "o"."transaction_id",
		"o"."status", "o"."created_at",
		"u"."user_id", "u"."name", "u"."email", "u"."phone", "u"."address",
		"u"."role", "u"."created_at"
	from "orders" as "o"
	inner join "users" as "u" on "o"."buyer_id" = "u"."user_id"
	`
	if cond != "" {
		sql += ` where ` + cond
	}
	sql += ` order by "o"."created_at" desc, "o"."order_id" desc`

	orders := []kdb.Order{}
	index := map[string]int{}
	{
		rows, err := conn.Query(ctx, sql, args...)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		for rows.Next() {
			var ord kdb.Order
			var status, role string
			if err := rows.Scan(
				&ord.OrderId, &ord.TotalCents, &ord.TransactionId,
				&status, &ord.CreatedAt,
				&ord.Buyer.UserId, &ord.Buyer.Name, &ord.Buyer.Email,
				&ord.Buyer.Phone, &ord.Buyer.Address,
				&role, &ord.Buyer.CreatedAt,
			); err != nil {
				return nil, err
			}

			st, err := kdb.AsOrderStatus(status)
			if err != nil {
				return nil, err
			}
			ord.Status = st

			r, err := kdb.AsRole(role)
			if err != nil {
				return nil, err
			}
			ord.Buyer.Role = r

			ord.Items = []kdb.OrderItem{}
			index[ord.OrderId] = len(orders)
			orders = append(orders, ord)
		}
	}

	if len(orders) == 0 {
		return orders, nil
	}

	orderIds := slices.KeysOf(index)

	{
		rows, err := conn.Query(
			ctx,
			`
			select "order_id", "product_id", "name", "price_cents", "quantity"
			from "order_items"
			where "order_id" = any($1::varchar[])
			order by "item_id"
			`,
			orderIds,
		)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		for rows.Next() {
			var orderId string
			var item kdb.OrderItem
			if err := rows.Scan(
				&orderId, &item.ProductId, &item.Name, &item.PriceCents, &item.Quantity,
			); err != nil {
				return nil, err
			}
			nth := index[orderId]
			orders[nth].Items = append(orders[nth].Items, item)
		}
	}

	return orders, nil
}

func (o *orderPG) FindByBuyer(ctx context.Context, buyerId string) ([]kdb.Order, error) {
	conn, err := o.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	return o.find(ctx, conn, `"o"."buyer_id" = $1`, []interface{}{buyerId})
}

func (o *orderPG) FindAll(ctx context.Context) ([]kdb.Order, error) {
	conn, err := o.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	return o.find(ctx, conn, "", nil)
}

func (o *orderPG) UpdateStatus(ctx context.Context, orderId string, status kdb.OrderStatus) (kdb.Order, error) {
	conn, err := o.pool.Acquire(ctx)
	if err != nil {
		return kdb.Order{}, err
	}
	defer conn.Release()

	tag, err := conn.Exec(
		ctx,
		`update "orders" set "status" = $2 where "order_id" = $1`,
		orderId, status.String(),
	)
	if err != nil {
		return kdb.Order{}, err
	}
	if tag.RowsAffected() == 0 {
		return kdb.Order{}, Missing{Table: "orders", Identity: orderId}
	}

	orders, err := o.find(ctx, conn, `"o"."order_id" = $1`, []interface{}{orderId})
	if err != nil {
		return kdb.Order{}, err
	}
	if len(orders) == 0 {
		return kdb.Order{}, Missing{Table: "orders", Identity: orderId}
	}
	return orders[0], nil
}
