package postgres

import (
	"strings"
	"testing"

	kdb "github.com/shopfab/shopfab/pkg/db"
	"github.com/shopfab/shopfab/pkg/utils/cmp"
	"github.com/shopfab/shopfab/pkg/utils/pointer"
)

func TestBuildProductFilter(t *testing.T) {

	t.Run("When the query is empty, it should build no condition", func(t *testing.T) {
		conds, args := buildProductFilter(kdb.ProductFindQuery{})
		if len(conds) != 0 || len(args) != 0 {
			t.Errorf("unexpected filter: conds = %v, args = %v", conds, args)
		}
	})

	t.Run("When every restriction is set, it should number placeholders in order", func(t *testing.T) {
		conds, args := buildProductFilter(kdb.ProductFindQuery{
			CategoryIds:   []string{"cat-1", "cat-2"},
			PriceMinCents: pointer.Ref(int64(2000)),
			PriceMaxCents: pointer.Ref(int64(5999)),
			Keyword:       "pan",
		})

		expectedConds := []string{
			`"p"."category_id" = any($1::varchar[])`,
			`"p"."price_cents" >= $2`,
			`"p"."price_cents" <= $3`,
			`("p"."name" ilike $4 or "p"."description" ilike $4)`,
		}
		if !cmp.SliceEq(conds, expectedConds) {
			t.Errorf(
				"conditions are wrong:\n===actual===\n%v\n===expected===\n%v",
				conds, expectedConds,
			)
		}

		if len(args) != 4 {
			t.Fatalf("unexpected arg count: %d", len(args))
		}
		if !cmp.SliceEq(args[0].([]string), []string{"cat-1", "cat-2"}) {
			t.Errorf("category arg is wrong. actual = %v", args[0])
		}
		if args[1] != int64(2000) || args[2] != int64(5999) {
			t.Errorf("price args are wrong. actual = %v, %v", args[1], args[2])
		}
		if args[3] != "%pan%" {
			t.Errorf("keyword arg is wrong. actual = %v", args[3])
		}
	})

	t.Run("When only the keyword is set, it should start placeholders at $1", func(t *testing.T) {
		conds, args := buildProductFilter(kdb.ProductFindQuery{Keyword: "spoon"})

		expectedConds := []string{
			`("p"."name" ilike $1 or "p"."description" ilike $1)`,
		}
		if !cmp.SliceEq(conds, expectedConds) {
			t.Errorf("conditions are wrong. actual = %v", conds)
		}
		if len(args) != 1 || args[0] != "%spoon%" {
			t.Errorf("args are wrong. actual = %v", args)
		}
	})
}

func TestBuildProductSelect(t *testing.T) {

	t.Run("When neither limit nor offset is given, it should only order newest first", func(t *testing.T) {
		sql, args := buildProductSelect(nil, nil, 0, 0)

		if !strings.HasSuffix(sql, ` order by "p"."created_at" desc, "p"."product_id" desc`) {
			t.Errorf("query does not end with the ordering clause: %s", sql)
		}
		if strings.Contains(sql, "where") || strings.Contains(sql, "limit") || strings.Contains(sql, "offset") {
			t.Errorf("query has unexpected clauses: %s", sql)
		}
		if len(args) != 0 {
			t.Errorf("args are wrong. actual = %v", args)
		}
	})

	t.Run("When limit and offset follow filter args, it should continue the placeholder numbering", func(t *testing.T) {
		conds, args := buildProductFilter(kdb.ProductFindQuery{
			CategoryIds: []string{"cat-1"},
			Keyword:     "pan",
		})
		sql, args := buildProductSelect(conds, args, 6, 12)

		if !strings.Contains(sql, ` where "p"."category_id" = any($1::varchar[]) and ("p"."name" ilike $2 or "p"."description" ilike $2)`) {
			t.Errorf("conditions are wrong: %s", sql)
		}
		if !strings.Contains(sql, ` order by "p"."created_at" desc, "p"."product_id" desc limit $3 offset $4`) {
			t.Errorf("paging should come after the ordering: %s", sql)
		}
		if len(args) != 4 || args[2] != 6 || args[3] != 12 {
			t.Errorf("args are wrong. actual = %v", args)
		}
	})

	t.Run("When only the limit is given, it should not emit an offset", func(t *testing.T) {
		sql, args := buildProductSelect(
			[]string{`"p"."slug" = $1`}, []interface{}{"cast-iron-pan"}, 1, 0,
		)

		if !strings.HasSuffix(sql, ` limit $2`) {
			t.Errorf("limit placeholder is wrong: %s", sql)
		}
		if strings.Contains(sql, "offset") {
			t.Errorf("offset should not appear: %s", sql)
		}
		if len(args) != 2 || args[0] != "cast-iron-pan" || args[1] != 1 {
			t.Errorf("args are wrong. actual = %v", args)
		}
	})
}
