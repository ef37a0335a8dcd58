// Package testenv hands out postgres pools for tests touching a real
// database.
//
// Such tests read the connection URL from the SHOPFAB_TEST_DBURI
// environment variable and skip when it is unset, so `go test ./...`
// stays green without a database around.
package testenv

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/jackc/pgx/v4/pgxpool"
	kpool "github.com/shopfab/shopfab/pkg/db/postgres/pool"
	kpgschema "github.com/shopfab/shopfab/pkg/db/postgres/schema"
)

// EnvDBURI names the environment variable holding the connection URL of
// a disposable test database.
const EnvDBURI = "SHOPFAB_TEST_DBURI"

// PoolBroaker is a interface to get a pool.
type PoolBroaker interface {
	// GetPool returns a pool.
	//
	// Tables are cleaned up before returning and after t.
	GetPool(ctx context.Context, t *testing.T) kpool.Pool
}

type pg struct {
	pool *pgxpool.Pool
}

func (p *pg) GetPool(ctx context.Context, t *testing.T) kpool.Pool {
	t.Cleanup(func() {
		t.Helper()
		ClearTables(ctx, p.pool, t)
	})

	ClearTables(ctx, p.pool, t)
	return kpool.Wrap(p.pool)
}

// NewPoolBroaker returns a PoolBroaker backed by the database at
// SHOPFAB_TEST_DBURI, with the schema applied.
//
// When the variable is unset, the calling test is skipped.
func NewPoolBroaker(ctx context.Context, t *testing.T) PoolBroaker {
	t.Helper()

	dburi := os.Getenv(EnvDBURI)
	if dburi == "" {
		t.Skipf("set %s to run tests against postgres", EnvDBURI)
	}

	pool, err := pgxpool.Connect(ctx, dburi)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(pool.Close)

	if err := kpgschema.New(kpool.Wrap(pool), schemaRepository()).Upgrade(ctx); err != nil {
		t.Fatal(err)
	}

	return &pg{pool: pool}
}

// schemaRepository resolves db/schema at the module root, wherever
// `go test` puts the working directory.
func schemaRepository() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "..", "..", "..", "db", "schema")
}

func ClearTables(ctx context.Context, p *pgxpool.Pool, t *testing.T) {
	t.Helper()

	conn, err := p.Acquire(ctx)
	if err != nil {
		t.Errorf("fail to clean-up tables.: %v", err)
		return
	}
	defer conn.Release()

	for _, command := range []string{
		// cascades truncate products, orders and order_items too.
		`truncate "users" restart identity cascade`,
		`truncate "categories" restart identity cascade`,
	} {
		if _, err := conn.Exec(ctx, command); err != nil {
			t.Errorf("fail to clean-up tables.: %v", err)
		}
	}
}
