package db

import "context"

// SchemaInterface manages the database schema version.
type SchemaInterface interface {
	// Version returns the current schema version. 0 means empty database.
	Version(ctx context.Context) (int, error)

	// Upgrade applies schema versions newer than the current one,
	// in ascending order, each in its own transaction.
	Upgrade(ctx context.Context) error
}
