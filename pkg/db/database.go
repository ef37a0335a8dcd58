// Package db declares the domain model of the store and the narrow
// interfaces the API handlers depend on.
//
// Implementations live under db/postgres; hand mocks for tests under
// db/mocks.
package db

type ShopDatabase interface {
	Users() UserInterface
	Categories() CategoryInterface
	Products() ProductInterface
	Orders() OrderInterface
	Schema() SchemaInterface
	Close() error
}
