package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	kdb "github.com/shopfab/shopfab/pkg/db"
)

// requested record is missing.
type Missing struct {
	Table    string
	Identity string
}

var _ error = Missing{}

func (m Missing) Error() string {
	return fmt.Sprintf("%s is not found in %s", m.Identity, m.Table)
}
func (m Missing) Unwrap() error {
	return kdb.ErrMissing
}

// a unique constraint is violated.
type Duplicate struct {
	Table    string
	Identity string
}

var _ error = Duplicate{}

func (d Duplicate) Error() string {
	return fmt.Sprintf("%s already exists in %s", d.Identity, d.Table)
}
func (d Duplicate) Unwrap() error {
	return kdb.ErrDuplicate
}

// translate unique-violation errors from postgres into Duplicate.
// other errors pass through as they are.
func asDuplicate(err error, table string, identity string) error {
	if pgerr := new(pgconn.PgError); errors.As(err, &pgerr) {
		if pgerr.Code == pgerrcode.UniqueViolation {
			return Duplicate{Table: table, Identity: identity}
		}
	}
	return err
}

// translate foreign-key violations from postgres into Missing on the
// referenced table. other errors pass through as they are.
func asMissingRef(err error, table string, identity string) error {
	if pgerr := new(pgconn.PgError); errors.As(err, &pgerr) {
		if pgerr.Code == pgerrcode.ForeignKeyViolation {
			return Missing{Table: table, Identity: identity}
		}
	}
	return err
}
