package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	kdb "github.com/shopfab/shopfab/pkg/db"
	kpool "github.com/shopfab/shopfab/pkg/db/postgres/pool"
)

type userPG struct { // implements kdb.UserInterface
	pool kpool.Pool
}

func newUsers(pool kpool.Pool) *userPG {
	return &userPG{pool: pool}
}

var _ kdb.UserInterface = &userPG{}

func scanUser(row pgx.Row) (kdb.User, error) {
	var u kdb.User
	var role string
	if err := row.Scan(
		&u.UserId, &u.Name, &u.Email, &u.Phone, &u.Address, &role, &u.CreatedAt,
	); err != nil {
		return kdb.User{}, err
	}

	r, err := kdb.AsRole(role)
	if err != nil {
		return kdb.User{}, err
	}
	u.Role = r
	return u, nil
}

func (u *userPG) Register(ctx context.Context, spec kdb.UserSpec) (kdb.User, error) {
	conn, err := u.pool.Acquire(ctx)
	if err != nil {
		return kdb.User{}, err
	}
	defer conn.Release()

	usr, err := scanUser(conn.QueryRow(
		ctx,
		`
		insert into "users"
			("name", "email", "password", "phone", "address", "security_answer")
		values
			($1, $2, $3, $4, $5, $6)
		returning
			"user_id", "name", "email", "phone", "address", "role", "created_at"
		`,
		spec.Name, spec.Email, spec.PasswordHash,
		spec.Phone, spec.Address, spec.SecurityAnswer,
	))
	if err != nil {
		return kdb.User{}, asDuplicate(err, "users", spec.Email)
	}
	return usr, nil
}

func (u *userPG) Get(ctx context.Context, userId string) (kdb.User, error) {
	conn, err := u.pool.Acquire(ctx)
	if err != nil {
		return kdb.User{}, err
	}
	defer conn.Release()

	usr, err := scanUser(conn.QueryRow(
		ctx,
		`
		select "user_id", "name", "email", "phone", "address", "role", "created_at"
		from "users" where "user_id" = $1
		`,
		userId,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return kdb.User{}, Missing{Table: "users", Identity: userId}
	} else if err != nil {
		return kdb.User{}, err
	}
	return usr, nil
}

func (u *userPG) GetByEmail(ctx context.Context, email string) (kdb.Credential, error) {
	conn, err := u.pool.Acquire(ctx)
	if err != nil {
		return kdb.Credential{}, err
	}
	defer conn.Release()

	var cred kdb.Credential
	var role string
	err = conn.QueryRow(
		ctx,
		`
		select
			"user_id", "name", "email", "phone", "address", "role", "created_at",
			"password", "security_answer"
		from "users" where "email" = $1
		`,
		email,
	).Scan(
		&cred.UserId, &cred.Name, &cred.Email, &cred.Phone, &cred.Address,
		&role, &cred.CreatedAt,
		&cred.PasswordHash, &cred.SecurityAnswer,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return kdb.Credential{}, Missing{Table: "users", Identity: email}
	} else if err != nil {
		return kdb.Credential{}, err
	}

	r, err := kdb.AsRole(role)
	if err != nil {
		return kdb.Credential{}, err
	}
	cred.Role = r
	return cred, nil
}

func (u *userPG) UpdateProfile(ctx context.Context, userId string, delta kdb.ProfileDelta) (kdb.User, error) {
	conn, err := u.pool.Acquire(ctx)
	if err != nil {
		return kdb.User{}, err
	}
	defer conn.Release()

	usr, err := scanUser(conn.QueryRow(
		ctx,
		`
		update "users" set
			"name" = coalesce($2, "name"),
			"phone" = coalesce($3, "phone"),
			"address" = coalesce($4, "address"),
			"password" = coalesce($5, "password")
		where "user_id" = $1
		returning
			"user_id", "name", "email", "phone", "address", "role", "created_at"
		`,
		userId, delta.Name, delta.Phone, delta.Address, delta.PasswordHash,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return kdb.User{}, Missing{Table: "users", Identity: userId}
	} else if err != nil {
		return kdb.User{}, err
	}
	return usr, nil
}

func (u *userPG) ResetPassword(ctx context.Context, email string, securityAnswer string, newHash []byte) error {
	conn, err := u.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tag, err := conn.Exec(
		ctx,
		`
		update "users" set "password" = $3
		where "email" = $1 and "security_answer" = $2
		`,
		email, securityAnswer, newHash,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return Missing{Table: "users", Identity: email}
	}
	return nil
}
