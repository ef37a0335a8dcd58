package db

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrUnknownRole = errors.New("unknown role")

type Role string

var (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func AsRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCustomer:
		return RoleCustomer, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return Role(s), fmt.Errorf("%w: %s", ErrUnknownRole, s)
	}
}

type User struct {
	UserId    string
	Name      string
	Email     string
	Phone     string
	Address   string
	Role      Role
	CreatedAt time.Time
}

func (u *User) Equal(o *User) bool {
	if (u == nil) || (o == nil) {
		return (u == nil) && (o == nil)
	}
	return u.UserId == o.UserId &&
		u.Name == o.Name &&
		u.Email == o.Email &&
		u.Phone == o.Phone &&
		u.Address == o.Address &&
		u.Role == o.Role &&
		u.CreatedAt.Equal(o.CreatedAt)
}

// Credential is a User together with its secrets, for login and
// password-reset flows only. Handlers shaping responses receive User.
type Credential struct {
	User
	PasswordHash   []byte
	SecurityAnswer string
}

// UserSpec is the user-provided part of a new account.
type UserSpec struct {
	Name           string
	Email          string
	Phone          string
	Address        string
	PasswordHash   []byte
	SecurityAnswer string
}

// ProfileDelta carries the fields of an account to be overwritten.
// nil fields are left as they are.
type ProfileDelta struct {
	Name         *string
	Phone        *string
	Address      *string
	PasswordHash []byte
}

type UserInterface interface {
	// Register creates a new customer account.
	//
	// Returns ErrDuplicate when the email is taken.
	Register(ctx context.Context, spec UserSpec) (User, error)

	// Get returns the account for the given user id.
	//
	// Returns ErrMissing when no such account exists.
	Get(ctx context.Context, userId string) (User, error)

	// GetByEmail returns the account with its secrets.
	//
	// Returns ErrMissing when no such account exists.
	GetByEmail(ctx context.Context, email string) (Credential, error)

	// UpdateProfile overwrites non-nil fields of delta and returns the
	// updated account.
	//
	// Returns ErrMissing when no such account exists.
	UpdateProfile(ctx context.Context, userId string, delta ProfileDelta) (User, error)

	// ResetPassword sets a new password hash for the account with the
	// given email, providing the stored security answer matches.
	//
	// Returns ErrMissing when the email is unknown or the answer does
	// not match.
	ResetPassword(ctx context.Context, email string, securityAnswer string, newHash []byte) error
}
