package db_test

import (
	"errors"
	"testing"

	kdb "github.com/shopfab/shopfab/pkg/db"
)

func TestAsRole(t *testing.T) {
	for _, name := range []string{"customer", "admin"} {
		t.Run("it should accept "+name, func(t *testing.T) {
			role, err := kdb.AsRole(name)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if role.String() != name {
				t.Errorf("role is wrong. actual = %s", role)
			}
		})
	}

	t.Run("it should reject unknown names", func(t *testing.T) {
		_, err := kdb.AsRole("superuser")
		if !errors.Is(err, kdb.ErrUnknownRole) {
			t.Errorf("error is not ErrUnknownRole. actual = %v", err)
		}
	})
}

func TestUserEqual(t *testing.T) {
	base := kdb.User{
		UserId: "user-1", Name: "john doe", Email: "john@example.com",
		Phone: "000-1234-5678", Address: "somewhere", Role: kdb.RoleCustomer,
	}

	t.Run("it should equal a copy of itself", func(t *testing.T) {
		other := base
		if !base.Equal(&other) {
			t.Error("user does not equal its copy")
		}
	})

	t.Run("it should differ when a field differs", func(t *testing.T) {
		other := base
		other.Role = kdb.RoleAdmin
		if base.Equal(&other) {
			t.Error("users with different roles are equal")
		}
	})

	t.Run("it should treat nil as equal only to nil", func(t *testing.T) {
		if base.Equal(nil) {
			t.Error("user equals nil")
		}
		var a, b *kdb.User
		if !a.Equal(b) {
			t.Error("nil does not equal nil")
		}
	})
}
