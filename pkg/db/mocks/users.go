package mocks

import (
	"context"
	"errors"

	kdb "github.com/shopfab/shopfab/pkg/db"
)

type UserInterface struct {
	Impl struct {
		Register      func(context.Context, kdb.UserSpec) (kdb.User, error)
		Get           func(context.Context, string) (kdb.User, error)
		GetByEmail    func(context.Context, string) (kdb.Credential, error)
		UpdateProfile func(context.Context, string, kdb.ProfileDelta) (kdb.User, error)
		ResetPassword func(context.Context, string, string, []byte) error
	}
	Calls struct {
		Register      CallLog[kdb.UserSpec]
		Get           CallLog[struct{ UserId string }]
		GetByEmail    CallLog[struct{ Email string }]
		UpdateProfile CallLog[struct {
			UserId string
			Delta  kdb.ProfileDelta
		}]
		ResetPassword CallLog[struct {
			Email          string
			SecurityAnswer string
		}]
	}
}

func NewUserInterface() *UserInterface {
	return &UserInterface{}
}

var _ kdb.UserInterface = &UserInterface{}

func (m *UserInterface) Register(ctx context.Context, spec kdb.UserSpec) (kdb.User, error) {
	m.Calls.Register = append(m.Calls.Register, spec)
	if m.Impl.Register != nil {
		return m.Impl.Register(ctx, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *UserInterface) Get(ctx context.Context, userId string) (kdb.User, error) {
	m.Calls.Get = append(m.Calls.Get, struct{ UserId string }{UserId: userId})
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, userId)
	}
	panic(errors.New("it should not be called"))
}

func (m *UserInterface) GetByEmail(ctx context.Context, email string) (kdb.Credential, error) {
	m.Calls.GetByEmail = append(m.Calls.GetByEmail, struct{ Email string }{Email: email})
	if m.Impl.GetByEmail != nil {
		return m.Impl.GetByEmail(ctx, email)
	}
	panic(errors.New("it should not be called"))
}

func (m *UserInterface) UpdateProfile(ctx context.Context, userId string, delta kdb.ProfileDelta) (kdb.User, error) {
	m.Calls.UpdateProfile = append(m.Calls.UpdateProfile, struct {
		UserId string
		Delta  kdb.ProfileDelta
	}{UserId: userId, Delta: delta})
	if m.Impl.UpdateProfile != nil {
		return m.Impl.UpdateProfile(ctx, userId, delta)
	}
	panic(errors.New("it should not be called"))
}

func (m *UserInterface) ResetPassword(ctx context.Context, email string, securityAnswer string, newHash []byte) error {
	m.Calls.ResetPassword = append(m.Calls.ResetPassword, struct {
		Email          string
		SecurityAnswer string
	}{Email: email, SecurityAnswer: securityAnswer})
	if m.Impl.ResetPassword != nil {
		return m.Impl.ResetPassword(ctx, email, securityAnswer, newHash)
	}
	panic(errors.New("it should not be called"))
}
