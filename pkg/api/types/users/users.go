package users

import (
	kdb "github.com/shopfab/shopfab/pkg/db"
)

type Profile struct {
	UserId  string `json:"userId"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Role    string `json:"role"`
}

func (p *Profile) Equal(o *Profile) bool {
	if (p == nil) || (o == nil) {
		return (p == nil) && (o == nil)
	}
	return *p == *o
}

func ComposeProfile(u kdb.User) Profile {
	return Profile{
		UserId:  u.UserId,
		Name:    u.Name,
		Email:   u.Email,
		Phone:   u.Phone,
		Address: u.Address,
		Role:    u.Role.String(),
	}
}

// Session is the login response: the token to be sent back in
// Authorization headers, and the profile for the UI.
type Session struct {
	Token string  `json:"token"`
	User  Profile `json:"user"`
}

type RegisterRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	SecurityAnswer string `json:"answer"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ForgotPasswordRequest struct {
	Email          string `json:"email"`
	SecurityAnswer string `json:"answer"`
	NewPassword    string `json:"newPassword"`
}

// UpdateProfileRequest carries fields to overwrite. Absent fields are
// left as they are.
type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty"`
	Password *string `json:"password,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
}
