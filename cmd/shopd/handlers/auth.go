package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	apierr "github.com/shopfab/shopfab/pkg/api/types/errors"
	apiusers "github.com/shopfab/shopfab/pkg/api/types/users"
	"github.com/shopfab/shopfab/pkg/auth"
	kdb "github.com/shopfab/shopfab/pkg/db"
)

// passwords shorter than this are rejected on register/update/reset.
const minPasswordLength = 6

func RegisterHandler(users kdb.UserInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		req := apiusers.RegisterRequest{}
		decoder := json.NewDecoder(c.Request().Body)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			return apierr.NewErrorMessage(
				http.StatusBadRequest,
				"format error",
				apierr.WithAdvice(err.Error()),
				apierr.WithError(err),
			)
		}

		if req.Name == "" || req.Email == "" || req.SecurityAnswer == "" {
			return apierr.BadRequest("name, email and answer are required", nil)
		}
		if len(req.Password) < minPasswordLength {
			return apierr.BadRequest("password should be 6 characters or longer", nil)
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		user, err := users.Register(ctx, kdb.UserSpec{
			Name:           req.Name,
			Email:          req.Email,
			Phone:          req.Phone,
			Address:        req.Address,
			PasswordHash:   hash,
			SecurityAnswer: req.SecurityAnswer,
		})
		if errors.Is(err, kdb.ErrDuplicate) {
			return apierr.Conflict(
			"email is already registered",
			apierr.WithSee("/api/auth/login"),
		)
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusCreated, apiusers.ComposeProfile(user))
	}
}

func LoginHandler(users kdb.UserInterface, tokens auth.TokenIssuer) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		req := apiusers.LoginRequest{}
		decoder := json.NewDecoder(c.Request().Body)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			return apierr.NewErrorMessage(
				http.StatusBadRequest,
				"format error",
				apierr.WithAdvice(err.Error()),
				apierr.WithError(err),
			)
		}
		if req.Email == "" || req.Password == "" {
			return apierr.BadRequest("email and password are required", nil)
		}

		// unknown email and wrong password respond the same,
		// not to leak which emails are registered.
		cred, err := users.GetByEmail(ctx, req.Email)
		if errors.Is(err, kdb.ErrMissing) {
			return apierr.Unauthorized("email or password is wrong", err)
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		if !auth.ComparePassword(cred.PasswordHash, req.Password) {
			return apierr.Unauthorized("email or password is wrong", nil)
		}

		token, err := tokens.Issue(cred.UserId)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apiusers.Session{
			Token: token,
			User:  apiusers.ComposeProfile(cred.User),
		})
	}
}

func ForgotPasswordHandler(users kdb.UserInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		req := apiusers.ForgotPasswordRequest{}
		decoder := json.NewDecoder(c.Request().Body)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			return apierr.NewErrorMessage(
				http.StatusBadRequest,
				"format error",
				apierr.WithAdvice(err.Error()),
				apierr.WithError(err),
			)
		}
		if req.Email == "" || req.SecurityAnswer == "" {
			return apierr.BadRequest("email and answer are required", nil)
		}
		if len(req.NewPassword) < minPasswordLength {
			return apierr.BadRequest("password should be 6 characters or longer", nil)
		}

		hash, err := auth.HashPassword(req.NewPassword)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		if err := users.ResetPassword(ctx, req.Email, req.SecurityAnswer, hash); errors.Is(err, kdb.ErrMissing) {
			return apierr.NewErrorMessage(
				http.StatusNotFound, "email or answer is wrong",
			)
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.NoContent(http.StatusOK)
	}
}

func GetProfileHandler(users kdb.UserInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		user, err := users.Get(ctx, auth.UserIdFrom(c))
		if errors.Is(err, kdb.ErrMissing) {
			return apierr.Unauthorized("sign in again", err)
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apiusers.ComposeProfile(user))
	}
}

func UpdateProfileHandler(users kdb.UserInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		req := apiusers.UpdateProfileRequest{}
		decoder := json.NewDecoder(c.Request().Body)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			return apierr.NewErrorMessage(
				http.StatusBadRequest,
				"format error",
				apierr.WithAdvice(err.Error()),
				apierr.WithError(err),
			)
		}

		delta := kdb.ProfileDelta{
			Name:    req.Name,
			Phone:   req.Phone,
			Address: req.Address,
		}
		if req.Password != nil {
			if len(*req.Password) < minPasswordLength {
				return apierr.BadRequest("password should be 6 characters or longer", nil)
			}
			hash, err := auth.HashPassword(*req.Password)
			if err != nil {
				return apierr.InternalServerError(err)
			}
			delta.PasswordHash = hash
		}

		user, err := users.UpdateProfile(ctx, auth.UserIdFrom(c), delta)
		if errors.Is(err, kdb.ErrMissing) {
			return apierr.Unauthorized("sign in again", err)
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apiusers.ComposeProfile(user))
	}
}
