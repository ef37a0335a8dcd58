package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	apierr "github.com/shopfab/shopfab/pkg/api/types/errors"
	apiorders "github.com/shopfab/shopfab/pkg/api/types/orders"
	"github.com/shopfab/shopfab/pkg/auth"
	kdb "github.com/shopfab/shopfab/pkg/db"
	"github.com/shopfab/shopfab/pkg/utils/slices"
)

// ListMyOrdersHandler lists the signed-in buyer's orders, newest first.
func ListMyOrdersHandler(orders kdb.OrderInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		found, err := orders.FindByBuyer(ctx, auth.UserIdFrom(c))
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, slices.Map(found, apiorders.ComposeDetail))
	}
}

// ListAllOrdersHandler lists every order in the shop. Admin only.
func ListAllOrdersHandler(orders kdb.OrderInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		found, err := orders.FindAll(ctx)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, slices.Map(found, apiorders.ComposeDetail))
	}
}

func UpdateOrderStatusHandler(orders kdb.OrderInterface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		req := apiorders.StatusChange{}
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

		status, err := kdb.AsOrderStatus(req.Status)
		if err != nil {
			return apierr.BadRequest("unknown order status", err)
		}

		order, err := orders.UpdateStatus(ctx, c.Param(paramKey), status)
		if errors.Is(err, kdb.ErrMissing) {
			return apierr.NewErrorMessage(
				http.StatusNotFound, "order not found",
				apierr.WithError(err),
			)
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apiorders.ComposeDetail(order))
	}
}
