package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gosimple/slug"
	"github.com/labstack/echo/v4"
	apicategories "github.com/shopfab/shopfab/pkg/api/types/categories"
	apierr "github.com/shopfab/shopfab/pkg/api/types/errors"
	apiproducts "github.com/shopfab/shopfab/pkg/api/types/products"
	kdb "github.com/shopfab/shopfab/pkg/db"
	"github.com/shopfab/shopfab/pkg/utils/slices"
)

func decodeCategoryChange(c echo.Context) (apicategories.Change, error) {
	req := apicategories.Change{}
	decoder := json.NewDecoder(c.Request().Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		return req, apierr.NewErrorMessage(
			http.StatusBadRequest,
			"format error",
			apierr.WithAdvice(err.Error()),
			apierr.WithError(err),
		)
	}
	if req.Name == "" {
		return req, apierr.BadRequest("name is required", nil)
	}
	return req, nil
}

func CreateCategoryHandler(categories kdb.CategoryInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		req, err := decodeCategoryChange(c)
		if err != nil {
			return err
		}

		cat, err := categories.Create(ctx, req.Name, slug.Make(req.Name))
		if errors.Is(err, kdb.ErrDuplicate) {
			return apierr.Conflict("category already exists")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusCreated, apicategories.ComposeSummary(cat))
	}
}

func RenameCategoryHandler(categories kdb.CategoryInterface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		categoryId := c.Param(paramKey)

		req, err := decodeCategoryChange(c)
		if err != nil {
			return err
		}

		cat, err := categories.Rename(ctx, categoryId, req.Name, slug.Make(req.Name))
		if errors.Is(err, kdb.ErrMissing) {
			return apierr.NewErrorMessage(
				http.StatusNotFound, "category not found",
				apierr.WithError(err),
			)
		} else if errors.Is(err, kdb.ErrDuplicate) {
			return apierr.Conflict("category already exists")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apicategories.ComposeSummary(cat))
	}
}

func ListCategoriesHandler(categories kdb.CategoryInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		cats, err := categories.GetAll(ctx)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, slices.Map(cats, apicategories.ComposeSummary))
	}
}

func GetCategoryHandler(categories kdb.CategoryInterface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		cat, err := categories.GetBySlug(ctx, c.Param(paramKey))
		if errors.Is(err, kdb.ErrMissing) {
			return apierr.NewErrorMessage(
				http.StatusNotFound, "category not found",
				apierr.WithError(err),
			)
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apicategories.ComposeSummary(cat))
	}
}

func DeleteCategoryHandler(categories kdb.CategoryInterface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		err := categories.Delete(ctx, c.Param(paramKey))
		if errors.Is(err, kdb.ErrMissing) {
			return apierr.NewErrorMessage(
				http.StatusNotFound, "category not found",
				apierr.WithError(err),
			)
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}

// CategoryProductsHandler serves a category page: the category found by
// its slug together with the products filed under it.
func CategoryProductsHandler(
	categories kdb.CategoryInterface,
	products kdb.ProductInterface,
	paramKey string,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		cat, err := categories.GetBySlug(ctx, c.Param(paramKey))
		if errors.Is(err, kdb.ErrMissing) {
			return apierr.NewErrorMessage(
				http.StatusNotFound, "category not found",
				apierr.WithError(err),
			)
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		prods, err := products.Find(ctx, kdb.ProductFindQuery{
			CategoryIds: []string{cat.CategoryId},
		})
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apiproducts.CategoryProducts{
			Category: apicategories.ComposeSummary(cat),
			Products: slices.Map(prods, apiproducts.ComposeDetail),
		})
	}
}
