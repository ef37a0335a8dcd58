package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gosimple/slug"
	"github.com/labstack/echo/v4"
	apierr "github.com/shopfab/shopfab/pkg/api/types/errors"
	"github.com/shopfab/shopfab/pkg/api/types/money"
	apiproducts "github.com/shopfab/shopfab/pkg/api/types/products"
	kdb "github.com/shopfab/shopfab/pkg/db"
	"github.com/shopfab/shopfab/pkg/utils/slices"
)

const (
	// photos ride along in multipart form; anything bigger belongs in
	// object storage, not here.
	maxPhotoBytes = 1000000

	// storefront list sizes.
	productListLimit    = 12
	productsPerPage     = 6
	relatedProductLimit = 3
)

// readProductForm decodes the multipart create/update form into a spec.
// The photo part is optional; a returned spec with nil Photo keeps the
// stored one on update.
func readProductForm(c echo.Context) (kdb.ProductSpec, error) {
	spec := kdb.ProductSpec{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		CategoryId:  c.FormValue("category"),
	}

	if spec.Name == "" || spec.Description == "" {
		return spec, apierr.BadRequest("name and description are required", nil)
	}
	if spec.CategoryId == "" {
		return spec, apierr.BadRequest("category is required", nil)
	}
	spec.Slug = slug.Make(spec.Name)

	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil || price < 0 {
		return spec, apierr.BadRequest("price should be a non-negative number", err)
	}
	spec.PriceCents = money.ToCents(price)

	quantity, err := strconv.Atoi(c.FormValue("quantity"))
	if err != nil || quantity < 0 {
		return spec, apierr.BadRequest("quantity should be a non-negative integer", err)
	}
	spec.Quantity = quantity

	if shipping := c.FormValue("shipping"); shipping != "" {
		s, err := strconv.ParseBool(shipping)
		if err != nil {
			return spec, apierr.BadRequest("shipping should be a boolean", err)
		}
		spec.Shipping = s
	}

	photo, err := c.FormFile("photo")
	if errors.Is(err, http.ErrMissingFile) {
		return spec, nil
	} else if err != nil {
		return spec, apierr.BadRequest("photo is not readable", err)
	}
	if photo.Size > maxPhotoBytes {
		return spec, apierr.BadRequest("photo should be smaller than 1MB", nil)
	}

	file, err := photo.Open()
	if err != nil {
		return spec, apierr.InternalServerError(err)
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return spec, apierr.InternalServerError(err)
	}

	spec.Photo = &kdb.Photo{
		ContentType: photo.Header.Get("Content-Type"),
		Data:        data,
	}
	return spec, nil
}

func CreateProductHandler(products kdb.ProductInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		spec, err := readProductForm(c)
		if err != nil {
			return err
		}

		prod, err := products.Create(ctx, spec)
		if errors.Is(err, kdb.ErrDuplicate) {
			return apierr.Conflict("product already exists")
		} else if errors.Is(err, kdb.ErrMissing) {
			return apierr.NewErrorMessage(
				http.StatusNotFound, "category not found",
				apierr.WithError(err),
			)
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusCreated, apiproducts.ComposeDetail(prod))
	}
}

func UpdateProductHandler(products kdb.ProductInterface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		spec, err := readProductForm(c)
		if err != nil {
			return err
		}

		prod, err := products.Update(ctx, c.Param(paramKey), spec)
		if errors.Is(err, kdb.ErrDuplicate) {
			return apierr.Conflict("product already exists")
		} else if errors.Is(err, kdb.ErrMissing) {
			return apierr.NewErrorMessage(
				http.StatusNotFound, "product not found",
				apierr.WithError(err),
			)
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apiproducts.ComposeDetail(prod))
	}
}

func DeleteProductHandler(products kdb.ProductInterface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		err := products.Delete(ctx, c.Param(paramKey))
		if errors.Is(err, kdb.ErrMissing) {
			return apierr.NewErrorMessage(
				http.StatusNotFound, "product not found",
				apierr.WithError(err),
			)
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}

func ListProductsHandler(products kdb.ProductInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		prods, err := products.Find(ctx, kdb.ProductFindQuery{Limit: productListLimit})
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, slices.Map(prods, apiproducts.ComposeDetail))
	}
}

func GetProductHandler(products kdb.ProductInterface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		prod, err := products.GetBySlug(ctx, c.Param(paramKey))
		if errors.Is(err, kdb.ErrMissing) {
			return apierr.NewErrorMessage(
				http.StatusNotFound, "product not found",
				apierr.WithError(err),
			)
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apiproducts.ComposeDetail(prod))
	}
}

// ProductPhotoHandler serves the stored photo bytes with their original
// content type.
func ProductPhotoHandler(products kdb.ProductInterface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		photo, err := products.GetPhoto(ctx, c.Param(paramKey))
		if errors.Is(err, kdb.ErrMissing) {
			return apierr.NewErrorMessage(
				http.StatusNotFound, "photo not found",
				apierr.WithError(err),
			)
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.Blob(http.StatusOK, photo.ContentType, photo.Data)
	}
}

func FilterProductsHandler(products kdb.ProductInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		req := apiproducts.FilterRequest{}
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

		query := kdb.ProductFindQuery{CategoryIds: req.Checked}
		switch len(req.Radio) {
		case 0: // unrestricted
		case 2:
			min, max := money.ToCents(req.Radio[0]), money.ToCents(req.Radio[1])
			query.PriceMinCents = &min
			query.PriceMaxCents = &max
		default:
			return apierr.BadRequest("radio should be a [low, high] price pair", nil)
		}

		prods, err := products.Find(ctx, query)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, slices.Map(prods, apiproducts.ComposeDetail))
	}
}

func CountProductsHandler(products kdb.ProductInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		total, err := products.Count(ctx, kdb.ProductFindQuery{})
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apiproducts.Count{Total: total})
	}
}

func PageProductsHandler(products kdb.ProductInterface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		page, err := strconv.Atoi(c.Param(paramKey))
		if err != nil || page < 1 {
			page = 1
		}

		prods, err := products.Find(ctx, kdb.ProductFindQuery{
			Offset: (page - 1) * productsPerPage,
			Limit:  productsPerPage,
		})
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, slices.Map(prods, apiproducts.ComposeDetail))
	}
}

func SearchProductsHandler(products kdb.ProductInterface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		prods, err := products.Find(ctx, kdb.ProductFindQuery{
			Keyword: c.Param(paramKey),
		})
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, slices.Map(prods, apiproducts.ComposeDetail))
	}
}

func RelatedProductsHandler(products kdb.ProductInterface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		prods, err := products.FindRelated(ctx, c.Param(paramKey), relatedProductLimit)
		if errors.Is(err, kdb.ErrMissing) {
			return apierr.NewErrorMessage(
				http.StatusNotFound, "product not found",
				apierr.WithError(err),
			)
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, slices.Map(prods, apiproducts.ComposeDetail))
	}
}
