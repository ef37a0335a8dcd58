package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	httptestutil "github.com/shopfab/shopfab/internal/testutils/http"
	apicategories "github.com/shopfab/shopfab/pkg/api/types/categories"
	apiproducts "github.com/shopfab/shopfab/pkg/api/types/products"
	kdb "github.com/shopfab/shopfab/pkg/db"
	dbmock "github.com/shopfab/shopfab/pkg/db/mocks"
	"github.com/shopfab/shopfab/pkg/utils/cmp"
	"github.com/shopfab/shopfab/pkg/utils/slices"
	"github.com/shopfab/shopfab/pkg/utils/try"

	"github.com/shopfab/shopfab/cmd/shopd/handlers"
)

func TestCreateCategoryHandler(t *testing.T) {

	t.Run("When a new category is created, it should respond it with 201", func(t *testing.T) {
		created := kdb.Category{CategoryId: "cat-1", Name: "Science Fiction", Slug: "science-fiction"}

		mckcat := dbmock.NewCategoryInterface()
		mckcat.Impl.Create = func(ctx context.Context, name string, slug string) (kdb.Category, error) {
			return created, nil
		}

		e := echo.New()
		c, resp := httptestutil.Post(
			e, "/api/category",
			strings.NewReader(`{"name": "Science Fiction"}`),
			httptestutil.ContentType("application/json"),
		)

		testee := handlers.CreateCategoryHandler(mckcat)
		if err := testee(c); err != nil {
			t.Fatalf("response is not success. error = %v", err)
		}

		if mckcat.Calls.Create.Times() != 1 {
			t.Fatalf("Create is called not once. actual = %d", mckcat.Calls.Create.Times())
		}
		call := mckcat.Calls.Create[0]
		if call.Name != "Science Fiction" || call.Slug != "science-fiction" {
			t.Errorf("unexpected name/slug: %+v", call)
		}

		if resp.Code != http.StatusCreated {
			t.Errorf("status code is not %d. actual = %d", http.StatusCreated, resp.Code)
		}

		actual := apicategories.Summary{}
		try.To(0, json.Unmarshal(resp.Body.Bytes(), &actual)).OrFatal(t)
		expected := apicategories.ComposeSummary(created)
		if !actual.Equal(&expected) {
			t.Errorf(
				"response body is wrong:\n===actual===\n%+v\n===expected===\n%+v",
				actual, expected,
			)
		}
	})

	t.Run("When the name is taken, it should respond 409", func(t *testing.T) {
		mckcat := dbmock.NewCategoryInterface()
		mckcat.Impl.Create = func(ctx context.Context, name string, slug string) (kdb.Category, error) {
			return kdb.Category{}, fmt.Errorf("categories: %w", kdb.ErrDuplicate)
		}

		e := echo.New()
		c, _ := httptestutil.Post(
			e, "/api/category",
			strings.NewReader(`{"name": "Science Fiction"}`),
			httptestutil.ContentType("application/json"),
		)

		testee := handlers.CreateCategoryHandler(mckcat)
		err := testee(c)

		var echoErr *echo.HTTPError
		if !errors.As(err, &echoErr) {
			t.Fatalf("error is not echo.HTTPError. actual = %#v", err)
		}
		if echoErr.Code != http.StatusConflict {
			t.Errorf("status code is not %d. actual = %d", http.StatusConflict, echoErr.Code)
		}
	})

	t.Run("When the name is empty, it should respond 400 without touching the database", func(t *testing.T) {
		mckcat := dbmock.NewCategoryInterface()

		e := echo.New()
		c, _ := httptestutil.Post(
			e, "/api/category",
			strings.NewReader(`{"name": ""}`),
			httptestutil.ContentType("application/json"),
		)

		testee := handlers.CreateCategoryHandler(mckcat)
		err := testee(c)

		var echoErr *echo.HTTPError
		if !errors.As(err, &echoErr) {
			t.Fatalf("error is not echo.HTTPError. actual = %#v", err)
		}
		if echoErr.Code != http.StatusBadRequest {
			t.Errorf("status code is not %d. actual = %d", http.StatusBadRequest, echoErr.Code)
		}
		if mckcat.Calls.Create.Times() != 0 {
			t.Errorf("Create should not be called. actual = %d times", mckcat.Calls.Create.Times())
		}
	})
}

func TestRenameCategoryHandler(t *testing.T) {

	t.Run("When the category exists, it should rename it with a new slug", func(t *testing.T) {
		renamed := kdb.Category{CategoryId: "cat-1", Name: "Sci-Fi & Fantasy", Slug: "sci-fi-fantasy"}

		mckcat := dbmock.NewCategoryInterface()
		mckcat.Impl.Rename = func(ctx context.Context, categoryId string, name string, slug string) (kdb.Category, error) {
			return renamed, nil
		}

		e := echo.New()
		c, resp := httptestutil.Put(
			e, "/api/category/cat-1",
			strings.NewReader(`{"name": "Sci-Fi & Fantasy"}`),
			httptestutil.ContentType("application/json"),
		)
		c.SetParamNames("categoryId")
		c.SetParamValues("cat-1")

		testee := handlers.RenameCategoryHandler(mckcat, "categoryId")
		if err := testee(c); err != nil {
			t.Fatalf("response is not success. error = %v", err)
		}

		if mckcat.Calls.Rename.Times() != 1 {
			t.Fatalf("Rename is called not once. actual = %d", mckcat.Calls.Rename.Times())
		}
		call := mckcat.Calls.Rename[0]
		if call.CategoryId != "cat-1" || call.Name != "Sci-Fi & Fantasy" || call.Slug != "sci-fi-fantasy" {
			t.Errorf("unexpected rename request: %+v", call)
		}

		actual := apicategories.Summary{}
		try.To(0, json.Unmarshal(resp.Body.Bytes(), &actual)).OrFatal(t)
		expected := apicategories.ComposeSummary(renamed)
		if !actual.Equal(&expected) {
			t.Errorf(
				"response body is wrong:\n===actual===\n%+v\n===expected===\n%+v",
				actual, expected,
			)
		}
	})

	t.Run("When the category does not exist, it should respond 404", func(t *testing.T) {
		mckcat := dbmock.NewCategoryInterface()
		mckcat.Impl.Rename = func(ctx context.Context, categoryId string, name string, slug string) (kdb.Category, error) {
			return kdb.Category{}, fmt.Errorf("categories: %w", kdb.ErrMissing)
		}

		e := echo.New()
		c, _ := httptestutil.Put(
			e, "/api/category/cat-gone",
			strings.NewReader(`{"name": "Sci-Fi & Fantasy"}`),
			httptestutil.ContentType("application/json"),
		)
		c.SetParamNames("categoryId")
		c.SetParamValues("cat-gone")

		testee := handlers.RenameCategoryHandler(mckcat, "categoryId")
		err := testee(c)

		var echoErr *echo.HTTPError
		if !errors.As(err, &echoErr) {
			t.Fatalf("error is not echo.HTTPError. actual = %#v", err)
		}
		if echoErr.Code != http.StatusNotFound {
			t.Errorf("status code is not %d. actual = %d", http.StatusNotFound, echoErr.Code)
		}
	})
}

func TestListCategoriesHandler(t *testing.T) {

	t.Run("When categories are found, it should respond them all", func(t *testing.T) {
		stored := []kdb.Category{
			{CategoryId: "cat-1", Name: "Cooking", Slug: "cooking"},
			{CategoryId: "cat-2", Name: "Science Fiction", Slug: "science-fiction"},
		}

		mckcat := dbmock.NewCategoryInterface()
		mckcat.Impl.GetAll = func(ctx context.Context) ([]kdb.Category, error) {
			return stored, nil
		}

		e := echo.New()
		c, resp := httptestutil.Get(e, "/api/category")

		testee := handlers.ListCategoriesHandler(mckcat)
		if err := testee(c); err != nil {
			t.Fatalf("response is not success. error = %v", err)
		}

		actual := []apicategories.Summary{}
		try.To(0, json.Unmarshal(resp.Body.Bytes(), &actual)).OrFatal(t)
		expected := slices.Map(stored, apicategories.ComposeSummary)
		if !cmp.SliceEqWith(actual, expected, func(a, b apicategories.Summary) bool { return a.Equal(&b) }) {
			t.Errorf(
				"response body is wrong:\n===actual===\n%+v\n===expected===\n%+v",
				actual, expected,
			)
		}
	})
}

func TestGetCategoryHandler(t *testing.T) {

	t.Run("When the slug is known, it should respond the category", func(t *testing.T) {
		stored := kdb.Category{CategoryId: "cat-1", Name: "Cooking", Slug: "cooking"}

		mckcat := dbmock.NewCategoryInterface()
		mckcat.Impl.GetBySlug = func(ctx context.Context, slug string) (kdb.Category, error) {
			return stored, nil
		}

		e := echo.New()
		c, resp := httptestutil.Get(e, "/api/category/cooking")
		c.SetParamNames("slug")
		c.SetParamValues("cooking")

		testee := handlers.GetCategoryHandler(mckcat, "slug")
		if err := testee(c); err != nil {
			t.Fatalf("response is not success. error = %v", err)
		}

		if mckcat.Calls.GetBySlug.Times() != 1 || mckcat.Calls.GetBySlug[0].Slug != "cooking" {
			t.Errorf("GetBySlug is not called for cooking. actual = %+v", mckcat.Calls.GetBySlug)
		}

		actual := apicategories.Summary{}
		try.To(0, json.Unmarshal(resp.Body.Bytes(), &actual)).OrFatal(t)
		expected := apicategories.ComposeSummary(stored)
		if !actual.Equal(&expected) {
			t.Errorf(
				"response body is wrong:\n===actual===\n%+v\n===expected===\n%+v",
				actual, expected,
			)
		}
	})

	t.Run("When the slug is unknown, it should respond 404", func(t *testing.T) {
		mckcat := dbmock.NewCategoryInterface()
		mckcat.Impl.GetBySlug = func(ctx context.Context, slug string) (kdb.Category, error) {
			return kdb.Category{}, fmt.Errorf("categories: %w", kdb.ErrMissing)
		}

		e := echo.New()
		c, _ := httptestutil.Get(e, "/api/category/no-such")
		c.SetParamNames("slug")
		c.SetParamValues("no-such")

		testee := handlers.GetCategoryHandler(mckcat, "slug")
		err := testee(c)

		var echoErr *echo.HTTPError
		if !errors.As(err, &echoErr) {
			t.Fatalf("error is not echo.HTTPError. actual = %#v", err)
		}
		if echoErr.Code != http.StatusNotFound {
			t.Errorf("status code is not %d. actual = %d", http.StatusNotFound, echoErr.Code)
		}
	})
}

func TestDeleteCategoryHandler(t *testing.T) {

	t.Run("When the category exists, it should delete it and respond 204", func(t *testing.T) {
		mckcat := dbmock.NewCategoryInterface()
		mckcat.Impl.Delete = func(ctx context.Context, categoryId string) error {
			return nil
		}

		e := echo.New()
		c, resp := httptestutil.Delete(e, "/api/category/cat-1")
		c.SetParamNames("categoryId")
		c.SetParamValues("cat-1")

		testee := handlers.DeleteCategoryHandler(mckcat, "categoryId")
		if err := testee(c); err != nil {
			t.Fatalf("response is not success. error = %v", err)
		}

		if mckcat.Calls.Delete.Times() != 1 || mckcat.Calls.Delete[0].CategoryId != "cat-1" {
			t.Errorf("Delete is not called for cat-1. actual = %+v", mckcat.Calls.Delete)
		}
		if resp.Code != http.StatusNoContent {
			t.Errorf("status code is not %d. actual = %d", http.StatusNoContent, resp.Code)
		}
	})

	t.Run("When the category does not exist, it should respond 404", func(t *testing.T) {
		mckcat := dbmock.NewCategoryInterface()
		mckcat.Impl.Delete = func(ctx context.Context, categoryId string) error {
			return fmt.Errorf("categories: %w", kdb.ErrMissing)
		}

		e := echo.New()
		c, _ := httptestutil.Delete(e, "/api/category/cat-gone")
		c.SetParamNames("categoryId")
		c.SetParamValues("cat-gone")

		testee := handlers.DeleteCategoryHandler(mckcat, "categoryId")
		err := testee(c)

		var echoErr *echo.HTTPError
		if !errors.As(err, &echoErr) {
			t.Fatalf("error is not echo.HTTPError. actual = %#v", err)
		}
		if echoErr.Code != http.StatusNotFound {
			t.Errorf("status code is not %d. actual = %d", http.StatusNotFound, echoErr.Code)
		}
	})
}

func TestCategoryProductsHandler(t *testing.T) {

	t.Run("When the slug is known, it should respond the category with its products", func(t *testing.T) {
		category := kdb.Category{CategoryId: "cat-1", Name: "Cooking", Slug: "cooking"}
		stored := []kdb.Product{
			{
				ProductBody: kdb.ProductBody{
					ProductId: "prod-1", Name: "cast iron pan", Slug: "cast-iron-pan",
					Description: "a pan", PriceCents: 4999, Quantity: 3, Shipping: true,
				},
				Category: category,
			},
		}

		mckcat := dbmock.NewCategoryInterface()
		mckcat.Impl.GetBySlug = func(ctx context.Context, slug string) (kdb.Category, error) {
			return category, nil
		}
		mckprod := dbmock.NewProductInterface()
		mckprod.Impl.Find = func(ctx context.Context, query kdb.ProductFindQuery) ([]kdb.Product, error) {
			return stored, nil
		}

		e := echo.New()
		c, resp := httptestutil.Get(e, "/api/product/category/cooking")
		c.SetParamNames("slug")
		c.SetParamValues("cooking")

		testee := handlers.CategoryProductsHandler(mckcat, mckprod, "slug")
		if err := testee(c); err != nil {
			t.Fatalf("response is not success. error = %v", err)
		}

		if mckprod.Calls.Find.Times() != 1 {
			t.Fatalf("Find is called not once. actual = %d", mckprod.Calls.Find.Times())
		}
		query := mckprod.Calls.Find[0]
		if !cmp.SliceEq(query.CategoryIds, []string{"cat-1"}) {
			t.Errorf("products are not restricted to cat-1. actual = %+v", query)
		}

		actual := apiproducts.CategoryProducts{}
		try.To(0, json.Unmarshal(resp.Body.Bytes(), &actual)).OrFatal(t)
		expectedCategory := apicategories.ComposeSummary(category)
		if !actual.Category.Equal(&expectedCategory) {
			t.Errorf("category is wrong. actual = %+v", actual.Category)
		}
		expectedProducts := slices.Map(stored, apiproducts.ComposeDetail)
		if !cmp.SliceEqWith(actual.Products, expectedProducts, func(a, b apiproducts.Detail) bool { return a.Equal(&b) }) {
			t.Errorf(
				"products are wrong:\n===actual===\n%+v\n===expected===\n%+v",
				actual.Products, expectedProducts,
			)
		}
	})

	t.Run("When the slug is unknown, it should respond 404 without querying products", func(t *testing.T) {
		mckcat := dbmock.NewCategoryInterface()
		mckcat.Impl.GetBySlug = func(ctx context.Context, slug string) (kdb.Category, error) {
			return kdb.Category{}, fmt.Errorf("categories: %w", kdb.ErrMissing)
		}
		mckprod := dbmock.NewProductInterface()

		e := echo.New()
		c, _ := httptestutil.Get(e, "/api/product/category/no-such")
		c.SetParamNames("slug")
		c.SetParamValues("no-such")

		testee := handlers.CategoryProductsHandler(mckcat, mckprod, "slug")
		err := testee(c)

		var echoErr *echo.HTTPError
		if !errors.As(err, &echoErr) {
			t.Fatalf("error is not echo.HTTPError. actual = %#v", err)
		}
		if echoErr.Code != http.StatusNotFound {
			t.Errorf("status code is not %d. actual = %d", http.StatusNotFound, echoErr.Code)
		}
		if mckprod.Calls.Find.Times() != 0 {
			t.Errorf("Find should not be called. actual = %d times", mckprod.Calls.Find.Times())
		}
	})
}
