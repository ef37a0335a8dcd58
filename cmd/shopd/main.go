package main

import (
	"context"
	"flag"
	"log"
	"path"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/shopfab/shopfab/pkg/auth"
	kcs "github.com/shopfab/shopfab/pkg/configs/server"
	kdb "github.com/shopfab/shopfab/pkg/db"
	kpg "github.com/shopfab/shopfab/pkg/db/postgres"
	"github.com/shopfab/shopfab/pkg/echoutil"
	"github.com/shopfab/shopfab/pkg/payment"
	"github.com/shopfab/shopfab/pkg/utils/filewatch"
	kstrings "github.com/shopfab/shopfab/pkg/utils/strings"

	"github.com/shopfab/shopfab/cmd/shopd/handlers"
)

func main() {

	configPath := flag.String("config-path", "", "server config path")
	loglevel := flag.String("loglevel", "info", "log level. debug|info|warn|error|off")
	pcert := flag.String("cert", "", "certification file for TLS")
	pkey := flag.String("certkey", "", "key of certification file for TLS")
	schemaRepository := flag.String(
		"schema-repository", "",
		"directory of versioned schema definitions. when given, the schema is upgraded on boot",
	)
	flag.Parse()

	e := echo.New()
	e.Pre(middleware.AddTrailingSlash())

	// set log
	echoutil.SetLevel(e, *loglevel)
	e.HTTPErrorHandler = func(err error, ctx echo.Context) {
		e.DefaultHTTPErrorHandler(err, ctx)
		e.Logger.Error(err)
	}
	e.Use(echoutil.LogHandlerFunc)

	// read configfile
	conf, err := kcs.LoadServerConfig(*configPath)
	if err != nil {
		log.Fatalf("can not read configration: %s", err)
	}

	// quit to restart when the config file is rewritten.
	{
		ctx, cancel, err := filewatch.UntilModifyContext(context.Background(), *configPath)
		if err != nil {
			log.Fatalf("can not watch configration: %s", err)
		}
		defer cancel()
		context.AfterFunc(ctx, func() {
			log.Println("config file is updated. quit to restart server.")
			graceful, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := e.Shutdown(graceful); err != nil {
				log.Printf("error on shutdown by config update: %s", err)
			}
		})
	}

	api := root("/api")

	// get dbaccesor
	ctx := context.Background()
	db, err := getDBAccesor(ctx, conf.DBURI, *schemaRepository)
	if err != nil {
		log.Fatalf("can not connect to database: %s", err.Error())
	}
	defer db.Close()

	if *schemaRepository != "" {
		if err := db.Schema().Upgrade(ctx); err != nil {
			log.Fatalf("can not upgrade database schema: %s", err)
		}
		version, err := db.Schema().Version(ctx)
		if err != nil {
			log.Fatalf("can not read database schema version: %s", err)
		}
		log.Println("database schema version:", version)
	}

	tokens := auth.NewHS256(
		[]byte(conf.TokenSecret),
		time.Duration(conf.TokenExpiryHours)*time.Hour,
	)
	signIn := auth.RequireSignIn(tokens)
	admin := auth.RequireAdmin(db.Users())

	gateway, err := payment.NewBraintree(conf.Gateway)
	if err != nil {
		log.Fatalf("can not configure payment gateway: %s", err)
	}

	// handlers
	{
		e.POST(api("auth/register"), handlers.RegisterHandler(db.Users()))
		e.POST(api("auth/login"), handlers.LoginHandler(db.Users(), tokens))
		e.POST(api("auth/forgot-password"), handlers.ForgotPasswordHandler(db.Users()))

		e.GET(api("auth/profile"), handlers.GetProfileHandler(db.Users()), signIn)
		e.PUT(api("auth/profile"), handlers.UpdateProfileHandler(db.Users()), signIn)
	}

	{
		e.POST(api("categories"), handlers.CreateCategoryHandler(db.Categories()), signIn, admin)
		e.PUT(api("categories/:categoryId/"), handlers.RenameCategoryHandler(db.Categories(), "categoryId"), signIn, admin)
		e.DELETE(api("categories/:categoryId/"), handlers.DeleteCategoryHandler(db.Categories(), "categoryId"), signIn, admin)

		e.GET(api("categories"), handlers.ListCategoriesHandler(db.Categories()))
		e.GET(api("categories/:slug/"), handlers.GetCategoryHandler(db.Categories(), "slug"))
	}

	{
		e.POST(api("products"), handlers.CreateProductHandler(db.Products()), signIn, admin)
		e.PUT(api("products/:productId/"), handlers.UpdateProductHandler(db.Products(), "productId"), signIn, admin)
		e.DELETE(api("products/:productId/"), handlers.DeleteProductHandler(db.Products(), "productId"), signIn, admin)

		e.GET(api("products"), handlers.ListProductsHandler(db.Products()))
		e.GET(api("products/count"), handlers.CountProductsHandler(db.Products()))
		e.POST(api("products/filter"), handlers.FilterProductsHandler(db.Products()))
		e.GET(api("products/page/:page/"), handlers.PageProductsHandler(db.Products(), "page"))
		e.GET(api("products/search/:keyword/"), handlers.SearchProductsHandler(db.Products(), "keyword"))
		e.GET(api("products/photo/:productId/"), handlers.ProductPhotoHandler(db.Products(), "productId"))
		e.GET(api("products/related/:productId/"), handlers.RelatedProductsHandler(db.Products(), "productId"))
		e.GET(api("products/category/:slug/"), handlers.CategoryProductsHandler(db.Categories(), db.Products(), "slug"))
		e.GET(api("products/:slug/"), handlers.GetProductHandler(db.Products(), "slug"))
	}

	{
		e.GET(api("orders"), handlers.ListMyOrdersHandler(db.Orders()), signIn)
		e.GET(api("orders/all"), handlers.ListAllOrdersHandler(db.Orders()), signIn, admin)
		e.PUT(api("orders/:orderId/status"), handlers.UpdateOrderStatusHandler(db.Orders(), "orderId"), signIn, admin)
	}

	{
		e.GET(api("payment/token"), handlers.GatewayTokenHandler(gateway), signIn)
		e.POST(api("payment"), handlers.CheckoutHandler(gateway, db.Products(), db.Orders()), signIn)
	}

	log.Println("registred routes:")
	for _, r := range e.Routes() {
		log.Println(r.Method, r.Path)
	}

	cert, key := *pcert, *pkey
	if cert != "" && key != "" {
		e.Logger.Fatal(e.StartTLS(":"+conf.ServerPort, cert, key))
	} else {
		e.Logger.Fatal(e.Start(":" + conf.ServerPort))
	}
}

func getDBAccesor(ctx context.Context, dburi string, schemaRepository string) (kdb.ShopDatabase, error) {
	options := []kpg.Option{}
	if schemaRepository != "" {
		options = append(options, kpg.WithSchemaRepository(schemaRepository))
	}
	return kpg.New(ctx, dburi, options...)
}

// create api URL factory.
//
// it receives a path relative from the root, and returns the full path,
// "/" terminated (to agree with the trailing-slash middleware).
func root(r string) func(...string) string {
	return func(s ...string) string {
		parts := make([]string, len(s)+1)
		parts[0] = r
		copy(parts[1:], s)
		p := path.Join(parts...)

		return kstrings.SupplySuffix(p, "/")
	}
}
