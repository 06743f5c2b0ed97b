package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/echo/v4/health"
	"github.com/robinjoseph08/golib/echo/v4/middleware/logger"
	"github.com/robinjoseph08/golib/echo/v4/middleware/recovery"

	"github.com/panelpress/panelpress/pkg/auth"
	"github.com/panelpress/panelpress/pkg/binder"
	"github.com/panelpress/panelpress/pkg/checkout"
	"github.com/panelpress/panelpress/pkg/comics"
	"github.com/panelpress/panelpress/pkg/config"
	"github.com/panelpress/panelpress/pkg/errcodes"
	"github.com/panelpress/panelpress/pkg/generation"
	"github.com/panelpress/panelpress/pkg/storage"
)

func New(cfg *config.Config, st storage.Storage, store *comics.Store) (*http.Server, error) {
	e := echo.New()

	b, err := binder.New()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	e.Binder = b

	e.Use(logger.Middleware())
	e.Use(recovery.Middleware())
	e.Use(middleware.CORS())

	health.RegisterRoutes(e)

	// Register auth routes and get the auth service
	authService := auth.RegisterRoutes(e, st, cfg.JWTSecret)
	authMiddleware := auth.NewMiddleware(authService)

	// Comic routes
	comicsGroup := e.Group("/comics")
	comicsGroup.Use(authMiddleware.Authenticate)
	comics.RegisterRoutesWithGroup(comicsGroup, store)

	// Image generation routes
	generationGroup := e.Group("/generate")
	generationGroup.Use(authMiddleware.Authenticate)
	generation.RegisterRoutesWithGroup(generationGroup, generation.NewService(cfg.GenerationDelay, cfg.GenerationRatePerSecond))

	// Checkout routes
	checkoutGroup := e.Group("/checkout")
	checkoutGroup.Use(authMiddleware.Authenticate)
	checkout.RegisterRoutesWithGroup(checkoutGroup, checkout.NewService(cfg.CheckoutDelay, cfg.FrontendURL))

	echo.NotFoundHandler = notFoundHandler
	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		Handler:           e,
		ReadHeaderTimeout: 3 * time.Second,
	}

	return srv, nil
}

func notFoundHandler(c echo.Context) error {
	c.SetPath("/:path")
	return errcodes.NotFound("Page")
}
