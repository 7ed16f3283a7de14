package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/Monte-10/ryanair-labs/business/interconnections"
	"github.com/Monte-10/ryanair-labs/config"
	"github.com/Monte-10/ryanair-labs/web"
	lwamw "github.com/its-felix/aws-lwa-go-middleware"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	routes, schedules, err := config.Providers(ctx, config.Config)
	if err != nil {
		panic(err)
	}

	search := interconnections.NewSearch(routes, schedules, interconnections.WithLogger(logger))

	e := echo.New()
	e.HideBanner = true
	e.Validator = web.NewValidator()
	e.JSONSerializer = web.JSONSerializer{}
	e.Use(
		lwamw.EchoMiddleware(
			lwamw.WithMaskError(),
			lwamw.WithRemoveHeaders(),
		),
		web.ErrorLogAndMaskMiddleware(log.New(os.Stderr, "", log.Ldate|log.Ltime|log.Lmicroseconds|log.Lshortfile)),
		web.NoCacheOnErrorMiddleware(),
		middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins:  []string{"*"},
			AllowMethods:  []string{http.MethodGet, http.MethodHead},
			ExposeHeaders: []string{web.HeaderSearchId},
		}),
	)

	h := web.NewInterconnectionsHandler(search, logger)
	e.GET("/interconnections", h.JSON)
	e.GET("/interconnections/png", h.PNG)
	e.GET("/health", web.Health)

	if err := run(ctx, e); err != nil {
		panic(err)
	}
}

func run(ctx context.Context, e *echo.Echo) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		<-ctx.Done()
		if err := e.Shutdown(context.Background()); err != nil {
			slog.Error("error shutting down the echo server", slog.String("err", err.Error()))
		}
	}()

	if err := e.Start(fmt.Sprintf(":%d", config.Config.EchoPort())); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err
	}

	return nil
}
