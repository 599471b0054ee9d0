package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/alimikegami/shopigo/config"
	"github.com/alimikegami/shopigo/internal/controller"
	appmiddleware "github.com/alimikegami/shopigo/internal/middleware"
	"github.com/alimikegami/shopigo/internal/repository"
	"github.com/alimikegami/shopigo/internal/service"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const livenessMessage = "Shopigo Server Running!"

type App struct {
	Config     *config.Config
	Repository repository.ProductRepository
	Publisher  service.EventPublisher
	Server     *echo.Echo
	Metrics    *echo.Echo
}

// NewServer builds the echo instance with every middleware and route, without
// listening. Prometheus metrics are only collected when a metrics port is set.
func (app *App) NewServer() *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	tracer := otel.Tracer(app.Config.TracingConfig.ServiceName)

	e.Use(middleware.Recover())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()),
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.method", c.Request().Method),
					attribute.String("http.route", c.Path()),
				),
			)
			defer span.End()

			c.SetRequest(c.Request().WithContext(ctx))

			err := next(c)
			span.SetAttributes(attribute.Int("http.status_code", c.Response().Status))
			if c.Response().Status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(c.Response().Status))
			}

			return err
		}
	})
	e.Use(appmiddleware.Logger)
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: app.Config.AllowOrigins,
	}))

	if app.Config.MetricsPort != "" {
		// Used empty string so that metrics are not prefixed with the service name
		e.Use(echoprometheus.NewMiddleware(""))

		app.Metrics = echo.New()
		app.Metrics.HideBanner = true
		app.Metrics.GET("/metrics", echoprometheus.NewHandler())
	}

	svc := service.CreateProductService(app.Repository, app.Publisher)
	controller.CreateProductController(e.Group(""), svc)

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, livenessMessage)
	})

	app.Server = e
	return e
}

// Start serves HTTP until StopServer is called. It returns nil after a
// graceful shutdown.
func (app *App) Start() error {
	if app.Server == nil {
		app.NewServer()
	}

	if app.Metrics != nil {
		go func() {
			if err := app.Metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error().Err(err).Msg("Failed to start metrics server")
			}
		}()
	}

	log.Info().Str("port", app.Config.ServicePort).Msg("Server running")

	err := app.Server.Start(fmt.Sprintf(":%s", app.Config.ServicePort))
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if app.Metrics != nil {
		if err := app.Metrics.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to stop metrics server")
		}
	}

	if app.Server == nil {
		return nil
	}

	return app.Server.Shutdown(ctx)
}
