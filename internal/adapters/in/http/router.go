package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"oms/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echomiddleware "github.com/oapi-codegen/echo-middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

const apiPrefix = "/api/"

var registerDocOnce sync.Once

// NewRouter builds the echo instance serving the API, /health, /swagger and, when
// metricsHandler is not nil, /metrics. Requests under /api/ are validated against
// the embedded OpenAPI document before they reach the server.
func NewRouter(server *Server, metricsHandler http.Handler, logger *slog.Logger) (*echo.Echo, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("load openapi spec: %w", err)
	}
	// Match requests on path only, whatever host serves them.
	swagger.Servers = nil

	doc, err := swagger.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encode openapi spec: %w", err)
	}
	registerDocOnce.Do(func() {
		swag.Register(swag.Name, openAPIDoc(doc))
	})

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = httpErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency}
			if v.Error != nil {
				logger.ErrorContext(c.Request().Context(), "Request", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.InfoContext(c.Request().Context(), "Request", attrs...)
			return nil
		},
	}))
	e.Use(requestValidator(swagger))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	if metricsHandler != nil {
		e.GET("/metrics", echo.WrapHandler(metricsHandler))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)

	return e, nil
}

func requestValidator(swagger *openapi3.T) echo.MiddlewareFunc {
	return echomiddleware.OapiRequestValidatorWithOptions(swagger, &echomiddleware.Options{
		Skipper: func(c echo.Context) bool {
			return !strings.HasPrefix(c.Request().URL.Path, apiPrefix)
		},
	})
}

// openAPIDoc serves the embedded document to the Swagger UI.
type openAPIDoc []byte

func (d openAPIDoc) ReadDoc() string {
	return string(d)
}
