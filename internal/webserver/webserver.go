// Package webserver exposes the page shell, the content API consumed by the
// browser sections, and the contact relay endpoint.
package webserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/camionrouge/vitrine/internal/app"
)

// Server wires HTTP routes to the content client and the mail sender.
type Server struct {
	app  app.AppContext
	echo *echo.Echo
}

// NewServer builds the echo instance with routes and middleware registered.
func NewServer(application app.AppContext) *Server {
	s := &Server{app: application, echo: echo.New()}
	s.echo.HideBanner = true
	s.echo.HidePort = true

	s.echo.Use(middleware.Recover())
	s.echo.Use(s.requestLogger())

	origins := application.Config().Web.AllowedOrigins
	if len(origins) > 0 {
		s.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: origins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		}))
	}

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.echo.GET("/", s.renderPage)
	s.echo.GET("/api/health", s.health)
	s.echo.GET("/api/menu", s.listMenu)
	s.echo.GET("/api/gallery", s.listGallery)
	s.echo.GET("/api/planning", s.listPlanning)
	s.echo.GET("/api/contact-info", s.getContactInfo)
	s.echo.GET("/api/map-position", s.getMapPosition)
	s.echo.GET("/api/events-markup", s.getEventsMarkup)
	s.echo.POST("/api/contact", s.submitContact)
}

// Echo exposes the underlying router, used by tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// Start blocks serving HTTP on the configured address. A graceful Shutdown
// makes it return nil; only real serve failures surface as errors.
func (s *Server) Start() error {
	cfg := s.app.Config().Web
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	zap.L().Info("web server starting", zap.String("addr", addr))
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			zap.L().Debug("http request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
			)
			return nil
		},
	})
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// message writes the {message} envelope shared by error responses and the
// contact endpoint.
func message(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]string{"message": msg})
}
