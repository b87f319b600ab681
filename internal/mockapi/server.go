package mockapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"svcctl/internal/api"
	"svcctl/pkg/logging"

	"github.com/labstack/echo/v5"
)

const serverSubsystem = "MockServer"

// Server serves a Backend over HTTP.
type Server struct {
	backend api.Backend
	e       *echo.Echo
}

// NewServer creates the HTTP server and registers the backend routes.
func NewServer(backend api.Backend) *Server {
	s := &Server{backend: backend, e: echo.New()}
	s.e.Use(requestLogger)
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.e.GET("/services", s.handleListServices)
	s.e.DELETE("/services/:id", s.handleDeleteService)
	s.e.POST("/services/:id/state", s.handleChangeState)
	s.e.GET("/services/:id/connection", s.handleCheckConnection)
	s.e.POST("/services/:id/connection", s.handleRequestConnection)
	s.e.POST("/triggers/:id/cancel", s.handleCancelConnection)
	s.e.GET("/intents/available", s.handleListIntents)
}

// Handler exposes the router, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.e
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.e,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info(serverSubsystem, "Listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logging.Info(serverSubsystem, "Shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c *echo.Context) error {
		start := time.Now()
		err := next(c)
		req := c.Request()
		logging.Debug(serverSubsystem, "%s %s (%s) request=%s", req.Method, req.URL.Path,
			time.Since(start).Round(time.Millisecond), req.Header.Get(api.HeaderRequestID))
		return err
	}
}

func (s *Server) handleListServices(c *echo.Context) error {
	services, err := s.backend.ListServices(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, services)
}

func (s *Server) handleDeleteService(c *echo.Context) error {
	if err := s.backend.DeleteService(c.Request().Context(), c.Param("id")); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleChangeState(c *echo.Context) error {
	var change api.StateChange
	if err := c.Bind(&change); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid state change body")
	}
	svc, err := s.backend.ChangeServiceState(c.Request().Context(), c.Param("id"), change)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, svc)
}

func (s *Server) handleCheckConnection(c *echo.Context) error {
	trigger, err := s.backend.CheckIntentConnection(c.Request().Context(), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	if trigger == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, trigger)
}

func (s *Server) handleRequestConnection(c *echo.Context) error {
	var req api.ConnectionRequest
	if err := c.Bind(&req); err != nil || req.Intent == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "intent is required")
	}
	trigger, err := s.backend.RequestIntentConnection(c.Request().Context(), c.Param("id"), req.Intent)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, trigger)
}

func (s *Server) handleCancelConnection(c *echo.Context) error {
	err := s.backend.CancelConnectionRequest(c.Request().Context(), api.Trigger{ID: c.Param("id")})
	if err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleListIntents(c *echo.Context) error {
	intents, err := s.backend.ListAvailableIntents(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, intents)
}

func toHTTPError(err error) error {
	switch {
	case errors.Is(err, api.ErrServiceNotFound), errors.Is(err, api.ErrTriggerNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, api.ErrIntentNotConnected), errors.Is(err, api.ErrConnectionPending), errors.Is(err, api.ErrTriggerSettled):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		logging.Error(serverSubsystem, err, "Backend call failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
