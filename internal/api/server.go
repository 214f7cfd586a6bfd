package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/wheelibin/light-driver/internal/config"
	"github.com/wheelibin/light-driver/internal/host"
	"github.com/wheelibin/light-driver/internal/models"
)

type hostRuntime interface {
	Driver() config.DriverMetadata
	DeviceState() models.DeviceState
	Connect() error
	Disconnect() error
	SubscribeEntities(ids []string) []string
	UnsubscribeEntities(ids []string) []string
	Command(entityID, commandID string, params models.Params) (models.StatusCode, error)
}

type entityLister interface {
	GetConfigured(id string) (models.Entity, bool)
	ConfiguredEntities() ([]models.Entity, error)
	AvailableEntities() ([]models.Entity, error)
}

type CommandRequest struct {
	CommandID string        `json:"cmd_id"`
	Params    models.Params `json:"params"`
}

type CommandResponse struct {
	Code models.StatusCode `json:"code"`
}

type SubscriptionRequest struct {
	EntityIDs []string `json:"entity_ids"`
}

type SubscriptionResponse struct {
	EntityIDs []string `json:"entity_ids"`
}

type errorResponse struct {
	Code    models.StatusCode `json:"code"`
	Message string            `json:"message"`
}

// Server is the host's HTTP transport: lifecycle events, subscriptions and commands
// come in as requests, entity and device changes go out on the event stream
type Server struct {
	logger   *log.Logger
	runtime  hostRuntime
	entities entityLister
	echo     *echo.Echo
}

func NewServer(logger *log.Logger, runtime hostRuntime, entities entityLister, events http.Handler) *Server {
	s := &Server{logger: logger, runtime: runtime, entities: entities, echo: echo.New()}

	s.echo.HideBanner = true
	s.echo.HidePort = true

	// Middleware
	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Debug("request", "method", v.Method, "uri", v.URI, "status", v.Status)
			return nil
		},
	}))

	// Routes
	api := s.echo.Group("/api")
	api.GET("/driver", s.getDriver)
	api.GET("/device", s.getDevice)
	api.POST("/connect", s.connect)
	api.POST("/disconnect", s.disconnect)
	api.GET("/entities", s.listConfigured)
	api.GET("/entities/available", s.listAvailable)
	api.GET("/entities/:id", s.getEntity)
	api.POST("/entities/:id/command", s.command)
	api.POST("/subscriptions", s.subscribe)
	api.DELETE("/subscriptions", s.unsubscribe)

	if events != nil {
		s.echo.GET("/events", echo.WrapHandler(events))
	}

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Start serves until Shutdown is called
func (s *Server) Start(address string) error {
	s.logger.Info("HTTP server listening", "address", address)
	if err := s.echo.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) getDriver(c echo.Context) error {
	return c.JSON(http.StatusOK, s.runtime.Driver())
}

func (s *Server) getDevice(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]models.DeviceState{"state": s.runtime.DeviceState()})
}

func (s *Server) connect(c echo.Context) error {
	if err := s.runtime.Connect(); err != nil {
		return fail(c, http.StatusInternalServerError, models.StatusServerError, err)
	}
	return c.JSON(http.StatusOK, map[string]models.DeviceState{"state": s.runtime.DeviceState()})
}

func (s *Server) disconnect(c echo.Context) error {
	if err := s.runtime.Disconnect(); err != nil {
		return fail(c, http.StatusInternalServerError, models.StatusServerError, err)
	}
	return c.JSON(http.StatusOK, map[string]models.DeviceState{"state": s.runtime.DeviceState()})
}

func (s *Server) listConfigured(c echo.Context) error {
	entities, err := s.entities.ConfiguredEntities()
	if err != nil {
		return fail(c, http.StatusInternalServerError, models.StatusServerError, err)
	}
	return c.JSON(http.StatusOK, entities)
}

func (s *Server) listAvailable(c echo.Context) error {
	entities, err := s.entities.AvailableEntities()
	if err != nil {
		return fail(c, http.StatusInternalServerError, models.StatusServerError, err)
	}
	return c.JSON(http.StatusOK, entities)
}

func (s *Server) getEntity(c echo.Context) error {
	entity, ok := s.entities.GetConfigured(c.Param("id"))
	if !ok {
		return fail(c, http.StatusNotFound, models.StatusNotFound, host.ErrEntityNotConfigured)
	}
	return c.JSON(http.StatusOK, entity)
}

func (s *Server) command(c echo.Context) error {
	req := CommandRequest{}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, models.StatusBadRequest, err)
	}
	if req.CommandID == "" {
		return fail(c, http.StatusBadRequest, models.StatusBadRequest, errors.New("cmd_id is required"))
	}

	code, err := s.runtime.Command(c.Param("id"), req.CommandID, req.Params)
	if err != nil {
		switch {
		case errors.Is(err, host.ErrEntityNotConfigured):
			return fail(c, http.StatusNotFound, models.StatusNotFound, err)
		default:
			return fail(c, http.StatusInternalServerError, models.StatusServerError, err)
		}
	}

	return c.JSON(http.StatusOK, CommandResponse{Code: code})
}

func (s *Server) subscribe(c echo.Context) error {
	req := SubscriptionRequest{}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, models.StatusBadRequest, err)
	}
	return c.JSON(http.StatusOK, SubscriptionResponse{EntityIDs: s.runtime.SubscribeEntities(req.EntityIDs)})
}

func (s *Server) unsubscribe(c echo.Context) error {
	req := SubscriptionRequest{}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, models.StatusBadRequest, err)
	}
	return c.JSON(http.StatusOK, SubscriptionResponse{EntityIDs: s.runtime.UnsubscribeEntities(req.EntityIDs)})
}

func fail(c echo.Context, status int, code models.StatusCode, err error) error {
	return c.JSON(status, errorResponse{Code: code, Message: err.Error()})
}
