package driver

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/wheelibin/light-driver/internal/models"
)

type entityStore interface {
	GetConfigured(id string) (models.Entity, bool)
	UpdateAttributes(id string, update models.AttributeUpdate) error
}

type deviceStateReporter interface {
	SetDeviceState(state models.DeviceState) error
}

type EntityRegistrar interface {
	RegisterAvailable(entity models.Entity) error
}

// Runtime is the part of the host runtime the driver binds its handlers and listeners to
type Runtime interface {
	SetCommandHandler(entityID string, handler models.CommandHandler)
	OnConnect(fn func() error)
	OnDisconnect(fn func() error)
	OnSubscribe(fn func(ids []string))
	OnUnsubscribe(fn func(ids []string))
}

// Driver declares the sample entities and reacts to the host's commands and lifecycle events
type Driver struct {
	logger   *log.Logger
	reporter deviceStateReporter

	light  *LightHandler
	shared *SharedHandler
}

func NewDriver(logger *log.Logger, store entityStore, reporter deviceStateReporter) *Driver {
	light := NewLightHandler(logger, store)
	return &Driver{
		logger:   logger,
		reporter: reporter,
		light:    light,
		shared:   NewSharedHandler(logger, store, light),
	}
}

// Register adds every entity to the available set, binds its command handler and
// attaches the lifecycle listeners. It must be called once at startup.
func (d *Driver) Register(registrar EntityRegistrar, rt Runtime) error {
	for _, def := range d.definitions() {
		if err := registrar.RegisterAvailable(def.entity); err != nil {
			return fmt.Errorf("registering entity (%s): %w", def.entity.ID, err)
		}
		rt.SetCommandHandler(def.entity.ID, def.handler)
		d.logger.Info("Entity available", "id", def.entity.ID, "name", def.entity.DisplayName())
	}

	rt.OnConnect(d.OnConnect)
	rt.OnDisconnect(d.OnDisconnect)
	rt.OnSubscribe(d.OnSubscribe)
	rt.OnUnsubscribe(d.OnUnsubscribe)
	return nil
}

type definition struct {
	entity  models.Entity
	handler models.CommandHandler
}

func (d *Driver) definitions() []definition {
	return []definition{
		{entity: NewLightEntity(), handler: d.light},
		{entity: NewButtonEntity(), handler: d.shared},
		{entity: NewMediaPlayerEntity(), handler: d.shared},
	}
}
