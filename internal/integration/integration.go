package integration

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/wheelibin/light-driver/internal/driver"
	"github.com/wheelibin/light-driver/internal/models"
)

type EntityDriver interface {
	Register(registrar driver.EntityRegistrar, rt driver.Runtime) error
}

type EntityRegistry interface {
	driver.EntityRegistrar
	SubscribeToChanges() <-chan models.EntityChange
}

type ChangePublisher interface {
	PublishChange(change models.EntityChange)
}

type Integration struct {
	logger    *log.Logger
	driver    EntityDriver
	registry  EntityRegistry
	runtime   driver.Runtime
	publisher ChangePublisher
	listeners []func(models.EntityChange)
	changes   <-chan models.EntityChange
}

func NewIntegration(
	logger *log.Logger,
	entityDriver EntityDriver,
	registry EntityRegistry,
	runtime driver.Runtime,
	publisher ChangePublisher,
) *Integration {
	return &Integration{
		logger:    logger,
		driver:    entityDriver,
		registry:  registry,
		runtime:   runtime,
		publisher: publisher,
	}
}

// OnChange adds a listener called from Run for every entity change. Listeners must be
// added before Run is started.
func (i *Integration) OnChange(fn func(models.EntityChange)) {
	i.listeners = append(i.listeners, fn)
}

func (i *Integration) Initialise() error {
	i.logger.Debug("Integration.Initialise")

	// subscribe before registering so no change is missed
	i.changes = i.registry.SubscribeToChanges()

	return i.driver.Register(i.registry, i.runtime)
}

func (i *Integration) Run(ctx context.Context) {
	i.logger.Debug("Integration.Run")

	if i.changes == nil {
		i.changes = i.registry.SubscribeToChanges()
	}

	// start the main application loop
	for {
		select {
		case <-ctx.Done():
			i.logger.Info("Integration.Run: stop signal received")
			return

		case change := <-i.changes:
			i.logger.Info("Entity changed", "id", change.EntityID, "type", change.Type, "attributes", change.Attributes)
			if i.publisher != nil {
				i.publisher.PublishChange(change)
			}
			for _, fn := range i.listeners {
				fn(change)
			}
		}
	}
}
