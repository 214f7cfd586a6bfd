package host

import (
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/wheelibin/light-driver/internal/config"
	"github.com/wheelibin/light-driver/internal/models"
)

var (
	ErrEntityNotConfigured = errors.New("entity is not configured")
	ErrNoCommandHandler    = errors.New("no command handler for entity")
	ErrInvalidDeviceState  = errors.New("invalid device state")
)

type entityRegistry interface {
	GetConfigured(id string) (models.Entity, bool)
	Subscribe(ids []string) []string
	Unsubscribe(ids []string) []string
}

type deviceStatePublisher interface {
	PublishDeviceState(state models.DeviceState)
}

// Runtime is the host side of the integration: it owns the command handler table,
// dispatches inbound events to the driver's listeners and tracks the device state.
type Runtime struct {
	logger    *log.Logger
	metadata  config.DriverMetadata
	registry  entityRegistry
	publisher deviceStatePublisher

	// one command is dispatched at a time
	dispatchMu sync.Mutex

	handlersMu sync.RWMutex
	handlers   map[string]models.CommandHandler

	listenersMu          sync.RWMutex
	connectListeners     []func() error
	disconnectListeners  []func() error
	subscribeListeners   []func(ids []string)
	unsubscribeListeners []func(ids []string)

	stateMu     sync.RWMutex
	deviceState models.DeviceState
}

// NewRuntime creates a runtime, publisher may be nil
func NewRuntime(logger *log.Logger, metadata config.DriverMetadata, registry entityRegistry, publisher deviceStatePublisher) *Runtime {
	return &Runtime{
		logger:      logger,
		metadata:    metadata,
		registry:    registry,
		publisher:   publisher,
		handlers:    make(map[string]models.CommandHandler),
		deviceState: models.DeviceStateDisconnected,
	}
}

func (r *Runtime) Driver() config.DriverMetadata {
	return r.metadata
}

// SetCommandHandler binds the handler for commands addressed to entityID
func (r *Runtime) SetCommandHandler(entityID string, handler models.CommandHandler) {
	r.handlersMu.Lock()
	defer r.handlersMu.Unlock()
	r.handlers[entityID] = handler
}

func (r *Runtime) OnConnect(fn func() error) {
	r.listenersMu.Lock()
	defer r.listenersMu.Unlock()
	r.connectListeners = append(r.connectListeners, fn)
}

func (r *Runtime) OnDisconnect(fn func() error) {
	r.listenersMu.Lock()
	defer r.listenersMu.Unlock()
	r.disconnectListeners = append(r.disconnectListeners, fn)
}

func (r *Runtime) OnSubscribe(fn func(ids []string)) {
	r.listenersMu.Lock()
	defer r.listenersMu.Unlock()
	r.subscribeListeners = append(r.subscribeListeners, fn)
}

func (r *Runtime) OnUnsubscribe(fn func(ids []string)) {
	r.listenersMu.Lock()
	defer r.listenersMu.Unlock()
	r.unsubscribeListeners = append(r.unsubscribeListeners, fn)
}

// Connect delivers a CONNECT event, listener errors are logged and returned joined
func (r *Runtime) Connect() error {
	r.logger.Info("Host connected")
	r.listenersMu.RLock()
	listeners := append([]func() error{}, r.connectListeners...)
	r.listenersMu.RUnlock()
	return r.runLifecycle("connect", listeners)
}

// Disconnect delivers a DISCONNECT event
func (r *Runtime) Disconnect() error {
	r.logger.Info("Host disconnected")
	r.listenersMu.RLock()
	listeners := append([]func() error{}, r.disconnectListeners...)
	r.listenersMu.RUnlock()
	return r.runLifecycle("disconnect", listeners)
}

func (r *Runtime) runLifecycle(event string, listeners []func() error) error {
	var errs []error
	for _, fn := range listeners {
		if err := fn(); err != nil {
			r.logger.Error("lifecycle listener failed", "event", event, "err", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// SubscribeEntities moves the entities to the configured set, then informs listeners
// about the ones that moved
func (r *Runtime) SubscribeEntities(ids []string) []string {
	moved := r.registry.Subscribe(ids)
	r.listenersMu.RLock()
	listeners := append([]func(ids []string){}, r.subscribeListeners...)
	r.listenersMu.RUnlock()
	for _, fn := range listeners {
		fn(moved)
	}
	return moved
}

// UnsubscribeEntities moves the entities back to the available set
func (r *Runtime) UnsubscribeEntities(ids []string) []string {
	moved := r.registry.Unsubscribe(ids)
	r.listenersMu.RLock()
	listeners := append([]func(ids []string){}, r.unsubscribeListeners...)
	r.listenersMu.RUnlock()
	for _, fn := range listeners {
		fn(moved)
	}
	return moved
}

// Command dispatches a command to the handler of a configured entity.
// The handler receives a fresh snapshot of the entity.
func (r *Runtime) Command(entityID, commandID string, params models.Params) (models.StatusCode, error) {
	r.dispatchMu.Lock()
	defer r.dispatchMu.Unlock()

	entity, ok := r.registry.GetConfigured(entityID)
	if !ok {
		return models.StatusNotFound, fmt.Errorf("%w: %s", ErrEntityNotConfigured, entityID)
	}

	r.handlersMu.RLock()
	handler, ok := r.handlers[entityID]
	r.handlersMu.RUnlock()
	if !ok {
		return models.StatusServerError, fmt.Errorf("%w: %s", ErrNoCommandHandler, entityID)
	}

	code := handler.Handle(entity, commandID, params)
	r.logger.Debug("Command handled", "entity", entityID, "cmd", commandID, "code", code)
	return code, nil
}

// SetDeviceState records the device state and publishes it to the host
func (r *Runtime) SetDeviceState(state models.DeviceState) error {
	switch state {
	case models.DeviceStateConnected, models.DeviceStateConnecting, models.DeviceStateDisconnected, models.DeviceStateError:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidDeviceState, state)
	}

	r.stateMu.Lock()
	r.deviceState = state
	r.stateMu.Unlock()

	r.logger.Info("Device state changed", "state", state)
	if r.publisher != nil {
		r.publisher.PublishDeviceState(state)
	}
	return nil
}

func (r *Runtime) DeviceState() models.DeviceState {
	r.stateMu.RLock()
	defer r.stateMu.RUnlock()
	return r.deviceState
}
