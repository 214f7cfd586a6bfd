package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/wheelibin/light-driver/internal/constants"
	"github.com/wheelibin/light-driver/internal/models"
)

var ErrDuplicateEntity = errors.New("entity id already registered")

type dbAccess interface {
	Add(entity models.Entity) error
	Get(id string) (*models.EntityRecord, error)
	List(configured bool) ([]models.Entity, error)
	SetConfigured(id string, configured bool) (bool, error)
	UpdateAttributes(id string, attributes models.Attributes) error
}

// Registry holds the available and configured entity sets.
// Writes are serialised so concurrent updates to one entity can't interleave.
type Registry struct {
	logger   *log.Logger
	dbAccess dbAccess

	mu sync.Mutex

	subscribersMu sync.RWMutex
	subscribers   []chan models.EntityChange
}

func NewRegistry(logger *log.Logger, dbAccess dbAccess) *Registry {
	return &Registry{logger: logger, dbAccess: dbAccess}
}

// RegisterAvailable adds an entity definition to the available set
func (r *Registry) RegisterAvailable(entity models.Entity) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, err := r.dbAccess.Get(entity.ID)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("%w: %s", ErrDuplicateEntity, entity.ID)
	}

	if err := r.dbAccess.Add(entity); err != nil {
		return err
	}
	r.logger.Debug("Registered available entity", "id", entity.ID, "type", entity.Type)
	return nil
}

// GetConfigured returns a snapshot of a configured entity
func (r *Registry) GetConfigured(id string) (models.Entity, bool) {
	return r.get(id, true)
}

// GetAvailable returns a snapshot of an entity that is declared but not configured
func (r *Registry) GetAvailable(id string) (models.Entity, bool) {
	return r.get(id, false)
}

func (r *Registry) get(id string, configured bool) (models.Entity, bool) {
	record, err := r.dbAccess.Get(id)
	if err != nil {
		r.logger.Error(err)
		return models.Entity{}, false
	}
	if record == nil || record.Configured != configured {
		return models.Entity{}, false
	}
	return record.Entity, true
}

func (r *Registry) ConfiguredEntities() ([]models.Entity, error) {
	return r.dbAccess.List(true)
}

func (r *Registry) AvailableEntities() ([]models.Entity, error) {
	return r.dbAccess.List(false)
}

// Subscribe promotes entities to the configured set and returns the ids that moved
func (r *Registry) Subscribe(ids []string) []string {
	return r.setConfigured(ids, true)
}

// Unsubscribe demotes entities to the available set and returns the ids that moved
func (r *Registry) Unsubscribe(ids []string) []string {
	return r.setConfigured(ids, false)
}

func (r *Registry) setConfigured(ids []string, configured bool) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	moved := []string{}
	for _, id := range lo.Uniq(ids) {
		record, err := r.dbAccess.Get(id)
		if err != nil {
			r.logger.Error(err)
			continue
		}
		if record == nil {
			r.logger.Warn("Ignoring unknown entity", "id", id, "configured", configured)
			continue
		}
		if record.Configured == configured {
			continue
		}

		changed, err := r.dbAccess.SetConfigured(id, configured)
		if err != nil {
			r.logger.Error(err)
			continue
		}
		if changed {
			moved = append(moved, id)
		}
	}
	return moved
}

// UpdateAttributes merges a partial update into a configured entity's attributes.
// Updates for entities that aren't configured are ignored.
func (r *Registry) UpdateAttributes(id string, update models.AttributeUpdate) error {
	r.mu.Lock()

	record, err := r.dbAccess.Get(id)
	if err != nil {
		r.mu.Unlock()
		return err
	}
	if record == nil || !record.Configured {
		r.mu.Unlock()
		r.logger.Debug("Ignoring attribute update for entity that is not configured", "id", id)
		return nil
	}

	next, err := record.Entity.Attributes.Apply(update)
	if err != nil {
		r.mu.Unlock()
		return fmt.Errorf("updating entity (%s): %w", id, err)
	}

	if err := r.dbAccess.UpdateAttributes(id, next); err != nil {
		r.mu.Unlock()
		return err
	}
	r.mu.Unlock()

	r.logger.Debug("Updated entity attributes", "id", id, "attributes", next)
	r.notify(models.EntityChange{EntityID: id, Type: record.Entity.Type, Attributes: next})
	return nil
}

// SubscribeToChanges returns a channel receiving every applied attribute change
func (r *Registry) SubscribeToChanges() <-chan models.EntityChange {
	r.subscribersMu.Lock()
	defer r.subscribersMu.Unlock()
	ch := make(chan models.EntityChange, constants.ChangeBufferSize)
	r.subscribers = append(r.subscribers, ch)
	return ch
}

func (r *Registry) notify(change models.EntityChange) {
	r.subscribersMu.RLock()
	defer r.subscribersMu.RUnlock()
	for _, ch := range r.subscribers {
		select {
		case ch <- change:
		default:
			r.logger.Warn("Change subscriber is full, dropping change", "id", change.EntityID)
		}
	}
}
