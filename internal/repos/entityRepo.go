package repos

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-sqlite3"
	"github.com/wheelibin/light-driver/internal/models"
)

// entity state only lives for the lifetime of the process
const initSchema = `
  CREATE TABLE IF NOT EXISTS entity (
    id VARCHAR(64) PRIMARY KEY,
    entity_type TEXT NOT NULL,
    name TEXT NOT NULL,          -- json language map
    device_class TEXT,
    features TEXT NOT NULL,      -- json list
    area TEXT,
    configured INTEGER NOT NULL DEFAULT 0,
    attributes TEXT NOT NULL,    -- json attribute record
    last_update_time TIMESTAMP
  );

  DELETE FROM entity;
`

var ErrEntityExists = errors.New("entity already exists")

type EntityRepo struct {
	logger *log.Logger
	db     *sql.DB
}

// OpenMemoryDB opens a private in-memory sqlite database.
// The pool is limited to one connection as every connection would otherwise get its own database.
func OpenMemoryDB() (*sql.DB, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("Error opening entity database: %w", err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

func NewEntityRepo(logger *log.Logger, db *sql.DB) (*EntityRepo, error) {

	_, err := db.Exec(initSchema)
	if err != nil {
		return nil, fmt.Errorf("Error initialising entity schema: %w", err)
	}

	return &EntityRepo{logger: logger, db: db}, nil
}

func (r *EntityRepo) Add(entity models.Entity) error {
	name, err := json.Marshal(entity.Name)
	if err != nil {
		return fmt.Errorf("Error encoding name of entity (%s): %w", entity.ID, err)
	}
	features, err := json.Marshal(entity.Features)
	if err != nil {
		return fmt.Errorf("Error encoding features of entity (%s): %w", entity.ID, err)
	}
	attributes, err := json.Marshal(entity.Attributes)
	if err != nil {
		return fmt.Errorf("Error encoding attributes of entity (%s): %w", entity.ID, err)
	}

	_, err = r.db.Exec(
		`INSERT INTO entity
      (id, entity_type, name, device_class, features, area, attributes)
     VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		entity.ID,
		entity.Type,
		string(name),
		entity.DeviceClass,
		string(features),
		entity.Area,
		string(attributes),
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey {
			return fmt.Errorf("Error adding entity (%s): %w", entity.ID, ErrEntityExists)
		}
		return fmt.Errorf("Error adding entity (%s): %w", entity.ID, err)
	}

	return nil
}

// Get returns nil when there is no entity with the id
func (r *EntityRepo) Get(id string) (*models.EntityRecord, error) {
	row := r.db.QueryRow(`
    SELECT id, entity_type, name, device_class, features, area, configured, attributes
    FROM entity
    WHERE id = $1`, id)

	record, err := scanEntity(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("Error reading entity (%s): %w", id, err)
	}
	return record, nil
}

// List returns the entities in the configured or available set, ordered by id
func (r *EntityRepo) List(configured bool) ([]models.Entity, error) {
	rows, err := r.db.Query(`
    SELECT id, entity_type, name, device_class, features, area, configured, attributes
    FROM entity
    WHERE configured = $1
    ORDER BY id`, configured)
	if err != nil {
		return nil, fmt.Errorf("Error reading entities: %w", err)
	}
	defer rows.Close()

	entities := []models.Entity{}

	for rows.Next() {
		record, err := scanEntity(rows)
		if err != nil {
			return nil, fmt.Errorf("Error reading entities: %w", err)
		}
		entities = append(entities, record.Entity)
	}

	return entities, rows.Err()
}

// SetConfigured moves the entity between the available and configured sets.
// It reports whether the entity actually changed set.
func (r *EntityRepo) SetConfigured(id string, configured bool) (bool, error) {
	res, err := r.db.Exec("UPDATE entity SET configured = $1 WHERE id = $2 AND configured != $1", configured, id)
	if err != nil {
		return false, fmt.Errorf("Error setting entity (%s) configured to %t: %w", id, configured, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("Error setting entity (%s) configured to %t: %w", id, configured, err)
	}
	return n > 0, nil
}

func (r *EntityRepo) UpdateAttributes(id string, attributes models.Attributes) error {
	data, err := json.Marshal(attributes)
	if err != nil {
		return fmt.Errorf("Error encoding attributes of entity (%s): %w", id, err)
	}

	_, err = r.db.Exec(
		`UPDATE entity
     SET attributes = $1,
         last_update_time = $2
     WHERE id = $3`,
		string(data), time.Now(), id)
	if err != nil {
		return fmt.Errorf("Error updating attributes of entity (%s): %w", id, err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntity(row scanner) (*models.EntityRecord, error) {
	var (
		id          string
		entityType  string
		name        string
		deviceClass sql.NullString
		features    string
		area        sql.NullString
		configured  bool
		attributes  string
	)
	if err := row.Scan(&id, &entityType, &name, &deviceClass, &features, &area, &configured, &attributes); err != nil {
		return nil, err
	}

	entity := models.Entity{
		ID:          id,
		Type:        models.EntityType(entityType),
		DeviceClass: deviceClass.String,
		Area:        area.String,
	}
	if err := json.Unmarshal([]byte(name), &entity.Name); err != nil {
		return nil, fmt.Errorf("decoding name of entity (%s): %w", id, err)
	}
	if err := json.Unmarshal([]byte(features), &entity.Features); err != nil {
		return nil, fmt.Errorf("decoding features of entity (%s): %w", id, err)
	}
	attrs, err := models.DecodeAttributes(entity.Type, []byte(attributes))
	if err != nil {
		return nil, err
	}
	entity.Attributes = attrs

	return &models.EntityRecord{Entity: entity, Configured: configured}, nil
}
