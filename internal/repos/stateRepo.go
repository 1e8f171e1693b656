package repos

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/wheelibin/ringlight/internal/models"
)

const initSchema = `
  CREATE TABLE IF NOT EXISTS entity (
    unique_id VARCHAR(64) PRIMARY KEY,
    entity_id TEXT NOT NULL,
    name TEXT,
    kind TEXT,
    session_id VARCHAR(36),
    on_state INTEGER,
    last_update_time TIMESTAMP
  );

  CREATE TABLE IF NOT EXISTS state_history (
    event_id VARCHAR(36) PRIMARY KEY,
    unique_id VARCHAR(64) NOT NULL,
    on_state INTEGER,
    recorded_at TIMESTAMP
  );

  CREATE INDEX IF NOT EXISTS idx_state_history_unique_id ON state_history (unique_id, recorded_at);
`

var ErrEntityNotFound = errors.New("entity not found")

type StateRepo struct {
	logger *log.Logger
	db     *sql.DB
}

func NewStateRepo(logger *log.Logger, db *sql.DB) (*StateRepo, error) {

	_, err := db.Exec(initSchema)
	if err != nil {
		return nil, fmt.Errorf("Error initialising state schema: %w", err)
	}

	return &StateRepo{logger: logger, db: db}, nil
}

// RegisterEntity adds the entity, or refreshes its details if it was registered
// by an earlier session.
func (r *StateRepo) RegisterEntity(sessionID string, state models.EntityState) error {
	_, err := r.db.Exec(`
    INSERT INTO entity (unique_id, entity_id, name, kind, session_id, on_state, last_update_time)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    ON CONFLICT (unique_id) DO UPDATE SET
      entity_id = excluded.entity_id,
      name = excluded.name,
      kind = excluded.kind,
      session_id = excluded.session_id`,
		state.UniqueID,
		state.EntityID,
		state.Name,
		state.Kind,
		sessionID,
		state.On,
		state.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("Error registering entity (%s): %w", state.UniqueID, err)
	}
	return nil
}

// RecordState stores the current state of the entity and appends it to the
// entity's history.
func (r *StateRepo) RecordState(state models.EntityState) (models.StateRecord, error) {
	record := models.StateRecord{
		EventID:    uuid.NewString(),
		UniqueID:   state.UniqueID,
		On:         state.On,
		RecordedAt: state.UpdatedAt,
	}

	tx, err := r.db.Begin()
	if err != nil {
		return models.StateRecord{}, fmt.Errorf("Error recording state for entity (%s): %w", state.UniqueID, err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec("UPDATE entity SET on_state = $1, last_update_time = $2 WHERE unique_id = $3", state.On, state.UpdatedAt, state.UniqueID)
	if err != nil {
		return models.StateRecord{}, fmt.Errorf("Error setting entity (%s) on state to %t: %w", state.UniqueID, state.On, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.StateRecord{}, fmt.Errorf("Error recording state for entity (%s): %w", state.UniqueID, ErrEntityNotFound)
	}

	_, err = tx.Exec(
		"INSERT INTO state_history (event_id, unique_id, on_state, recorded_at) VALUES ($1, $2, $3, $4)",
		record.EventID, record.UniqueID, record.On, record.RecordedAt,
	)
	if err != nil {
		return models.StateRecord{}, fmt.Errorf("Error adding state history for entity (%s): %w", state.UniqueID, err)
	}

	if err := tx.Commit(); err != nil {
		return models.StateRecord{}, fmt.Errorf("Error recording state for entity (%s): %w", state.UniqueID, err)
	}
	return record, nil
}

func (r *StateRepo) GetState(uniqueID string) (models.EntityState, error) {
	row := r.db.QueryRow(`
    SELECT entity_id,
           name,
           kind,
           on_state,
           last_update_time
    FROM entity
    WHERE unique_id = $1`, uniqueID)

	var (
		entityID string
		name     string
		kind     string
		on       bool
		updated  sql.NullTime
	)
	err := row.Scan(&entityID, &name, &kind, &on, &updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.EntityState{}, fmt.Errorf("Error reading state for entity (%s): %w", uniqueID, ErrEntityNotFound)
		}
		return models.EntityState{}, fmt.Errorf("Error reading state for entity (%s): %w", uniqueID, err)
	}

	return models.EntityState{
		UniqueID:  uniqueID,
		EntityID:  entityID,
		Name:      name,
		Kind:      kind,
		On:        on,
		UpdatedAt: updated.Time,
	}, nil
}

// GetHistory returns the most recent states recorded for the entity, newest first.
func (r *StateRepo) GetHistory(uniqueID string, limit int) ([]models.StateRecord, error) {
	rows, err := r.db.Query(`
    SELECT event_id, on_state, recorded_at
    FROM state_history
    WHERE unique_id = $1
    ORDER BY recorded_at DESC, rowid DESC
    LIMIT $2`, uniqueID, limit)
	if err != nil {
		return nil, fmt.Errorf("Error reading history for entity (%s): %w", uniqueID, err)
	}
	defer rows.Close()

	records := []models.StateRecord{}

	for rows.Next() {
		var (
			eventID    string
			on         bool
			recordedAt time.Time
		)
		if err := rows.Scan(&eventID, &on, &recordedAt); err != nil {
			return nil, fmt.Errorf("Error reading history for entity (%s): %w", uniqueID, err)
		}
		records = append(records, models.StateRecord{
			EventID:    eventID,
			UniqueID:   uniqueID,
			On:         on,
			RecordedAt: recordedAt,
		})
	}

	return records, rows.Err()
}

func (r *StateRepo) RemoveEntity(uniqueID string) error {
	_, err := r.db.Exec("DELETE FROM entity WHERE unique_id = $1", uniqueID)
	if err != nil {
		return fmt.Errorf("Error removing entity (%s): %w", uniqueID, err)
	}
	return nil
}
