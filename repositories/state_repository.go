package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fixtureapp/fixture-backend/models"
)

var ErrStateNotFound = errors.New("tournament state not found")

// ApplyFunc transforms one tournament state into the next, or fails leaving
// the stored state untouched.
type ApplyFunc func(*models.TournamentState) (*models.TournamentState, error)

// StateRepository persists the tournament as a single JSON document. Update
// serializes writers, giving the engine its single-writer guarantee.
type StateRepository interface {
	EnsureSchema(ctx context.Context) error
	Load(ctx context.Context) (*models.TournamentState, error)
	Update(ctx context.Context, apply ApplyFunc) (*models.TournamentState, error)
}

type postgresStateRepository struct {
	db *sql.DB
}

func NewPostgresStateRepository(db *sql.DB) StateRepository {
	return &postgresStateRepository{db: db}
}

// EnsureSchema creates the single-row state table and seeds it with the
// empty SETUP state if this is a fresh database.
func (r *postgresStateRepository) EnsureSchema(ctx context.Context) error {
	const createTable = `
		CREATE TABLE IF NOT EXISTS tournament_state (
			id         smallint PRIMARY KEY CHECK (id = 1),
			doc        jsonb NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now()
		)`
	if _, err := r.db.ExecContext(ctx, createTable); err != nil {
		return fmt.Errorf("failed to create tournament_state table: %w", err)
	}

	seed, err := json.Marshal(models.NewTournamentState())
	if err != nil {
		return fmt.Errorf("failed to marshal seed state: %w", err)
	}
	const seedRow = `
		INSERT INTO tournament_state (id, doc) VALUES (1, $1)
		ON CONFLICT (id) DO NOTHING`
	if _, err := r.db.ExecContext(ctx, seedRow, seed); err != nil {
		return fmt.Errorf("failed to seed tournament state: %w", err)
	}
	return nil
}

func (r *postgresStateRepository) Load(ctx context.Context) (*models.TournamentState, error) {
	const query = `SELECT doc FROM tournament_state WHERE id = 1`

	var doc []byte
	err := r.db.QueryRowContext(ctx, query).Scan(&doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStateNotFound
		}
		return nil, fmt.Errorf("failed to load tournament state: %w", err)
	}
	return unmarshalState(doc)
}

// Update runs apply against the stored state inside a transaction holding a
// row lock, so concurrent writers queue up instead of interleaving. An apply
// error rolls back with nothing written.
func (r *postgresStateRepository) Update(ctx context.Context, apply ApplyFunc) (*models.TournamentState, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	const query = `SELECT doc FROM tournament_state WHERE id = 1 FOR UPDATE`
	var doc []byte
	if err := tx.QueryRowContext(ctx, query).Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStateNotFound
		}
		return nil, fmt.Errorf("failed to load tournament state for update: %w", err)
	}

	state, err := unmarshalState(doc)
	if err != nil {
		return nil, err
	}

	next, err := apply(state)
	if err != nil {
		return nil, err
	}

	updated, err := json.Marshal(next)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tournament state: %w", err)
	}
	const update = `UPDATE tournament_state SET doc = $1, updated_at = now() WHERE id = 1`
	if _, err := tx.ExecContext(ctx, update, updated); err != nil {
		return nil, fmt.Errorf("failed to store tournament state: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit tournament state: %w", err)
	}
	return next, nil
}

func unmarshalState(doc []byte) (*models.TournamentState, error) {
	state := models.NewTournamentState()
	if err := json.Unmarshal(doc, state); err != nil {
		return nil, fmt.Errorf("failed to decode tournament state: %w", err)
	}
	if state.Groups == nil {
		state.Groups = map[string]models.Group{}
	}
	return state, nil
}
