package consultation

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when no record exists for the given id.
	ErrNotFound = errors.New("consultation not found")
	// ErrStorageUnavailable is returned when the service runs without a
	// database connection.
	ErrStorageUnavailable = errors.New("consultation storage unavailable")
)

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Record, error)
	Save(ctx context.Context, rec *Record) error
}

type postgresRepo struct {
	db *sql.DB
}

// NewRepository wraps a postgres connection. A nil db is tolerated so the
// server can run without persistence; operations then report
// ErrStorageUnavailable.
func NewRepository(db *sql.DB) Repository {
	return &postgresRepo{db: db}
}

func (r *postgresRepo) GetByID(ctx context.Context, id uuid.UUID) (*Record, error) {
	if r.db == nil {
		return nil, ErrStorageUnavailable
	}

	query := `SELECT id, responses, result, created_at, updated_at FROM consultations WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	var rec Record
	var responsesJSON, resultJSON []byte
	err := row.Scan(&rec.ID, &responsesJSON, &resultJSON, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if len(responsesJSON) > 0 {
		if err := json.Unmarshal(responsesJSON, &rec.Responses); err != nil {
			return nil, fmt.Errorf("failed to unmarshal responses: %w", err)
		}
	}
	if len(resultJSON) > 0 {
		if err := json.Unmarshal(resultJSON, &rec.Result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal result: %w", err)
		}
	}
	if rec.Responses == nil {
		rec.Responses = map[string]string{}
	}
	if rec.Result.Categories == nil {
		rec.Result.Categories = []string{}
	}

	return &rec, nil
}

func (r *postgresRepo) Save(ctx context.Context, rec *Record) error {
	if r.db == nil {
		return ErrStorageUnavailable
	}

	responsesJSON, err := json.Marshal(rec.Responses)
	if err != nil {
		return err
	}
	resultJSON, err := json.Marshal(rec.Result)
	if err != nil {
		return err
	}

	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	rec.UpdatedAt = time.Now()

	query := `
		INSERT INTO consultations (id, responses, result, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			responses = $2,
			result = $3,
			updated_at = $5
	`
	_, err = r.db.ExecContext(ctx, query,
		rec.ID, responsesJSON, resultJSON, rec.CreatedAt, rec.UpdatedAt)
	return err
}
