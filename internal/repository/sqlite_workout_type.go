package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mbrennan/fitlog/internal/db"
	"github.com/mbrennan/fitlog/internal/domain"
)

// SQLiteWorkoutTypeRepo implements WorkoutTypeRepo using a SQLite database.
// It accepts a db.DBTX so the same code runs against *sql.DB and inside
// transactions.
type SQLiteWorkoutTypeRepo struct {
	conn db.DBTX
}

// NewSQLiteWorkoutTypeRepo creates a new SQLiteWorkoutTypeRepo.
func NewSQLiteWorkoutTypeRepo(conn db.DBTX) *SQLiteWorkoutTypeRepo {
	return &SQLiteWorkoutTypeRepo{conn: conn}
}

func (r *SQLiteWorkoutTypeRepo) Create(ctx context.Context, t *domain.WorkoutType) error {
	query := `INSERT INTO workout_types (id, name, created_at) VALUES (?, ?, ?)`
	_, err := r.conn.ExecContext(ctx, query,
		t.ID,
		t.Name,
		t.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting workout type: %w", err)
	}
	return nil
}

func (r *SQLiteWorkoutTypeRepo) GetByID(ctx context.Context, id string) (*domain.WorkoutType, error) {
	query := `SELECT id, name, created_at FROM workout_types WHERE id = ?`
	row := r.conn.QueryRowContext(ctx, query, id)

	var t domain.WorkoutType
	var createdAtStr string
	if err := row.Scan(&t.ID, &t.Name, &createdAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("workout type: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning workout type: %w", err)
	}

	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	t.CreatedAt = createdAt.Local()
	return &t, nil
}

func (r *SQLiteWorkoutTypeRepo) List(ctx context.Context) ([]*domain.WorkoutType, error) {
	query := `SELECT id, name, created_at FROM workout_types ORDER BY name COLLATE NOCASE`
	rows, err := r.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing workout types: %w", err)
	}
	defer rows.Close()

	var types []*domain.WorkoutType
	for rows.Next() {
		var t domain.WorkoutType
		var createdAtStr string
		if err := rows.Scan(&t.ID, &t.Name, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning workout type row: %w", err)
		}
		createdAt, parseErr := time.Parse(time.RFC3339, createdAtStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing created_at: %w", parseErr)
		}
		t.CreatedAt = createdAt.Local()
		types = append(types, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating workout types: %w", err)
	}
	return types, nil
}

func (r *SQLiteWorkoutTypeRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM workout_types WHERE id = ?`
	_, err := r.conn.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting workout type: %w", err)
	}
	return nil
}
