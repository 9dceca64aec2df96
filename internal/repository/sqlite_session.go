package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mbrennan/fitlog/internal/db"
	"github.com/mbrennan/fitlog/internal/domain"
)

// sessionColumns is the canonical SELECT column list for workout_sessions.
const sessionColumns = `id, workout_type_id, started_at, minutes, note, created_at`

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	conn db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{conn: conn}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.WorkoutSession) error {
	query := `INSERT INTO workout_sessions (id, workout_type_id, started_at, minutes, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.conn.ExecContext(ctx, query,
		s.ID,
		s.WorkoutTypeID,
		s.StartedAt.UTC().Format(time.RFC3339),
		s.Minutes,
		s.Note,
		s.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting workout session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.WorkoutSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM workout_sessions WHERE id = ?`
	row := r.conn.QueryRowContext(ctx, query, id)
	return r.scanSession(row)
}

func (r *SQLiteSessionRepo) List(ctx context.Context) ([]*domain.WorkoutSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM workout_sessions ORDER BY started_at`
	rows, err := r.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing workout sessions: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteSessionRepo) ListByType(ctx context.Context, workoutTypeID string) ([]*domain.WorkoutSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM workout_sessions
		WHERE workout_type_id = ? ORDER BY started_at`
	rows, err := r.conn.QueryContext(ctx, query, workoutTypeID)
	if err != nil {
		return nil, fmt.Errorf("listing sessions by type: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

// ListByDateRange returns sessions whose start time falls inside [start, end],
// both bounds inclusive, ascending by start time.
func (r *SQLiteSessionRepo) ListByDateRange(ctx context.Context, start, end time.Time) ([]*domain.WorkoutSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM workout_sessions
		WHERE started_at >= ? AND started_at <= ?
		ORDER BY started_at`
	rows, err := r.conn.QueryContext(ctx, query,
		start.UTC().Format(time.RFC3339),
		end.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("listing sessions by date range: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM workout_sessions WHERE id = ?`
	_, err := r.conn.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting workout session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) DeleteByType(ctx context.Context, workoutTypeID string) error {
	query := `DELETE FROM workout_sessions WHERE workout_type_id = ?`
	_, err := r.conn.ExecContext(ctx, query, workoutTypeID)
	if err != nil {
		return fmt.Errorf("deleting sessions by type: %w", err)
	}
	return nil
}

// scanSession scans a single session from a *sql.Row.
func (r *SQLiteSessionRepo) scanSession(row *sql.Row) (*domain.WorkoutSession, error) {
	var s domain.WorkoutSession
	var startedAtStr, createdAtStr string

	err := row.Scan(&s.ID, &s.WorkoutTypeID, &startedAtStr, &s.Minutes, &s.Note, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("workout session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning workout session: %w", err)
	}

	return r.populateSession(&s, startedAtStr, createdAtStr)
}

// scanSessions scans multiple sessions from *sql.Rows.
func (r *SQLiteSessionRepo) scanSessions(rows *sql.Rows) ([]*domain.WorkoutSession, error) {
	var sessions []*domain.WorkoutSession
	for rows.Next() {
		var s domain.WorkoutSession
		var startedAtStr, createdAtStr string

		if err := rows.Scan(&s.ID, &s.WorkoutTypeID, &startedAtStr, &s.Minutes, &s.Note, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}

		session, parseErr := r.populateSession(&s, startedAtStr, createdAtStr)
		if parseErr != nil {
			return nil, parseErr
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

// populateSession fills in parsed fields on a WorkoutSession after scanning
// raw strings. Timestamps are stored as UTC RFC3339 and surfaced in local
// time: day bucketing truncates in the timestamp's location, so an evening
// session must land on the viewer's calendar date, not the UTC one.
func (r *SQLiteSessionRepo) populateSession(s *domain.WorkoutSession, startedAtStr, createdAtStr string) (*domain.WorkoutSession, error) {
	startedAt, err := time.Parse(time.RFC3339, startedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing started_at: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	s.StartedAt = startedAt.Local()
	s.CreatedAt = createdAt.Local()
	return s, nil
}
