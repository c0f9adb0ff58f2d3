package store

import (
	"database/sql"
	"time"
)

// Attempt is an archived recognition attempt.
type Attempt struct {
	ID         string
	SessionID  string
	ContactID  string
	Side       string
	Target     string
	Shape      string
	Confidence int
	Recognized bool
	CreatedAt  time.Time
}

// PathPoint is one point of an archived stroke.
type PathPoint struct {
	Sequence int
	X        float64
	Y        float64
}

// AttemptRepository provides operations for archived attempts.
type AttemptRepository struct {
	db *sql.DB
}

// Attempts returns the attempt repository for this store.
func (s *Store) Attempts() *AttemptRepository {
	return &AttemptRepository{db: s.db}
}

// Create inserts an attempt and its stroke points in a single transaction.
func (r *AttemptRepository) Create(a *Attempt, path []PathPoint) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO attempts (id, session_id, contact_id, side, target, shape, confidence, recognized, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.SessionID, a.ContactID, a.Side, a.Target, a.Shape, a.Confidence, a.Recognized, a.CreatedAt,
	)
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO attempt_points (attempt_id, sequence, x, y) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, p := range path {
		if _, err := stmt.Exec(a.ID, i, p.X, p.Y); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ListBySession retrieves all attempts of a session in the order they were made.
func (r *AttemptRepository) ListBySession(sessionID string) ([]*Attempt, error) {
	rows, err := r.db.Query(
		`SELECT id, session_id, contact_id, side, target, shape, confidence, recognized, created_at
		 FROM attempts
		 WHERE session_id = ?
		 ORDER BY created_at, rowid`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attempts []*Attempt
	for rows.Next() {
		a := &Attempt{}
		var recognized int
		err := rows.Scan(&a.ID, &a.SessionID, &a.ContactID, &a.Side, &a.Target, &a.Shape,
			&a.Confidence, &recognized, &a.CreatedAt)
		if err != nil {
			return nil, err
		}
		a.Recognized = recognized != 0
		attempts = append(attempts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return attempts, nil
}

// GetPath retrieves the stroke points of an attempt ordered by sequence.
func (r *AttemptRepository) GetPath(attemptID string) ([]PathPoint, error) {
	rows, err := r.db.Query(
		`SELECT sequence, x, y FROM attempt_points WHERE attempt_id = ? ORDER BY sequence`,
		attemptID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var path []PathPoint
	for rows.Next() {
		var p PathPoint
		if err := rows.Scan(&p.Sequence, &p.X, &p.Y); err != nil {
			return nil, err
		}
		path = append(path, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return path, nil
}
