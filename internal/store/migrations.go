package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Sessions table - one row per level play-through
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			level_id INTEGER NOT NULL,
			canvas_width REAL NOT NULL,
			side_policy TEXT NOT NULL CHECK(side_policy IN ('latest', 'first')),
			started_at DATETIME NOT NULL,
			ended_at DATETIME
		)`,

		// Attempts table - one row per finished stroke
		`CREATE TABLE IF NOT EXISTS attempts (
			id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
			contact_id TEXT NOT NULL,
			side TEXT NOT NULL CHECK(side IN ('left', 'right')),
			target TEXT NOT NULL,
			shape TEXT NOT NULL,
			confidence INTEGER NOT NULL CHECK(confidence BETWEEN 0 AND 100),
			recognized INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL
		)`,

		// Attempt points table - the stroke path behind each attempt
		`CREATE TABLE IF NOT EXISTS attempt_points (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			attempt_id TEXT NOT NULL REFERENCES attempts(id) ON DELETE CASCADE,
			sequence INTEGER NOT NULL,
			x REAL NOT NULL,
			y REAL NOT NULL
		)`,

		// Indexes for better query performance
		`CREATE INDEX IF NOT EXISTS idx_attempts_session_id ON attempts(session_id)`,
		`CREATE INDEX IF NOT EXISTS idx_attempt_points_attempt_id ON attempt_points(attempt_id)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
