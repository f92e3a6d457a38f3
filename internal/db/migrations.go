package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS agendamentos (
			id                 INTEGER PRIMARY KEY AUTOINCREMENT,
			client             TEXT NOT NULL,
			pet_name           TEXT NOT NULL DEFAULT '',
			contact            TEXT NOT NULL DEFAULT '',
			type               TEXT NOT NULL DEFAULT '',
			price              REAL NOT NULL DEFAULT 0,
			payment_status     TEXT NOT NULL DEFAULT '',
			deadline           TEXT NOT NULL DEFAULT '',
			deadline_timestamp INTEGER,
			created_at         DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_agendamentos_deadline ON agendamentos(deadline_timestamp);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating agendamentos table: %w", err)
	}

	return nil
}
