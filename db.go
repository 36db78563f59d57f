package main

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	schema := `
	CREATE TABLE IF NOT EXISTS checklist_state (
		namespace  TEXT NOT NULL,
		control_id TEXT NOT NULL,
		checked    INTEGER NOT NULL DEFAULT 0,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (namespace, control_id)
	);

	CREATE TABLE IF NOT EXISTS stat_state (
		namespace  TEXT NOT NULL,
		stat       TEXT NOT NULL,
		value      REAL NOT NULL DEFAULT 0,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (namespace, stat)
	);

	CREATE TABLE IF NOT EXISTS generation_log (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		build        TEXT NOT NULL,
		output_path  TEXT NOT NULL,
		size_bytes   INTEGER NOT NULL,
		generated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_generation_log_at ON generation_log(generated_at);
	`
	_, err = db.Exec(schema)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func SetChecked(db *sql.DB, namespace, controlID string, checked bool) error {
	val := 0
	if checked {
		val = 1
	}
	_, err := db.Exec(
		`INSERT INTO checklist_state (namespace, control_id, checked, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(namespace, control_id) DO UPDATE SET checked = excluded.checked, updated_at = CURRENT_TIMESTAMP`,
		namespace, controlID, val,
	)
	return err
}

func LoadChecklist(db *sql.DB, namespace string) (map[string]bool, error) {
	rows, err := db.Query(`SELECT control_id, checked FROM checklist_state WHERE namespace = ?`, namespace)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	state := make(map[string]bool)
	for rows.Next() {
		var id string
		var checked int
		if err := rows.Scan(&id, &checked); err != nil {
			return nil, err
		}
		state[id] = checked != 0
	}
	return state, rows.Err()
}

// ResetChecklist clears every checkbox in the namespace. Stat values are a
// separate table and stay untouched.
func ResetChecklist(db *sql.DB, namespace string) error {
	_, err := db.Exec(`UPDATE checklist_state SET checked = 0, updated_at = CURRENT_TIMESTAMP WHERE namespace = ?`, namespace)
	return err
}

func SetStatValue(db *sql.DB, namespace, stat string, value float64) error {
	_, err := db.Exec(
		`INSERT INTO stat_state (namespace, stat, value, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(namespace, stat) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		namespace, stat, value,
	)
	return err
}

func LoadStatValues(db *sql.DB, namespace string) (map[string]float64, error) {
	rows, err := db.Query(`SELECT stat, value FROM stat_state WHERE namespace = ?`, namespace)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := make(map[string]float64)
	for rows.Next() {
		var stat string
		var value float64
		if err := rows.Scan(&stat, &value); err != nil {
			return nil, err
		}
		values[stat] = value
	}
	return values, rows.Err()
}

// GenerationRecord is one row of the generation history.
type GenerationRecord struct {
	ID          int64
	Build       string
	OutputPath  string
	SizeBytes   int64
	GeneratedAt time.Time
}

func InsertGeneration(db *sql.DB, rec GenerationRecord) error {
	_, err := db.Exec(
		`INSERT INTO generation_log (build, output_path, size_bytes) VALUES (?, ?, ?)`,
		rec.Build, rec.OutputPath, rec.SizeBytes,
	)
	return err
}

func RecentGenerations(db *sql.DB, limit int) ([]GenerationRecord, error) {
	rows, err := db.Query(
		`SELECT id, build, output_path, size_bytes, generated_at
		 FROM generation_log ORDER BY generated_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []GenerationRecord
	for rows.Next() {
		var rec GenerationRecord
		if err := rows.Scan(&rec.ID, &rec.Build, &rec.OutputPath, &rec.SizeBytes, &rec.GeneratedAt); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}
