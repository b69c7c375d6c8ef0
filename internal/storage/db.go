package storage

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"certgen/internal"
)

type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS submissions (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  school_name TEXT NOT NULL,
  school_number TEXT NOT NULL,
  contact_number TEXT NOT NULL,
  ic_number TEXT NOT NULL,
  timestamp TEXT NOT NULL,
  remote_ok INTEGER NOT NULL DEFAULT 0,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS runs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  traceId TEXT NOT NULL,
  successCount INTEGER NOT NULL,
  failCount INTEGER NOT NULL,
  archiveName TEXT NOT NULL,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

	_, err := d.conn.Exec(schema)
	return err
}

func (d *DB) InsertSubmission(record internal.SubmissionRecord, remoteOK bool) (int64, error) {
	result, err := d.conn.Exec(`
INSERT INTO submissions (name, school_name, school_number, contact_number, ic_number, timestamp, remote_ok)
VALUES (?, ?, ?, ?, ?, ?, ?)
`, record.Name, record.SchoolName, record.SchoolNumber, record.ContactNumber, record.ICNumber, record.Timestamp, boolToInt(remoteOK))
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (d *DB) ListSubmissions(limit int) ([]internal.SubmissionRow, error) {
	rows, err := d.conn.Query(`
SELECT id, name, school_name, school_number, contact_number, ic_number, timestamp, remote_ok, createdAt
FROM submissions ORDER BY id DESC LIMIT ?
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.SubmissionRow
	for rows.Next() {
		var row internal.SubmissionRow
		var remoteOK int
		if err := rows.Scan(
			&row.ID, &row.Name, &row.SchoolName, &row.SchoolNumber,
			&row.ContactNumber, &row.ICNumber, &row.Timestamp, &remoteOK, &row.CreatedAt,
		); err != nil {
			return nil, err
		}
		row.RemoteOK = remoteOK != 0
		out = append(out, row)
	}
	return out, rows.Err()
}

func (d *DB) InsertRun(traceID string, successCount, failCount int, archiveName string) error {
	_, err := d.conn.Exec(`
INSERT INTO runs (traceId, successCount, failCount, archiveName) VALUES (?, ?, ?, ?)
`, traceID, successCount, failCount, archiveName)
	return err
}

func (d *DB) GetRun(traceID string) (*internal.RunRow, error) {
	var row internal.RunRow
	err := d.conn.QueryRow(`
SELECT id, traceId, successCount, failCount, archiveName, createdAt FROM runs WHERE traceId = ?
`, traceID).Scan(&row.ID, &row.TraceID, &row.SuccessCount, &row.FailCount, &row.ArchiveName, &row.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// TableNames lists the user tables of the database in creation order,
// for the spreadsheet export.
func (d *DB) TableNames() ([]string, error) {
	rows, err := d.conn.Query(`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

// DumpTable returns a table's column names and every row as strings,
// column order preserved, no transformation.
func (d *DB) DumpTable(table string) ([]string, [][]string, error) {
	rows, err := d.conn.Query(`SELECT * FROM "` + table + `"`)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var records [][]string
	for rows.Next() {
		values := make([]sql.NullString, len(columns))
		scan := make([]any, len(columns))
		for i := range values {
			scan[i] = &values[i]
		}
		if err := rows.Scan(scan...); err != nil {
			return nil, nil, err
		}
		record := make([]string, len(columns))
		for i, v := range values {
			if v.Valid {
				record[i] = v.String
			}
		}
		records = append(records, record)
	}
	return columns, records, rows.Err()
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
