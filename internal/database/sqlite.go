package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/gopalshiyal099-lang/Mahuva-property/internal/models"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS properties (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	address TEXT NOT NULL DEFAULT '',
	price REAL NOT NULL,
	type TEXT NOT NULL,
	status TEXT NOT NULL,
	beds INTEGER NOT NULL DEFAULT 0,
	baths REAL NOT NULL DEFAULT 0,
	sqft INTEGER NOT NULL DEFAULT 0,
	image_url TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS leads (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL DEFAULT '',
	phone TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL,
	interested_in TEXT NOT NULL DEFAULT '',
	source TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS messages (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	id TEXT NOT NULL UNIQUE,
	lead_id TEXT NOT NULL,
	type TEXT NOT NULL,
	content TEXT NOT NULL,
	timestamp DATETIME NOT NULL,
	status TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_messages_lead_id ON messages(lead_id);
`

// SQLiteDB is a single-file repository backed by modernc.org/sqlite
type SQLiteDB struct {
	conn *sql.DB
}

// OpenSQLite opens (or creates) the database at path. Use ":memory:" for a
// throwaway database.
func OpenSQLite(ctx context.Context, path string) (*SQLiteDB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// a single connection keeps ":memory:" databases shared and serialises writes
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	db := &SQLiteDB{conn: conn}
	if err := db.InitSchema(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	if err := db.seed(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

func (db *SQLiteDB) Close() error {
	return db.conn.Close()
}

// InitSchema creates the tables if they don't exist
func (db *SQLiteDB) InitSchema(ctx context.Context) error {
	if _, err := db.conn.ExecContext(ctx, sqliteSchema); err != nil {
		return fmt.Errorf("init sqlite schema: %w", err)
	}
	return nil
}

func (db *SQLiteDB) seed(ctx context.Context) error {
	var count int
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM properties`).Scan(&count); err != nil {
		return fmt.Errorf("count properties: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, p := range models.SeedProperties() {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO properties (id, title, address, price, type, status, beds, baths, sqft, image_url, description)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, p.Title, p.Address, p.Price, p.Type, p.Status, p.Beds, p.Baths, p.Sqft, p.ImageURL, p.Description)
		if err != nil {
			return fmt.Errorf("seed property %s: %w", p.ID, err)
		}
	}
	for _, l := range models.SeedLeads() {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO leads (id, name, email, phone, status, interested_in, source, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			l.ID, l.Name, l.Email, l.Phone, l.Status, l.InterestedIn, l.Source, l.CreatedAt)
		if err != nil {
			return fmt.Errorf("seed lead %s: %w", l.ID, err)
		}
	}
	return tx.Commit()
}

func (db *SQLiteDB) Properties(ctx context.Context) ([]models.Property, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, title, address, price, type, status, beds, baths, sqft, image_url, description
		FROM properties
		ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []models.Property
	for rows.Next() {
		var p models.Property
		if err := rows.Scan(&p.ID, &p.Title, &p.Address, &p.Price, &p.Type, &p.Status,
			&p.Beds, &p.Baths, &p.Sqft, &p.ImageURL, &p.Description); err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}
	return properties, rows.Err()
}

func (db *SQLiteDB) Leads(ctx context.Context) ([]models.Lead, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, name, email, phone, status, interested_in, source, created_at
		FROM leads
		ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []models.Lead
	for rows.Next() {
		var l models.Lead
		if err := rows.Scan(&l.ID, &l.Name, &l.Email, &l.Phone, &l.Status,
			&l.InterestedIn, &l.Source, &l.CreatedAt); err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}
	return leads, rows.Err()
}

func (db *SQLiteDB) Messages(ctx context.Context) ([]models.Message, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, lead_id, type, content, timestamp, status
		FROM messages
		ORDER BY seq DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []models.Message{}
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.LeadID, &m.Type, &m.Content, &m.Timestamp, &m.Status); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (db *SQLiteDB) SaveMessage(ctx context.Context, m models.Message) error {
	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO messages (id, lead_id, type, content, timestamp, status)
		VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID, m.LeadID, m.Type, m.Content, m.Timestamp, m.Status)
	return err
}
