package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/gopalshiyal099-lang/Mahuva-property/internal/models"
)

// PostgresDB is the PostgreSQL repository
type PostgresDB struct {
	conn *sqlx.DB
}

func NewPostgresDB(ctx context.Context, host, port, user, password, dbname, sslmode string) (*PostgresDB, error) {
	if sslmode == "" {
		sslmode = "disable"
	}
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode)

	conn, err := sqlx.ConnectContext(ctx, "postgres", connStr)
	if err != nil {
		return nil, err
	}

	db := &PostgresDB{conn: conn}
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

func (db *PostgresDB) Close() error {
	return db.conn.Close()
}

// InitSchema creates the tables if they don't exist
func (db *PostgresDB) InitSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS properties (
		id VARCHAR(32) PRIMARY KEY,
		title TEXT NOT NULL,
		address TEXT NOT NULL DEFAULT '',
		price NUMERIC(14, 2) NOT NULL,
		type VARCHAR(20) NOT NULL,
		status VARCHAR(20) NOT NULL,
		beds INTEGER NOT NULL DEFAULT 0,
		baths NUMERIC(4, 1) NOT NULL DEFAULT 0,
		sqft INTEGER NOT NULL DEFAULT 0,
		image_url TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		seq INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS leads (
		id VARCHAR(32) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL DEFAULT '',
		phone VARCHAR(32) NOT NULL DEFAULT '',
		status VARCHAR(20) NOT NULL,
		interested_in VARCHAR(32) NOT NULL DEFAULT '',
		source VARCHAR(100) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		seq INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS messages (
		id VARCHAR(64) PRIMARY KEY,
		lead_id VARCHAR(32) NOT NULL,
		type VARCHAR(20) NOT NULL,
		content TEXT NOT NULL,
		timestamp TIMESTAMPTZ NOT NULL,
		status VARCHAR(20) NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_messages_timestamp ON messages(timestamp DESC);
	CREATE INDEX IF NOT EXISTS idx_leads_status ON leads(status);
	`
	if _, err := db.conn.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("init postgres schema: %w", err)
	}
	return nil
}

func (db *PostgresDB) seed(ctx context.Context) error {
	var count int
	if err := db.conn.GetContext(ctx, &count, `SELECT COUNT(*) FROM properties`); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tx, err := db.conn.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, p := range seedProperties() {
		if _, err := tx.NamedExecContext(ctx, `
			INSERT INTO properties (id, title, address, price, type, status, beds, baths, sqft, image_url, description, seq)
			VALUES (:id, :title, :address, :price, :type, :status, :beds, :baths, :sqft, :image_url, :description, :seq)`, p); err != nil {
			return fmt.Errorf("seed property %s: %w", p.ID, err)
		}
	}
	for _, l := range seedLeads() {
		if _, err := tx.NamedExecContext(ctx, `
			INSERT INTO leads (id, name, email, phone, status, interested_in, source, created_at, seq)
			VALUES (:id, :name, :email, :phone, :status, :interested_in, :source, :created_at, :seq)`, l); err != nil {
			return fmt.Errorf("seed lead %s: %w", l.ID, err)
		}
	}
	return tx.Commit()
}

func (db *PostgresDB) Properties(ctx context.Context) ([]models.Property, error) {
	var properties []models.Property
	err := db.conn.SelectContext(ctx, &properties, `
		SELECT id, title, address, price, type, status, beds, baths, sqft, image_url, description, seq
		FROM properties
		ORDER BY seq, id`)
	return properties, err
}

func (db *PostgresDB) Leads(ctx context.Context) ([]models.Lead, error) {
	var leads []models.Lead
	err := db.conn.SelectContext(ctx, &leads, `
		SELECT id, name, email, phone, status, interested_in, source, created_at, seq
		FROM leads
		ORDER BY seq, id`)
	return leads, err
}

func (db *PostgresDB) Messages(ctx context.Context) ([]models.Message, error) {
	messages := []models.Message{}
	err := db.conn.SelectContext(ctx, &messages, `
		SELECT id, lead_id, type, content, timestamp, status
		FROM messages
		ORDER BY timestamp DESC`)
	return messages, err
}

func (db *PostgresDB) SaveMessage(ctx context.Context, m models.Message) error {
	_, err := db.conn.NamedExecContext(ctx, `
		INSERT INTO messages (id, lead_id, type, content, timestamp, status)
		VALUES (:id, :lead_id, :type, :content, :timestamp, :status)`, m)
	return err
}
