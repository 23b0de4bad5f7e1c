// Package database loads the dashboard collections and records dispatched
// messages. The in-memory state in internal/app is authoritative; a
// Repository only seeds it at startup and receives writes after the fact.
package database

import (
	"context"
	"fmt"
	"log"

	"github.com/gopalshiyal099-lang/Mahuva-property/internal/config"
	"github.com/gopalshiyal099-lang/Mahuva-property/internal/models"
)

// Repository is a storage backend for properties, leads and messages
type Repository interface {
	Properties(ctx context.Context) ([]models.Property, error)
	Leads(ctx context.Context) ([]models.Lead, error)
	// Messages returns the message log, most recent first
	Messages(ctx context.Context) ([]models.Message, error)
	SaveMessage(ctx context.Context, m models.Message) error
	Close() error
}

// New opens the backend selected by cfg.Type, creating its schema and
// seeding it with the demo data when it is empty
func New(ctx context.Context, cfg config.StorageConfig) (Repository, error) {
	switch cfg.Type {
	case "", "memory":
		log.Println("[database] Using in-memory repository")
		return NewMemory(models.SeedProperties(), models.SeedLeads()), nil
	case "sqlite":
		log.Printf("[database] Using SQLite at %s", cfg.SQLite.Path)
		db, err := OpenSQLite(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		return db, nil
	case "mysql":
		log.Println("[database] Using MySQL with GORM")
		c := cfg.MySQL
		db, err := NewGormDB(c.Host, portString(c.Port, "3306"), c.User, c.Password, c.Database)
		if err != nil {
			return nil, fmt.Errorf("connect mysql: %w", err)
		}
		return db, nil
	case "postgres":
		log.Println("[database] Using PostgreSQL")
		c := cfg.Postgres
		db, err := NewPostgresDB(ctx, c.Host, portString(c.Port, "5432"), c.User, c.Password, c.Database, c.SSLMode)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		return db, nil
	}
	return nil, fmt.Errorf("unknown storage type %q", cfg.Type)
}

func portString(port int, fallback string) string {
	if port > 0 {
		return fmt.Sprintf("%d", port)
	}
	return fallback
}
