// Package repositories wires the configured database to the concrete
// repository implementations and runs schema migrations on startup.
package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/akarpovs/stockkeeper/internal/server/config"
	"github.com/akarpovs/stockkeeper/internal/server/migrations"
	"github.com/akarpovs/stockkeeper/internal/server/repositories/items"
	"github.com/akarpovs/stockkeeper/internal/server/repositories/users"
)

// Manager owns the database connection and the repositories built on it.
type Manager struct {
	conn  *sql.DB
	items items.Repository
	users users.Repository
}

// NewManager opens the database named by cfg, runs migrations and builds
// the repositories. Supported types are "sqlite" and "postgres".
func NewManager(ctx context.Context, cfg *config.DBConfig) (*Manager, error) {
	var (
		conn    *sql.DB
		dialect string
		err     error
	)

	switch cfg.Type {
	case "sqlite":
		dsn := fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", cfg.Path)
		conn, err = sql.Open("sqlite", dsn)
		if err != nil {
			return nil, fmt.Errorf("db open error: %w", err)
		}
		// SQLite supports a single writer.
		conn.SetMaxOpenConns(1)
		dialect = "sqlite3"
	case "postgres":
		conn, err = sql.Open("pgx", cfg.PostgresDSN())
		if err != nil {
			return nil, fmt.Errorf("db open error: %w", err)
		}
		dialect = "postgres"
	default:
		return nil, fmt.Errorf("unknown db type: %q", cfg.Type)
	}

	if err := runMigrations(ctx, conn, dialect); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	m := &Manager{conn: conn}
	switch cfg.Type {
	case "sqlite":
		m.items = items.NewSQLiteRepository(conn)
		m.users = users.NewSQLiteRepository(conn)
	case "postgres":
		m.items = items.NewPostgresRepository(conn)
		m.users = users.NewPostgresRepository(conn)
	}

	return m, nil
}

func runMigrations(ctx context.Context, conn *sql.DB, dialect string) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	return goose.UpContext(ctx, conn, ".")
}

func (m *Manager) Conn() *sql.DB {
	return m.conn
}

func (m *Manager) Items() items.Repository {
	return m.items
}

func (m *Manager) Users() users.Repository {
	return m.users
}

func (m *Manager) Close() error {
	return m.conn.Close()
}
