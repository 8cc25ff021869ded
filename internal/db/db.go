package db

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	_ "github.com/lib/pq"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
	_ "modernc.org/sqlite"

	"page-export/internal/config"
)

const (
	KindPostgres = "postgres"
	KindSQLite   = "sqlite"

	sqliteMemory = ":memory:"
)

// Store owns the connection pool for one run. Callers must Close it.
type Store struct {
	db *bun.DB
}

// NormalizeURL turns a database URL (SQLAlchemy style driver suffixes such as
// postgresql+psycopg2:// are accepted) into a store kind and a driver DSN.
func NormalizeURL(raw string) (kind, dsn string, err error) {
	raw = strings.TrimSpace(raw)
	scheme, rest, ok := strings.Cut(raw, "://")
	if !ok {
		return "", "", fmt.Errorf("invalid database url: missing scheme")
	}
	scheme = strings.ToLower(scheme)
	if base, _, found := strings.Cut(scheme, "+"); found {
		scheme = base
	}

	switch scheme {
	case "postgres", "postgresql":
		u, err := url.Parse("postgres://" + rest)
		if err != nil {
			return "", "", fmt.Errorf("invalid database url: %w", err)
		}
		return KindPostgres, u.String(), nil
	case "sqlite", "sqlite3":
		// sqlite:///relative.db, sqlite:////abs/path.db, sqlite:// for memory
		path := strings.TrimPrefix(rest, "/")
		if path == "" {
			path = sqliteMemory
		}
		return KindSQLite, path, nil
	default:
		return "", "", fmt.Errorf("unsupported database scheme: %s", scheme)
	}
}

func ConnectDB(cfg *config.DatabaseConfig) (*sql.DB, string, error) {
	kind, dsn, err := NormalizeURL(cfg.URL)
	if err != nil {
		return nil, "", err
	}

	switch kind {
	case KindSQLite:
		sqldb, err := sql.Open("sqlite", dsn)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open sqlite: %w", err)
		}
		if dsn == sqliteMemory {
			// every new connection would get its own empty database
			sqldb.SetMaxOpenConns(1)
		}
		return sqldb, kind, nil
	default:
		if cfg.Driver == config.DriverPQ {
			sqldb, err := sql.Open("postgres", dsn)
			if err != nil {
				return nil, "", fmt.Errorf("failed to open postgres: %w", err)
			}
			return sqldb, kind, nil
		}
		return sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn))), kind, nil
	}
}

func NewDB(sqldb *sql.DB, kind string, debug bool) *bun.DB {
	var db *bun.DB
	if kind == KindSQLite {
		db = bun.NewDB(sqldb, sqlitedialect.New())
	} else {
		db = bun.NewDB(sqldb, pgdialect.New())
	}
	if debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}
	return db
}

// Open connects and pings so a bad URL fails before any export starts.
func Open(ctx context.Context, cfg *config.DatabaseConfig) (*Store, error) {
	sqldb, kind, err := ConnectDB(cfg)
	if err != nil {
		return nil, err
	}
	db := NewDB(sqldb, kind, cfg.Debug)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) DB() *bun.DB {
	return s.db
}

func (s *Store) Close() error {
	return s.db.Close()
}

// WithSession checks out a single connection for fn and releases it when fn
// returns.
func (s *Store) WithSession(ctx context.Context, fn func(*Session) error) error {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()

	return fn(&Session{db: &conn})
}
