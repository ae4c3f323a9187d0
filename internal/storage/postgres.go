package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as database/sql driver
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

var openDB = sql.Open

// PostgresStore keeps blobs in the resume_blobs table.
type PostgresStore struct {
	DB *sql.DB
}

// OpenPostgres connects to databaseURL and verifies connectivity.
func OpenPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	if strings.TrimSpace(databaseURL) == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}

	db, err := openDB("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Printf("[STORE] Connected to postgres")
	return &PostgresStore{DB: db}, nil
}

// Migrate applies the embedded SQL migrations via goose.
func Migrate(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return nil
	}
	goose.SetBaseFS(migrationFiles)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, "migrations")
}

func (p *PostgresStore) Load(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := p.DB.QueryRowContext(ctx, `SELECT value FROM resume_blobs WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &StoreError{Op: "load", Key: key, Message: "query failed", Cause: err}
	}
	return value, nil
}

func (p *PostgresStore) Save(ctx context.Context, key string, data []byte) error {
	_, err := p.DB.ExecContext(ctx,
		`INSERT INTO resume_blobs (key, value, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		key, data,
	)
	if err != nil {
		return &StoreError{Op: "save", Key: key, Message: "upsert failed", Cause: err}
	}
	return nil
}

func (p *PostgresStore) Close() error {
	if p.DB == nil {
		return nil
	}
	return p.DB.Close()
}
