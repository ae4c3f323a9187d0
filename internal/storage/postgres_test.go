package storage

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &PostgresStore{DB: db}, mock
}

func TestPostgresStore_Save(t *testing.T) {
	store, mock := newMockStore(t)
	data := []byte(`{"cvName":"ada"}`)

	mock.ExpectExec("INSERT INTO resume_blobs").
		WithArgs(DefaultKey, data).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, store.Save(context.Background(), DefaultKey, data))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_SaveError(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("INSERT INTO resume_blobs").
		WithArgs(DefaultKey, sqlmock.AnyArg()).
		WillReturnError(errors.New("connection reset"))

	err := store.Save(context.Background(), DefaultKey, []byte("{}"))
	var storeErr *StoreError
	require.True(t, errors.As(err, &storeErr))
	assert.Equal(t, "save", storeErr.Op)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Load(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT value FROM resume_blobs WHERE key = \\$1").
		WithArgs(DefaultKey).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`{"cvName":"ada"}`)))

	data, err := store.Load(context.Background(), DefaultKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"cvName":"ada"}`, string(data))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_LoadMissing(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT value FROM resume_blobs").
		WithArgs("other").
		WillReturnError(sql.ErrNoRows)

	_, err := store.Load(context.Background(), "other")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpenPostgres_PingsDatabase(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	prev := openDB
	openDB = func(driverName, dsn string) (*sql.DB, error) {
		assert.Equal(t, "pgx", driverName)
		return db, nil
	}
	t.Cleanup(func() { openDB = prev })

	mock.ExpectPing()
	mock.ExpectClose()

	store, err := OpenPostgres(context.Background(), "postgres://localhost/resume")
	require.NoError(t, err)
	require.NoError(t, store.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpenPostgres_EmptyURL(t *testing.T) {
	_, err := OpenPostgres(context.Background(), "  ")
	assert.Error(t, err)
}

func TestMigrate_NilDB(t *testing.T) {
	assert.NoError(t, Migrate(context.Background(), nil))
}
