package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	require.NoError(t, InitializeDatabase(dbPath))
	t.Cleanup(func() {
		CloseDB()
	})
}

func TestInitializeDatabaseCreatesTables(t *testing.T) {
	setupTestDB(t)
	conn := GetDB()

	for _, table := range []string{"locations", "customers", "customer_logs", "migrations"} {
		var name string
		err := conn.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		assert.NoError(t, err, "table %s should exist", table)
	}

	// Running migrations again is a no-op
	require.NoError(t, RunMigrations(conn))

	var applied int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM migrations`).Scan(&applied))
	assert.Equal(t, 1, applied)
}

func TestLoadMigrationsSortsByVersion(t *testing.T) {
	fsys := fstest.MapFS{
		"migrations/010_later.sql":  {Data: []byte("SELECT 2;")},
		"migrations/002_second.sql": {Data: []byte("SELECT 1;")},
		"migrations/readme.txt":     {Data: []byte("ignored")},
	}

	migrations, err := loadMigrations(fsys)
	require.NoError(t, err)
	require.Len(t, migrations, 2)
	assert.Equal(t, "002_second", migrations[0].Version)
	assert.Equal(t, "010_later", migrations[1].Version)
	assert.Equal(t, "SELECT 2;", migrations[1].SQL)

	_, err = loadMigrations(fstest.MapFS{})
	assert.Error(t, err)
}

func TestSeedFromFixture(t *testing.T) {
	setupTestDB(t)
	conn := GetDB()

	fixturePath := filepath.Join(t.TempDir(), "fixture.json")
	fixture := `{
		"locations": [{"locationId": "L1", "name": "Downtown", "createdDate": "2020-06-01"}],
		"customers": [
			{"customerId": "C1", "locationId": "L1", "firstName": "Ada", "lastName": "Lovelace"},
			{"customerId": "C2", "locationId": "L1", "firstName": "Alan", "lastName": "Turing"}
		],
		"customerLogs": [
			{"customerId": "C1", "type": "call", "text": "first", "date": "2021-01-05"},
			{"customerId": "C1", "type": "call", "text": "second", "date": "2021-02-01"}
		]
	}`
	require.NoError(t, os.WriteFile(fixturePath, []byte(fixture), 0o600))

	loaded, err := LoadFixture(fixturePath)
	require.NoError(t, err)
	require.NoError(t, Seed(context.Background(), conn, loaded))

	var customers, logs int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM customers WHERE location_id = 'L1'`).Scan(&customers))
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM customer_logs WHERE customer_id = 'C1'`).Scan(&logs))
	assert.Equal(t, 2, customers)
	assert.Equal(t, 2, logs)

	// Seeding the same customers again replaces rather than duplicates them
	require.NoError(t, Seed(context.Background(), conn, loaded))
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM customers WHERE location_id = 'L1'`).Scan(&customers))
	assert.Equal(t, 2, customers)
}

func TestLoadFixtureErrors(t *testing.T) {
	_, err := LoadFixture(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	badPath := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(badPath, []byte("{not json"), 0o600))
	_, err = LoadFixture(badPath)
	assert.Error(t, err)
}

func TestSQLiteReadyCheck(t *testing.T) {
	setupTestDB(t)

	assert.NoError(t, SQLiteReadyCheck(GetDB())(context.Background()))
	assert.Error(t, SQLiteReadyCheck(nil)(context.Background()))
}

func TestMongoStoreNilIsNotReady(t *testing.T) {
	var store *MongoStore
	assert.Error(t, store.Ping(context.Background()))
	assert.NoError(t, store.Close(context.Background()))
}
