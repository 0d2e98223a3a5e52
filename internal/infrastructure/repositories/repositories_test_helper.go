package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createCoreTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT
	);`)
	mustExec(t, db, `CREATE TABLE quotes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		create_time DATETIME NOT NULL,
		bind_time DATETIME,
		bindable BOOLEAN NOT NULL DEFAULT 0
	);`)
	mustExec(t, db, `CREATE TABLE policies (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		quote_id INTEGER NOT NULL
	);`)
	mustExec(t, db, `CREATE TABLE payment_transactions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		time DATETIME NOT NULL,
		payment_type VARCHAR(20),
		policy_id INTEGER NOT NULL,
		success BOOLEAN
	);`)
}

func createFeatureTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE features (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		feature_type VARCHAR(50) NOT NULL,
		entity_id VARCHAR(50) NOT NULL,
		feature_value TEXT,
		computed_at DATETIME NOT NULL
	);`)
	mustExec(t, db, `CREATE TABLE feature_metadata (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		feature_type VARCHAR(50) NOT NULL UNIQUE,
		name VARCHAR(100) NOT NULL,
		description TEXT NOT NULL,
		entity_type VARCHAR(50) NOT NULL,
		data_type VARCHAR(50) NOT NULL,
		created_at DATETIME NOT NULL
	);`)
}
