package schema_test

import (
	"fmt"
	"sync/atomic"
	"testing"

	"techverse/services/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := fmt.Sprintf("file:schema_test_%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(name), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	schema.Invalidate()
	t.Cleanup(schema.Invalidate)
	return db
}

func createWideTable(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Exec(`CREATE TABLE inquiries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT,
		course_interest TEXT,
		message TEXT,
		source TEXT,
		status TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`).Error)
}

func TestColumnsFromSampleRow(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Exec(`CREATE TABLE inquiries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT,
		email TEXT,
		extra_col TEXT
	)`).Error)
	require.NoError(t, db.Exec(`INSERT INTO inquiries (name, email, extra_col) VALUES ('a', 'a@b.co', 'x')`).Error)

	cols := schema.Columns(db)

	assert.True(t, schema.Has(cols, "name"))
	assert.True(t, schema.Has(cols, "email"))
	assert.True(t, schema.Has(cols, "extra_col"))
	assert.False(t, schema.Has(cols, "course_interest"))
}

func TestColumnsSentinelInsertOnEmptyTable(t *testing.T) {
	db := newTestDB(t)
	createWideTable(t, db)

	cols := schema.Columns(db)
	assert.ElementsMatch(t, schema.FullColumns, cols)

	// The sentinel row must have been cleaned up
	var count int64
	require.NoError(t, db.Table("inquiries").Count(&count).Error)
	assert.Zero(t, count)
}

func TestColumnsFallsBackWhenTableMissing(t *testing.T) {
	db := newTestDB(t)

	cols := schema.Columns(db)
	assert.Equal(t, schema.MinimalColumns, cols)
}

func TestColumnsFallsBackWhenSentinelRejected(t *testing.T) {
	db := newTestDB(t)
	// Narrow empty table: the full-column sentinel insert cannot succeed
	require.NoError(t, db.Exec(`CREATE TABLE inquiries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT,
		email TEXT,
		message TEXT
	)`).Error)

	cols := schema.Columns(db)
	assert.Equal(t, schema.MinimalColumns, cols)
}

func TestColumnsCachedUntilInvalidated(t *testing.T) {
	db := newTestDB(t)
	createWideTable(t, db)

	first := schema.Columns(db)
	assert.ElementsMatch(t, schema.FullColumns, first)

	// With the table gone, the cached set is still served
	require.NoError(t, db.Exec(`DROP TABLE inquiries`).Error)
	second := schema.Columns(db)
	assert.Equal(t, first, second)

	// After invalidation the probe runs again and degrades
	schema.Invalidate()
	third := schema.Columns(db)
	assert.Equal(t, schema.MinimalColumns, third)
}

func TestColumnsReturnsCopy(t *testing.T) {
	db := newTestDB(t)

	cols := schema.Columns(db)
	cols[0] = "mutated"

	again := schema.Columns(db)
	assert.Equal(t, schema.MinimalColumns, again)
}
