// Package testutil opens throwaway databases for package tests.
package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	migration "recipe-catalog/cmd/database/migrate"
)

var dbSeq atomic.Int64

// NewDatabase returns a migrated in-memory SQLite database private to t.
// The pool is capped at one connection, so code under test must run every
// query of a transaction on the transaction handle.
func NewDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, dbSeq.Add(1))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, migration.Migrate(db))

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}
