// Package dbtest opens a throwaway postgres schema for tests that need real SQL.
package dbtest

import (
	"os"
	"strings"
	"testing"

	"github.com/CollectorsVault/CollectorsVault-Backend/src/db"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// EnvDSN names the variable holding the test database DSN.
const EnvDSN = "TEST_DATABASE_URL"

// Open connects to TEST_DATABASE_URL, creates a fresh schema holding the
// catalogue tables and drops it when the test ends. The test is skipped when
// the variable is unset.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := os.Getenv(EnvDSN)
	if dsn == "" {
		t.Skipf("%s is not set", EnvDSN)
	}

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Discard,
	})
	require.NoError(t, err)

	// One connection, so search_path holds for every statement.
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	schema := "vault_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	require.NoError(t, gdb.Exec("CREATE SCHEMA " + schema).Error)
	t.Cleanup(func() {
		_ = gdb.Exec("DROP SCHEMA " + schema + " CASCADE").Error
		_ = sqlDB.Close()
	})
	require.NoError(t, gdb.Exec("SET search_path TO "+schema).Error)
	require.NoError(t, db.Migrate(gdb))

	return gdb
}
