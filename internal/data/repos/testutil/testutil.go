package testutil

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/takashi605/blog-backend/internal/data/records"
	"github.com/takashi605/blog-backend/internal/pkg/logger"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var (
	logOnce sync.Once
	logg    *logger.Logger
	logErr  error

	dbCounter atomic.Int64
)

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	logOnce.Do(func() {
		logg, logErr = logger.New("test")
	})
	if logErr != nil {
		tb.Fatalf("failed to init logger: %v", logErr)
	}
	return logg
}

// DB returns a migrated database that is private to the test. By default
// it is an in-memory SQLite database; set TEST_POSTGRES_DSN to run the
// repo tests against Postgres instead.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	var (
		db  *gorm.DB
		err error
	)
	cfg := &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   gormLogger.Default.LogMode(gormLogger.Silent),
	}
	if dsn := os.Getenv("TEST_POSTGRES_DSN"); dsn != "" {
		db, err = gorm.Open(postgres.Open(dsn), cfg)
	} else {
		name := fmt.Sprintf("file:repotest%d?mode=memory&cache=shared", dbCounter.Add(1))
		db, err = gorm.Open(sqlite.Open(name), cfg)
	}
	if err != nil {
		tb.Fatalf("failed to open test db: %v", err)
	}

	if err := db.AutoMigrate(records.All()...); err != nil {
		tb.Fatalf("failed to migrate test db: %v", err)
	}

	tb.Cleanup(func() {
		for _, model := range records.All() {
			if err := db.Where("1 = 1").Delete(model).Error; err != nil {
				tb.Logf("cleanup: %v", err)
			}
		}
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
