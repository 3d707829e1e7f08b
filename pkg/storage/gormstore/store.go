// Package gormstore implements the storage interfaces on a relational
// database through gorm. Postgres is used in production and SQLite in tests
// and local runs.
package gormstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mkani/billing/pkg/models"
	"github.com/mkani/billing/pkg/storage"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// Store implements storage.Storage.
type Store struct {
	db *gorm.DB
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

// Open connects to the database selected by driver ("postgres" or "sqlite").
func Open(driver, dsn string) (*Store, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(sqliteDSN(dsn))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                                   gormlogger.Discard,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}
	return New(db), nil
}

// New wraps an existing gorm handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// sqliteDSN makes every SQLite transaction take the write lock up front and
// wait for it, so that concurrent writers queue instead of failing.
func sqliteDSN(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_busy_timeout=5000&_txlock=immediate"
}

// DB exposes the underlying handle for fixtures and administrative commands.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Migrate creates or updates the schema for every model.
func (s *Store) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(
		&models.User{},
		&models.UserRole{},
		&models.Building{},
		&models.Unit{},
		&models.ResidentProfile{},
		&models.Wallet{},
		&models.Transaction{},
		&models.Package{},
		&models.UtilityDetail{},
		&models.PrepaidDetail{},
		&models.FixedDetail{},
		&models.MiscDetail{},
		&models.PackageBuilding{},
		&models.PackageInvoice{},
	)
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Transact runs fn inside a database transaction. Any error rolls back.
func (s *Store) Transact(ctx context.Context, fn func(tx storage.LedgerTx) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ledgerTx{db: tx})
	})
}

// forUpdate adds a row lock. SQLite has no row locks; there the immediate
// transaction already holds the database write lock.
func forUpdate(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "sqlite" {
		return db
	}
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}

func notFound(err error, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
