package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

// newMigrator builds a migrator over db. Closing the migrator closes db, and
// db is closed here when no migrator could be built.
func newMigrator(db *sql.DB, migrationsPath string) (*migrate.Migrate, error) {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+migrationsPath, "postgres", driver)
	if err != nil {
		driver.Close()
		return nil, fmt.Errorf("failed to create migrator: %w", err)
	}
	return m, nil
}

// runMigrations applies all pending up migrations and logs the resulting
// version. db is closed on return.
func runMigrations(db *sql.DB, migrationsPath string) error {
	m, err := newMigrator(db, migrationsPath)
	if err != nil {
		return err
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			log.Printf("Error closing migrator: source %v, database %v", srcErr, dbErr)
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	logMigrationVersion(m)
	return nil
}

// logMigrationVersion displays the current schema version
func logMigrationVersion(m *migrate.Migrate) {
	version, dirty, err := m.Version()
	if err != nil {
		log.Printf("Error reading migration version: %v", err)
		return
	}
	if dirty {
		log.Printf("Current migration version: %d (DIRTY - migration failed)", version)
	} else {
		log.Printf("Current migration version: %d", version)
	}
}

// migrateDatabase opens a dedicated database/sql connection for the
// migrator and applies the migrations.
func migrateDatabase(connStr, migrationsPath string) error {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return fmt.Errorf("failed to open database for migrations: %w", err)
	}

	log.Println("Running database migrations...")
	if err := runMigrations(db, migrationsPath); err != nil {
		return err
	}
	log.Println("Database migrations completed successfully")
	return nil
}
