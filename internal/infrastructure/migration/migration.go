package migration

import (
	"database/sql"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/gorm"

	"github.com/huddle-inc/huddle/internal/shared/logger"
)

// DefaultScriptsPath is where the versioned SQL scripts live relative to
// the repository root.
const DefaultScriptsPath = "./internal/infrastructure/persistence/migrations"

// Runner applies versioned SQL migrations with golang-migrate. Development
// environments use AutoMigrate instead; see automigrate.go.
type Runner struct {
	scriptsPath string
	logger      logger.Interface
}

func NewRunner(scriptsPath string, log logger.Interface) *Runner {
	return &Runner{
		scriptsPath: scriptsPath,
		logger:      log.With("component", "migration"),
	}
}

// Up applies all pending migrations. A dirty database is reported as an
// error rather than repaired; use Force after fixing the schema by hand.
func (r *Runner) Up(db *gorm.DB) error {
	m, err := r.instance(db)
	if err != nil {
		return err
	}
	defer m.Close()

	currentVersion, dirty, err := m.Version()
	if err != nil && err != migrate.ErrNilVersion {
		return fmt.Errorf("failed to get current migration version: %w", err)
	}
	if dirty {
		return fmt.Errorf("database is in dirty state at version %d", currentVersion)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, _, err := m.Version()
	if err != nil && err != migrate.ErrNilVersion {
		return fmt.Errorf("failed to get final migration version: %w", err)
	}

	r.logger.Infow("migration completed",
		"from_version", currentVersion,
		"to_version", finalVersion,
	)
	return nil
}

// Down rolls back the given number of migrations.
func (r *Runner) Down(db *gorm.DB, steps int) error {
	m, err := r.instance(db)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Steps(-steps); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run down migrations: %w", err)
	}

	r.logger.Infow("down migration completed", "steps", steps)
	return nil
}

// Version returns the current schema version and dirty flag.
func (r *Runner) Version(db *gorm.DB) (uint, bool, error) {
	m, err := r.instance(db)
	if err != nil {
		return 0, false, err
	}
	defer m.Close()

	version, dirty, err := m.Version()
	if err == migrate.ErrNilVersion {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to get migration version: %w", err)
	}
	return version, dirty, nil
}

// Force sets the schema version and clears the dirty flag.
func (r *Runner) Force(db *gorm.DB, version int) error {
	m, err := r.instance(db)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Force(version); err != nil {
		return fmt.Errorf("failed to force version: %w", err)
	}

	r.logger.Infow("migration version forced", "version", version)
	return nil
}

func (r *Runner) instance(db *gorm.DB) (*migrate.Migrate, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return r.createMigrateInstance(sqlDB)
}

func (r *Runner) createMigrateInstance(sqlDB *sql.DB) (*migrate.Migrate, error) {
	driver, err := mysql.WithInstance(sqlDB, &mysql.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create MySQL driver: %w", err)
	}

	sourceURL := fmt.Sprintf("file://%s", r.scriptsPath)
	m, err := migrate.NewWithDatabaseInstance(sourceURL, "mysql", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}

	return m, nil
}
