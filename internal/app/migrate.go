package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/riskibarqy/adjusted-goals/internal/config"
	"github.com/riskibarqy/adjusted-goals/internal/platform/logging"
)

// Migrator applies the SQL files under db/migrations to the postgres store.
type Migrator struct {
	m      *migrate.Migrate
	source string
	logger *logging.Logger
}

func NewMigrator(cfg config.Config, dir string, logger *logging.Logger) (*Migrator, error) {
	if strings.TrimSpace(cfg.DBURL) == "" {
		return nil, fmt.Errorf("DB_URL is required")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	migrationsDir, err := ResolveMigrationsDir(dir)
	if err != nil {
		return nil, err
	}

	sourceURL := "file://" + filepath.ToSlash(migrationsDir)
	m, err := migrate.New(sourceURL, normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary))
	if err != nil {
		return nil, fmt.Errorf("create migrator: %w", err)
	}
	return &Migrator{m: m, source: sourceURL, logger: logger}, nil
}

func (m *Migrator) Up() error {
	if err := ignoreNoChange(m.m.Up(), m.logger); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	m.logger.Info("migrations applied", "source", m.source)
	return nil
}

func (m *Migrator) Down(steps int) error {
	if steps <= 0 {
		return fmt.Errorf("down steps must be > 0")
	}
	if err := ignoreNoChange(m.m.Steps(-steps), m.logger); err != nil {
		return fmt.Errorf("roll back %d migration(s): %w", steps, err)
	}
	m.logger.Info("migrations rolled back", "steps", steps)
	return nil
}

// Version reports the applied version. ok is false on a fresh database.
func (m *Migrator) Version() (version uint, dirty bool, ok bool, err error) {
	version, dirty, err = m.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, false, nil
	}
	if err != nil {
		return 0, false, false, fmt.Errorf("read version: %w", err)
	}
	return version, dirty, true, nil
}

func (m *Migrator) Force(version int) error {
	if version < 0 {
		return fmt.Errorf("version must be >= 0")
	}
	if err := m.m.Force(version); err != nil {
		return fmt.Errorf("force version %d: %w", version, err)
	}
	m.logger.Info("migration version forced", "version", version)
	return nil
}

func (m *Migrator) Goto(target uint) error {
	if err := ignoreNoChange(m.m.Migrate(target), m.logger); err != nil {
		return fmt.Errorf("migrate to %d: %w", target, err)
	}
	m.logger.Info("migrated", "version", target)
	return nil
}

func (m *Migrator) Close() error {
	srcErr, dbErr := m.m.Close()
	if srcErr != nil {
		srcErr = fmt.Errorf("close migration source: %w", srcErr)
	}
	if dbErr != nil {
		dbErr = fmt.Errorf("close migration db: %w", dbErr)
	}
	return errors.Join(srcErr, dbErr)
}

func ignoreNoChange(err error, logger *logging.Logger) error {
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migration changes")
		return nil
	}
	return err
}

// ResolveMigrationsDir returns the first existing directory among explicit,
// MIGRATIONS_DIR, MIGRATIONS_PATH and the usual repo and container paths.
func ResolveMigrationsDir(explicit string) (string, error) {
	candidates := []string{
		strings.TrimSpace(explicit),
		strings.TrimSpace(os.Getenv("MIGRATIONS_DIR")),
		strings.TrimSpace(os.Getenv("MIGRATIONS_PATH")),
		"./db/migrations",
		"/app/db/migrations",
	}

	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			continue
		}
		return abs, nil
	}

	return "", fmt.Errorf("migration directory not found (checked --dir, MIGRATIONS_DIR, MIGRATIONS_PATH, ./db/migrations, /app/db/migrations)")
}
