package migration

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	// Blank import required for PostgreSQL driver registration for migrations
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"golang.org/x/exp/slog"
)

//go:embed sql/*.sql
var migrations embed.FS

// Migrator - интерфейс для самой библиотеки migrate.Migrate
type Migrator interface {
	Up() error
	Down() error
	Version() (uint, bool, error)
	Close() (error, error)
}

// MigrationEngine - фабрика для создания мигратора (чтобы не лезть в БД в тестах)
type MigrationEngine func(databaseURL string) (Migrator, error)

type Migration struct {
	databaseURL string
	engine      MigrationEngine
	log         *slog.Logger
}

func NewMigration(databaseURL string, engine MigrationEngine, log *slog.Logger) *Migration {
	if engine == nil {
		engine = DefaultEngine
	}
	return &Migration{
		databaseURL: databaseURL,
		engine:      engine,
		log:         log.With("component", "migration"),
	}
}

// DefaultEngine - миграции встроены в бинарник
func DefaultEngine(databaseURL string) (Migrator, error) {
	src, err := iofs.New(migrations, "sql")
	if err != nil {
		return nil, fmt.Errorf("open embedded migrations: %w", err)
	}
	return migrate.NewWithSourceInstance("iofs", src, databaseURL)
}

// Up применяет все миграции. ErrNoChange ошибкой не считается.
func (mg *Migration) Up() error {
	return mg.run("up", func(m Migrator) error { return m.Up() })
}

// Down откатывает все миграции
func (mg *Migration) Down() error {
	return mg.run("down", func(m Migrator) error { return m.Down() })
}

func (mg *Migration) run(direction string, apply func(Migrator) error) (err error) {
	m, err := mg.engine(mg.databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		serr, dberr := m.Close()
		if serr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration source error: %v", err, serr)
			} else {
				err = serr
			}
		}
		if dberr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration database error: %v", err, dberr)
			} else {
				err = dberr
			}
		}
	}()

	if err := apply(m); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			mg.log.Debug("no migrations to apply", "direction", direction)
			return nil
		}
		return fmt.Errorf("migration %s: %w", direction, err)
	}

	if version, dirty, verr := m.Version(); verr == nil {
		mg.log.Info("migrations applied", "direction", direction, "version", version, "dirty", dirty)
	}
	return nil
}
