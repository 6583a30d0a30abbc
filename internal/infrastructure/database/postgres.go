package database

import (
	"context"
	"fmt"
	"net/http"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	migrate "github.com/rubenv/sql-migrate"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/johnquangdev/meeting-summarizer/migrations"
	"github.com/johnquangdev/meeting-summarizer/pkg/config"
)

type pingCloser interface {
	PingContext(ctx context.Context) error
	Close() error
}

// pingOrClose closes db when the ping fails
func pingOrClose(ctx context.Context, db pingCloser) error {
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}
	return nil
}

// NewPostgresDB opens a GORM connection, retrying the first ping until
// DB_CONNECT_TIMEOUT elapses
func NewPostgresDB(ctx context.Context, cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	dsn := cfg.GetDatabaseDSN()

	// Configure GORM logger
	gormLogger := logger.Default.LogMode(logger.Warn)
	if cfg.IsProduction() {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	var db *gorm.DB
	connect := func() error {
		var err error
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger:               gormLogger,
			TranslateError:       true,
			DisableAutomaticPing: true,
			NowFunc: func() time.Time {
				return time.Now().UTC()
			},
		})
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return backoff.Permanent(err)
		}
		return pingOrClose(ctx, sqlDB)
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = time.Second
	bo.MaxInterval = 5 * time.Second
	bo.MaxElapsedTime = cfg.Database.ConnectTimeout

	notify := func(err error, next time.Duration) {
		if log != nil {
			log.Warn("⏳ Database not ready, retrying", zap.Error(err), zap.Duration("next", next))
		}
	}
	if err := backoff.RetryNotify(connect, backoff.WithContext(bo, ctx), notify); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Connection pool settings
	sqlDB.SetMaxOpenConns(cfg.Database.MaxConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MinConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if log != nil {
		log.Info("✅ Database connected successfully", zap.String("host", cfg.Database.Host), zap.String("name", cfg.Database.Name))
	}

	return db, nil
}

// migrationSource serves the embedded SQL files
func migrationSource() migrate.MigrationSource {
	return &migrate.HttpFileSystemMigrationSource{FileSystem: http.FS(migrations.FS)}
}

// Migrate applies (migrate.Up) or rolls back (migrate.Down) the embedded migrations.
// max limits how many are applied; 0 means all.
func Migrate(db *gorm.DB, dir migrate.MigrationDirection, max int) (int, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get db connection during migrate, error: %v", err)
	}

	n, err := migrate.ExecMax(sqlDB, "postgres", migrationSource(), dir, max)
	if err != nil {
		return n, fmt.Errorf("failed to apply migration, error: %v", err)
	}
	return n, nil
}

// AutoMigrate applies every pending migration
func AutoMigrate(db *gorm.DB, log *zap.Logger) error {
	if log != nil {
		log.Info("🔄 Applying embedded migrations using sql-migrate...")
	}

	n, err := Migrate(db, migrate.Up, 0)
	if err != nil {
		return err
	}

	if log != nil {
		log.Info("✅ Applied migrations", zap.Int("count", n))
	}
	return nil
}

// CloseDB closes the database connection
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
