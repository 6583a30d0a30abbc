package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/internal/adapter/handler"
	"github.com/johnquangdev/meeting-summarizer/internal/adapter/repository"
	mongorepo "github.com/johnquangdev/meeting-summarizer/internal/adapter/repository/mongo"
	"github.com/johnquangdev/meeting-summarizer/internal/domain/repositories"
	"github.com/johnquangdev/meeting-summarizer/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-summarizer/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-summarizer/internal/infrastructure/notify"
	"github.com/johnquangdev/meeting-summarizer/internal/infrastructure/storage"
	aiuse "github.com/johnquangdev/meeting-summarizer/internal/usecase/ai"
	meetingUsecase "github.com/johnquangdev/meeting-summarizer/internal/usecase/meeting"
	taskUsecase "github.com/johnquangdev/meeting-summarizer/internal/usecase/task"
	pkgai "github.com/johnquangdev/meeting-summarizer/pkg/ai"
	"github.com/johnquangdev/meeting-summarizer/pkg/config"
	"github.com/johnquangdev/meeting-summarizer/pkg/logger"
	pkgvalidator "github.com/johnquangdev/meeting-summarizer/pkg/validator"
)

// @title           Meeting Summarizer API
// @version         1.0
// @description     Summarizes meeting transcripts and tracks the action items found in them
// @BasePath  /

// stores is the persistence wiring picked at startup
type stores struct {
	driver   string
	meetings repositories.MeetingRepository
	tasks    repositories.TaskRepository
	close    func()
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	zlog.Info("🔧 Initializing dependencies...")

	st := openStores(ctx, cfg, zlog)
	defer st.close()

	// Redis is optional: it backs reminder de-duplication and publishing
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		zlog.Info("📦 Connecting to Redis...", zap.String("addr", cfg.GetRedisAddr()))
		redisClient, err = cache.NewRedisClient(ctx, cfg)
		if err != nil {
			zlog.Warn("⚠️ Redis unavailable, reminders use in-memory de-duplication", zap.Error(err))
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	var archive meetingUsecase.TranscriptArchiver
	if cfg.Storage.Enabled {
		zlog.Info("📦 Connecting to object storage...", zap.String("endpoint", cfg.Storage.Endpoint))
		minioClient, err := storage.NewMinIOClient(ctx, &cfg.Storage)
		if err != nil {
			zlog.Warn("⚠️ Object storage unavailable, transcripts will not be archived", zap.Error(err))
		} else {
			archive = minioClient
		}
	}

	zlog.Info("🤖 Initializing AI components...")
	generator, err := pkgai.NewGenerator(ctx, cfg.AI)
	if err != nil {
		zlog.Warn("⚠️ Text generator unavailable, using local summarization", zap.Error(err))
		generator = pkgai.Disabled{}
	}
	if pkgai.IsDisabled(generator) {
		zlog.Warn("⚠️ No AI API key configured, using local summarization only")
	} else {
		zlog.Info("✅ Text generator ready", zap.String("provider", generator.Name()))
	}

	pipeline := aiuse.NewPipeline(generator, zlog,
		aiuse.WithRequestTimeout(cfg.AI.RequestTimeout),
		aiuse.WithJSONRepair(cfg.AI.RepairJSON),
	)

	meetingService := meetingUsecase.NewMeetingService(pipeline, st.meetings, st.tasks, archive, zlog)
	taskService := taskUsecase.NewTaskService(st.tasks, zlog)

	var reminder *taskUsecase.Reminder
	if cfg.Reminder.Enabled && st.driver != config.DriverNone {
		var dedupe taskUsecase.DedupeStore
		var notifier taskUsecase.Notifier
		if redisClient != nil {
			dedupe = cache.NewRedisStore(redisClient)
			notifier = notify.NewRedisPublisher(redisClient, cfg.Reminder.Channel)
		} else {
			mem := cache.NewMemoryStore()
			defer mem.Close()
			dedupe = mem
			notifier = notify.NewLogNotifier(zlog)
		}
		reminder = taskUsecase.NewReminder(st.tasks, dedupe, notifier, cfg.Reminder.Interval, zlog)
		if err := reminder.StartReminders(ctx); err != nil {
			zlog.Warn("⚠️ Failed to start reminders", zap.Error(err))
			reminder = nil
		}
	}

	// Initialize Echo instance
	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				zlog.Error("http.request", append(fields, zap.Error(v.Error))...)
				return nil
			}
			zlog.Info("http.request", fields...)
			return nil
		},
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))
	e.Use(middleware.BodyLimit("2M"))

	router := handler.NewRouter(cfg,
		handler.HealthInfo{Store: st.driver, Generator: generator.Name()},
		handler.NewMeetingHandler(meetingService, zlog),
		handler.NewTaskHandler(taskService, zlog),
	)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		zlog.Info("🚀 Starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
			zap.String("store", st.driver),
		)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zlog.Info("🛑 Shutting down server...")

	if reminder != nil {
		if err := reminder.StopReminders(); err != nil {
			zlog.Warn("⚠️ Failed to stop reminders", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		zlog.Error("❌ Server forced to shutdown", zap.Error(err))
		return
	}

	zlog.Info("✅ Server stopped gracefully")
}

// openStores connects the configured database. The server keeps running
// without one: every store call then fails with entities.ErrStoreUnavailable.
func openStores(ctx context.Context, cfg *config.Config, zlog *zap.Logger) *stores {
	unavailable := &stores{
		driver:   config.DriverNone,
		meetings: repository.UnavailableMeetings{},
		tasks:    repository.UnavailableTasks{},
		close:    func() {},
	}

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		zlog.Info("📦 Connecting to PostgreSQL...", zap.String("host", cfg.Database.Host))
		db, err := database.NewPostgresDB(ctx, cfg, zlog)
		if err != nil {
			zlog.Warn("⚠️ PostgreSQL unavailable, running without persistence", zap.Error(err))
			return unavailable
		}

		if cfg.Database.AutoMigrate {
			if cfg.IsProduction() {
				zlog.Fatal("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or run `summarize migrate up`.")
			}
			if err := database.AutoMigrate(db, zlog); err != nil {
				zlog.Fatal("Failed to run migrations", zap.Error(err))
			}
		}

		return &stores{
			driver:   config.DriverPostgres,
			meetings: repository.NewMeetingRepository(db),
			tasks:    repository.NewTaskRepository(db),
			close: func() {
				if err := database.CloseDB(db); err != nil {
					zlog.Warn("⚠️ Failed to close database", zap.Error(err))
				}
			},
		}

	case config.DriverMongo:
		zlog.Info("📦 Connecting to MongoDB...", zap.String("database", cfg.Database.MongoDatabase))
		db, err := database.NewMongoDB(ctx, cfg, zlog)
		if err != nil {
			zlog.Warn("⚠️ MongoDB unavailable, running without persistence", zap.Error(err))
			return unavailable
		}
		return &stores{
			driver:   config.DriverMongo,
			meetings: mongorepo.NewMeetingRepository(db, zlog),
			tasks:    mongorepo.NewTaskRepository(db),
			close: func() {
				closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := database.CloseMongo(closeCtx, db); err != nil {
					zlog.Warn("⚠️ Failed to close MongoDB", zap.Error(err))
				}
			},
		}

	default:
		zlog.Warn("⚠️ DB_DRIVER=none, running without persistence")
		return unavailable
	}
}
