package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/solidtrack/timelock-service/internal/config"
	"github.com/solidtrack/timelock-service/internal/delivery/httpapi"
	"github.com/solidtrack/timelock-service/internal/domain"
	"github.com/solidtrack/timelock-service/internal/infrastructure/kafka"
	"github.com/solidtrack/timelock-service/internal/infrastructure/metrics"
	"github.com/solidtrack/timelock-service/internal/infrastructure/migrate"
	"github.com/solidtrack/timelock-service/internal/infrastructure/postgres"
	"github.com/solidtrack/timelock-service/internal/infrastructure/postgres/repository"
	"github.com/solidtrack/timelock-service/internal/usecase/lock"
	"github.com/solidtrack/timelock-service/internal/usecase/policy"
	"github.com/solidtrack/timelock-service/internal/usecase/timeentry"
	"github.com/solidtrack/timelock-service/internal/usecase/unlockrequest"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	setupLogger(cfg.LogConfig)

	// Init database
	db := postgres.MustInitDB(cfg)
	if cfg.TimelockDB.MigrationsPath != "" {
		if err := migrate.Run(db, cfg.TimelockDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Init repositories
	orgRepo := repository.NewDefaultOrganizationRepository(db)
	memberRepo := repository.NewDefaultMemberRepository(db)
	projectRepo := repository.NewDefaultProjectRepository(db)
	entryRepo := repository.NewDefaultTimeEntryRepository(db)
	unlockRepo := repository.NewDefaultUnlockRequestRepository(db)
	auditRepo, err := repository.NewDefaultAuditRepository(db)
	if err != nil {
		log.Fatalf("failed to init audit repository: %v", err)
	}

	// Init kafka publisher. The variable stays a nil interface when
	// kafka is disabled so the usecase can skip publishing.
	var publisher domain.EventPublisher
	if cfg.KafkaService.Enabled {
		brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
		kafkaPublisher := kafka.NewUnlockEventPublisher(brokers, cfg.KafkaService.Topic)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	// Init lock gate
	lockMetrics := metrics.NewLockMetrics()
	evaluator := lock.NewEvaluator()
	gate := lock.NewGate(evaluator, unlockRepo, projectRepo, lockMetrics)
	resolver := policy.NewResolver(projectRepo)

	// Init usecases
	unlockUsecase := unlockrequest.NewDefaultUsecase(
		unlockRepo,
		projectRepo,
		memberRepo,
		resolver,
		publisher,
		lockMetrics,
	)
	entryUsecase := timeentry.NewDefaultUsecase(entryRepo, projectRepo, gate, auditRepo)

	// Init HTTP delivery
	middleware := httpapi.NewMiddleware(cfg.Auth.JWTSecret, orgRepo, memberRepo)
	unlockHandler := httpapi.NewUnlockRequestHandler(unlockUsecase)
	entryHandler := httpapi.NewTimeEntryHandler(entryUsecase)
	router := httpapi.NewRouter(middleware, unlockHandler, entryHandler)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	slog.Info("starting timelock service", "addr", addr, "env", cfg.Env)
	if err := router.Run(addr); err != nil {
		log.Fatalf("failed to run HTTP server: %v", err)
	}
}

func setupLogger(cfg config.LogConfig) {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
