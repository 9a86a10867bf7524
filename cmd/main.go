package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"gitlab.com/golf-2025.net/internal/adapter/crypto"
	"gitlab.com/golf-2025.net/internal/adapter/judge"
	"gitlab.com/golf-2025.net/internal/adapter/metrics"
	"gitlab.com/golf-2025.net/internal/adapter/postgres/challengerepository"
	"gitlab.com/golf-2025.net/internal/adapter/postgres/languagerepository"
	"gitlab.com/golf-2025.net/internal/adapter/postgres/solutionrepository"
	"gitlab.com/golf-2025.net/internal/adapter/redis/leaderboardcache"
	"gitlab.com/golf-2025.net/internal/adapter/redis/verdictcache"
	"gitlab.com/golf-2025.net/internal/config"
	"gitlab.com/golf-2025.net/internal/core/ports/secondary"
	"gitlab.com/golf-2025.net/internal/core/services/decision"
	"gitlab.com/golf-2025.net/internal/core/services/leaderboard"
	"gitlab.com/golf-2025.net/internal/core/services/revalidate"
	"gitlab.com/golf-2025.net/internal/core/services/scoring"
	"gitlab.com/golf-2025.net/internal/core/services/submission"
	"gitlab.com/golf-2025.net/internal/domain"
	logger2 "gitlab.com/golf-2025.net/internal/global/logger"
	http2 "gitlab.com/golf-2025.net/internal/http"
	"gitlab.com/golf-2025.net/internal/schedulerengine"
)

func main() {
	InitReader()
	// Set up graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	logger2.Info("Starting golf service")

	logger := logger2.Logger
	defer logger.Sync()

	sysCfg := config.NewSystemConfig()

	db, err := setupDatabase(ctx, sysCfg.PostgresConfig)
	if err != nil {
		logger2.Fatal("Failed to set up database", "error", err)
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     sysCfg.RedisConfig.Url,
		Password: sysCfg.RedisConfig.Password,
		DB:       sysCfg.RedisConfig.DB,
	})
	defer redisClient.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	submissionMetrics := metrics.NewPrometheus(registry)

	// SECONDARY PORTS
	schema := sysCfg.PostgresConfig.Schema
	solutionRepo := solutionrepository.New(db, logger, schema)
	challengeRepo := challengerepository.New(db, logger, schema)
	languageRepo := languagerepository.New(db, logger, schema)
	seedLanguages(ctx, languageRepo, sysCfg.SeededLanguages)

	judgeClient := judge.NewClient(sysCfg.JudgeConfig.Url, sysCfg.JudgeConfig.Timeout, logger)
	var submissionJudge secondary.Judge = judgeClient
	if sysCfg.JudgeConfig.VerdictTTL > 0 {
		submissionJudge = judge.NewCachedJudge(
			judgeClient,
			verdictcache.NewVerdictCache(redisClient, logger, sysCfg.JudgeConfig.VerdictTTL),
			logger,
		)
	}

	var boardCache secondary.LeaderboardCache
	if sysCfg.LeaderboardCfg.CacheTTL > 0 {
		boardCache = leaderboardcache.NewLeaderboardCache(redisClient, logger, sysCfg.LeaderboardCfg.CacheTTL)
	}

	//primary ports
	jwtProvider := crypto.NewJWTService(sysCfg.JwtConfig)

	//services
	leaderboardSvc := leaderboard.NewLeaderboardService(solutionRepo, boardCache, logger)
	submissionSvc := submission.NewSubmissionService(
		solutionRepo,
		challengeRepo,
		languageRepo,
		submissionJudge,
		decision.NewEngine(scoring.ByteLength{}),
		leaderboardSvc,
		submissionMetrics,
		logger,
	)
	// Revalidation always asks the judge itself
	revalidateSvc := revalidate.NewRevalidateService(
		solutionRepo,
		challengeRepo,
		languageRepo,
		judgeClient,
		leaderboardSvc,
		submissionMetrics,
		logger,
		sysCfg.RevalidateCfg.MaxAge,
		sysCfg.RevalidateCfg.RetryAfter,
		sysCfg.RevalidateCfg.Parallelism,
	)
	serviceProvider := http2.NewServiceProvider(submissionSvc, jwtProvider)

	//server
	httpServer := http2.NewServer(sysCfg.HTTPPort, "golf", *serviceProvider, registry, logger)
	if err := httpServer.Init(); err != nil {
		logger2.Fatal("Failed to init http server", "error", err)
	}
	httpServer.Start(ctx)

	schedulerSvc := schedulerengine.NewSchedulerEngine(sysCfg.RevalidateCfg, revalidateSvc, logger)
	if !sysCfg.DebugMode {
		schedulerSvc.StartRevalidationEngine(ctx)
	}

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}
	schedulerSvc.Wait()

	logger.Info("successfully shutdown server")
}

// setupDatabase sets up the PostgreSQL connection
func setupDatabase(ctx context.Context, cfg *config.PostgresConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.Url)
	if err != nil {
		return nil, err
	}

	// Test the connection
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// seedLanguages registers the configured languages; a failed seed is not fatal
func seedLanguages(ctx context.Context, repo *languagerepository.LanguageRepository, seeds []config.LanguageSeed) {
	for _, seed := range seeds {
		err := repo.Save(ctx, &domain.Language{
			Name:          seed.Name,
			LatestVersion: seed.Version,
			Active:        true,
		})
		if err != nil {
			logger2.Warn("Failed to seed language", "name", seed.Name, "error", err)
		}
	}
}

func InitReader() {
	environment := ""
	if len(os.Args) < 2 {
		log.Fatalf("Env not supplied in argument")
	} else {
		environment = os.Args[1]
	}

	err := godotenv.Load(environment + ".env")
	if err != nil {
		log.Fatalf("Error loading %s.env file", environment)
	}
}
