package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.12.0"

	"github.com/norskhockey/hockeyhub/external/nif"
	"github.com/norskhockey/hockeyhub/external/texttosql"
	"github.com/norskhockey/hockeyhub/internal/config"
	"github.com/norskhockey/hockeyhub/internal/infrastructure/blob"
	"github.com/norskhockey/hockeyhub/internal/infrastructure/repository/postgres"
	"github.com/norskhockey/hockeyhub/internal/interfaces/httpapi"
	"github.com/norskhockey/hockeyhub/internal/platform/logging"
	"github.com/norskhockey/hockeyhub/internal/platform/retry"
	"github.com/norskhockey/hockeyhub/internal/usecase"
)

// Application holds the wired object graph shared by the api and
// ingest binaries.
type Application struct {
	Config config.Config
	Logger *logging.Logger
	DB     *sqlx.DB

	Ingestion *usecase.IngestionService
	Pipeline  *usecase.PipelineService
	Analytics *usecase.AnalyticsService
	Images    *usecase.ImageService
	NLQ       *usecase.NLQService

	handler *httpapi.Handler
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Application, error) {
	if logger == nil {
		logger = logging.Default()
	}

	db, err := otelsqlx.Open("postgres", cfg.DBURL,
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)

	orgRepo := postgres.NewOrganisationRepository(db)
	tournamentRepo := postgres.NewTournamentRepository(db)
	teamRepo := postgres.NewTeamRepository(db)
	rosterRepo := postgres.NewRosterRepository(db)
	standingRepo := postgres.NewStandingRepository(db)
	matchRepo := postgres.NewMatchRepository(db)
	playerStatRepo := postgres.NewPlayerStatsRepository(db, logger)
	personImageRepo := postgres.NewPersonImageRepository(db)

	ingestion := usecase.NewIngestionService(
		orgRepo, tournamentRepo, teamRepo, rosterRepo,
		standingRepo, matchRepo, playerStatRepo, logger,
	)
	analytics := usecase.NewAnalyticsService(
		orgRepo, tournamentRepo, teamRepo, rosterRepo,
		standingRepo, matchRepo, playerStatRepo,
	)

	store, err := blob.NewStore(ctx, blob.StoreConfig{
		Endpoint:  cfg.MinioEndpoint,
		AccessKey: cfg.MinioAccessKey,
		SecretKey: cfg.MinioSecretKey,
		Bucket:    cfg.MinioBucket,
		Region:    cfg.MinioRegion,
		UseSSL:    cfg.MinioUseSSL,
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("build blob store: %w", err)
	}
	if err := store.EnsureBucket(ctx); err != nil {
		logger.WarnContext(ctx, "image bucket not reachable, image jobs will fail until it is", "error", err)
	}

	images, err := usecase.NewImageService(store, personImageRepo, nil, usecase.ImageServiceConfig{
		Workers:    cfg.ImageWorkers,
		QueueSize:  cfg.ImageQueueSize,
		PresignTTL: cfg.ImagePresignTTL,
	}, logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("build image service: %w", err)
	}
	images.Start(ctx)

	provider := nif.NewClient(nif.ClientConfig{
		BaseURL: cfg.SportsAPIBaseURL,
		Timeout: cfg.SportsAPITimeout,
		Retry:   retry.Policy{MaxAttempts: cfg.SportsAPIMaxRetries},
		Logger:  logger,
	})

	pipeline := usecase.NewPipelineService(provider, ingestion, tournamentRepo, teamRepo, images, usecase.PipelineConfig{
		SeasonIDs:         cfg.SeasonIDs,
		ItemDelay:         cfg.PipelineItemDelay,
		BatchDelay:        cfg.PipelineBatchDelay,
		RequestsPerSecond: cfg.PipelineRateLimit,
	}, logger)

	var oracle usecase.SQLOracle
	if cfg.TextToSQLEnabled {
		client, err := texttosql.NewClient(texttosql.ClientConfig{
			BaseURL: cfg.TextToSQLBaseURL,
			APIKey:  cfg.TextToSQLAPIKey,
			Model:   cfg.TextToSQLModel,
			Timeout: cfg.TextToSQLTimeout,
			Logger:  logger,
		})
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("build text-to-sql client: %w", err)
		}
		oracle = client
	}
	nlq := usecase.NewNLQService(oracle, postgres.NewQueryExecutor(db), logger)
	handler := httpapi.NewHandler(analytics, images, nlq, pipeline, logger)

	return &Application{
		Config:    cfg,
		Logger:    logger,
		DB:        db,
		Ingestion: ingestion,
		Pipeline:  pipeline,
		Analytics: analytics,
		Images:    images,
		NLQ:       nlq,
		handler:   handler,
	}, nil
}

// Close stops detached ingestion runs first, then drains background
// workers and releases the database pool they depend on.
func (a *Application) Close() {
	a.handler.CloseJobs()
	a.Images.Close()
	_ = a.DB.Close()
}

func (a *Application) HTTPServer() (*http.Server, error) {
	router := httpapi.NewRouter(a.handler, a.Logger, a.Config.CORSAllowedOrigins, a.Config.AdminToken)

	server := &http.Server{
		Addr:         a.Config.HTTPAddr,
		Handler:      router,
		ReadTimeout:  a.Config.ReadTimeout,
		WriteTimeout: a.Config.WriteTimeout,
	}
	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}
	return server, nil
}
