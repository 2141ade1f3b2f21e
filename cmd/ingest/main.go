package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/norskhockey/hockeyhub/internal/app"
	"github.com/norskhockey/hockeyhub/internal/config"
	"github.com/norskhockey/hockeyhub/internal/observability"
	"github.com/norskhockey/hockeyhub/internal/platform/logging"
)

func main() {
	_ = godotenv.Load(".env")

	seasonsFlag := flag.String("seasons", "", "comma separated season ids, overrides SEASON_IDS")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if *seasonsFlag != "" {
		seasonIDs, err := parseSeasonIDs(*seasonsFlag)
		if err != nil {
			panic(err)
		}
		cfg.SeasonIDs = seasonIDs
	}

	logger := logging.NewJSON(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()
	logging.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init tracing", "error", err)
		os.Exit(1)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("tracing shutdown failed", "error", err)
		}
	}()

	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("build application", "error", err)
		os.Exit(1)
	}
	defer application.Close()

	summary, err := application.Pipeline.Run(ctx)
	if err != nil {
		logger.Error("ingestion run failed", "error", err)
		os.Exit(1)
	}

	logger.Info("ingestion run finished",
		"started_at", summary.StartedAt,
		"finished_at", summary.FinishedAt,
		"stages", len(summary.Stages),
	)
}

func parseSeasonIDs(raw string) ([]int64, error) {
	parts := strings.Split(raw, ",")
	out := make([]int64, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		id, err := strconv.ParseInt(item, 10, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}
