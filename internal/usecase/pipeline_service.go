package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/norskhockey/hockeyhub/internal/domain/match"
	"github.com/norskhockey/hockeyhub/internal/domain/organisation"
	"github.com/norskhockey/hockeyhub/internal/domain/playerstat"
	"github.com/norskhockey/hockeyhub/internal/domain/roster"
	"github.com/norskhockey/hockeyhub/internal/domain/standing"
	"github.com/norskhockey/hockeyhub/internal/domain/team"
	"github.com/norskhockey/hockeyhub/internal/domain/tournament"
	"github.com/norskhockey/hockeyhub/internal/platform/logging"
)

// SportsDataProvider is the upstream federation API surface the
// pipeline pulls from.
type SportsDataProvider interface {
	FetchSeasonTournaments(ctx context.Context, seasonID int64) ([]tournament.Tournament, error)
	FetchTournamentTeams(ctx context.Context, tournamentID int64) ([]team.Team, error)
	FetchTeamMembers(ctx context.Context, teamID int64) ([]roster.Member, error)
	FetchOrganisations(ctx context.Context, orgIDs []int64) ([]organisation.Organisation, error)
	FetchTournamentStandings(ctx context.Context, tournamentID int64) ([]standing.Standing, error)
	FetchTournamentMatches(ctx context.Context, tournamentID int64) ([]match.Match, error)
	FetchTournamentPlayers(ctx context.Context, tournamentID int64) ([]playerstat.PlayerStatistic, error)
}

// PersonImageScheduler receives roster members whose photos should be
// mirrored after their team persists. A nil scheduler disables images.
type PersonImageScheduler interface {
	Enqueue(ctx context.Context, member roster.Member) error
}

const (
	StageOrganisations    = "organisations"
	StageTournaments      = "tournaments"
	StageTeams            = "teams"
	StageTeamMembers      = "team_members"
	StageStandings        = "standings"
	StageMatches          = "matches"
	StagePlayerStatistics = "player_statistics"
)

const (
	orgBatchSize        = 20
	teamBatchSize       = 10
	memberBatchSize     = 20
	standingBatchSize   = 5
	matchBatchSize      = 5
	playerStatBatchSize = 5
)

type PipelineConfig struct {
	SeasonIDs         []int64
	ItemDelay         time.Duration
	BatchDelay        time.Duration
	RequestsPerSecond float64
}

type StageReport struct {
	Stage      string `json:"stage"`
	Success    int    `json:"success"`
	Empty      int    `json:"empty"`
	Errors     int    `json:"errors"`
	DurationMs int64  `json:"duration_ms"`
}

type RunSummary struct {
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
	Stages     []StageReport `json:"stages"`
}

// PipelineService drives a full refresh in foreign-key order. A failed
// item is logged and counted; it never aborts its stage, and a failed
// stage never aborts the run.
type PipelineService struct {
	provider       SportsDataProvider
	ingestion      *IngestionService
	tournamentRepo tournament.Repository
	teamRepo       team.Repository
	images         PersonImageScheduler
	limiter        *rate.Limiter
	cfg            PipelineConfig
	logger         *logging.Logger
	sleep          func(ctx context.Context, d time.Duration) error
}

func NewPipelineService(
	provider SportsDataProvider,
	ingestion *IngestionService,
	tournamentRepo tournament.Repository,
	teamRepo team.Repository,
	images PersonImageScheduler,
	cfg PipelineConfig,
	logger *logging.Logger,
) *PipelineService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.ItemDelay <= 0 {
		cfg.ItemDelay = 500 * time.Millisecond
	}
	if cfg.BatchDelay <= 0 {
		cfg.BatchDelay = 2 * time.Second
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 2
	}

	return &PipelineService{
		provider:       provider,
		ingestion:      ingestion,
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
		images:         images,
		limiter:        rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
		cfg:            cfg,
		logger:         logger,
		sleep:          sleepWithContext,
	}
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Run executes every stage for the configured seasons and reports
// per-stage counts. Only a cancelled context stops it early.
func (s *PipelineService) Run(ctx context.Context) (RunSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PipelineService.Run")
	defer span.End()

	if len(s.cfg.SeasonIDs) == 0 {
		return RunSummary{}, fmt.Errorf("%w: at least one season id is required", ErrInvalidInput)
	}

	summary := RunSummary{StartedAt: time.Now().UTC()}

	stages := []func(context.Context) (StageReport, error){
		s.runOrganisations,
		s.runTournaments,
		s.runTeams,
		s.runTeamMembers,
		s.runStandings,
		s.runMatches,
		s.runPlayerStatistics,
	}
	for _, stage := range stages {
		report, err := stage(ctx)
		summary.Stages = append(summary.Stages, report)
		if err != nil {
			if ctx.Err() != nil {
				summary.FinishedAt = time.Now().UTC()
				return summary, err
			}
			s.logger.ErrorContext(ctx, "stage failed to enumerate its targets",
				"stage", report.Stage,
				"error", err,
			)
		}
	}

	summary.FinishedAt = time.Now().UTC()
	s.logSummary(ctx, summary)
	return summary, nil
}

func (s *PipelineService) logSummary(ctx context.Context, summary RunSummary) {
	for _, report := range summary.Stages {
		s.logger.InfoContext(ctx, "stage summary",
			"stage", report.Stage,
			"success", report.Success,
			"empty", report.Empty,
			"errors", report.Errors,
			"duration_ms", report.DurationMs,
		)
	}
}

// runOrganisations refreshes organisations referenced by persisted
// teams. On a cold database the team table is empty so the stage does
// nothing until teams have been loaded once; the next run backfills.
func (s *PipelineService) runOrganisations(ctx context.Context) (StageReport, error) {
	report := StageReport{Stage: StageOrganisations}
	start := time.Now()
	defer func() { report.DurationMs = time.Since(start).Milliseconds() }()

	orgIDs, err := s.teamRepo.ListClubOrgIDs(ctx)
	if err != nil {
		return report, fmt.Errorf("list club org ids: %w", err)
	}
	if len(orgIDs) == 0 {
		s.logger.InfoContext(ctx, "no club organisations persisted yet, skipping stage")
		return report, nil
	}

	for batchIdx, batch := range chunkIDs(orgIDs, orgBatchSize) {
		if batchIdx > 0 {
			if err := s.sleep(ctx, s.cfg.BatchDelay); err != nil {
				return report, err
			}
		}
		if err := s.limiter.Wait(ctx); err != nil {
			return report, err
		}

		orgs, err := s.provider.FetchOrganisations(ctx, batch)
		if err != nil {
			report.Errors++
			s.logger.ErrorContext(ctx, "fetch organisations batch failed", "org_ids", batch, "error", err)
			continue
		}
		if len(orgs) == 0 {
			report.Empty++
			continue
		}
		if err := s.ingestion.MergeOrganisations(ctx, orgs); err != nil {
			report.Errors++
			s.logger.ErrorContext(ctx, "merge organisations batch failed", "org_ids", batch, "error", err)
			continue
		}
		report.Success++
	}
	return report, nil
}

func (s *PipelineService) runTournaments(ctx context.Context) (StageReport, error) {
	report := StageReport{Stage: StageTournaments}
	start := time.Now()
	defer func() { report.DurationMs = time.Since(start).Milliseconds() }()

	for _, seasonID := range s.cfg.SeasonIDs {
		if err := s.limiter.Wait(ctx); err != nil {
			return report, err
		}

		tournaments, err := s.provider.FetchSeasonTournaments(ctx, seasonID)
		if err != nil {
			report.Errors++
			s.logger.ErrorContext(ctx, "fetch season tournaments failed", "season_id", seasonID, "error", err)
			continue
		}
		if len(tournaments) == 0 {
			report.Empty++
			continue
		}

		for idx, t := range tournaments {
			if idx > 0 {
				if err := s.sleep(ctx, s.cfg.ItemDelay); err != nil {
					return report, err
				}
			}
			if err := s.ingestion.MergeTournament(ctx, t); err != nil {
				report.Errors++
				s.logger.ErrorContext(ctx, "merge tournament failed", "tournament_id", t.TournamentID, "error", err)
				continue
			}
			report.Success++
		}
	}
	return report, nil
}

func (s *PipelineService) runTeams(ctx context.Context) (StageReport, error) {
	return s.runPerTournament(ctx, StageTeams, teamBatchSize, func(ctx context.Context, tournamentID int64) (int, error) {
		teams, err := s.provider.FetchTournamentTeams(ctx, tournamentID)
		if err != nil {
			return 0, err
		}
		if len(teams) == 0 {
			return 0, nil
		}
		if err := s.ingestion.ReplaceTeams(ctx, tournamentID, teams); err != nil {
			return 0, err
		}
		return len(teams), nil
	})
}

func (s *PipelineService) runTeamMembers(ctx context.Context) (StageReport, error) {
	report := StageReport{Stage: StageTeamMembers}
	start := time.Now()
	defer func() { report.DurationMs = time.Since(start).Milliseconds() }()

	teamIDs, err := s.listSeasonTeamIDs(ctx)
	if err != nil {
		return report, err
	}

	for batchIdx, batch := range chunkIDs(teamIDs, memberBatchSize) {
		if batchIdx > 0 {
			if err := s.sleep(ctx, s.cfg.BatchDelay); err != nil {
				return report, err
			}
		}
		for idx, teamID := range batch {
			if idx > 0 {
				if err := s.sleep(ctx, s.cfg.ItemDelay); err != nil {
					return report, err
				}
			}
			if err := s.limiter.Wait(ctx); err != nil {
				return report, err
			}

			members, err := s.provider.FetchTeamMembers(ctx, teamID)
			if err != nil {
				report.Errors++
				s.logger.ErrorContext(ctx, "fetch team members failed", "team_id", teamID, "error", err)
				continue
			}
			if len(members) == 0 {
				report.Empty++
				continue
			}
			if err := s.ingestion.ReplaceTeamMembers(ctx, teamID, members); err != nil {
				report.Errors++
				s.logger.ErrorContext(ctx, "replace team members failed", "team_id", teamID, "error", err)
				continue
			}
			report.Success++
			s.scheduleImages(ctx, members)
		}
	}
	return report, nil
}

func (s *PipelineService) scheduleImages(ctx context.Context, members []roster.Member) {
	if s.images == nil {
		return
	}
	for _, member := range members {
		if member.ImageURL == nil && member.Image2URL == nil {
			continue
		}
		if err := s.images.Enqueue(ctx, member); err != nil {
			s.logger.WarnContext(ctx, "person image job not queued",
				"person_id", member.PersonID,
				"error", err,
			)
		}
	}
}

func (s *PipelineService) runStandings(ctx context.Context) (StageReport, error) {
	return s.runPerTournament(ctx, StageStandings, standingBatchSize, func(ctx context.Context, tournamentID int64) (int, error) {
		rows, err := s.provider.FetchTournamentStandings(ctx, tournamentID)
		if err != nil {
			return 0, err
		}
		if len(rows) == 0 {
			return 0, nil
		}
		if err := s.ingestion.ReplaceStandings(ctx, tournamentID, rows); err != nil {
			return 0, err
		}
		return len(rows), nil
	})
}

func (s *PipelineService) runMatches(ctx context.Context) (StageReport, error) {
	return s.runPerTournament(ctx, StageMatches, matchBatchSize, func(ctx context.Context, tournamentID int64) (int, error) {
		matches, err := s.provider.FetchTournamentMatches(ctx, tournamentID)
		if err != nil {
			return 0, err
		}
		if len(matches) == 0 {
			return 0, nil
		}
		if err := s.ingestion.ReplaceMatches(ctx, tournamentID, matches); err != nil {
			return 0, err
		}
		return len(matches), nil
	})
}

func (s *PipelineService) runPlayerStatistics(ctx context.Context) (StageReport, error) {
	return s.runPerTournament(ctx, StagePlayerStatistics, playerStatBatchSize, func(ctx context.Context, tournamentID int64) (int, error) {
		stats, err := s.provider.FetchTournamentPlayers(ctx, tournamentID)
		if err != nil {
			return 0, err
		}
		if len(stats) == 0 {
			return 0, nil
		}
		if err := s.ingestion.ReplacePlayerStatistics(ctx, tournamentID, stats); err != nil {
			return 0, err
		}
		return len(stats), nil
	})
}

// runPerTournament walks every persisted tournament of the configured
// seasons and applies one fetch-and-store step per tournament.
func (s *PipelineService) runPerTournament(
	ctx context.Context,
	stage string,
	batchSize int,
	step func(ctx context.Context, tournamentID int64) (int, error),
) (StageReport, error) {
	report := StageReport{Stage: stage}
	start := time.Now()
	defer func() { report.DurationMs = time.Since(start).Milliseconds() }()

	tournamentIDs, err := s.listSeasonTournamentIDs(ctx)
	if err != nil {
		return report, err
	}

	for batchIdx, batch := range chunkIDs(tournamentIDs, batchSize) {
		if batchIdx > 0 {
			if err := s.sleep(ctx, s.cfg.BatchDelay); err != nil {
				return report, err
			}
		}
		for idx, tournamentID := range batch {
			if idx > 0 {
				if err := s.sleep(ctx, s.cfg.ItemDelay); err != nil {
					return report, err
				}
			}
			if err := s.limiter.Wait(ctx); err != nil {
				return report, err
			}

			count, err := step(ctx, tournamentID)
			if err != nil {
				if ctx.Err() != nil {
					return report, ctx.Err()
				}
				report.Errors++
				s.logger.ErrorContext(ctx, "stage item failed",
					"stage", stage,
					"tournament_id", tournamentID,
					"error", err,
				)
				continue
			}
			if count == 0 {
				report.Empty++
				continue
			}
			report.Success++
		}
	}
	return report, nil
}

func (s *PipelineService) listSeasonTournamentIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	for _, seasonID := range s.cfg.SeasonIDs {
		tournaments, err := s.tournamentRepo.ListBySeason(ctx, seasonID)
		if err != nil {
			return nil, fmt.Errorf("list tournaments season_id=%d: %w", seasonID, err)
		}
		for _, t := range tournaments {
			ids = append(ids, t.TournamentID)
		}
	}
	return ids, nil
}

func (s *PipelineService) listSeasonTeamIDs(ctx context.Context) ([]int64, error) {
	tournamentIDs, err := s.listSeasonTournamentIDs(ctx)
	if err != nil {
		return nil, err
	}
	var ids []int64
	for _, tournamentID := range tournamentIDs {
		teams, err := s.teamRepo.ListByTournament(ctx, tournamentID)
		if err != nil {
			return nil, fmt.Errorf("list teams tournament_id=%d: %w", tournamentID, err)
		}
		for _, item := range teams {
			ids = append(ids, item.TeamID)
		}
	}
	return ids, nil
}

func chunkIDs(ids []int64, size int) [][]int64 {
	if size <= 0 || len(ids) == 0 {
		if len(ids) == 0 {
			return nil
		}
		return [][]int64{ids}
	}
	chunks := make([][]int64, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}
