package usecase

import (
	"context"
	"fmt"

	"github.com/norskhockey/hockeyhub/internal/domain/match"
	"github.com/norskhockey/hockeyhub/internal/domain/organisation"
	"github.com/norskhockey/hockeyhub/internal/domain/playerstat"
	"github.com/norskhockey/hockeyhub/internal/domain/roster"
	"github.com/norskhockey/hockeyhub/internal/domain/standing"
	"github.com/norskhockey/hockeyhub/internal/domain/team"
	"github.com/norskhockey/hockeyhub/internal/domain/tournament"
	"github.com/norskhockey/hockeyhub/internal/platform/logging"
)

// IngestionService validates fetched entities and hands them to the
// persistence layer. Merge-by-key entities (organisations, tournaments)
// are upserted; everything else is replaced per parent scope.
type IngestionService struct {
	orgRepo        organisation.Repository
	tournamentRepo tournament.Repository
	teamRepo       team.Repository
	rosterRepo     roster.Repository
	standingRepo   standing.Repository
	matchRepo      match.Repository
	playerStatRepo playerstat.Repository
	logger         *logging.Logger
}

func NewIngestionService(
	orgRepo organisation.Repository,
	tournamentRepo tournament.Repository,
	teamRepo team.Repository,
	rosterRepo roster.Repository,
	standingRepo standing.Repository,
	matchRepo match.Repository,
	playerStatRepo playerstat.Repository,
	logger *logging.Logger,
) *IngestionService {
	if logger == nil {
		logger = logging.Default()
	}

	return &IngestionService{
		orgRepo:        orgRepo,
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
		rosterRepo:     rosterRepo,
		standingRepo:   standingRepo,
		matchRepo:      matchRepo,
		playerStatRepo: playerStatRepo,
		logger:         logger,
	}
}

func (s *IngestionService) MergeOrganisations(ctx context.Context, orgs []organisation.Organisation) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.MergeOrganisations")
	defer span.End()

	if len(orgs) == 0 {
		return nil
	}
	for _, org := range orgs {
		if err := org.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	if err := s.orgRepo.Merge(ctx, orgs); err != nil {
		return fmt.Errorf("merge organisations: %w", err)
	}
	return nil
}

func (s *IngestionService) MergeTournament(ctx context.Context, t tournament.Tournament) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.MergeTournament")
	defer span.End()

	if err := t.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.tournamentRepo.Merge(ctx, []tournament.Tournament{t}); err != nil {
		return fmt.Errorf("merge tournament id=%d: %w", t.TournamentID, err)
	}
	return nil
}

// ReplaceTeams swaps the full team list of one tournament. An empty
// slice clears the tournament's teams.
func (s *IngestionService) ReplaceTeams(ctx context.Context, tournamentID int64, teams []team.Team) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.ReplaceTeams")
	defer span.End()

	if tournamentID <= 0 {
		return fmt.Errorf("%w: tournament id must be positive", ErrInvalidInput)
	}
	for idx := range teams {
		teams[idx].TournamentID = tournamentID
		if err := teams[idx].Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	if err := s.teamRepo.ReplaceForTournament(ctx, tournamentID, teams); err != nil {
		return fmt.Errorf("replace teams tournament_id=%d: %w", tournamentID, err)
	}
	return nil
}

// ReplaceTeamMembers swaps a team's roster. When one payload carries the
// same person twice only the first row is kept; duplicates are logged.
func (s *IngestionService) ReplaceTeamMembers(ctx context.Context, teamID int64, members []roster.Member) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.ReplaceTeamMembers")
	defer span.End()

	if teamID <= 0 {
		return fmt.Errorf("%w: team id must be positive", ErrInvalidInput)
	}

	seen := make(map[int64]struct{}, len(members))
	deduped := make([]roster.Member, 0, len(members))
	for idx := range members {
		members[idx].TeamID = teamID
		if err := members[idx].Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if _, ok := seen[members[idx].PersonID]; ok {
			s.logger.WarnContext(ctx, "duplicate person in team payload, keeping first occurrence",
				"team_id", teamID,
				"person_id", members[idx].PersonID,
			)
			continue
		}
		seen[members[idx].PersonID] = struct{}{}
		deduped = append(deduped, members[idx])
	}

	if err := s.rosterRepo.ReplaceForTeam(ctx, teamID, deduped); err != nil {
		return fmt.Errorf("replace team members team_id=%d: %w", teamID, err)
	}
	return nil
}

func (s *IngestionService) ReplaceStandings(ctx context.Context, tournamentID int64, rows []standing.Standing) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.ReplaceStandings")
	defer span.End()

	if tournamentID <= 0 {
		return fmt.Errorf("%w: tournament id must be positive", ErrInvalidInput)
	}
	for _, row := range rows {
		if row.TeamID <= 0 {
			return fmt.Errorf("%w: standing team id must be positive", ErrInvalidInput)
		}
	}

	if err := s.standingRepo.ReplaceForTournament(ctx, tournamentID, rows); err != nil {
		return fmt.Errorf("replace standings tournament_id=%d: %w", tournamentID, err)
	}
	return nil
}

func (s *IngestionService) ReplaceMatches(ctx context.Context, tournamentID int64, matches []match.Match) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.ReplaceMatches")
	defer span.End()

	if tournamentID <= 0 {
		return fmt.Errorf("%w: tournament id must be positive", ErrInvalidInput)
	}
	for idx := range matches {
		matches[idx].TournamentID = tournamentID
		if matches[idx].MatchID <= 0 {
			return fmt.Errorf("%w: match id must be positive", ErrInvalidInput)
		}
	}

	if err := s.matchRepo.ReplaceForTournament(ctx, tournamentID, matches); err != nil {
		return fmt.Errorf("replace matches tournament_id=%d: %w", tournamentID, err)
	}
	return nil
}

func (s *IngestionService) ReplacePlayerStatistics(ctx context.Context, tournamentID int64, stats []playerstat.PlayerStatistic) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.ReplacePlayerStatistics")
	defer span.End()

	if tournamentID <= 0 {
		return fmt.Errorf("%w: tournament id must be positive", ErrInvalidInput)
	}

	seen := make(map[int64]struct{}, len(stats))
	deduped := make([]playerstat.PlayerStatistic, 0, len(stats))
	for idx := range stats {
		stats[idx].TournamentID = tournamentID
		if stats[idx].PersonID <= 0 {
			return fmt.Errorf("%w: player person id must be positive", ErrInvalidInput)
		}
		if _, ok := seen[stats[idx].PersonID]; ok {
			s.logger.WarnContext(ctx, "duplicate player in statistics payload, keeping first occurrence",
				"tournament_id", tournamentID,
				"person_id", stats[idx].PersonID,
			)
			continue
		}
		seen[stats[idx].PersonID] = struct{}{}
		deduped = append(deduped, stats[idx])
	}

	if err := s.playerStatRepo.ReplaceForTournament(ctx, tournamentID, deduped); err != nil {
		return fmt.Errorf("replace player statistics tournament_id=%d: %w", tournamentID, err)
	}
	return nil
}
