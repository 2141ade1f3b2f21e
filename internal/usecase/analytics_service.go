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
)

// AnalyticsService serves the read side: filter catalogs, listings and
// per-tournament insight summaries over ingested data.
type AnalyticsService struct {
	orgRepo        organisation.Repository
	tournamentRepo tournament.Repository
	teamRepo       team.Repository
	rosterRepo     roster.Repository
	standingRepo   standing.Repository
	matchRepo      match.Repository
	playerStatRepo playerstat.Repository
}

func NewAnalyticsService(
	orgRepo organisation.Repository,
	tournamentRepo tournament.Repository,
	teamRepo team.Repository,
	rosterRepo roster.Repository,
	standingRepo standing.Repository,
	matchRepo match.Repository,
	playerStatRepo playerstat.Repository,
) *AnalyticsService {
	return &AnalyticsService{
		orgRepo:        orgRepo,
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
		rosterRepo:     rosterRepo,
		standingRepo:   standingRepo,
		matchRepo:      matchRepo,
		playerStatRepo: playerStatRepo,
	}
}

type TournamentOption struct {
	TournamentID int64   `json:"tournament_id"`
	Name         *string `json:"name,omitempty"`
	SeasonID     int64   `json:"season_id"`
	TeamCount    int64   `json:"team_count"`
}

type ClubOption struct {
	OrgID int64   `json:"org_id"`
	Name  *string `json:"name,omitempty"`
}

// FilterOptions is the catalog the UI builds its dropdowns from.
type FilterOptions struct {
	Tournaments []TournamentOption `json:"tournaments"`
	Positions   []string           `json:"positions"`
	Clubs       []ClubOption       `json:"clubs"`
}

func (s *AnalyticsService) Filters(ctx context.Context) (FilterOptions, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.Filters")
	defer span.End()

	tournaments, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return FilterOptions{}, fmt.Errorf("list tournaments: %w", err)
	}
	counts, err := s.teamRepo.CountByTournament(ctx)
	if err != nil {
		return FilterOptions{}, fmt.Errorf("count teams: %w", err)
	}
	positions, err := s.rosterRepo.ListPositions(ctx)
	if err != nil {
		return FilterOptions{}, fmt.Errorf("list positions: %w", err)
	}
	clubs, err := s.listClubs(ctx)
	if err != nil {
		return FilterOptions{}, err
	}

	options := FilterOptions{
		Tournaments: make([]TournamentOption, 0, len(tournaments)),
		Positions:   positions,
		Clubs:       clubs,
	}
	for _, t := range tournaments {
		options.Tournaments = append(options.Tournaments, TournamentOption{
			TournamentID: t.TournamentID,
			Name:         t.TournamentName,
			SeasonID:     t.SeasonID,
			TeamCount:    counts[t.TournamentID],
		})
	}
	return options, nil
}

// listClubs resolves the distinct club org ids referenced by teams to
// organisation names. Clubs not yet merged into the organisations
// table still appear, nameless.
func (s *AnalyticsService) listClubs(ctx context.Context) ([]ClubOption, error) {
	clubIDs, err := s.teamRepo.ListClubOrgIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list club org ids: %w", err)
	}
	if len(clubIDs) == 0 {
		return []ClubOption{}, nil
	}

	orgs, err := s.orgRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list organisations: %w", err)
	}
	names := make(map[int64]*string, len(orgs))
	for _, org := range orgs {
		names[org.OrgID] = org.OrgName
	}

	clubs := make([]ClubOption, 0, len(clubIDs))
	for _, id := range clubIDs {
		clubs = append(clubs, ClubOption{OrgID: id, Name: names[id]})
	}
	return clubs, nil
}

func (s *AnalyticsService) Teams(ctx context.Context, filter team.Filter) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.Teams")
	defer span.End()

	teams, err := s.teamRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

func (s *AnalyticsService) Players(ctx context.Context, filter roster.Filter) ([]roster.Member, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.Players")
	defer span.End()

	members, err := s.rosterRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return members, nil
}

func (s *AnalyticsService) Standings(ctx context.Context, tournamentID int64) ([]standing.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.Standings")
	defer span.End()

	if tournamentID <= 0 {
		return nil, fmt.Errorf("%w: tournament id must be positive", ErrInvalidInput)
	}
	rows, err := s.standingRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list standings tournament_id=%d: %w", tournamentID, err)
	}
	return rows, nil
}

func (s *AnalyticsService) Matches(ctx context.Context, tournamentID int64) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.Matches")
	defer span.End()

	if tournamentID <= 0 {
		return nil, fmt.Errorf("%w: tournament id must be positive", ErrInvalidInput)
	}
	matches, err := s.matchRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list matches tournament_id=%d: %w", tournamentID, err)
	}
	return matches, nil
}

func (s *AnalyticsService) PlayerStatistics(ctx context.Context, tournamentID int64) ([]playerstat.PlayerStatistic, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.PlayerStatistics")
	defer span.End()

	if tournamentID <= 0 {
		return nil, fmt.Errorf("%w: tournament id must be positive", ErrInvalidInput)
	}
	stats, err := s.playerStatRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list player statistics tournament_id=%d: %w", tournamentID, err)
	}
	return stats, nil
}

// Insights is the per-tournament summary card: standings leader, top
// scorers and basic volume counts.
type Insights struct {
	Tournament tournament.Tournament        `json:"tournament"`
	TeamCount  int                          `json:"team_count"`
	MatchCount int                          `json:"match_count"`
	Leader     *standing.Standing           `json:"leader,omitempty"`
	TopScorers []playerstat.PlayerStatistic `json:"top_scorers"`
}

const topScorerLimit = 5

func (s *AnalyticsService) InsightsSummary(ctx context.Context, tournamentID int64) (Insights, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.InsightsSummary")
	defer span.End()

	if tournamentID <= 0 {
		return Insights{}, fmt.Errorf("%w: tournament id must be positive", ErrInvalidInput)
	}

	t, found, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return Insights{}, fmt.Errorf("get tournament id=%d: %w", tournamentID, err)
	}
	if !found {
		return Insights{}, fmt.Errorf("%w: tournament id=%d", ErrNotFound, tournamentID)
	}

	teams, err := s.teamRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return Insights{}, fmt.Errorf("list teams tournament_id=%d: %w", tournamentID, err)
	}
	matches, err := s.matchRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return Insights{}, fmt.Errorf("list matches tournament_id=%d: %w", tournamentID, err)
	}
	standings, err := s.standingRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return Insights{}, fmt.Errorf("list standings tournament_id=%d: %w", tournamentID, err)
	}
	stats, err := s.playerStatRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return Insights{}, fmt.Errorf("list player statistics tournament_id=%d: %w", tournamentID, err)
	}

	insights := Insights{
		Tournament: t,
		TeamCount:  len(teams),
		MatchCount: len(matches),
		TopScorers: stats,
	}
	if len(standings) > 0 {
		insights.Leader = &standings[0]
	}
	if len(insights.TopScorers) > topScorerLimit {
		insights.TopScorers = insights.TopScorers[:topScorerLimit]
	}
	return insights, nil
}
