package usecase

import (
	"context"

	"github.com/norskhockey/hockeyhub/internal/domain/match"
	"github.com/norskhockey/hockeyhub/internal/domain/organisation"
	"github.com/norskhockey/hockeyhub/internal/domain/playerstat"
	"github.com/norskhockey/hockeyhub/internal/domain/roster"
	"github.com/norskhockey/hockeyhub/internal/domain/standing"
	"github.com/norskhockey/hockeyhub/internal/domain/team"
	"github.com/norskhockey/hockeyhub/internal/domain/tournament"
)

type stubOrganisationRepository struct {
	merged [][]organisation.Organisation
	orgs   []organisation.Organisation
	err    error
}

func (s *stubOrganisationRepository) Merge(_ context.Context, orgs []organisation.Organisation) error {
	if s.err != nil {
		return s.err
	}
	s.merged = append(s.merged, orgs)
	return nil
}

func (s *stubOrganisationRepository) GetByID(_ context.Context, orgID int64) (organisation.Organisation, bool, error) {
	for _, org := range s.orgs {
		if org.OrgID == orgID {
			return org, true, nil
		}
	}
	return organisation.Organisation{}, false, nil
}

func (s *stubOrganisationRepository) List(_ context.Context) ([]organisation.Organisation, error) {
	return s.orgs, nil
}

type stubTournamentRepository struct {
	merged   []tournament.Tournament
	bySeason map[int64][]tournament.Tournament
	err      error
}

func (s *stubTournamentRepository) Merge(_ context.Context, tournaments []tournament.Tournament) error {
	if s.err != nil {
		return s.err
	}
	s.merged = append(s.merged, tournaments...)
	return nil
}

func (s *stubTournamentRepository) GetByID(_ context.Context, tournamentID int64) (tournament.Tournament, bool, error) {
	for _, rows := range s.bySeason {
		for _, t := range rows {
			if t.TournamentID == tournamentID {
				return t, true, nil
			}
		}
	}
	return tournament.Tournament{}, false, nil
}

func (s *stubTournamentRepository) ListBySeason(_ context.Context, seasonID int64) ([]tournament.Tournament, error) {
	return s.bySeason[seasonID], nil
}

func (s *stubTournamentRepository) List(_ context.Context) ([]tournament.Tournament, error) {
	var out []tournament.Tournament
	for _, rows := range s.bySeason {
		out = append(out, rows...)
	}
	return out, nil
}

type stubTeamRepository struct {
	replaced     map[int64][]team.Team
	byTournament map[int64][]team.Team
	clubOrgIDs   []int64
	counts       map[int64]int64
	err          error
}

func (s *stubTeamRepository) ReplaceForTournament(_ context.Context, tournamentID int64, teams []team.Team) error {
	if s.err != nil {
		return s.err
	}
	if s.replaced == nil {
		s.replaced = map[int64][]team.Team{}
	}
	s.replaced[tournamentID] = teams
	return nil
}

func (s *stubTeamRepository) ListByTournament(_ context.Context, tournamentID int64) ([]team.Team, error) {
	return s.byTournament[tournamentID], nil
}

func (s *stubTeamRepository) List(_ context.Context, _ team.Filter) ([]team.Team, error) {
	var out []team.Team
	for _, rows := range s.byTournament {
		out = append(out, rows...)
	}
	return out, nil
}

func (s *stubTeamRepository) ListClubOrgIDs(_ context.Context) ([]int64, error) {
	return s.clubOrgIDs, nil
}

func (s *stubTeamRepository) CountByTournament(_ context.Context) (map[int64]int64, error) {
	return s.counts, nil
}

type stubRosterRepository struct {
	replaced map[int64][]roster.Member
	err      error
}

func (s *stubRosterRepository) ReplaceForTeam(_ context.Context, teamID int64, members []roster.Member) error {
	if s.err != nil {
		return s.err
	}
	if s.replaced == nil {
		s.replaced = map[int64][]roster.Member{}
	}
	s.replaced[teamID] = members
	return nil
}

func (s *stubRosterRepository) ListByTeam(_ context.Context, teamID int64) ([]roster.Member, error) {
	return s.replaced[teamID], nil
}

func (s *stubRosterRepository) List(_ context.Context, _ roster.Filter) ([]roster.Member, error) {
	var out []roster.Member
	for _, rows := range s.replaced {
		out = append(out, rows...)
	}
	return out, nil
}

func (s *stubRosterRepository) ListPositions(_ context.Context) ([]string, error) {
	return nil, nil
}

type stubStandingRepository struct {
	replaced map[int64][]standing.Standing
	err      error
}

func (s *stubStandingRepository) ReplaceForTournament(_ context.Context, tournamentID int64, rows []standing.Standing) error {
	if s.err != nil {
		return s.err
	}
	if s.replaced == nil {
		s.replaced = map[int64][]standing.Standing{}
	}
	s.replaced[tournamentID] = rows
	return nil
}

func (s *stubStandingRepository) ListByTournament(_ context.Context, tournamentID int64) ([]standing.Standing, error) {
	return s.replaced[tournamentID], nil
}

type stubMatchRepository struct {
	replaced map[int64][]match.Match
	err      error
}

func (s *stubMatchRepository) ReplaceForTournament(_ context.Context, tournamentID int64, matches []match.Match) error {
	if s.err != nil {
		return s.err
	}
	if s.replaced == nil {
		s.replaced = map[int64][]match.Match{}
	}
	s.replaced[tournamentID] = matches
	return nil
}

func (s *stubMatchRepository) ListByTournament(_ context.Context, tournamentID int64) ([]match.Match, error) {
	return s.replaced[tournamentID], nil
}

type stubPlayerStatRepository struct {
	replaced map[int64][]playerstat.PlayerStatistic
	err      error
}

func (s *stubPlayerStatRepository) ReplaceForTournament(_ context.Context, tournamentID int64, stats []playerstat.PlayerStatistic) error {
	if s.err != nil {
		return s.err
	}
	if s.replaced == nil {
		s.replaced = map[int64][]playerstat.PlayerStatistic{}
	}
	s.replaced[tournamentID] = stats
	return nil
}

func (s *stubPlayerStatRepository) ListByTournament(_ context.Context, tournamentID int64) ([]playerstat.PlayerStatistic, error) {
	return s.replaced[tournamentID], nil
}

// stubProvider serves canned upstream payloads, with per-id error
// injection for fault isolation tests.
type stubProvider struct {
	tournamentsBySeason   map[int64][]tournament.Tournament
	teamsByTournament     map[int64][]team.Team
	membersByTeam         map[int64][]roster.Member
	organisations         []organisation.Organisation
	standingsByTournament map[int64][]standing.Standing
	matchesByTournament   map[int64][]match.Match
	playersByTournament   map[int64][]playerstat.PlayerStatistic

	teamErrByTournament map[int64]error
	orgFetchCalls       int
}

func (s *stubProvider) FetchSeasonTournaments(_ context.Context, seasonID int64) ([]tournament.Tournament, error) {
	return s.tournamentsBySeason[seasonID], nil
}

func (s *stubProvider) FetchTournamentTeams(_ context.Context, tournamentID int64) ([]team.Team, error) {
	if err := s.teamErrByTournament[tournamentID]; err != nil {
		return nil, err
	}
	return s.teamsByTournament[tournamentID], nil
}

func (s *stubProvider) FetchTeamMembers(_ context.Context, teamID int64) ([]roster.Member, error) {
	return s.membersByTeam[teamID], nil
}

func (s *stubProvider) FetchOrganisations(_ context.Context, _ []int64) ([]organisation.Organisation, error) {
	s.orgFetchCalls++
	return s.organisations, nil
}

func (s *stubProvider) FetchTournamentStandings(_ context.Context, tournamentID int64) ([]standing.Standing, error) {
	return s.standingsByTournament[tournamentID], nil
}

func (s *stubProvider) FetchTournamentMatches(_ context.Context, tournamentID int64) ([]match.Match, error) {
	return s.matchesByTournament[tournamentID], nil
}

func (s *stubProvider) FetchTournamentPlayers(_ context.Context, tournamentID int64) ([]playerstat.PlayerStatistic, error) {
	return s.playersByTournament[tournamentID], nil
}

func newTestIngestionService(
	orgRepo *stubOrganisationRepository,
	tournamentRepo *stubTournamentRepository,
	teamRepo *stubTeamRepository,
	rosterRepo *stubRosterRepository,
	standingRepo *stubStandingRepository,
	matchRepo *stubMatchRepository,
	playerStatRepo *stubPlayerStatRepository,
) *IngestionService {
	return NewIngestionService(
		orgRepo, tournamentRepo, teamRepo, rosterRepo,
		standingRepo, matchRepo, playerStatRepo, nil,
	)
}
