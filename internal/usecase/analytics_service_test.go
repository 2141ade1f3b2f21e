package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/norskhockey/hockeyhub/internal/domain/organisation"
	"github.com/norskhockey/hockeyhub/internal/domain/playerstat"
	"github.com/norskhockey/hockeyhub/internal/domain/standing"
	"github.com/norskhockey/hockeyhub/internal/domain/team"
	"github.com/norskhockey/hockeyhub/internal/domain/tournament"
)

func newTestAnalytics(
	orgRepo *stubOrganisationRepository,
	tournamentRepo *stubTournamentRepository,
	teamRepo *stubTeamRepository,
	standingRepo *stubStandingRepository,
	matchRepo *stubMatchRepository,
	statRepo *stubPlayerStatRepository,
) *AnalyticsService {
	return NewAnalyticsService(
		orgRepo, tournamentRepo, teamRepo, &stubRosterRepository{},
		standingRepo, matchRepo, statRepo,
	)
}

func TestAnalyticsService_Filters(t *testing.T) {
	t.Parallel()

	name := "Eliteserien"
	clubName := "Storhamar IL"
	svc := newTestAnalytics(
		&stubOrganisationRepository{orgs: []organisation.Organisation{{OrgID: 500, OrgName: &clubName}}},
		&stubTournamentRepository{bySeason: map[int64][]tournament.Tournament{
			2025: {{TournamentID: 1, SeasonID: 2025, TournamentName: &name}},
		}},
		&stubTeamRepository{
			clubOrgIDs: []int64{500, 600},
			counts:     map[int64]int64{1: 10},
		},
		&stubStandingRepository{}, &stubMatchRepository{}, &stubPlayerStatRepository{},
	)

	got, err := svc.Filters(context.Background())
	if err != nil {
		t.Fatalf("Filters error: %v", err)
	}
	if len(got.Tournaments) != 1 {
		t.Fatalf("expected 1 tournament option, got %d", len(got.Tournaments))
	}
	opt := got.Tournaments[0]
	if opt.TournamentID != 1 || opt.TeamCount != 10 || opt.Name == nil || *opt.Name != "Eliteserien" {
		t.Fatalf("unexpected tournament option: %+v", opt)
	}
	if len(got.Clubs) != 2 {
		t.Fatalf("expected 2 club options, got %d", len(got.Clubs))
	}
	if got.Clubs[0].OrgID != 500 || got.Clubs[0].Name == nil || *got.Clubs[0].Name != "Storhamar IL" {
		t.Fatalf("unexpected named club: %+v", got.Clubs[0])
	}
	if got.Clubs[1].OrgID != 600 || got.Clubs[1].Name != nil {
		t.Fatalf("expected unresolved club to stay nameless: %+v", got.Clubs[1])
	}
}

func TestAnalyticsService_InsightsSummary(t *testing.T) {
	t.Parallel()

	tournamentRepo := &stubTournamentRepository{bySeason: map[int64][]tournament.Tournament{
		2025: {{TournamentID: 1, SeasonID: 2025}},
	}}
	teamRepo := &stubTeamRepository{byTournament: map[int64][]team.Team{
		1: {{TeamID: 11, TournamentID: 1}, {TeamID: 12, TournamentID: 1}},
	}}
	standingRepo := &stubStandingRepository{replaced: map[int64][]standing.Standing{
		1: {{TournamentID: 1, TeamID: 11}, {TournamentID: 1, TeamID: 12}},
	}}
	statRepo := &stubPlayerStatRepository{replaced: map[int64][]playerstat.PlayerStatistic{
		1: {
			{PersonID: 1}, {PersonID: 2}, {PersonID: 3},
			{PersonID: 4}, {PersonID: 5}, {PersonID: 6}, {PersonID: 7},
		},
	}}
	svc := newTestAnalytics(
		&stubOrganisationRepository{}, tournamentRepo, teamRepo,
		standingRepo, &stubMatchRepository{}, statRepo,
	)

	got, err := svc.InsightsSummary(context.Background(), 1)
	if err != nil {
		t.Fatalf("InsightsSummary error: %v", err)
	}
	if got.TeamCount != 2 {
		t.Fatalf("expected 2 teams, got %d", got.TeamCount)
	}
	if got.Leader == nil || got.Leader.TeamID != 11 {
		t.Fatalf("expected leader team 11, got %+v", got.Leader)
	}
	if len(got.TopScorers) != topScorerLimit {
		t.Fatalf("expected top scorers capped at %d, got %d", topScorerLimit, len(got.TopScorers))
	}

	_, err = svc.InsightsSummary(context.Background(), 999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown tournament, got %v", err)
	}
}
