package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/norskhockey/hockeyhub/internal/domain/organisation"
	"github.com/norskhockey/hockeyhub/internal/domain/playerstat"
	"github.com/norskhockey/hockeyhub/internal/domain/roster"
	"github.com/norskhockey/hockeyhub/internal/domain/team"
)

func TestIngestionService_ReplaceTeamMembers_KeepsFirstDuplicate(t *testing.T) {
	t.Parallel()

	rosterRepo := &stubRosterRepository{}
	service := newTestIngestionService(
		&stubOrganisationRepository{}, &stubTournamentRepository{}, &stubTeamRepository{},
		rosterRepo, &stubStandingRepository{}, &stubMatchRepository{}, &stubPlayerStatRepository{},
	)

	first := "Original"
	second := "Duplicate"
	members := []roster.Member{
		{PersonID: 100, FirstName: &first},
		{PersonID: 200},
		{PersonID: 100, FirstName: &second},
	}

	if err := service.ReplaceTeamMembers(context.Background(), 7, members); err != nil {
		t.Fatalf("ReplaceTeamMembers error: %v", err)
	}

	got := rosterRepo.replaced[7]
	if len(got) != 2 {
		t.Fatalf("expected 2 members after dedupe, got %d", len(got))
	}
	if got[0].PersonID != 100 || got[0].FirstName == nil || *got[0].FirstName != "Original" {
		t.Fatalf("expected first occurrence to win, got %+v", got[0])
	}
	if got[1].PersonID != 200 {
		t.Fatalf("unexpected second member: %+v", got[1])
	}
	for _, member := range got {
		if member.TeamID != 7 {
			t.Fatalf("expected team id 7 stamped on member, got %d", member.TeamID)
		}
	}
}

func TestIngestionService_ReplaceTeams_StampsTournamentAndAllowsEmpty(t *testing.T) {
	t.Parallel()

	teamRepo := &stubTeamRepository{}
	service := newTestIngestionService(
		&stubOrganisationRepository{}, &stubTournamentRepository{}, teamRepo,
		&stubRosterRepository{}, &stubStandingRepository{}, &stubMatchRepository{}, &stubPlayerStatRepository{},
	)

	teams := []team.Team{{TeamID: 1}, {TeamID: 2}}
	if err := service.ReplaceTeams(context.Background(), 42, teams); err != nil {
		t.Fatalf("ReplaceTeams error: %v", err)
	}
	for _, item := range teamRepo.replaced[42] {
		if item.TournamentID != 42 {
			t.Fatalf("expected tournament id 42 stamped on team, got %d", item.TournamentID)
		}
	}

	// An empty payload still replaces, clearing the tournament's teams.
	if err := service.ReplaceTeams(context.Background(), 42, nil); err != nil {
		t.Fatalf("ReplaceTeams with empty payload error: %v", err)
	}
	if got, ok := teamRepo.replaced[42]; !ok || len(got) != 0 {
		t.Fatalf("expected empty replace to be persisted, got %+v", got)
	}
}

func TestIngestionService_ReplacePlayerStatistics_DedupesByPerson(t *testing.T) {
	t.Parallel()

	statsRepo := &stubPlayerStatRepository{}
	service := newTestIngestionService(
		&stubOrganisationRepository{}, &stubTournamentRepository{}, &stubTeamRepository{},
		&stubRosterRepository{}, &stubStandingRepository{}, &stubMatchRepository{}, statsRepo,
	)

	stats := []playerstat.PlayerStatistic{
		{PersonID: 1, GoalsScored: 10},
		{PersonID: 1, GoalsScored: 99},
		{PersonID: 2, GoalsScored: 5},
	}
	if err := service.ReplacePlayerStatistics(context.Background(), 9, stats); err != nil {
		t.Fatalf("ReplacePlayerStatistics error: %v", err)
	}

	got := statsRepo.replaced[9]
	if len(got) != 2 {
		t.Fatalf("expected 2 rows after dedupe, got %d", len(got))
	}
	if got[0].PersonID != 1 || got[0].GoalsScored != 10 {
		t.Fatalf("expected first occurrence to win, got %+v", got[0])
	}
}

func TestIngestionService_RejectsNonPositiveParentIDs(t *testing.T) {
	t.Parallel()

	service := newTestIngestionService(
		&stubOrganisationRepository{}, &stubTournamentRepository{}, &stubTeamRepository{},
		&stubRosterRepository{}, &stubStandingRepository{}, &stubMatchRepository{}, &stubPlayerStatRepository{},
	)
	ctx := context.Background()

	calls := []struct {
		name string
		run  func() error
	}{
		{"teams", func() error { return service.ReplaceTeams(ctx, 0, nil) }},
		{"team members", func() error { return service.ReplaceTeamMembers(ctx, -1, nil) }},
		{"standings", func() error { return service.ReplaceStandings(ctx, 0, nil) }},
		{"matches", func() error { return service.ReplaceMatches(ctx, 0, nil) }},
		{"player statistics", func() error { return service.ReplacePlayerStatistics(ctx, -5, nil) }},
	}
	for _, call := range calls {
		err := call.run()
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", call.name, err)
		}
	}
}

func TestIngestionService_MergeOrganisations_SkipsEmptyPayload(t *testing.T) {
	t.Parallel()

	orgRepo := &stubOrganisationRepository{}
	service := newTestIngestionService(
		orgRepo, &stubTournamentRepository{}, &stubTeamRepository{},
		&stubRosterRepository{}, &stubStandingRepository{}, &stubMatchRepository{}, &stubPlayerStatRepository{},
	)

	if err := service.MergeOrganisations(context.Background(), nil); err != nil {
		t.Fatalf("MergeOrganisations error: %v", err)
	}
	if len(orgRepo.merged) != 0 {
		t.Fatalf("expected no merge calls for empty payload, got %d", len(orgRepo.merged))
	}

	if err := service.MergeOrganisations(context.Background(), []organisation.Organisation{{OrgID: 1}}); err != nil {
		t.Fatalf("MergeOrganisations error: %v", err)
	}
	if len(orgRepo.merged) != 1 {
		t.Fatalf("expected one merge call, got %d", len(orgRepo.merged))
	}
}
