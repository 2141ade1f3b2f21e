package nif

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/norskhockey/hockeyhub/internal/platform/logging"
	"github.com/norskhockey/hockeyhub/internal/platform/retry"
)

func immediatePolicy(waits *[]time.Duration) retry.Policy {
	return retry.Policy{
		MaxAttempts: retry.DefaultMaxAttempts,
		Backoff:     retry.ExponentialBackoff,
		Sleep: func(_ context.Context, d time.Duration) error {
			if waits != nil {
				*waits = append(*waits, d)
			}
			return nil
		},
	}
}

func newTestClient(t *testing.T, handler http.Handler, waits *[]time.Duration) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{
		HTTPClient: server.Client(),
		BaseURL:    server.URL,
		Retry:      immediatePolicy(waits),
		Logger:     logging.NewNop(),
	})
	return client, server
}

func TestFetchersRejectNonPositiveIDsWithoutCalling(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{}`))
	}), nil)

	ctx := context.Background()
	fetches := []func() error{
		func() error { _, err := client.FetchSeasonTournaments(ctx, 0); return err },
		func() error { _, err := client.FetchTournamentTeams(ctx, -5); return err },
		func() error { _, err := client.FetchTeamMembers(ctx, 0); return err },
		func() error { _, err := client.FetchOrganisations(ctx, []int64{12, -1}); return err },
		func() error { _, err := client.FetchTournamentStandings(ctx, 0); return err },
		func() error { _, err := client.FetchTournamentMatches(ctx, -1); return err },
		func() error { _, err := client.FetchTournamentPlayers(ctx, 0); return err },
	}

	for i, fetch := range fetches {
		if err := fetch(); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("fetch %d: expected ErrInvalidArgument, got %v", i, err)
		}
	}
	if got := calls.Load(); got != 0 {
		t.Fatalf("expected zero upstream calls, got %d", got)
	}
}

func TestGetJSONExhaustsRetriesWithExponentialWaits(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	var waits []time.Duration
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}), &waits)

	_, err := client.FetchTournamentTeams(context.Background(), 417)
	if err == nil {
		t.Fatal("expected error after exhausted retries")
	}

	var exhausted *FetchExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("expected FetchExhaustedError, got %T: %v", err, err)
	}
	if exhausted.Attempts != retry.DefaultMaxAttempts {
		t.Fatalf("expected %d attempts, got %d", retry.DefaultMaxAttempts, exhausted.Attempts)
	}
	if got := calls.Load(); got != int64(retry.DefaultMaxAttempts) {
		t.Fatalf("expected %d upstream calls, got %d", retry.DefaultMaxAttempts, got)
	}

	expected := []time.Duration{2 * time.Second, 4 * time.Second}
	if len(waits) != len(expected) {
		t.Fatalf("expected %d waits, got %v", len(expected), waits)
	}
	for i, wait := range expected {
		if waits[i] != wait {
			t.Fatalf("wait %d: expected %s, got %s", i, wait, waits[i])
		}
	}
}

func TestGetJSONRecoversAfterTransientFailure(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"tournamentId": 417, "teams": [{"teamId": 9, "team": "Storhamar"}]}`))
	}), &[]time.Duration{})

	teams, err := client.FetchTournamentTeams(context.Background(), 417)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(teams) != 1 || teams[0].TeamID != 9 {
		t.Fatalf("unexpected teams: %+v", teams)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("expected 2 upstream calls, got %d", got)
	}
}

func TestFetchTeamMembersPromotesSingleObject(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"personId": 7001, "firstName": "Mats", "lastName": "Olsen", "memberType": "Player"}`))
	}), nil)

	members, err := client.FetchTeamMembers(context.Background(), 55)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(members) != 1 {
		t.Fatalf("expected single member, got %d", len(members))
	}
	if members[0].PersonID != 7001 || members[0].TeamID != 55 {
		t.Fatalf("unexpected member: %+v", members[0])
	}
	if members[0].FullName() != "Mats Olsen" {
		t.Fatalf("unexpected name: %q", members[0].FullName())
	}
}

func TestFetchTournamentStandingsShapes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		body    string
		wantLen int
	}{
		{"plain list", `[{"teamId": 1, "position": 1}, {"teamId": 2, "position": 2}]`, 2},
		{"standings envelope", `{"standings": [{"orgId": 3, "orgName": "Frisk Asker", "position": 1}]}`, 1},
		{"single object", `{"teamId": 4, "position": 1}`, 1},
		{"error message", `{"errorMessage": "Tournament has no standings"}`, 0},
		{"row without team id dropped", `[{"position": 1}, {"teamId": 5}]`, 1},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte(tc.body))
			}), nil)

			standings, err := client.FetchTournamentStandings(context.Background(), 88)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(standings) != tc.wantLen {
				t.Fatalf("expected %d standings, got %d", tc.wantLen, len(standings))
			}
			for _, row := range standings {
				if row.TournamentID != 88 {
					t.Fatalf("row not scoped to tournament: %+v", row)
				}
			}
		})
	}
}

func TestFetchTournamentPlayersKeepsScoringAndPlusMinusApart(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[{"personId": 42, "orgId": 3, "firstName": "Eirik", "lastName": "Berg",
			"teamName": "Lillehammer", "rank": 1, "pts": 54, "points": -3,
			"goalsScored": 20, "assists": 34, "gamesPlayed": 45}]`))
	}), nil)

	stats, err := client.FetchTournamentPlayers(context.Background(), 417)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("expected one row, got %d", len(stats))
	}

	row := stats[0]
	if row.ScoringPoints != 54 {
		t.Fatalf("scoring points: expected 54, got %d", row.ScoringPoints)
	}
	if row.PlusMinus != -3 {
		t.Fatalf("plus minus: expected -3, got %d", row.PlusMinus)
	}
	if row.ScoringPoints != row.GoalsScored+row.Assists {
		t.Fatalf("scoring points should equal goals+assists in this payload")
	}
}

func TestFetchOrganisationsSendsRepeatedOrgIDParams(t *testing.T) {
	t.Parallel()

	var gotQuery []string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()["orgIds"]
		w.Write([]byte(`{"organisations": [{"orgId": 12, "orgName": "Viking IK"}]}`))
	}), nil)

	orgs, err := client.FetchOrganisations(context.Background(), []int64{12, 77})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orgs) != 1 || orgs[0].OrgID != 12 {
		t.Fatalf("unexpected orgs: %+v", orgs)
	}
	if len(gotQuery) != 2 || gotQuery[0] != "12" || gotQuery[1] != "77" {
		t.Fatalf("expected repeated orgIds params, got %v", gotQuery)
	}
}
