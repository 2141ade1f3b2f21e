package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/norskhockey/hockeyhub/internal/usecase"
)

func TestParseTeamFilter(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/teams?tournament_id=42&club_org_id=500&search=storhamar", nil)
	filter, err := parseTeamFilter(req)
	if err != nil {
		t.Fatalf("parseTeamFilter error: %v", err)
	}
	if filter.TournamentID != 42 || filter.ClubOrgID != 500 || filter.Search != "storhamar" {
		t.Fatalf("unexpected filter: %+v", filter)
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/teams", nil)
	filter, err = parseTeamFilter(req)
	if err != nil {
		t.Fatalf("parseTeamFilter error for empty query: %v", err)
	}
	if filter.TournamentID != 0 || filter.ClubOrgID != 0 || filter.Search != "" {
		t.Fatalf("expected zero filter, got %+v", filter)
	}
}

func TestParseTeamFilter_RejectsBadIDs(t *testing.T) {
	for _, target := range []string{
		"/v1/teams?tournament_id=abc",
		"/v1/teams?tournament_id=-4",
		"/v1/teams?club_org_id=0",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		if _, err := parseTeamFilter(req); err == nil {
			t.Fatalf("expected error for %s", target)
		}
	}
}

func TestParseRosterFilter(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/players?team_id=7&position=Goalkeeper&search=hansen", nil)
	filter, err := parseRosterFilter(req)
	if err != nil {
		t.Fatalf("parseRosterFilter error: %v", err)
	}
	if filter.TeamID != 7 || filter.Position != "Goalkeeper" || filter.Search != "hansen" {
		t.Fatalf("unexpected filter: %+v", filter)
	}
}

func TestGetStandings_RejectsBadTournamentID(t *testing.T) {
	handler := NewHandler(nil, nil, nil, nil, nil)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/standings", handler.GetStandings)

	req := httptest.NewRequest(http.MethodGet, "/v1/tournaments/zero/standings", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestAskQuestion_RejectsInvalidBody(t *testing.T) {
	handler := NewHandler(nil, nil, usecase.NewNLQService(nil, nil, nil), nil, nil)
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/nlq", handler.AskQuestion)

	for _, body := range []string{``, `{}`, `{"question":"a"}`} {
		req := httptest.NewRequest(http.MethodPost, "/v1/nlq", strings.NewReader(body))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400 for body %q, got %d", body, rec.Code)
		}
	}
}
