package postgres

import (
	"database/sql"
	"fmt"
	"strings"
	"testing"

	"github.com/lib/pq"

	"github.com/norskhockey/hockeyhub/internal/domain/roster"
	"github.com/norskhockey/hockeyhub/internal/domain/team"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	if !isUniqueViolation(&pq.Error{Code: "23505"}) {
		t.Fatal("expected 23505 to be a unique violation")
	}
	if isUniqueViolation(&pq.Error{Code: "23503"}) {
		t.Fatal("foreign key violation is not a unique violation")
	}
	if isUniqueViolation(fmt.Errorf("plain error")) {
		t.Fatal("plain error is not a unique violation")
	}
	if !isUniqueViolation(fmt.Errorf("wrapped: %w", &pq.Error{Code: "23505"})) {
		t.Fatal("wrapped pq error should still match")
	}
}

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	if !isNotFound(sql.ErrNoRows) {
		t.Fatal("sql.ErrNoRows should be not found")
	}
	if isNotFound(fmt.Errorf("boom")) {
		t.Fatal("arbitrary error should not be not found")
	}
}

func TestBuildTeamListQuery(t *testing.T) {
	t.Parallel()

	query, args := buildTeamListQuery(team.Filter{})
	if strings.Contains(query, "WHERE") {
		t.Fatalf("empty filter should not add conditions: %s", query)
	}
	if len(args) != 0 {
		t.Fatalf("empty filter should carry no args: %v", args)
	}

	query, args = buildTeamListQuery(team.Filter{TournamentID: 417, ClubOrgID: 12, Search: "Vål"})
	if len(args) != 3 {
		t.Fatalf("expected 3 args, got %v", args)
	}
	for _, fragment := range []string{"tournament_id = $1", "club_org_id = $2", "ILIKE $3"} {
		if !strings.Contains(query, fragment) {
			t.Fatalf("query missing %q: %s", fragment, query)
		}
	}
	if args[2] != "%Vål%" {
		t.Fatalf("search arg should be wrapped in wildcards, got %v", args[2])
	}
}

func TestBuildRosterListQueryJoinsTeamsOnlyWhenNeeded(t *testing.T) {
	t.Parallel()

	query, _ := buildRosterListQuery(roster.Filter{TeamID: 5})
	if strings.Contains(query, "JOIN teams") {
		t.Fatalf("team-only filter should not join teams: %s", query)
	}

	query, args := buildRosterListQuery(roster.Filter{TournamentID: 417, Position: "goalkeeper"})
	if !strings.Contains(query, "JOIN teams") {
		t.Fatalf("tournament filter requires teams join: %s", query)
	}
	if len(args) != 2 {
		t.Fatalf("expected 2 args, got %v", args)
	}
}

func TestPersonImageUpsertKeepsStoredVariants(t *testing.T) {
	t.Parallel()

	for _, column := range []string{
		"image_object_key",
		"image2_object_key",
		"original_image_url",
		"original_image2_url",
	} {
		clause := fmt.Sprintf("%s = COALESCE(EXCLUDED.%s, team_member_custom_data.%s)", column, column, column)
		if !strings.Contains(personImageUpsertQuery, clause) {
			t.Fatalf("upsert must not null out a stored %s when a refresh carries none", column)
		}
	}
}
