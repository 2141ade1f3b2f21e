package nif

import (
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

func TestParseDateTime(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input *string
		want  *time.Time
	}{
		{"nil", nil, nil},
		{"empty", strPtr(""), nil},
		{"garbage", strPtr("not-a-date"), nil},
		{"rfc3339", strPtr("2025-09-13T18:00:00Z"), timePtr(time.Date(2025, 9, 13, 18, 0, 0, 0, time.UTC))},
		{"no zone", strPtr("2025-09-13T18:00:00"), timePtr(time.Date(2025, 9, 13, 18, 0, 0, 0, time.UTC))},
		{"date only", strPtr("2008-03-21"), timePtr(time.Date(2008, 3, 21, 0, 0, 0, 0, time.UTC))},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := parseDateTime(tc.input)
			switch {
			case tc.want == nil && got != nil:
				t.Fatalf("expected nil, got %v", got)
			case tc.want != nil && got == nil:
				t.Fatalf("expected %v, got nil", tc.want)
			case tc.want != nil && !got.Equal(*tc.want):
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func timePtr(t time.Time) *time.Time { return &t }

func TestMapStandingAliasResolution(t *testing.T) {
	t.Parallel()

	orgID := int64(31)
	points := int64(0)
	totalPoints := int64(47)
	goalsDiff := int64(-12)

	payload := standingPayload{
		OrgID:       &orgID,
		OrgName:     strPtr("Comet Halden"),
		TotalPoints: &totalPoints,
		GoalsDiff:   &goalsDiff,
	}

	mapped, ok := mapStanding(417, payload)
	if !ok {
		t.Fatal("expected row to map")
	}
	if mapped.TeamID != orgID {
		t.Fatalf("team id should fall back to org id, got %d", mapped.TeamID)
	}
	if mapped.TeamName == nil || *mapped.TeamName != "Comet Halden" {
		t.Fatalf("team name should fall back to org name, got %v", mapped.TeamName)
	}
	if mapped.Points == nil || *mapped.Points != totalPoints {
		t.Fatalf("points should fall back to total points, got %v", mapped.Points)
	}
	if mapped.GoalsDiff == nil || *mapped.GoalsDiff != goalsDiff {
		t.Fatalf("goals diff should keep the provided value, got %v", mapped.GoalsDiff)
	}

	// A zero points value still wins over totalPoints when present.
	payload.Points = &points
	mapped, _ = mapStanding(417, payload)
	if mapped.Points == nil || *mapped.Points != points {
		t.Fatalf("explicit points should win, got %v", mapped.Points)
	}
}

func TestDecodeListOrObject(t *testing.T) {
	t.Parallel()

	list, err := decodeListOrObject[teamMemberPayload]([]byte(`[{"personId": 1}, {"personId": 2}]`))
	if err != nil || len(list) != 2 {
		t.Fatalf("list decode: %v, %d items", err, len(list))
	}

	single, err := decodeListOrObject[teamMemberPayload]([]byte(`{"personId": 3}`))
	if err != nil || len(single) != 1 || single[0].PersonID != 3 {
		t.Fatalf("single decode: %v, %+v", err, single)
	}

	empty, err := decodeListOrObject[teamMemberPayload]([]byte(`null`))
	if err != nil || len(empty) != 0 {
		t.Fatalf("null decode: %v, %d items", err, len(empty))
	}
}
