package team

import "fmt"

// Team is a club entry inside a tournament. The same club can field teams
// in several tournaments, so the natural key is (team id, tournament id).
type Team struct {
	TeamID         int64
	TournamentID   int64
	ClubOrgID      *int64
	TeamNo         *int64
	TeamName       *string
	OverriddenName *string
	DescribingName *string
}

func (t Team) Validate() error {
	if t.TeamID <= 0 {
		return fmt.Errorf("team id must be positive")
	}
	if t.TournamentID <= 0 {
		return fmt.Errorf("team tournament id must be positive")
	}

	return nil
}

// DisplayName prefers the overridden name when the tournament admin set one.
func (t Team) DisplayName() string {
	if t.OverriddenName != nil && *t.OverriddenName != "" {
		return *t.OverriddenName
	}
	if t.TeamName != nil {
		return *t.TeamName
	}
	return ""
}
