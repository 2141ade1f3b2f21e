package match

import (
	"fmt"
	"time"
)

// Match is a scheduled or played fixture. Team and venue display fields are
// denormalized from the upstream payload; the result sub-object is flattened
// into HomeGoals/AwayGoals/MatchEndResult.
type Match struct {
	MatchID      int64
	TournamentID int64

	MatchNo *string

	ActivityAreaID        *int64
	ActivityAreaLatitude  *float64
	ActivityAreaLongitude *float64
	ActivityAreaName      *string
	ActivityAreaNo        *string

	AdmOrgID  *int64
	ArrOrgID  *int64
	ArrOrgNo  *string
	ArrOrgName *string

	AwayTeamID             *int64
	AwayTeamOrgNo          *string
	AwayTeam               *string
	AwayTeamOrgName        *string
	AwayTeamOverriddenName *string
	AwayTeamClubOrgID      *int64

	HomeTeamID             *int64
	HomeTeam               *string
	HomeTeamOrgName        *string
	HomeTeamOverriddenName *string
	HomeTeamOrgNo          *string
	HomeTeamClubOrgID      *int64

	RoundID        *int64
	RoundName      *string
	SeasonID       *int64
	TournamentName *string

	// Start and end times are minutes past midnight in upstream convention,
	// e.g. 1500 means 15:00.
	MatchDate      *time.Time
	MatchStartTime *int64
	MatchEndTime   *int64

	VenueUnitID    *int64
	VenueUnitNo    *string
	VenueID        *int64
	VenueNo        *string
	PhysicalAreaID *int64

	HomeGoals      *int64
	AwayGoals      *int64
	MatchEndResult *string

	LiveArena      *bool
	LiveClientType *string
	StatusTypeID   *int64
	StatusType     *string
	LastChangeDate *time.Time
	Spectators     *int64

	ActualMatchDate      *time.Time
	ActualMatchStartTime *int64
	ActualMatchEndTime   *int64
	SportID              *int64
}

func (m Match) Validate() error {
	if m.MatchID <= 0 {
		return fmt.Errorf("match id must be positive")
	}
	if m.TournamentID <= 0 {
		return fmt.Errorf("match tournament id must be positive")
	}

	return nil
}
