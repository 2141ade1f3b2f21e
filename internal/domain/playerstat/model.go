package playerstat

import "fmt"

// PlayerStatistic is one scoring-table row for a player in a tournament.
//
// ScoringPoints carries the upstream "pts" column (goals plus assists, the
// ranking metric). PlusMinus carries the upstream "points" column (the +/-
// rating). The two are distinct stats and are never conflated.
type PlayerStatistic struct {
	TournamentID int64
	PersonID     int64
	OrgID        int64

	FirstName     string
	LastName      string
	TeamName      string
	TeamShortName *string
	Position      *string

	Rank          *int64
	ScoringPoints int64
	GamesPlayed   int64
	GoalsScored   int64
	Assists       int64
	PlusMinus     int64
	PIM           int64

	PowerPlayGoals       int64
	PowerPlayGoalAssists int64

	ShortHandedGoals       int64
	ShortHandedGoalAssists int64

	GWG            int64
	Shots          int64
	ShotsPct       *float64
	FaceOffs       int64
	FaceOffsWinPct *float64
}

func (p PlayerStatistic) Validate() error {
	if p.TournamentID <= 0 {
		return fmt.Errorf("player statistic tournament id must be positive")
	}
	if p.PersonID <= 0 {
		return fmt.Errorf("player statistic person id must be positive")
	}

	return nil
}
