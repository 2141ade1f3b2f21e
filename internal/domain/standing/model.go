package standing

import "fmt"

// Standing is one table row for a team inside a tournament, with home/away
// splits and the overtime/penalty win-loss breakdown hockey tables carry.
type Standing struct {
	TournamentID int64
	TeamID       int64

	TeamName       *string
	OverriddenName *string
	Position       *int64
	EntryID        *int64

	MatchesPlayed *int64
	MatchesHome   *int64
	MatchesAway   *int64

	Points      *int64
	PointsHome  *int64
	PointsAway  *int64
	PointsStart *int64
	TotalPoints *int64

	Victories               *int64
	VictoriesHome           *int64
	VictoriesAway           *int64
	VictoriesFulltimeTotal  *int64
	VictoriesFulltimeHome   *int64
	VictoriesFulltimeAway   *int64
	VictoriesOvertimeTotal  *int64
	VictoriesOvertimeHome   *int64
	VictoriesOvertimeAway   *int64
	VictoriesPenaltiesTotal *int64
	VictoriesPenaltiesHome  *int64
	VictoriesPenaltiesAway  *int64

	Draws     *int64
	DrawsHome *int64
	DrawsAway *int64

	Losses               *int64
	LossesHome           *int64
	LossesAway           *int64
	LossesFulltimeTotal  *int64
	LossesFulltimeHome   *int64
	LossesFulltimeAway   *int64
	LossesOvertimeTotal  *int64
	LossesOvertimeHome   *int64
	LossesOvertimeAway   *int64
	LossesPenaltiesTotal *int64
	LossesPenaltiesHome  *int64
	LossesPenaltiesAway  *int64

	GoalsScored       *int64
	GoalsScoredHome   *int64
	GoalsScoredAway   *int64
	GoalsConceded     *int64
	GoalsConcededHome *int64
	GoalsConcededAway *int64
	GoalsDiff         *int64
	GoalsRatio        *float64

	PenaltyMinutes *int64

	HomeRecord *string
	AwayRecord *string

	GoalsHomeFormatted  *string
	GoalsAwayFormatted  *string
	TotalGoalsFormatted *string

	TeamPenalty         *string
	TeamPenaltyNegative *int64
	TeamPenaltyPositive *int64
	Dispensation        *bool
	TeamEntryStatus     *string
}

func (s Standing) Validate() error {
	if s.TournamentID <= 0 {
		return fmt.Errorf("standing tournament id must be positive")
	}
	if s.TeamID <= 0 {
		return fmt.Errorf("standing team id must be positive")
	}

	return nil
}
