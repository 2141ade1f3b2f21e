package postgres

import (
	"github.com/norskhockey/hockeyhub/internal/domain/standing"
)

type standingTableModel struct {
	TournamentID int64 `db:"tournament_id"`
	TeamID       int64 `db:"team_id"`

	TeamName       *string `db:"team_name"`
	OverriddenName *string `db:"overridden_name"`
	Position       *int64  `db:"position"`
	EntryID        *int64  `db:"entry_id"`

	MatchesPlayed *int64 `db:"matches_played"`
	MatchesHome   *int64 `db:"matches_home"`
	MatchesAway   *int64 `db:"matches_away"`

	Points      *int64 `db:"points"`
	PointsHome  *int64 `db:"points_home"`
	PointsAway  *int64 `db:"points_away"`
	PointsStart *int64 `db:"points_start"`
	TotalPoints *int64 `db:"total_points"`

	Victories               *int64 `db:"victories"`
	VictoriesHome           *int64 `db:"victories_home"`
	VictoriesAway           *int64 `db:"victories_away"`
	VictoriesFulltimeTotal  *int64 `db:"victories_fulltime_total"`
	VictoriesFulltimeHome   *int64 `db:"victories_fulltime_home"`
	VictoriesFulltimeAway   *int64 `db:"victories_fulltime_away"`
	VictoriesOvertimeTotal  *int64 `db:"victories_overtime_total"`
	VictoriesOvertimeHome   *int64 `db:"victories_overtime_home"`
	VictoriesOvertimeAway   *int64 `db:"victories_overtime_away"`
	VictoriesPenaltiesTotal *int64 `db:"victories_penalties_total"`
	VictoriesPenaltiesHome  *int64 `db:"victories_penalties_home"`
	VictoriesPenaltiesAway  *int64 `db:"victories_penalties_away"`

	Draws     *int64 `db:"draws"`
	DrawsHome *int64 `db:"draws_home"`
	DrawsAway *int64 `db:"draws_away"`

	Losses               *int64 `db:"losses"`
	LossesHome           *int64 `db:"losses_home"`
	LossesAway           *int64 `db:"losses_away"`
	LossesFulltimeTotal  *int64 `db:"losses_fulltime_total"`
	LossesFulltimeHome   *int64 `db:"losses_fulltime_home"`
	LossesFulltimeAway   *int64 `db:"losses_fulltime_away"`
	LossesOvertimeTotal  *int64 `db:"losses_overtime_total"`
	LossesOvertimeHome   *int64 `db:"losses_overtime_home"`
	LossesOvertimeAway   *int64 `db:"losses_overtime_away"`
	LossesPenaltiesTotal *int64 `db:"losses_penalties_total"`
	LossesPenaltiesHome  *int64 `db:"losses_penalties_home"`
	LossesPenaltiesAway  *int64 `db:"losses_penalties_away"`

	GoalsScored       *int64   `db:"goals_scored"`
	GoalsScoredHome   *int64   `db:"goals_scored_home"`
	GoalsScoredAway   *int64   `db:"goals_scored_away"`
	GoalsConceded     *int64   `db:"goals_conceded"`
	GoalsConcededHome *int64   `db:"goals_conceded_home"`
	GoalsConcededAway *int64   `db:"goals_conceded_away"`
	GoalsDiff         *int64   `db:"goals_diff"`
	GoalsRatio        *float64 `db:"goals_ratio"`

	PenaltyMinutes *int64 `db:"penalty_minutes"`

	HomeRecord *string `db:"home_record"`
	AwayRecord *string `db:"away_record"`

	GoalsHomeFormatted  *string `db:"goals_home_formatted"`
	GoalsAwayFormatted  *string `db:"goals_away_formatted"`
	TotalGoalsFormatted *string `db:"total_goals_formatted"`

	TeamPenalty         *string `db:"team_penalty"`
	TeamPenaltyNegative *int64  `db:"team_penalty_negative"`
	TeamPenaltyPositive *int64  `db:"team_penalty_positive"`
	Dispensation        *bool   `db:"dispensation"`
	TeamEntryStatus     *string `db:"team_entry_status"`
}

func standingToTableModel(tournamentID int64, s standing.Standing) standingTableModel {
	return standingTableModel{
		TournamentID: tournamentID,
		TeamID:       s.TeamID,

		TeamName:       s.TeamName,
		OverriddenName: s.OverriddenName,
		Position:       s.Position,
		EntryID:        s.EntryID,

		MatchesPlayed: s.MatchesPlayed,
		MatchesHome:   s.MatchesHome,
		MatchesAway:   s.MatchesAway,

		Points:      s.Points,
		PointsHome:  s.PointsHome,
		PointsAway:  s.PointsAway,
		PointsStart: s.PointsStart,
		TotalPoints: s.TotalPoints,

		Victories:               s.Victories,
		VictoriesHome:           s.VictoriesHome,
		VictoriesAway:           s.VictoriesAway,
		VictoriesFulltimeTotal:  s.VictoriesFulltimeTotal,
		VictoriesFulltimeHome:   s.VictoriesFulltimeHome,
		VictoriesFulltimeAway:   s.VictoriesFulltimeAway,
		VictoriesOvertimeTotal:  s.VictoriesOvertimeTotal,
		VictoriesOvertimeHome:   s.VictoriesOvertimeHome,
		VictoriesOvertimeAway:   s.VictoriesOvertimeAway,
		VictoriesPenaltiesTotal: s.VictoriesPenaltiesTotal,
		VictoriesPenaltiesHome:  s.VictoriesPenaltiesHome,
		VictoriesPenaltiesAway:  s.VictoriesPenaltiesAway,

		Draws:     s.Draws,
		DrawsHome: s.DrawsHome,
		DrawsAway: s.DrawsAway,

		Losses:               s.Losses,
		LossesHome:           s.LossesHome,
		LossesAway:           s.LossesAway,
		LossesFulltimeTotal:  s.LossesFulltimeTotal,
		LossesFulltimeHome:   s.LossesFulltimeHome,
		LossesFulltimeAway:   s.LossesFulltimeAway,
		LossesOvertimeTotal:  s.LossesOvertimeTotal,
		LossesOvertimeHome:   s.LossesOvertimeHome,
		LossesOvertimeAway:   s.LossesOvertimeAway,
		LossesPenaltiesTotal: s.LossesPenaltiesTotal,
		LossesPenaltiesHome:  s.LossesPenaltiesHome,
		LossesPenaltiesAway:  s.LossesPenaltiesAway,

		GoalsScored:       s.GoalsScored,
		GoalsScoredHome:   s.GoalsScoredHome,
		GoalsScoredAway:   s.GoalsScoredAway,
		GoalsConceded:     s.GoalsConceded,
		GoalsConcededHome: s.GoalsConcededHome,
		GoalsConcededAway: s.GoalsConcededAway,
		GoalsDiff:         s.GoalsDiff,
		GoalsRatio:        s.GoalsRatio,

		PenaltyMinutes: s.PenaltyMinutes,

		HomeRecord: s.HomeRecord,
		AwayRecord: s.AwayRecord,

		GoalsHomeFormatted:  s.GoalsHomeFormatted,
		GoalsAwayFormatted:  s.GoalsAwayFormatted,
		TotalGoalsFormatted: s.TotalGoalsFormatted,

		TeamPenalty:         s.TeamPenalty,
		TeamPenaltyNegative: s.TeamPenaltyNegative,
		TeamPenaltyPositive: s.TeamPenaltyPositive,
		Dispensation:        s.Dispensation,
		TeamEntryStatus:     s.TeamEntryStatus,
	}
}

func (m standingTableModel) toDomain() standing.Standing {
	return standing.Standing{
		TournamentID: m.TournamentID,
		TeamID:       m.TeamID,

		TeamName:       m.TeamName,
		OverriddenName: m.OverriddenName,
		Position:       m.Position,
		EntryID:        m.EntryID,

		MatchesPlayed: m.MatchesPlayed,
		MatchesHome:   m.MatchesHome,
		MatchesAway:   m.MatchesAway,

		Points:      m.Points,
		PointsHome:  m.PointsHome,
		PointsAway:  m.PointsAway,
		PointsStart: m.PointsStart,
		TotalPoints: m.TotalPoints,

		Victories:               m.Victories,
		VictoriesHome:           m.VictoriesHome,
		VictoriesAway:           m.VictoriesAway,
		VictoriesFulltimeTotal:  m.VictoriesFulltimeTotal,
		VictoriesFulltimeHome:   m.VictoriesFulltimeHome,
		VictoriesFulltimeAway:   m.VictoriesFulltimeAway,
		VictoriesOvertimeTotal:  m.VictoriesOvertimeTotal,
		VictoriesOvertimeHome:   m.VictoriesOvertimeHome,
		VictoriesOvertimeAway:   m.VictoriesOvertimeAway,
		VictoriesPenaltiesTotal: m.VictoriesPenaltiesTotal,
		VictoriesPenaltiesHome:  m.VictoriesPenaltiesHome,
		VictoriesPenaltiesAway:  m.VictoriesPenaltiesAway,

		Draws:     m.Draws,
		DrawsHome: m.DrawsHome,
		DrawsAway: m.DrawsAway,

		Losses:               m.Losses,
		LossesHome:           m.LossesHome,
		LossesAway:           m.LossesAway,
		LossesFulltimeTotal:  m.LossesFulltimeTotal,
		LossesFulltimeHome:   m.LossesFulltimeHome,
		LossesFulltimeAway:   m.LossesFulltimeAway,
		LossesOvertimeTotal:  m.LossesOvertimeTotal,
		LossesOvertimeHome:   m.LossesOvertimeHome,
		LossesOvertimeAway:   m.LossesOvertimeAway,
		LossesPenaltiesTotal: m.LossesPenaltiesTotal,
		LossesPenaltiesHome:  m.LossesPenaltiesHome,
		LossesPenaltiesAway:  m.LossesPenaltiesAway,

		GoalsScored:       m.GoalsScored,
		GoalsScoredHome:   m.GoalsScoredHome,
		GoalsScoredAway:   m.GoalsScoredAway,
		GoalsConceded:     m.GoalsConceded,
		GoalsConcededHome: m.GoalsConcededHome,
		GoalsConcededAway: m.GoalsConcededAway,
		GoalsDiff:         m.GoalsDiff,
		GoalsRatio:        m.GoalsRatio,

		PenaltyMinutes: m.PenaltyMinutes,

		HomeRecord: m.HomeRecord,
		AwayRecord: m.AwayRecord,

		GoalsHomeFormatted:  m.GoalsHomeFormatted,
		GoalsAwayFormatted:  m.GoalsAwayFormatted,
		TotalGoalsFormatted: m.TotalGoalsFormatted,

		TeamPenalty:         m.TeamPenalty,
		TeamPenaltyNegative: m.TeamPenaltyNegative,
		TeamPenaltyPositive: m.TeamPenaltyPositive,
		Dispensation:        m.Dispensation,
		TeamEntryStatus:     m.TeamEntryStatus,
	}
}
