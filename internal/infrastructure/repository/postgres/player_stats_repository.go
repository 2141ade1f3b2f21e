package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/norskhockey/hockeyhub/internal/domain/playerstat"
	"github.com/norskhockey/hockeyhub/internal/platform/logging"
)

type playerStatTableModel struct {
	TournamentID int64 `db:"tournament_id"`
	PersonID     int64 `db:"person_id"`
	OrgID        int64 `db:"org_id"`

	FirstName     string  `db:"first_name"`
	LastName      string  `db:"last_name"`
	TeamName      string  `db:"team_name"`
	TeamShortName *string `db:"team_short_name"`
	Position      *string `db:"position"`

	Rank          *int64 `db:"rank"`
	ScoringPoints int64  `db:"scoring_points"`
	GamesPlayed   int64  `db:"games_played"`
	GoalsScored   int64  `db:"goals_scored"`
	Assists       int64  `db:"assists"`
	PlusMinus     int64  `db:"plus_minus"`
	PIM           int64  `db:"pim"`

	PowerPlayGoals       int64 `db:"power_play_goals"`
	PowerPlayGoalAssists int64 `db:"power_play_goal_assists"`

	ShortHandedGoals       int64 `db:"short_handed_goals"`
	ShortHandedGoalAssists int64 `db:"short_handed_goal_assists"`

	GWG            int64    `db:"gwg"`
	Shots          int64    `db:"shots"`
	ShotsPct       *float64 `db:"shots_pct"`
	FaceOffs       int64    `db:"face_offs"`
	FaceOffsWinPct *float64 `db:"faceoffs_win_pct"`
}

func playerStatToTableModel(tournamentID int64, s playerstat.PlayerStatistic) playerStatTableModel {
	return playerStatTableModel{
		TournamentID: tournamentID,
		PersonID:     s.PersonID,
		OrgID:        s.OrgID,

		FirstName:     s.FirstName,
		LastName:      s.LastName,
		TeamName:      s.TeamName,
		TeamShortName: s.TeamShortName,
		Position:      s.Position,

		Rank:          s.Rank,
		ScoringPoints: s.ScoringPoints,
		GamesPlayed:   s.GamesPlayed,
		GoalsScored:   s.GoalsScored,
		Assists:       s.Assists,
		PlusMinus:     s.PlusMinus,
		PIM:           s.PIM,

		PowerPlayGoals:       s.PowerPlayGoals,
		PowerPlayGoalAssists: s.PowerPlayGoalAssists,

		ShortHandedGoals:       s.ShortHandedGoals,
		ShortHandedGoalAssists: s.ShortHandedGoalAssists,

		GWG:            s.GWG,
		Shots:          s.Shots,
		ShotsPct:       s.ShotsPct,
		FaceOffs:       s.FaceOffs,
		FaceOffsWinPct: s.FaceOffsWinPct,
	}
}

func (m playerStatTableModel) toDomain() playerstat.PlayerStatistic {
	return playerstat.PlayerStatistic{
		TournamentID: m.TournamentID,
		PersonID:     m.PersonID,
		OrgID:        m.OrgID,

		FirstName:     m.FirstName,
		LastName:      m.LastName,
		TeamName:      m.TeamName,
		TeamShortName: m.TeamShortName,
		Position:      m.Position,

		Rank:          m.Rank,
		ScoringPoints: m.ScoringPoints,
		GamesPlayed:   m.GamesPlayed,
		GoalsScored:   m.GoalsScored,
		Assists:       m.Assists,
		PlusMinus:     m.PlusMinus,
		PIM:           m.PIM,

		PowerPlayGoals:       m.PowerPlayGoals,
		PowerPlayGoalAssists: m.PowerPlayGoalAssists,

		ShortHandedGoals:       m.ShortHandedGoals,
		ShortHandedGoalAssists: m.ShortHandedGoalAssists,

		GWG:            m.GWG,
		Shots:          m.Shots,
		ShotsPct:       m.ShotsPct,
		FaceOffs:       m.FaceOffs,
		FaceOffsWinPct: m.FaceOffsWinPct,
	}
}

type PlayerStatsRepository struct {
	db     *sqlx.DB
	logger *logging.Logger
}

func NewPlayerStatsRepository(db *sqlx.DB, logger *logging.Logger) *PlayerStatsRepository {
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayerStatsRepository{db: db, logger: logger}
}

const playerStatInsertQuery = `
INSERT INTO player_statistics (
    tournament_id, person_id, org_id,
    first_name, last_name, team_name, team_short_name, position,
    rank, scoring_points, games_played, goals_scored, assists, plus_minus, pim,
    power_play_goals, power_play_goal_assists,
    short_handed_goals, short_handed_goal_assists,
    gwg, shots, shots_pct, face_offs, faceoffs_win_pct,
    created_at, updated_at
) VALUES (
    :tournament_id, :person_id, :org_id,
    :first_name, :last_name, :team_name, :team_short_name, :position,
    :rank, :scoring_points, :games_played, :goals_scored, :assists, :plus_minus, :pim,
    :power_play_goals, :power_play_goal_assists,
    :short_handed_goals, :short_handed_goal_assists,
    :gwg, :shots, :shots_pct, :face_offs, :faceoffs_win_pct,
    now(), now()
)`

// ReplaceForTournament swaps out the tournament's scoring table. When the
// bulk insert hits a unique violation the transaction rolls back and each
// row is inserted on its own, skipping conflicting person ids.
func (r *PlayerStatsRepository) ReplaceForTournament(ctx context.Context, tournamentID int64, stats []playerstat.PlayerStatistic) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM player_statistics WHERE tournament_id = $1`, tournamentID); err != nil {
		return fmt.Errorf("delete player statistics tournament_id=%d: %w", tournamentID, err)
	}
	if len(stats) == 0 {
		return nil
	}

	if err := r.bulkInsert(ctx, tournamentID, stats); err != nil {
		if !isUniqueViolation(err) {
			return err
		}
		r.logger.WarnContext(ctx, "bulk player statistics insert hit duplicate, falling back to row-by-row",
			"tournament_id", tournamentID,
			"error", err,
		)
		return r.insertRowByRow(ctx, tournamentID, stats)
	}
	return nil
}

func (r *PlayerStatsRepository) bulkInsert(ctx context.Context, tournamentID int64, stats []playerstat.PlayerStatistic) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx insert player statistics: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, stat := range stats {
		if _, err := tx.NamedExecContext(ctx, playerStatInsertQuery, playerStatToTableModel(tournamentID, stat)); err != nil {
			return fmt.Errorf("insert player statistic person_id=%d tournament_id=%d: %w", stat.PersonID, tournamentID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit insert player statistics tx: %w", err)
	}
	return nil
}

func (r *PlayerStatsRepository) insertRowByRow(ctx context.Context, tournamentID int64, stats []playerstat.PlayerStatistic) error {
	var skipped int
	for _, stat := range stats {
		if _, err := r.db.NamedExecContext(ctx, playerStatInsertQuery, playerStatToTableModel(tournamentID, stat)); err != nil {
			if isUniqueViolation(err) {
				skipped++
				r.logger.WarnContext(ctx, "skipping duplicate player statistic",
					"tournament_id", tournamentID,
					"person_id", stat.PersonID,
				)
				continue
			}
			return fmt.Errorf("insert player statistic person_id=%d tournament_id=%d: %w", stat.PersonID, tournamentID, err)
		}
	}

	if skipped > 0 {
		r.logger.InfoContext(ctx, "player statistics fallback insert finished",
			"tournament_id", tournamentID,
			"inserted", len(stats)-skipped,
			"skipped", skipped,
		)
	}
	return nil
}

func (r *PlayerStatsRepository) ListByTournament(ctx context.Context, tournamentID int64) ([]playerstat.PlayerStatistic, error) {
	var rows []playerStatTableModel
	err := r.db.SelectContext(ctx, &rows, `
SELECT tournament_id, person_id, org_id,
       first_name, last_name, team_name, team_short_name, position,
       rank, scoring_points, games_played, goals_scored, assists, plus_minus, pim,
       power_play_goals, power_play_goal_assists,
       short_handed_goals, short_handed_goal_assists,
       gwg, shots, shots_pct, face_offs, faceoffs_win_pct
FROM player_statistics
WHERE tournament_id = $1
ORDER BY rank NULLS LAST, scoring_points DESC, person_id`, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("select player statistics tournament_id=%d: %w", tournamentID, err)
	}

	out := make([]playerstat.PlayerStatistic, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
