package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/norskhockey/hockeyhub/internal/domain/standing"
)

type StandingRepository struct {
	db *sqlx.DB
}

func NewStandingRepository(db *sqlx.DB) *StandingRepository {
	return &StandingRepository{db: db}
}

const standingInsertQuery = `
INSERT INTO standings (
    tournament_id, team_id, team_name, overridden_name, position, entry_id,
    matches_played, matches_home, matches_away,
    points, points_home, points_away, points_start, total_points,
    victories, victories_home, victories_away,
    victories_fulltime_total, victories_fulltime_home, victories_fulltime_away,
    victories_overtime_total, victories_overtime_home, victories_overtime_away,
    victories_penalties_total, victories_penalties_home, victories_penalties_away,
    draws, draws_home, draws_away,
    losses, losses_home, losses_away,
    losses_fulltime_total, losses_fulltime_home, losses_fulltime_away,
    losses_overtime_total, losses_overtime_home, losses_overtime_away,
    losses_penalties_total, losses_penalties_home, losses_penalties_away,
    goals_scored, goals_scored_home, goals_scored_away,
    goals_conceded, goals_conceded_home, goals_conceded_away,
    goals_diff, goals_ratio, penalty_minutes,
    home_record, away_record,
    goals_home_formatted, goals_away_formatted, total_goals_formatted,
    team_penalty, team_penalty_negative, team_penalty_positive,
    dispensation, team_entry_status,
    created_at, updated_at
) VALUES (
    :tournament_id, :team_id, :team_name, :overridden_name, :position, :entry_id,
    :matches_played, :matches_home, :matches_away,
    :points, :points_home, :points_away, :points_start, :total_points,
    :victories, :victories_home, :victories_away,
    :victories_fulltime_total, :victories_fulltime_home, :victories_fulltime_away,
    :victories_overtime_total, :victories_overtime_home, :victories_overtime_away,
    :victories_penalties_total, :victories_penalties_home, :victories_penalties_away,
    :draws, :draws_home, :draws_away,
    :losses, :losses_home, :losses_away,
    :losses_fulltime_total, :losses_fulltime_home, :losses_fulltime_away,
    :losses_overtime_total, :losses_overtime_home, :losses_overtime_away,
    :losses_penalties_total, :losses_penalties_home, :losses_penalties_away,
    :goals_scored, :goals_scored_home, :goals_scored_away,
    :goals_conceded, :goals_conceded_home, :goals_conceded_away,
    :goals_diff, :goals_ratio, :penalty_minutes,
    :home_record, :away_record,
    :goals_home_formatted, :goals_away_formatted, :total_goals_formatted,
    :team_penalty, :team_penalty_negative, :team_penalty_positive,
    :dispensation, :team_entry_status,
    now(), now()
)`

// ReplaceForTournament swaps out the tournament's table.
func (r *StandingRepository) ReplaceForTournament(ctx context.Context, tournamentID int64, standings []standing.Standing) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM standings WHERE tournament_id = $1`, tournamentID); err != nil {
		return fmt.Errorf("delete standings tournament_id=%d: %w", tournamentID, err)
	}
	if len(standings) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx insert standings: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, row := range standings {
		if _, err := tx.NamedExecContext(ctx, standingInsertQuery, standingToTableModel(tournamentID, row)); err != nil {
			return fmt.Errorf("insert standing tournament_id=%d team_id=%d: %w", tournamentID, row.TeamID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit insert standings tx: %w", err)
	}
	return nil
}

func (r *StandingRepository) ListByTournament(ctx context.Context, tournamentID int64) ([]standing.Standing, error) {
	var rows []standingTableModel
	err := r.db.SelectContext(ctx, &rows, `
SELECT tournament_id, team_id, team_name, overridden_name, position, entry_id,
       matches_played, matches_home, matches_away,
       points, points_home, points_away, points_start, total_points,
       victories, victories_home, victories_away,
       victories_fulltime_total, victories_fulltime_home, victories_fulltime_away,
       victories_overtime_total, victories_overtime_home, victories_overtime_away,
       victories_penalties_total, victories_penalties_home, victories_penalties_away,
       draws, draws_home, draws_away,
       losses, losses_home, losses_away,
       losses_fulltime_total, losses_fulltime_home, losses_fulltime_away,
       losses_overtime_total, losses_overtime_home, losses_overtime_away,
       losses_penalties_total, losses_penalties_home, losses_penalties_away,
       goals_scored, goals_scored_home, goals_scored_away,
       goals_conceded, goals_conceded_home, goals_conceded_away,
       goals_diff, goals_ratio, penalty_minutes,
       home_record, away_record,
       goals_home_formatted, goals_away_formatted, total_goals_formatted,
       team_penalty, team_penalty_negative, team_penalty_positive,
       dispensation, team_entry_status
FROM standings
WHERE tournament_id = $1
ORDER BY position NULLS LAST, team_id`, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("select standings tournament_id=%d: %w", tournamentID, err)
	}

	out := make([]standing.Standing, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
