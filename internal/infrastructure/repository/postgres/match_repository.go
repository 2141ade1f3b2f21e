package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/norskhockey/hockeyhub/internal/domain/match"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

const matchInsertQuery = `
INSERT INTO matches (
    match_id, tournament_id, match_no,
    activity_area_id, activity_area_latitude, activity_area_longitude,
    activity_area_name, activity_area_no,
    adm_org_id, arr_org_id, arr_org_no, arr_org_name,
    awayteam_id, awayteam_org_no, awayteam, awayteam_org_name,
    awayteam_overridden_name, awayteam_club_org_id,
    hometeam_id, hometeam, hometeam_org_name, hometeam_overridden_name,
    hometeam_org_no, hometeam_club_org_id,
    round_id, round_name, season_id, tournament_name,
    match_date, match_start_time, match_end_time,
    venue_unit_id, venue_unit_no, venue_id, venue_no, physical_area_id,
    home_goals, away_goals, match_end_result,
    live_arena, live_client_type, status_type_id, status_type,
    last_change_date, spectators,
    actual_match_date, actual_match_start_time, actual_match_end_time,
    sport_id, created_at, updated_at
) VALUES (
    :match_id, :tournament_id, :match_no,
    :activity_area_id, :activity_area_latitude, :activity_area_longitude,
    :activity_area_name, :activity_area_no,
    :adm_org_id, :arr_org_id, :arr_org_no, :arr_org_name,
    :awayteam_id, :awayteam_org_no, :awayteam, :awayteam_org_name,
    :awayteam_overridden_name, :awayteam_club_org_id,
    :hometeam_id, :hometeam, :hometeam_org_name, :hometeam_overridden_name,
    :hometeam_org_no, :hometeam_club_org_id,
    :round_id, :round_name, :season_id, :tournament_name,
    :match_date, :match_start_time, :match_end_time,
    :venue_unit_id, :venue_unit_no, :venue_id, :venue_no, :physical_area_id,
    :home_goals, :away_goals, :match_end_result,
    :live_arena, :live_client_type, :status_type_id, :status_type,
    :last_change_date, :spectators,
    :actual_match_date, :actual_match_start_time, :actual_match_end_time,
    :sport_id, now(), now()
)`

// ReplaceForTournament swaps out the tournament's fixtures.
func (r *MatchRepository) ReplaceForTournament(ctx context.Context, tournamentID int64, matches []match.Match) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM matches WHERE tournament_id = $1`, tournamentID); err != nil {
		return fmt.Errorf("delete matches tournament_id=%d: %w", tournamentID, err)
	}
	if len(matches) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx insert matches: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, item := range matches {
		if _, err := tx.NamedExecContext(ctx, matchInsertQuery, matchToTableModel(tournamentID, item)); err != nil {
			return fmt.Errorf("insert match match_id=%d tournament_id=%d: %w", item.MatchID, tournamentID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit insert matches tx: %w", err)
	}
	return nil
}

func (r *MatchRepository) ListByTournament(ctx context.Context, tournamentID int64) ([]match.Match, error) {
	var rows []matchTableModel
	err := r.db.SelectContext(ctx, &rows, `
SELECT match_id, tournament_id, match_no,
       activity_area_id, activity_area_latitude, activity_area_longitude,
       activity_area_name, activity_area_no,
       adm_org_id, arr_org_id, arr_org_no, arr_org_name,
       awayteam_id, awayteam_org_no, awayteam, awayteam_org_name,
       awayteam_overridden_name, awayteam_club_org_id,
       hometeam_id, hometeam, hometeam_org_name, hometeam_overridden_name,
       hometeam_org_no, hometeam_club_org_id,
       round_id, round_name, season_id, tournament_name,
       match_date, match_start_time, match_end_time,
       venue_unit_id, venue_unit_no, venue_id, venue_no, physical_area_id,
       home_goals, away_goals, match_end_result,
       live_arena, live_client_type, status_type_id, status_type,
       last_change_date, spectators,
       actual_match_date, actual_match_start_time, actual_match_end_time,
       sport_id
FROM matches
WHERE tournament_id = $1
ORDER BY match_date NULLS LAST, match_id`, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("select matches tournament_id=%d: %w", tournamentID, err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
