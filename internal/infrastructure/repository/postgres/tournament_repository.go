package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/norskhockey/hockeyhub/internal/domain/tournament"
)

type TournamentRepository struct {
	db *sqlx.DB
}

func NewTournamentRepository(db *sqlx.DB) *TournamentRepository {
	return &TournamentRepository{db: db}
}

const tournamentUpsertQuery = `
INSERT INTO tournaments (
    tournament_id, season_id, tournament_no, from_date, to_date,
    is_archival, is_deleted, org_id_owner, parent_tournament_id,
    season_name, tournament_name, tournament_short_name, division, logo_url,
    is_table_published, is_result_published, are_matches_published,
    publish_matches_to_date, are_referees_published, publish_referees_to_date,
    are_statistics_published, are_teams_published, live_arena, live_client,
    withdrawals_visible, team_entry, tournament_type, sport_id,
    created_at, updated_at
) VALUES (
    :tournament_id, :season_id, :tournament_no, :from_date, :to_date,
    :is_archival, :is_deleted, :org_id_owner, :parent_tournament_id,
    :season_name, :tournament_name, :tournament_short_name, :division, :logo_url,
    :is_table_published, :is_result_published, :are_matches_published,
    :publish_matches_to_date, :are_referees_published, :publish_referees_to_date,
    :are_statistics_published, :are_teams_published, :live_arena, :live_client,
    :withdrawals_visible, :team_entry, :tournament_type, :sport_id,
    now(), now()
)
ON CONFLICT (tournament_id) DO UPDATE SET
    season_id = EXCLUDED.season_id,
    tournament_no = EXCLUDED.tournament_no,
    from_date = EXCLUDED.from_date,
    to_date = EXCLUDED.to_date,
    is_archival = EXCLUDED.is_archival,
    is_deleted = EXCLUDED.is_deleted,
    org_id_owner = EXCLUDED.org_id_owner,
    parent_tournament_id = EXCLUDED.parent_tournament_id,
    season_name = EXCLUDED.season_name,
    tournament_name = EXCLUDED.tournament_name,
    tournament_short_name = EXCLUDED.tournament_short_name,
    division = EXCLUDED.division,
    logo_url = EXCLUDED.logo_url,
    is_table_published = EXCLUDED.is_table_published,
    is_result_published = EXCLUDED.is_result_published,
    are_matches_published = EXCLUDED.are_matches_published,
    publish_matches_to_date = EXCLUDED.publish_matches_to_date,
    are_referees_published = EXCLUDED.are_referees_published,
    publish_referees_to_date = EXCLUDED.publish_referees_to_date,
    are_statistics_published = EXCLUDED.are_statistics_published,
    are_teams_published = EXCLUDED.are_teams_published,
    live_arena = EXCLUDED.live_arena,
    live_client = EXCLUDED.live_client,
    withdrawals_visible = EXCLUDED.withdrawals_visible,
    team_entry = EXCLUDED.team_entry,
    tournament_type = EXCLUDED.tournament_type,
    sport_id = EXCLUDED.sport_id,
    updated_at = now()`

const tournamentClassUpsertQuery = `
INSERT INTO tournament_classes (
    tournament_id, class_id, class_name, from_age, to_age,
    allowed_from_age, allowed_to_age, gender, live_arena_storage
) VALUES (
    :tournament_id, :class_id, :class_name, :from_age, :to_age,
    :allowed_from_age, :allowed_to_age, :gender, :live_arena_storage
)
ON CONFLICT (tournament_id, class_id) DO UPDATE SET
    class_name = EXCLUDED.class_name,
    from_age = EXCLUDED.from_age,
    to_age = EXCLUDED.to_age,
    allowed_from_age = EXCLUDED.allowed_from_age,
    allowed_to_age = EXCLUDED.allowed_to_age,
    gender = EXCLUDED.gender,
    live_arena_storage = EXCLUDED.live_arena_storage`

// Merge upserts tournaments and their classes by natural key.
func (r *TournamentRepository) Merge(ctx context.Context, tournaments []tournament.Tournament) error {
	if len(tournaments) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx merge tournaments: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, item := range tournaments {
		if _, err := tx.NamedExecContext(ctx, tournamentUpsertQuery, tournamentToTableModel(item)); err != nil {
			return fmt.Errorf("upsert tournament tournament_id=%d: %w", item.TournamentID, err)
		}
		for _, class := range item.Classes {
			model := tournamentClassTableModel{
				TournamentID:     item.TournamentID,
				ClassID:          class.ClassID,
				ClassName:        class.ClassName,
				FromAge:          class.FromAge,
				ToAge:            class.ToAge,
				AllowedFromAge:   class.AllowedFromAge,
				AllowedToAge:     class.AllowedToAge,
				Gender:           class.Gender,
				LiveArenaStorage: class.LiveArenaStorage,
			}
			if _, err := tx.NamedExecContext(ctx, tournamentClassUpsertQuery, model); err != nil {
				return fmt.Errorf("upsert tournament class tournament_id=%d class_id=%d: %w", item.TournamentID, class.ClassID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit merge tournaments tx: %w", err)
	}
	return nil
}

func (r *TournamentRepository) GetByID(ctx context.Context, tournamentID int64) (tournament.Tournament, bool, error) {
	var row tournamentTableModel
	err := r.db.GetContext(ctx, &row, `SELECT * FROM tournaments WHERE tournament_id = $1`, tournamentID)
	if err != nil {
		if isNotFound(err) {
			return tournament.Tournament{}, false, nil
		}
		return tournament.Tournament{}, false, fmt.Errorf("get tournament tournament_id=%d: %w", tournamentID, err)
	}

	out := row.toDomain()
	classes, err := r.listClasses(ctx, tournamentID)
	if err != nil {
		return tournament.Tournament{}, false, err
	}
	out.Classes = classes
	return out, true, nil
}

func (r *TournamentRepository) ListBySeason(ctx context.Context, seasonID int64) ([]tournament.Tournament, error) {
	var rows []tournamentTableModel
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM tournaments WHERE season_id = $1 ORDER BY tournament_name NULLS LAST, tournament_id`, seasonID)
	if err != nil {
		return nil, fmt.Errorf("select tournaments season_id=%d: %w", seasonID, err)
	}
	return r.attachClasses(ctx, rows)
}

func (r *TournamentRepository) List(ctx context.Context) ([]tournament.Tournament, error) {
	var rows []tournamentTableModel
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM tournaments ORDER BY season_id DESC, tournament_name NULLS LAST, tournament_id`)
	if err != nil {
		return nil, fmt.Errorf("select tournaments: %w", err)
	}
	return r.attachClasses(ctx, rows)
}

func (r *TournamentRepository) attachClasses(ctx context.Context, rows []tournamentTableModel) ([]tournament.Tournament, error) {
	out := make([]tournament.Tournament, 0, len(rows))
	for _, row := range rows {
		item := row.toDomain()
		classes, err := r.listClasses(ctx, row.TournamentID)
		if err != nil {
			return nil, err
		}
		item.Classes = classes
		out = append(out, item)
	}
	return out, nil
}

func (r *TournamentRepository) listClasses(ctx context.Context, tournamentID int64) ([]tournament.Class, error) {
	var rows []tournamentClassTableModel
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM tournament_classes WHERE tournament_id = $1 ORDER BY class_id`, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("select tournament classes tournament_id=%d: %w", tournamentID, err)
	}

	out := make([]tournament.Class, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
