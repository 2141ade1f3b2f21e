package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/norskhockey/hockeyhub/internal/domain/team"
)

type teamTableModel struct {
	TeamID         int64   `db:"team_id"`
	TournamentID   int64   `db:"tournament_id"`
	ClubOrgID      *int64  `db:"club_org_id"`
	TeamNo         *int64  `db:"team_no"`
	TeamName       *string `db:"team_name"`
	OverriddenName *string `db:"overridden_name"`
	DescribingName *string `db:"describing_name"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		TeamID:         m.TeamID,
		TournamentID:   m.TournamentID,
		ClubOrgID:      m.ClubOrgID,
		TeamNo:         m.TeamNo,
		TeamName:       m.TeamName,
		OverriddenName: m.OverriddenName,
		DescribingName: m.DescribingName,
	}
}

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

const teamInsertQuery = `
INSERT INTO teams (
    team_id, tournament_id, club_org_id, team_no,
    team_name, overridden_name, describing_name
) VALUES (
    :team_id, :tournament_id, :club_org_id, :team_no,
    :team_name, :overridden_name, :describing_name
)`

// ReplaceForTournament deletes the tournament's teams and inserts the new
// set. The delete commits on its own so a periodic reload never compounds
// duplicates even if the insert fails and the next run starts fresh.
func (r *TeamRepository) ReplaceForTournament(ctx context.Context, tournamentID int64, teams []team.Team) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM teams WHERE tournament_id = $1`, tournamentID); err != nil {
		return fmt.Errorf("delete teams tournament_id=%d: %w", tournamentID, err)
	}
	if len(teams) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx insert teams: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, item := range teams {
		model := teamTableModel{
			TeamID:         item.TeamID,
			TournamentID:   tournamentID,
			ClubOrgID:      item.ClubOrgID,
			TeamNo:         item.TeamNo,
			TeamName:       item.TeamName,
			OverriddenName: item.OverriddenName,
			DescribingName: item.DescribingName,
		}
		if _, err := tx.NamedExecContext(ctx, teamInsertQuery, model); err != nil {
			return fmt.Errorf("insert team team_id=%d tournament_id=%d: %w", item.TeamID, tournamentID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit insert teams tx: %w", err)
	}
	return nil
}

func (r *TeamRepository) ListByTournament(ctx context.Context, tournamentID int64) ([]team.Team, error) {
	var rows []teamTableModel
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM teams WHERE tournament_id = $1 ORDER BY team_name NULLS LAST, team_id`, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("select teams tournament_id=%d: %w", tournamentID, err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TeamRepository) List(ctx context.Context, filter team.Filter) ([]team.Team, error) {
	query, args := buildTeamListQuery(filter)

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func buildTeamListQuery(filter team.Filter) (string, []any) {
	var conditions []string
	var args []any

	if filter.TournamentID > 0 {
		args = append(args, filter.TournamentID)
		conditions = append(conditions, fmt.Sprintf("tournament_id = $%d", len(args)))
	}
	if filter.ClubOrgID > 0 {
		args = append(args, filter.ClubOrgID)
		conditions = append(conditions, fmt.Sprintf("club_org_id = $%d", len(args)))
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		args = append(args, "%"+search+"%")
		conditions = append(conditions, fmt.Sprintf("(team_name ILIKE $%d OR overridden_name ILIKE $%d)", len(args), len(args)))
	}

	query := `SELECT * FROM teams`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY team_name NULLS LAST, team_id"
	return query, args
}

func (r *TeamRepository) ListClubOrgIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	err := r.db.SelectContext(ctx, &ids,
		`SELECT DISTINCT club_org_id FROM teams WHERE club_org_id IS NOT NULL ORDER BY club_org_id`)
	if err != nil {
		return nil, fmt.Errorf("select club org ids: %w", err)
	}
	return ids, nil
}

func (r *TeamRepository) CountByTournament(ctx context.Context) (map[int64]int64, error) {
	rows := []struct {
		TournamentID int64 `db:"tournament_id"`
		TeamCount    int64 `db:"team_count"`
	}{}
	err := r.db.SelectContext(ctx, &rows,
		`SELECT tournament_id, COUNT(*) AS team_count FROM teams GROUP BY tournament_id`)
	if err != nil {
		return nil, fmt.Errorf("count teams per tournament: %w", err)
	}

	counts := make(map[int64]int64, len(rows))
	for _, row := range rows {
		counts[row.TournamentID] = row.TeamCount
	}
	return counts, nil
}
