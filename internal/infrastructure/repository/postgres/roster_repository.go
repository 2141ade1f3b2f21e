package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/norskhockey/hockeyhub/internal/domain/roster"
)

type rosterMemberTableModel struct {
	PersonID    int64      `db:"person_id"`
	TeamID      int64      `db:"team_id"`
	FirstName   *string    `db:"first_name"`
	LastName    *string    `db:"last_name"`
	Nationality *string    `db:"nationality"`
	BirthDate   *time.Time `db:"birth_date"`
	Gender      *string    `db:"gender"`
	Height      *float64   `db:"height"`
	Number      *string    `db:"number"`
	Position    *string    `db:"position"`
	OwningOrgID *int64     `db:"owning_org_id"`
	MemberType  *string    `db:"member_type"`
	ImageURL    *string    `db:"image_url"`
	Image2URL   *string    `db:"image2_url"`
}

func (m rosterMemberTableModel) toDomain() roster.Member {
	return roster.Member{
		PersonID:    m.PersonID,
		TeamID:      m.TeamID,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		Nationality: m.Nationality,
		BirthDate:   m.BirthDate,
		Gender:      m.Gender,
		Height:      m.Height,
		Number:      m.Number,
		Position:    m.Position,
		OwningOrgID: m.OwningOrgID,
		MemberType:  m.MemberType,
		ImageURL:    m.ImageURL,
		Image2URL:   m.Image2URL,
	}
}

type RosterRepository struct {
	db *sqlx.DB
}

func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

const rosterMemberInsertQuery = `
INSERT INTO team_members (
    person_id, team_id, first_name, last_name, nationality, birth_date,
    gender, height, number, position, owning_org_id, member_type,
    image_url, image2_url, created_at, updated_at
) VALUES (
    :person_id, :team_id, :first_name, :last_name, :nationality, :birth_date,
    :gender, :height, :number, :position, :owning_org_id, :member_type,
    :image_url, :image2_url, now(), now()
)`

// ReplaceForTeam swaps out a team's roster. Delete commits before the
// insert transaction starts, mirroring the reload-from-scratch policy.
func (r *RosterRepository) ReplaceForTeam(ctx context.Context, teamID int64, members []roster.Member) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM team_members WHERE team_id = $1`, teamID); err != nil {
		return fmt.Errorf("delete team members team_id=%d: %w", teamID, err)
	}
	if len(members) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx insert team members: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, member := range members {
		model := rosterMemberTableModel{
			PersonID:    member.PersonID,
			TeamID:      teamID,
			FirstName:   member.FirstName,
			LastName:    member.LastName,
			Nationality: member.Nationality,
			BirthDate:   member.BirthDate,
			Gender:      member.Gender,
			Height:      member.Height,
			Number:      member.Number,
			Position:    member.Position,
			OwningOrgID: member.OwningOrgID,
			MemberType:  member.MemberType,
			ImageURL:    member.ImageURL,
			Image2URL:   member.Image2URL,
		}
		if _, err := tx.NamedExecContext(ctx, rosterMemberInsertQuery, model); err != nil {
			return fmt.Errorf("insert team member person_id=%d team_id=%d: %w", member.PersonID, teamID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit insert team members tx: %w", err)
	}
	return nil
}

func (r *RosterRepository) ListByTeam(ctx context.Context, teamID int64) ([]roster.Member, error) {
	var rows []rosterMemberTableModel
	err := r.db.SelectContext(ctx, &rows, `
SELECT person_id, team_id, first_name, last_name, nationality, birth_date,
       gender, height, number, position, owning_org_id, member_type,
       image_url, image2_url
FROM team_members
WHERE team_id = $1
ORDER BY last_name NULLS LAST, first_name NULLS LAST, person_id`, teamID)
	if err != nil {
		return nil, fmt.Errorf("select team members team_id=%d: %w", teamID, err)
	}

	out := make([]roster.Member, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *RosterRepository) List(ctx context.Context, filter roster.Filter) ([]roster.Member, error) {
	query, args := buildRosterListQuery(filter)

	var rows []rosterMemberTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select team members: %w", err)
	}

	out := make([]roster.Member, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// buildRosterListQuery joins through teams when the filter scopes by
// tournament or club, which members do not carry directly.
func buildRosterListQuery(filter roster.Filter) (string, []any) {
	var conditions []string
	var args []any

	needsTeamJoin := filter.TournamentID > 0 || filter.ClubOrgID > 0

	if filter.TeamID > 0 {
		args = append(args, filter.TeamID)
		conditions = append(conditions, fmt.Sprintf("tm.team_id = $%d", len(args)))
	}
	if filter.TournamentID > 0 {
		args = append(args, filter.TournamentID)
		conditions = append(conditions, fmt.Sprintf("t.tournament_id = $%d", len(args)))
	}
	if filter.ClubOrgID > 0 {
		args = append(args, filter.ClubOrgID)
		conditions = append(conditions, fmt.Sprintf("t.club_org_id = $%d", len(args)))
	}
	if position := strings.TrimSpace(filter.Position); position != "" {
		args = append(args, position)
		conditions = append(conditions, fmt.Sprintf("tm.position ILIKE $%d", len(args)))
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		args = append(args, "%"+search+"%")
		conditions = append(conditions, fmt.Sprintf("(tm.first_name ILIKE $%d OR tm.last_name ILIKE $%d)", len(args), len(args)))
	}

	query := `
SELECT tm.person_id, tm.team_id, tm.first_name, tm.last_name, tm.nationality,
       tm.birth_date, tm.gender, tm.height, tm.number, tm.position,
       tm.owning_org_id, tm.member_type, tm.image_url, tm.image2_url
FROM team_members tm`
	if needsTeamJoin {
		query += `
JOIN teams t ON t.team_id = tm.team_id`
	}
	if len(conditions) > 0 {
		query += "\nWHERE " + strings.Join(conditions, " AND ")
	}
	query += "\nORDER BY tm.last_name NULLS LAST, tm.first_name NULLS LAST, tm.person_id"
	return query, args
}

func (r *RosterRepository) ListPositions(ctx context.Context) ([]string, error) {
	var positions []string
	err := r.db.SelectContext(ctx, &positions, `
SELECT DISTINCT position FROM team_members
WHERE position IS NOT NULL AND position <> ''
ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("select member positions: %w", err)
	}
	return positions, nil
}
