package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/norskhockey/hockeyhub/internal/domain/organisation"
)

type OrganisationRepository struct {
	db *sqlx.DB
}

func NewOrganisationRepository(db *sqlx.DB) *OrganisationRepository {
	return &OrganisationRepository{db: db}
}

const organisationUpsertQuery = `
INSERT INTO organisations (
    org_id, reference_id, org_name, abbreviation, describing_name,
    org_type_id, organisation_number, email, home_page, mobile_phone,
    address_line1, address_line2, city, country, country_id, post_code,
    longitude, latitude, org_logo_base64, members, created_at, updated_at
) VALUES (
    :org_id, :reference_id, :org_name, :abbreviation, :describing_name,
    :org_type_id, :organisation_number, :email, :home_page, :mobile_phone,
    :address_line1, :address_line2, :city, :country, :country_id, :post_code,
    :longitude, :latitude, :org_logo_base64, :members, now(), now()
)
ON CONFLICT (org_id) DO UPDATE SET
    reference_id = EXCLUDED.reference_id,
    org_name = EXCLUDED.org_name,
    abbreviation = EXCLUDED.abbreviation,
    describing_name = EXCLUDED.describing_name,
    org_type_id = EXCLUDED.org_type_id,
    organisation_number = EXCLUDED.organisation_number,
    email = EXCLUDED.email,
    home_page = EXCLUDED.home_page,
    mobile_phone = EXCLUDED.mobile_phone,
    address_line1 = EXCLUDED.address_line1,
    address_line2 = EXCLUDED.address_line2,
    city = EXCLUDED.city,
    country = EXCLUDED.country,
    country_id = EXCLUDED.country_id,
    post_code = EXCLUDED.post_code,
    longitude = EXCLUDED.longitude,
    latitude = EXCLUDED.latitude,
    org_logo_base64 = COALESCE(EXCLUDED.org_logo_base64, organisations.org_logo_base64),
    members = EXCLUDED.members,
    updated_at = now()`

// Merge upserts organisations by org id. The COALESCE on org_logo_base64
// keeps a previously stored logo when an update payload carries none.
func (r *OrganisationRepository) Merge(ctx context.Context, orgs []organisation.Organisation) error {
	if len(orgs) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx merge organisations: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, org := range orgs {
		if _, err := tx.NamedExecContext(ctx, organisationUpsertQuery, organisationToTableModel(org)); err != nil {
			return fmt.Errorf("upsert organisation org_id=%d: %w", org.OrgID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit merge organisations tx: %w", err)
	}
	return nil
}

func (r *OrganisationRepository) GetByID(ctx context.Context, orgID int64) (organisation.Organisation, bool, error) {
	var row organisationTableModel
	err := r.db.GetContext(ctx, &row, `SELECT * FROM organisations WHERE org_id = $1`, orgID)
	if err != nil {
		if isNotFound(err) {
			return organisation.Organisation{}, false, nil
		}
		return organisation.Organisation{}, false, fmt.Errorf("get organisation org_id=%d: %w", orgID, err)
	}
	return row.toDomain(), true, nil
}

func (r *OrganisationRepository) List(ctx context.Context) ([]organisation.Organisation, error) {
	var rows []organisationTableModel
	if err := r.db.SelectContext(ctx, &rows, `SELECT * FROM organisations ORDER BY org_name NULLS LAST, org_id`); err != nil {
		return nil, fmt.Errorf("select organisations: %w", err)
	}

	out := make([]organisation.Organisation, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
