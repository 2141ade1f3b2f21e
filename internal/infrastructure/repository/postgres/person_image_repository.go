package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/norskhockey/hockeyhub/internal/domain/personimage"
)

type personImageTableModel struct {
	PersonID          int64      `db:"person_id"`
	ImageObjectKey    *string    `db:"image_object_key"`
	Image2ObjectKey   *string    `db:"image2_object_key"`
	OriginalImageURL  *string    `db:"original_image_url"`
	OriginalImage2URL *string    `db:"original_image2_url"`
	LastFetchedAt     *time.Time `db:"last_fetched_at"`
	Notes             *string    `db:"notes"`
}

func (m personImageTableModel) toDomain() personimage.Record {
	return personimage.Record{
		PersonID:          m.PersonID,
		ImageObjectKey:    m.ImageObjectKey,
		Image2ObjectKey:   m.Image2ObjectKey,
		OriginalImageURL:  m.OriginalImageURL,
		OriginalImage2URL: m.OriginalImage2URL,
		LastFetchedAt:     m.LastFetchedAt,
		Notes:             m.Notes,
	}
}

type PersonImageRepository struct {
	db *sqlx.DB
}

func NewPersonImageRepository(db *sqlx.DB) *PersonImageRepository {
	return &PersonImageRepository{db: db}
}

const personImageUpsertQuery = `
INSERT INTO team_member_custom_data (
    person_id, image_object_key, image2_object_key,
    original_image_url, original_image2_url, last_fetched_at, notes,
    created_at, updated_at
) VALUES (
    :person_id, :image_object_key, :image2_object_key,
    :original_image_url, :original_image2_url, :last_fetched_at, :notes,
    now(), now()
)
ON CONFLICT (person_id) DO UPDATE SET
    image_object_key = COALESCE(EXCLUDED.image_object_key, team_member_custom_data.image_object_key),
    image2_object_key = COALESCE(EXCLUDED.image2_object_key, team_member_custom_data.image2_object_key),
    original_image_url = COALESCE(EXCLUDED.original_image_url, team_member_custom_data.original_image_url),
    original_image2_url = COALESCE(EXCLUDED.original_image2_url, team_member_custom_data.original_image2_url),
    last_fetched_at = EXCLUDED.last_fetched_at,
    notes = EXCLUDED.notes,
    updated_at = now()`

// Upsert merges the record by person id. The COALESCE on the object
// keys and source urls keeps a previously mirrored variant when a
// refresh only managed to download the other one.
func (r *PersonImageRepository) Upsert(ctx context.Context, record personimage.Record) error {
	model := personImageTableModel{
		PersonID:          record.PersonID,
		ImageObjectKey:    record.ImageObjectKey,
		Image2ObjectKey:   record.Image2ObjectKey,
		OriginalImageURL:  record.OriginalImageURL,
		OriginalImage2URL: record.OriginalImage2URL,
		LastFetchedAt:     record.LastFetchedAt,
		Notes:             record.Notes,
	}
	if _, err := r.db.NamedExecContext(ctx, personImageUpsertQuery, model); err != nil {
		return fmt.Errorf("upsert person image person_id=%d: %w", record.PersonID, err)
	}
	return nil
}

func (r *PersonImageRepository) GetByPersonID(ctx context.Context, personID int64) (personimage.Record, bool, error) {
	var row personImageTableModel
	err := r.db.GetContext(ctx, &row, `
SELECT person_id, image_object_key, image2_object_key,
       original_image_url, original_image2_url, last_fetched_at, notes
FROM team_member_custom_data
WHERE person_id = $1`, personID)
	if err != nil {
		if isNotFound(err) {
			return personimage.Record{}, false, nil
		}
		return personimage.Record{}, false, fmt.Errorf("get person image person_id=%d: %w", personID, err)
	}
	return row.toDomain(), true, nil
}
