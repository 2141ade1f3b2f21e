package personimage

import "context"

// Repository describes person image bookkeeping needs from use cases.
type Repository interface {
	Upsert(ctx context.Context, record Record) error
	GetByPersonID(ctx context.Context, personID int64) (Record, bool, error)
}
