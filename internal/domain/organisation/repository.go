package organisation

import "context"

// Repository describes organisation persistence needs from use cases.
type Repository interface {
	// Merge upserts by org id. An existing logo survives an update whose
	// payload carries no logo.
	Merge(ctx context.Context, orgs []Organisation) error
	GetByID(ctx context.Context, orgID int64) (Organisation, bool, error)
	List(ctx context.Context) ([]Organisation, error)
}
