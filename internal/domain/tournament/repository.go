package tournament

import "context"

// Repository describes tournament persistence needs from use cases.
type Repository interface {
	// Merge upserts tournaments and their classes by natural key.
	Merge(ctx context.Context, tournaments []Tournament) error
	GetByID(ctx context.Context, tournamentID int64) (Tournament, bool, error)
	ListBySeason(ctx context.Context, seasonID int64) ([]Tournament, error)
	List(ctx context.Context) ([]Tournament, error)
}
