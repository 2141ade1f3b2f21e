package standing

import "context"

// Repository describes standings persistence needs from use cases.
type Repository interface {
	ReplaceForTournament(ctx context.Context, tournamentID int64, standings []Standing) error
	// ListByTournament returns rows ordered by table position ascending.
	ListByTournament(ctx context.Context, tournamentID int64) ([]Standing, error)
}
