package match

import "context"

// Repository describes match persistence needs from use cases.
type Repository interface {
	ReplaceForTournament(ctx context.Context, tournamentID int64, matches []Match) error
	// ListByTournament returns matches ordered by match date ascending.
	ListByTournament(ctx context.Context, tournamentID int64) ([]Match, error)
}
