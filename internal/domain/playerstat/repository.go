package playerstat

import "context"

// Repository describes player statistic persistence needs from use cases.
type Repository interface {
	// ReplaceForTournament swaps out the tournament's scoring table. On a
	// unique violation during the bulk insert the implementation falls back
	// to row-by-row inserts, skipping conflicting rows.
	ReplaceForTournament(ctx context.Context, tournamentID int64, stats []PlayerStatistic) error
	// ListByTournament returns rows ordered by rank ascending.
	ListByTournament(ctx context.Context, tournamentID int64) ([]PlayerStatistic, error)
}
