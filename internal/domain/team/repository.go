package team

import "context"

// Filter narrows team listings for the reporting layer.
type Filter struct {
	TournamentID int64
	ClubOrgID    int64
	Search       string
}

// Repository describes team persistence needs from use cases.
type Repository interface {
	// ReplaceForTournament swaps out every team row scoped to the
	// tournament for the given set.
	ReplaceForTournament(ctx context.Context, tournamentID int64, teams []Team) error
	ListByTournament(ctx context.Context, tournamentID int64) ([]Team, error)
	List(ctx context.Context, filter Filter) ([]Team, error)
	// ListClubOrgIDs returns the distinct club organisation ids referenced
	// by persisted teams.
	ListClubOrgIDs(ctx context.Context) ([]int64, error)
	// CountByTournament returns the number of persisted teams per
	// tournament.
	CountByTournament(ctx context.Context) (map[int64]int64, error)
}
