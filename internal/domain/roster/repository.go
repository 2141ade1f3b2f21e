package roster

import "context"

// Filter narrows member listings for the reporting layer.
type Filter struct {
	TeamID       int64
	TournamentID int64
	ClubOrgID    int64
	Position     string
	Search       string
}

// Repository describes roster persistence needs from use cases.
type Repository interface {
	ReplaceForTeam(ctx context.Context, teamID int64, members []Member) error
	ListByTeam(ctx context.Context, teamID int64) ([]Member, error)
	List(ctx context.Context, filter Filter) ([]Member, error)
	// ListPositions returns the distinct non-empty positions across rosters.
	ListPositions(ctx context.Context) ([]string, error)
}
