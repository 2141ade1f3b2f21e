package tournament

import (
	"fmt"
	"time"
)

// Tournament is a competition inside a season, for example a league series
// or a cup group.
type Tournament struct {
	TournamentID          int64
	SeasonID              int64
	TournamentNo          *string
	FromDate              *time.Time
	ToDate                *time.Time
	IsArchival            *bool
	IsDeleted             *bool
	OrgIDOwner            *int64
	ParentTournamentID    *int64
	SeasonName            *string
	TournamentName        *string
	TournamentShortName   *string
	Division              *int64
	LogoURL               *string
	IsTablePublished      *bool
	IsResultPublished     *bool
	AreMatchesPublished   *bool
	PublishMatchesToDate  *time.Time
	AreRefereesPublished  *bool
	PublishRefereesToDate *time.Time
	AreStatisticsPublished *bool
	AreTeamsPublished     *bool
	LiveArena             *bool
	LiveClient            *bool
	WithdrawalsVisible    *bool
	TeamEntry             *bool
	TournamentType        *string
	SportID               *int64

	Classes []Class
}

// Class is an age/gender bracket attached to a tournament.
type Class struct {
	TournamentID     int64
	ClassID          int64
	ClassName        *string
	FromAge          *int64
	ToAge            *int64
	AllowedFromAge   *int64
	AllowedToAge     *int64
	Gender           *string
	LiveArenaStorage *string
}

func (t Tournament) Validate() error {
	if t.TournamentID <= 0 {
		return fmt.Errorf("tournament id must be positive")
	}
	if t.SeasonID <= 0 {
		return fmt.Errorf("tournament season id must be positive")
	}
	for _, class := range t.Classes {
		if class.ClassID <= 0 {
			return fmt.Errorf("tournament class id must be positive")
		}
	}

	return nil
}
