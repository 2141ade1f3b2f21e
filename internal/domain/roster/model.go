package roster

import (
	"fmt"
	"time"
)

// Member is a person attached to a team roster: player, coach, or support
// staff, distinguished by MemberType.
type Member struct {
	PersonID    int64
	TeamID      int64
	FirstName   *string
	LastName    *string
	Nationality *string
	BirthDate   *time.Time
	Gender      *string
	Height      *float64
	Number      *string
	Position    *string
	OwningOrgID *int64
	MemberType  *string
	ImageURL    *string
	Image2URL   *string
}

func (m Member) Validate() error {
	if m.PersonID <= 0 {
		return fmt.Errorf("member person id must be positive")
	}
	if m.TeamID <= 0 {
		return fmt.Errorf("member team id must be positive")
	}

	return nil
}

func (m Member) FullName() string {
	first, last := "", ""
	if m.FirstName != nil {
		first = *m.FirstName
	}
	if m.LastName != nil {
		last = *m.LastName
	}
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}
