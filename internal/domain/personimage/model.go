package personimage

import (
	"fmt"
	"time"
)

// Record tracks the blob store copies of a person's roster photos: the
// object keys we wrote, the upstream URLs they came from, and when we last
// fetched them.
type Record struct {
	PersonID          int64
	ImageObjectKey    *string
	Image2ObjectKey   *string
	OriginalImageURL  *string
	OriginalImage2URL *string
	LastFetchedAt     *time.Time
	Notes             *string
}

func (r Record) Validate() error {
	if r.PersonID <= 0 {
		return fmt.Errorf("person image record person id must be positive")
	}

	return nil
}
