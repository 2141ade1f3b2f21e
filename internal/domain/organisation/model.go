package organisation

import "fmt"

// Organisation is a club or federation body that owns teams.
type Organisation struct {
	OrgID              int64
	ReferenceID        *string
	OrgName            *string
	Abbreviation       *string
	DescribingName     *string
	OrgTypeID          *int64
	OrganisationNumber *string
	Email              *string
	HomePage           *string
	MobilePhone        *string
	AddressLine1       *string
	AddressLine2       *string
	City               *string
	Country            *string
	CountryID          *string
	PostCode           *string
	Longitude          *float64
	Latitude           *float64
	OrgLogoBase64      *string
	Members            *int64
}

func (o Organisation) Validate() error {
	if o.OrgID <= 0 {
		return fmt.Errorf("organisation org id must be positive")
	}

	return nil
}
