package postgres

import (
	"time"

	"github.com/norskhockey/hockeyhub/internal/domain/organisation"
)

type organisationTableModel struct {
	OrgID              int64    `db:"org_id"`
	ReferenceID        *string  `db:"reference_id"`
	OrgName            *string  `db:"org_name"`
	Abbreviation       *string  `db:"abbreviation"`
	DescribingName     *string  `db:"describing_name"`
	OrgTypeID          *int64   `db:"org_type_id"`
	OrganisationNumber *string  `db:"organisation_number"`
	Email              *string  `db:"email"`
	HomePage           *string  `db:"home_page"`
	MobilePhone        *string  `db:"mobile_phone"`
	AddressLine1       *string  `db:"address_line1"`
	AddressLine2       *string  `db:"address_line2"`
	City               *string  `db:"city"`
	Country            *string  `db:"country"`
	CountryID          *string  `db:"country_id"`
	PostCode           *string  `db:"post_code"`
	Longitude          *float64 `db:"longitude"`
	Latitude           *float64 `db:"latitude"`
	OrgLogoBase64      *string  `db:"org_logo_base64"`
	Members            *int64   `db:"members"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func organisationToTableModel(org organisation.Organisation) organisationTableModel {
	return organisationTableModel{
		OrgID:              org.OrgID,
		ReferenceID:        org.ReferenceID,
		OrgName:            org.OrgName,
		Abbreviation:       org.Abbreviation,
		DescribingName:     org.DescribingName,
		OrgTypeID:          org.OrgTypeID,
		OrganisationNumber: org.OrganisationNumber,
		Email:              org.Email,
		HomePage:           org.HomePage,
		MobilePhone:        org.MobilePhone,
		AddressLine1:       org.AddressLine1,
		AddressLine2:       org.AddressLine2,
		City:               org.City,
		Country:            org.Country,
		CountryID:          org.CountryID,
		PostCode:           org.PostCode,
		Longitude:          org.Longitude,
		Latitude:           org.Latitude,
		OrgLogoBase64:      org.OrgLogoBase64,
		Members:            org.Members,
	}
}

func (m organisationTableModel) toDomain() organisation.Organisation {
	return organisation.Organisation{
		OrgID:              m.OrgID,
		ReferenceID:        m.ReferenceID,
		OrgName:            m.OrgName,
		Abbreviation:       m.Abbreviation,
		DescribingName:     m.DescribingName,
		OrgTypeID:          m.OrgTypeID,
		OrganisationNumber: m.OrganisationNumber,
		Email:              m.Email,
		HomePage:           m.HomePage,
		MobilePhone:        m.MobilePhone,
		AddressLine1:       m.AddressLine1,
		AddressLine2:       m.AddressLine2,
		City:               m.City,
		Country:            m.Country,
		CountryID:          m.CountryID,
		PostCode:           m.PostCode,
		Longitude:          m.Longitude,
		Latitude:           m.Latitude,
		OrgLogoBase64:      m.OrgLogoBase64,
		Members:            m.Members,
	}
}
