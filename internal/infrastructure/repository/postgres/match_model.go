package postgres

import (
	"time"

	"github.com/norskhockey/hockeyhub/internal/domain/match"
)

type matchTableModel struct {
	MatchID      int64   `db:"match_id"`
	TournamentID int64   `db:"tournament_id"`
	MatchNo      *string `db:"match_no"`

	ActivityAreaID        *int64   `db:"activity_area_id"`
	ActivityAreaLatitude  *float64 `db:"activity_area_latitude"`
	ActivityAreaLongitude *float64 `db:"activity_area_longitude"`
	ActivityAreaName      *string  `db:"activity_area_name"`
	ActivityAreaNo        *string  `db:"activity_area_no"`

	AdmOrgID   *int64  `db:"adm_org_id"`
	ArrOrgID   *int64  `db:"arr_org_id"`
	ArrOrgNo   *string `db:"arr_org_no"`
	ArrOrgName *string `db:"arr_org_name"`

	AwayTeamID             *int64  `db:"awayteam_id"`
	AwayTeamOrgNo          *string `db:"awayteam_org_no"`
	AwayTeam               *string `db:"awayteam"`
	AwayTeamOrgName        *string `db:"awayteam_org_name"`
	AwayTeamOverriddenName *string `db:"awayteam_overridden_name"`
	AwayTeamClubOrgID      *int64  `db:"awayteam_club_org_id"`

	HomeTeamID             *int64  `db:"hometeam_id"`
	HomeTeam               *string `db:"hometeam"`
	HomeTeamOrgName        *string `db:"hometeam_org_name"`
	HomeTeamOverriddenName *string `db:"hometeam_overridden_name"`
	HomeTeamOrgNo          *string `db:"hometeam_org_no"`
	HomeTeamClubOrgID      *int64  `db:"hometeam_club_org_id"`

	RoundID        *int64  `db:"round_id"`
	RoundName      *string `db:"round_name"`
	SeasonID       *int64  `db:"season_id"`
	TournamentName *string `db:"tournament_name"`

	MatchDate      *time.Time `db:"match_date"`
	MatchStartTime *int64     `db:"match_start_time"`
	MatchEndTime   *int64     `db:"match_end_time"`

	VenueUnitID    *int64  `db:"venue_unit_id"`
	VenueUnitNo    *string `db:"venue_unit_no"`
	VenueID        *int64  `db:"venue_id"`
	VenueNo        *string `db:"venue_no"`
	PhysicalAreaID *int64  `db:"physical_area_id"`

	HomeGoals      *int64  `db:"home_goals"`
	AwayGoals      *int64  `db:"away_goals"`
	MatchEndResult *string `db:"match_end_result"`

	LiveArena      *bool      `db:"live_arena"`
	LiveClientType *string    `db:"live_client_type"`
	StatusTypeID   *int64     `db:"status_type_id"`
	StatusType     *string    `db:"status_type"`
	LastChangeDate *time.Time `db:"last_change_date"`
	Spectators     *int64     `db:"spectators"`

	ActualMatchDate      *time.Time `db:"actual_match_date"`
	ActualMatchStartTime *int64     `db:"actual_match_start_time"`
	ActualMatchEndTime   *int64     `db:"actual_match_end_time"`
	SportID              *int64     `db:"sport_id"`
}

func matchToTableModel(tournamentID int64, m match.Match) matchTableModel {
	return matchTableModel{
		MatchID:      m.MatchID,
		TournamentID: tournamentID,
		MatchNo:      m.MatchNo,

		ActivityAreaID:        m.ActivityAreaID,
		ActivityAreaLatitude:  m.ActivityAreaLatitude,
		ActivityAreaLongitude: m.ActivityAreaLongitude,
		ActivityAreaName:      m.ActivityAreaName,
		ActivityAreaNo:        m.ActivityAreaNo,

		AdmOrgID:   m.AdmOrgID,
		ArrOrgID:   m.ArrOrgID,
		ArrOrgNo:   m.ArrOrgNo,
		ArrOrgName: m.ArrOrgName,

		AwayTeamID:             m.AwayTeamID,
		AwayTeamOrgNo:          m.AwayTeamOrgNo,
		AwayTeam:               m.AwayTeam,
		AwayTeamOrgName:        m.AwayTeamOrgName,
		AwayTeamOverriddenName: m.AwayTeamOverriddenName,
		AwayTeamClubOrgID:      m.AwayTeamClubOrgID,

		HomeTeamID:             m.HomeTeamID,
		HomeTeam:               m.HomeTeam,
		HomeTeamOrgName:        m.HomeTeamOrgName,
		HomeTeamOverriddenName: m.HomeTeamOverriddenName,
		HomeTeamOrgNo:          m.HomeTeamOrgNo,
		HomeTeamClubOrgID:      m.HomeTeamClubOrgID,

		RoundID:        m.RoundID,
		RoundName:      m.RoundName,
		SeasonID:       m.SeasonID,
		TournamentName: m.TournamentName,

		MatchDate:      m.MatchDate,
		MatchStartTime: m.MatchStartTime,
		MatchEndTime:   m.MatchEndTime,

		VenueUnitID:    m.VenueUnitID,
		VenueUnitNo:    m.VenueUnitNo,
		VenueID:        m.VenueID,
		VenueNo:        m.VenueNo,
		PhysicalAreaID: m.PhysicalAreaID,

		HomeGoals:      m.HomeGoals,
		AwayGoals:      m.AwayGoals,
		MatchEndResult: m.MatchEndResult,

		LiveArena:      m.LiveArena,
		LiveClientType: m.LiveClientType,
		StatusTypeID:   m.StatusTypeID,
		StatusType:     m.StatusType,
		LastChangeDate: m.LastChangeDate,
		Spectators:     m.Spectators,

		ActualMatchDate:      m.ActualMatchDate,
		ActualMatchStartTime: m.ActualMatchStartTime,
		ActualMatchEndTime:   m.ActualMatchEndTime,
		SportID:              m.SportID,
	}
}

func (m matchTableModel) toDomain() match.Match {
	return match.Match{
		MatchID:      m.MatchID,
		TournamentID: m.TournamentID,
		MatchNo:      m.MatchNo,

		ActivityAreaID:        m.ActivityAreaID,
		ActivityAreaLatitude:  m.ActivityAreaLatitude,
		ActivityAreaLongitude: m.ActivityAreaLongitude,
		ActivityAreaName:      m.ActivityAreaName,
		ActivityAreaNo:        m.ActivityAreaNo,

		AdmOrgID:   m.AdmOrgID,
		ArrOrgID:   m.ArrOrgID,
		ArrOrgNo:   m.ArrOrgNo,
		ArrOrgName: m.ArrOrgName,

		AwayTeamID:             m.AwayTeamID,
		AwayTeamOrgNo:          m.AwayTeamOrgNo,
		AwayTeam:               m.AwayTeam,
		AwayTeamOrgName:        m.AwayTeamOrgName,
		AwayTeamOverriddenName: m.AwayTeamOverriddenName,
		AwayTeamClubOrgID:      m.AwayTeamClubOrgID,

		HomeTeamID:             m.HomeTeamID,
		HomeTeam:               m.HomeTeam,
		HomeTeamOrgName:        m.HomeTeamOrgName,
		HomeTeamOverriddenName: m.HomeTeamOverriddenName,
		HomeTeamOrgNo:          m.HomeTeamOrgNo,
		HomeTeamClubOrgID:      m.HomeTeamClubOrgID,

		RoundID:        m.RoundID,
		RoundName:      m.RoundName,
		SeasonID:       m.SeasonID,
		TournamentName: m.TournamentName,

		MatchDate:      m.MatchDate,
		MatchStartTime: m.MatchStartTime,
		MatchEndTime:   m.MatchEndTime,

		VenueUnitID:    m.VenueUnitID,
		VenueUnitNo:    m.VenueUnitNo,
		VenueID:        m.VenueID,
		VenueNo:        m.VenueNo,
		PhysicalAreaID: m.PhysicalAreaID,

		HomeGoals:      m.HomeGoals,
		AwayGoals:      m.AwayGoals,
		MatchEndResult: m.MatchEndResult,

		LiveArena:      m.LiveArena,
		LiveClientType: m.LiveClientType,
		StatusTypeID:   m.StatusTypeID,
		StatusType:     m.StatusType,
		LastChangeDate: m.LastChangeDate,
		Spectators:     m.Spectators,

		ActualMatchDate:      m.ActualMatchDate,
		ActualMatchStartTime: m.ActualMatchStartTime,
		ActualMatchEndTime:   m.ActualMatchEndTime,
		SportID:              m.SportID,
	}
}
