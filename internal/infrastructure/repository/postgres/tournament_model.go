package postgres

import (
	"time"

	"github.com/norskhockey/hockeyhub/internal/domain/tournament"
)

type tournamentTableModel struct {
	TournamentID           int64      `db:"tournament_id"`
	SeasonID               int64      `db:"season_id"`
	TournamentNo           *string    `db:"tournament_no"`
	FromDate               *time.Time `db:"from_date"`
	ToDate                 *time.Time `db:"to_date"`
	IsArchival             *bool      `db:"is_archival"`
	IsDeleted              *bool      `db:"is_deleted"`
	OrgIDOwner             *int64     `db:"org_id_owner"`
	ParentTournamentID     *int64     `db:"parent_tournament_id"`
	SeasonName             *string    `db:"season_name"`
	TournamentName         *string    `db:"tournament_name"`
	TournamentShortName    *string    `db:"tournament_short_name"`
	Division               *int64     `db:"division"`
	LogoURL                *string    `db:"logo_url"`
	IsTablePublished       *bool      `db:"is_table_published"`
	IsResultPublished      *bool      `db:"is_result_published"`
	AreMatchesPublished    *bool      `db:"are_matches_published"`
	PublishMatchesToDate   *time.Time `db:"publish_matches_to_date"`
	AreRefereesPublished   *bool      `db:"are_referees_published"`
	PublishRefereesToDate  *time.Time `db:"publish_referees_to_date"`
	AreStatisticsPublished *bool      `db:"are_statistics_published"`
	AreTeamsPublished      *bool      `db:"are_teams_published"`
	LiveArena              *bool      `db:"live_arena"`
	LiveClient             *bool      `db:"live_client"`
	WithdrawalsVisible     *bool      `db:"withdrawals_visible"`
	TeamEntry              *bool      `db:"team_entry"`
	TournamentType         *string    `db:"tournament_type"`
	SportID                *int64     `db:"sport_id"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type tournamentClassTableModel struct {
	ID               int64   `db:"id"`
	TournamentID     int64   `db:"tournament_id"`
	ClassID          int64   `db:"class_id"`
	ClassName        *string `db:"class_name"`
	FromAge          *int64  `db:"from_age"`
	ToAge            *int64  `db:"to_age"`
	AllowedFromAge   *int64  `db:"allowed_from_age"`
	AllowedToAge     *int64  `db:"allowed_to_age"`
	Gender           *string `db:"gender"`
	LiveArenaStorage *string `db:"live_arena_storage"`
}

func tournamentToTableModel(t tournament.Tournament) tournamentTableModel {
	return tournamentTableModel{
		TournamentID:           t.TournamentID,
		SeasonID:               t.SeasonID,
		TournamentNo:           t.TournamentNo,
		FromDate:               t.FromDate,
		ToDate:                 t.ToDate,
		IsArchival:             t.IsArchival,
		IsDeleted:              t.IsDeleted,
		OrgIDOwner:             t.OrgIDOwner,
		ParentTournamentID:     t.ParentTournamentID,
		SeasonName:             t.SeasonName,
		TournamentName:         t.TournamentName,
		TournamentShortName:    t.TournamentShortName,
		Division:               t.Division,
		LogoURL:                t.LogoURL,
		IsTablePublished:       t.IsTablePublished,
		IsResultPublished:      t.IsResultPublished,
		AreMatchesPublished:    t.AreMatchesPublished,
		PublishMatchesToDate:   t.PublishMatchesToDate,
		AreRefereesPublished:   t.AreRefereesPublished,
		PublishRefereesToDate:  t.PublishRefereesToDate,
		AreStatisticsPublished: t.AreStatisticsPublished,
		AreTeamsPublished:      t.AreTeamsPublished,
		LiveArena:              t.LiveArena,
		LiveClient:             t.LiveClient,
		WithdrawalsVisible:     t.WithdrawalsVisible,
		TeamEntry:              t.TeamEntry,
		TournamentType:         t.TournamentType,
		SportID:                t.SportID,
	}
}

func (m tournamentTableModel) toDomain() tournament.Tournament {
	return tournament.Tournament{
		TournamentID:           m.TournamentID,
		SeasonID:               m.SeasonID,
		TournamentNo:           m.TournamentNo,
		FromDate:               m.FromDate,
		ToDate:                 m.ToDate,
		IsArchival:             m.IsArchival,
		IsDeleted:              m.IsDeleted,
		OrgIDOwner:             m.OrgIDOwner,
		ParentTournamentID:     m.ParentTournamentID,
		SeasonName:             m.SeasonName,
		TournamentName:         m.TournamentName,
		TournamentShortName:    m.TournamentShortName,
		Division:               m.Division,
		LogoURL:                m.LogoURL,
		IsTablePublished:       m.IsTablePublished,
		IsResultPublished:      m.IsResultPublished,
		AreMatchesPublished:    m.AreMatchesPublished,
		PublishMatchesToDate:   m.PublishMatchesToDate,
		AreRefereesPublished:   m.AreRefereesPublished,
		PublishRefereesToDate:  m.PublishRefereesToDate,
		AreStatisticsPublished: m.AreStatisticsPublished,
		AreTeamsPublished:      m.AreTeamsPublished,
		LiveArena:              m.LiveArena,
		LiveClient:             m.LiveClient,
		WithdrawalsVisible:     m.WithdrawalsVisible,
		TeamEntry:              m.TeamEntry,
		TournamentType:         m.TournamentType,
		SportID:                m.SportID,
	}
}

func (m tournamentClassTableModel) toDomain() tournament.Class {
	return tournament.Class{
		TournamentID:     m.TournamentID,
		ClassID:          m.ClassID,
		ClassName:        m.ClassName,
		FromAge:          m.FromAge,
		ToAge:            m.ToAge,
		AllowedFromAge:   m.AllowedFromAge,
		AllowedToAge:     m.AllowedToAge,
		Gender:           m.Gender,
		LiveArenaStorage: m.LiveArenaStorage,
	}
}
