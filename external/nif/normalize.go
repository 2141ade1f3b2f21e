package nif

import (
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/norskhockey/hockeyhub/internal/domain/match"
	"github.com/norskhockey/hockeyhub/internal/domain/organisation"
	"github.com/norskhockey/hockeyhub/internal/domain/playerstat"
	"github.com/norskhockey/hockeyhub/internal/domain/roster"
	"github.com/norskhockey/hockeyhub/internal/domain/standing"
	"github.com/norskhockey/hockeyhub/internal/domain/team"
	"github.com/norskhockey/hockeyhub/internal/domain/tournament"
)

// The upstream API is loose about response shapes: endpoints that normally
// return a list sometimes return a single object, and error conditions come
// back as 200 with an errorMessage payload. Everything here flattens those
// variations before mapping to domain types.

type errorMessagePayload struct {
	ErrorMessage string `json:"errorMessage"`
}

// probeErrorMessage reports the errorMessage carried by a payload that is an
// object with that key, which upstream uses instead of an error status.
func probeErrorMessage(raw []byte) (string, bool) {
	trimmed := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(trimmed, "{") {
		return "", false
	}
	var probe errorMessagePayload
	if err := sonic.Unmarshal(raw, &probe); err != nil {
		return "", false
	}
	if probe.ErrorMessage == "" {
		return "", false
	}
	return probe.ErrorMessage, true
}

// decodeListOrObject accepts either a JSON array of T or a single T object,
// promoting the latter to a one-element slice.
func decodeListOrObject[T any](raw []byte) ([]T, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil, nil
	}
	if strings.HasPrefix(trimmed, "[") {
		var items []T
		if err := sonic.Unmarshal(raw, &items); err != nil {
			return nil, err
		}
		return items, nil
	}
	var single T
	if err := sonic.Unmarshal(raw, &single); err != nil {
		return nil, err
	}
	return []T{single}, nil
}

// decodeStandings handles the four shapes the standings endpoint produces:
// a list, an object with a "standings" key, a bare single row, or an
// errorMessage object (treated as an empty table).
func decodeStandings(raw []byte) ([]standingPayload, error) {
	if _, ok := probeErrorMessage(raw); ok {
		return nil, nil
	}
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil, nil
	}
	if strings.HasPrefix(trimmed, "[") {
		var items []standingPayload
		if err := sonic.Unmarshal(raw, &items); err != nil {
			return nil, err
		}
		return items, nil
	}

	var envelope standingsEnvelope
	if err := sonic.Unmarshal(raw, &envelope); err == nil && envelope.Standings != nil {
		return envelope.Standings, nil
	}

	var single standingPayload
	if err := sonic.Unmarshal(raw, &single); err != nil {
		return nil, err
	}
	return []standingPayload{single}, nil
}

var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseDateTime(value *string) *time.Time {
	if value == nil {
		return nil
	}
	raw := strings.TrimSpace(*value)
	if raw == "" {
		return nil
	}
	for _, layout := range dateTimeLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return &parsed
		}
	}
	return nil
}

func firstInt64(values ...*int64) *int64 {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

func firstString(values ...*string) *string {
	for _, v := range values {
		if v != nil && strings.TrimSpace(*v) != "" {
			return v
		}
	}
	return nil
}

func stringOr(value *string, fallback string) string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return fallback
	}
	return *value
}

func mapTournament(p tournamentPayload) tournament.Tournament {
	out := tournament.Tournament{
		TournamentID:           p.TournamentID,
		SeasonID:               p.SeasonID,
		TournamentNo:           p.TournamentNo,
		FromDate:               parseDateTime(p.FromDate),
		ToDate:                 parseDateTime(p.ToDate),
		IsArchival:             p.IsArchival,
		IsDeleted:              p.IsDeleted,
		OrgIDOwner:             p.OrgIDOwner,
		ParentTournamentID:     p.ParentTournamentID,
		SeasonName:             p.SeasonName,
		TournamentName:         p.TournamentName,
		TournamentShortName:    p.TournamentShortName,
		Division:               p.Division,
		LogoURL:                p.LogoURL,
		IsTablePublished:       p.IsTablePublished,
		IsResultPublished:      p.IsResultPublished,
		AreMatchesPublished:    p.AreMatchesPublished,
		PublishMatchesToDate:   parseDateTime(p.PublishMatchesToDate),
		AreRefereesPublished:   p.AreRefereesPublished,
		PublishRefereesToDate:  parseDateTime(p.PublishRefereesToDate),
		AreStatisticsPublished: p.AreStatisticsPublished,
		AreTeamsPublished:      p.AreTeamsPublished,
		LiveArena:              p.LiveArena,
		LiveClient:             p.LiveClient,
		WithdrawalsVisible:     p.WithdrawalsVisible,
		TeamEntry:              p.TeamEntry,
		TournamentType:         p.TournamentType,
		SportID:                p.SportID,
	}

	out.Classes = make([]tournament.Class, 0, len(p.TournamentClasses))
	for _, class := range p.TournamentClasses {
		out.Classes = append(out.Classes, tournament.Class{
			TournamentID:     p.TournamentID,
			ClassID:          class.ClassID,
			ClassName:        class.ClassName,
			FromAge:          class.FromAge,
			ToAge:            class.ToAge,
			AllowedFromAge:   class.AllowedFromAge,
			AllowedToAge:     class.AllowedToAge,
			Gender:           class.Gender,
			LiveArenaStorage: class.LiveArenaStorage,
		})
	}

	return out
}

func mapTeam(tournamentID int64, p teamPayload) team.Team {
	return team.Team{
		TeamID:         p.TeamID,
		TournamentID:   tournamentID,
		ClubOrgID:      p.ClubOrgID,
		TeamNo:         p.TeamNo,
		TeamName:       p.Team,
		OverriddenName: p.OverriddenName,
		DescribingName: p.DescribingName,
	}
}

func mapMember(teamID int64, p teamMemberPayload) roster.Member {
	return roster.Member{
		PersonID:    p.PersonID,
		TeamID:      teamID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Nationality: p.Nationality,
		BirthDate:   parseDateTime(p.BirthDate),
		Gender:      p.Gender,
		Height:      p.Height,
		Number:      p.Number,
		Position:    p.Position,
		OwningOrgID: p.OwningOrgID,
		MemberType:  p.MemberType,
		ImageURL:    p.ImageURL,
		Image2URL:   p.Image2URL,
	}
}

func mapOrganisation(p organisationPayload) organisation.Organisation {
	return organisation.Organisation{
		OrgID:              p.OrgID,
		ReferenceID:        p.ReferenceID,
		OrgName:            p.OrgName,
		Abbreviation:       p.Abbreviation,
		DescribingName:     p.DescribingName,
		OrgTypeID:          p.OrgTypeID,
		OrganisationNumber: p.OrganisationNumber,
		Email:              p.Email,
		HomePage:           p.HomePage,
		MobilePhone:        p.MobilePhone,
		AddressLine1:       p.AddressLine1,
		AddressLine2:       p.AddressLine2,
		City:               p.City,
		Country:            p.Country,
		CountryID:          p.CountryID,
		PostCode:           p.PostCode,
		Longitude:          p.Longitude,
		Latitude:           p.Latitude,
		OrgLogoBase64:      p.OrgLogoBase64,
		Members:            p.Members,
	}
}

// mapStanding resolves the alias columns the upstream mixes freely: team id
// versus org id, name variants, points versus total points, and two goal
// difference spellings.
func mapStanding(tournamentID int64, p standingPayload) (standing.Standing, bool) {
	teamID := firstInt64(p.TeamID, p.OrgID)
	if teamID == nil || *teamID <= 0 {
		return standing.Standing{}, false
	}

	return standing.Standing{
		TournamentID: tournamentID,
		TeamID:       *teamID,

		TeamName:       firstString(p.TeamName, p.OrgName, p.OverriddenName),
		OverriddenName: p.OverriddenName,
		Position:       p.Position,
		EntryID:        p.EntryID,

		MatchesPlayed: p.Matches,
		MatchesHome:   p.MatchesHome,
		MatchesAway:   p.MatchesAway,

		Points:      firstInt64(p.Points, p.TotalPoints),
		PointsHome:  p.PointsHome,
		PointsAway:  p.PointsAway,
		PointsStart: p.PointsStart,
		TotalPoints: p.TotalPoints,

		Victories:               p.Victories,
		VictoriesHome:           p.VictoriesHome,
		VictoriesAway:           p.VictoriesAway,
		VictoriesFulltimeTotal:  p.VictoriesFulltimeTotal,
		VictoriesFulltimeHome:   p.VictoriesFulltimeHome,
		VictoriesFulltimeAway:   p.VictoriesFulltimeAway,
		VictoriesOvertimeTotal:  p.VictoriesOvertimeTotal,
		VictoriesOvertimeHome:   p.VictoriesOvertimeHome,
		VictoriesOvertimeAway:   p.VictoriesOvertimeAway,
		VictoriesPenaltiesTotal: p.VictoriesPenaltiesTotal,
		VictoriesPenaltiesHome:  p.VictoriesPenaltiesHome,
		VictoriesPenaltiesAway:  p.VictoriesPenaltiesAway,

		Draws:     p.Draws,
		DrawsHome: p.DrawsHome,
		DrawsAway: p.DrawsAway,

		Losses:               p.Losses,
		LossesHome:           p.LossesHome,
		LossesAway:           p.LossesAway,
		LossesFulltimeTotal:  p.LossesFulltimeTotal,
		LossesFulltimeHome:   p.LossesFulltimeHome,
		LossesFulltimeAway:   p.LossesFulltimeAway,
		LossesOvertimeTotal:  p.LossesOvertimeTotal,
		LossesOvertimeHome:   p.LossesOvertimeHome,
		LossesOvertimeAway:   p.LossesOvertimeAway,
		LossesPenaltiesTotal: p.LossesPenaltiesTotal,
		LossesPenaltiesHome:  p.LossesPenaltiesHome,
		LossesPenaltiesAway:  p.LossesPenaltiesAway,

		GoalsScored:       firstInt64(p.GoalsScored, p.TotalGoals),
		GoalsScoredHome:   p.GoalsScoredHome,
		GoalsScoredAway:   p.GoalsScoredAway,
		GoalsConceded:     p.GoalsConceded,
		GoalsConcededHome: p.GoalsConcededHome,
		GoalsConcededAway: p.GoalsConcededAway,
		GoalsDiff:         firstInt64(p.GoalDifference, p.GoalsDiff),
		GoalsRatio:        p.GoalRatio,

		PenaltyMinutes: p.PenaltyMinutes,

		HomeRecord: p.HomeRecord,
		AwayRecord: p.AwayRecord,

		GoalsHomeFormatted:  p.GoalsHomeFormatted,
		GoalsAwayFormatted:  p.GoalsAwayFormatted,
		TotalGoalsFormatted: p.TotalGoalsFormatted,

		TeamPenalty:         p.TeamPenalty,
		TeamPenaltyNegative: p.TeamPenaltyNegative,
		TeamPenaltyPositive: p.TeamPenaltyPositive,
		Dispensation:        p.Dispensation,
		TeamEntryStatus:     p.TeamEntryStatus,
	}, true
}

func mapMatch(tournamentID int64, p matchPayload) match.Match {
	out := match.Match{
		MatchID:      p.MatchID,
		TournamentID: tournamentID,

		MatchNo: p.MatchNo,

		ActivityAreaID:        p.ActivityAreaID,
		ActivityAreaLatitude:  p.ActivityAreaLatitude,
		ActivityAreaLongitude: p.ActivityAreaLongitude,
		ActivityAreaName:      p.ActivityAreaName,
		ActivityAreaNo:        p.ActivityAreaNo,

		AdmOrgID:   p.AdmOrgID,
		ArrOrgID:   p.ArrOrgID,
		ArrOrgNo:   p.ArrOrgNo,
		ArrOrgName: p.ArrOrgName,

		AwayTeamID:             p.AwayTeamID,
		AwayTeamOrgNo:          p.AwayTeamOrgNo,
		AwayTeam:               p.AwayTeam,
		AwayTeamOrgName:        p.AwayTeamOrgName,
		AwayTeamOverriddenName: p.AwayTeamOverriddenName,
		AwayTeamClubOrgID:      p.AwayTeamClubOrgID,

		HomeTeamID:             p.HomeTeamID,
		HomeTeam:               p.HomeTeam,
		HomeTeamOrgName:        p.HomeTeamOrgName,
		HomeTeamOverriddenName: p.HomeTeamOverriddenName,
		HomeTeamOrgNo:          p.HomeTeamOrgNo,
		HomeTeamClubOrgID:      p.HomeTeamClubOrgID,

		RoundID:        p.RoundID,
		RoundName:      p.RoundName,
		SeasonID:       p.SeasonID,
		TournamentName: p.TournamentName,

		MatchDate:      parseDateTime(p.MatchDate),
		MatchStartTime: p.MatchStartTime,
		MatchEndTime:   p.MatchEndTime,

		VenueUnitID:    p.VenueUnitID,
		VenueUnitNo:    p.VenueUnitNo,
		VenueID:        p.VenueID,
		VenueNo:        p.VenueNo,
		PhysicalAreaID: p.PhysicalAreaID,

		LiveArena:      p.LiveArena,
		LiveClientType: p.LiveClientType,
		StatusTypeID:   p.StatusTypeID,
		StatusType:     p.StatusType,
		LastChangeDate: parseDateTime(p.LastChangeDate),
		Spectators:     p.Spectators,

		ActualMatchDate:      parseDateTime(p.ActualMatchDate),
		ActualMatchStartTime: p.ActualMatchStartTime,
		ActualMatchEndTime:   p.ActualMatchEndTime,
		SportID:              p.SportID,
	}

	if p.MatchResult != nil {
		out.HomeGoals = p.MatchResult.HomeGoals
		out.AwayGoals = p.MatchResult.AwayGoals
		out.MatchEndResult = p.MatchResult.MatchEndResult
	}

	return out
}

func mapPlayer(tournamentID int64, p tournamentPlayerPayload) playerstat.PlayerStatistic {
	return playerstat.PlayerStatistic{
		TournamentID: tournamentID,
		PersonID:     p.PersonID,
		OrgID:        p.OrgID,

		FirstName:     stringOr(p.FirstName, "Unknown"),
		LastName:      stringOr(p.LastName, "Unknown"),
		TeamName:      stringOr(p.TeamName, "Unknown"),
		TeamShortName: p.TeamShortName,
		Position:      firstString(p.Position),

		Rank:          p.Rank,
		ScoringPoints: p.Pts,
		GamesPlayed:   p.GamesPlayed,
		GoalsScored:   p.GoalsScored,
		Assists:       p.Assists,
		PlusMinus:     p.Points,
		PIM:           p.PIM,

		PowerPlayGoals:       p.PowerPlayGoals,
		PowerPlayGoalAssists: p.PowerPlayGoalAssists,

		ShortHandedGoals:       p.ShortHandedGoals,
		ShortHandedGoalAssists: p.ShortHandedGoalAssists,

		GWG:            p.GWG,
		Shots:          p.Shots,
		ShotsPct:       p.ShotsPct,
		FaceOffs:       p.FaceOffs,
		FaceOffsWinPct: p.FaceOffsWinPct,
	}
}
