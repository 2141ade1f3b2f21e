package nif

// Wire payload shapes for the terminlister API. Field names mirror the
// upstream camelCase JSON, including its spelling quirks (goalsConceeded).

type seasonTournamentsPayload struct {
	TournamentsInSeason []tournamentPayload `json:"tournamentsInSeason"`
}

type tournamentPayload struct {
	TournamentID           int64    `json:"tournamentId"`
	TournamentNo           *string  `json:"tournamentNo"`
	FromDate               *string  `json:"fromDate"`
	ToDate                 *string  `json:"toDate"`
	IsArchival             *bool    `json:"isArchival"`
	IsDeleted              *bool    `json:"isDeleted"`
	OrgIDOwner             *int64   `json:"orgIdOwner"`
	ParentTournamentID     *int64   `json:"parentTournamentId"`
	SeasonID               int64    `json:"seasonId"`
	SeasonName             *string  `json:"seasonName"`
	TournamentName         *string  `json:"tournamentName"`
	TournamentShortName    *string  `json:"tournamentShortName"`
	Division               *int64   `json:"division"`
	LogoURL                *string  `json:"logoUrl"`
	IsTablePublished       *bool    `json:"isTablePublished"`
	IsResultPublished      *bool    `json:"isResultPublished"`
	AreMatchesPublished    *bool    `json:"areMatchesPublished"`
	PublishMatchesToDate   *string  `json:"publishMatchesToDate"`
	AreRefereesPublished   *bool    `json:"areRefereesPublished"`
	PublishRefereesToDate  *string  `json:"publishRefereesToDate"`
	AreStatisticsPublished *bool    `json:"areStatisticsPublished"`
	AreTeamsPublished      *bool    `json:"areTeamsPublished"`
	LiveArena              *bool    `json:"liveArena"`
	LiveClient             *bool    `json:"liveClient"`
	WithdrawalsVisible     *bool    `json:"withdrawalsVisible"`
	TeamEntry              *bool    `json:"teamEntry"`
	TournamentType         *string  `json:"tournamentType"`
	SportID                *int64   `json:"sportId"`

	TournamentClasses []tournamentClassPayload `json:"tournamentClasses"`
}

type tournamentClassPayload struct {
	ClassID          int64   `json:"classId"`
	ClassName        *string `json:"className"`
	FromAge          *int64  `json:"fromAge"`
	ToAge            *int64  `json:"toAge"`
	AllowedFromAge   *int64  `json:"allowedFromAge"`
	AllowedToAge     *int64  `json:"allowedToAge"`
	Gender           *string `json:"gender"`
	LiveArenaStorage *string `json:"liveArenaStorage"`
}

type tournamentTeamsPayload struct {
	TournamentID int64         `json:"tournamentId"`
	Teams        []teamPayload `json:"teams"`
}

type teamPayload struct {
	TeamID         int64   `json:"teamId"`
	ClubOrgID      *int64  `json:"clubOrgId"`
	TeamNo         *int64  `json:"teamNo"`
	Team           *string `json:"team"`
	OverriddenName *string `json:"overriddenName"`
	DescribingName *string `json:"describingName"`
}

type teamMemberPayload struct {
	PersonID    int64    `json:"personId"`
	FirstName   *string  `json:"firstName"`
	LastName    *string  `json:"lastName"`
	Nationality *string  `json:"nationality"`
	BirthDate   *string  `json:"birthDate"`
	Gender      *string  `json:"gender"`
	Height      *float64 `json:"height"`
	Number      *string  `json:"number"`
	Position    *string  `json:"position"`
	OwningOrgID *int64   `json:"owningOrgId"`
	MemberType  *string  `json:"memberType"`
	ImageURL    *string  `json:"imageUrl"`
	Image2URL   *string  `json:"image2Url"`
}

type organisationsPayload struct {
	Organisations []organisationPayload `json:"organisations"`
}

type organisationPayload struct {
	OrgID              int64    `json:"orgId"`
	ReferenceID        *string  `json:"referenceId"`
	OrgName            *string  `json:"orgName"`
	Abbreviation       *string  `json:"abbreviation"`
	DescribingName     *string  `json:"describingName"`
	OrgTypeID          *int64   `json:"orgTypeId"`
	OrganisationNumber *string  `json:"organisationNumber"`
	Email              *string  `json:"email"`
	HomePage           *string  `json:"homePage"`
	MobilePhone        *string  `json:"mobilePhone"`
	AddressLine1       *string  `json:"addressLine1"`
	AddressLine2       *string  `json:"addressLine2"`
	City               *string  `json:"city"`
	Country            *string  `json:"country"`
	CountryID          *string  `json:"countryId"`
	PostCode           *string  `json:"postCode"`
	Longitude          *float64 `json:"longitude"`
	Latitude           *float64 `json:"latitude"`
	OrgLogoBase64      *string  `json:"orgLogoBase64"`
	Members            *int64   `json:"members"`
}

type standingPayload struct {
	TeamID         *int64  `json:"teamId"`
	OrgID          *int64  `json:"orgId"`
	TeamName       *string `json:"teamName"`
	OrgName        *string `json:"orgName"`
	OverriddenName *string `json:"overriddenName"`
	Position       *int64  `json:"position"`
	EntryID        *int64  `json:"entryId"`

	Matches     *int64 `json:"matches"`
	MatchesHome *int64 `json:"matchesHome"`
	MatchesAway *int64 `json:"matchesAway"`

	Points      *int64 `json:"points"`
	PointsHome  *int64 `json:"pointsHome"`
	PointsAway  *int64 `json:"pointsAway"`
	PointsStart *int64 `json:"pointsStart"`
	TotalPoints *int64 `json:"totalPoints"`

	Victories               *int64 `json:"victories"`
	VictoriesHome           *int64 `json:"victoriesHome"`
	VictoriesAway           *int64 `json:"victoriesAway"`
	VictoriesFulltimeTotal  *int64 `json:"victoriesFulltimeTotal"`
	VictoriesFulltimeHome   *int64 `json:"victoriesFulltimeHome"`
	VictoriesFulltimeAway   *int64 `json:"victoriesFulltimeAway"`
	VictoriesOvertimeTotal  *int64 `json:"victoriesOvertimeTotal"`
	VictoriesOvertimeHome   *int64 `json:"victoriesOvertimeHome"`
	VictoriesOvertimeAway   *int64 `json:"victoriesOvertimeAway"`
	VictoriesPenaltiesTotal *int64 `json:"victoriesPenaltiesTotal"`
	VictoriesPenaltiesHome  *int64 `json:"victoriesPenaltiesHome"`
	VictoriesPenaltiesAway  *int64 `json:"victoriesPenaltiesAway"`

	Draws     *int64 `json:"draws"`
	DrawsHome *int64 `json:"drawsHome"`
	DrawsAway *int64 `json:"drawsAway"`

	Losses               *int64 `json:"losses"`
	LossesHome           *int64 `json:"lossesHome"`
	LossesAway           *int64 `json:"lossesAway"`
	LossesFulltimeTotal  *int64 `json:"lossesFulltimeTotal"`
	LossesFulltimeHome   *int64 `json:"lossesFulltimeHome"`
	LossesFulltimeAway   *int64 `json:"lossesFulltimeAway"`
	LossesOvertimeTotal  *int64 `json:"lossesOvertimeTotal"`
	LossesOvertimeHome   *int64 `json:"lossesOvertimeHome"`
	LossesOvertimeAway   *int64 `json:"lossesOvertimeAway"`
	LossesPenaltiesTotal *int64 `json:"lossesPenaltiesTotal"`
	LossesPenaltiesHome  *int64 `json:"lossesPenaltiesHome"`
	LossesPenaltiesAway  *int64 `json:"lossesPenaltiesAway"`

	GoalsScored       *int64   `json:"goalsScored"`
	TotalGoals        *int64   `json:"totalGoals"`
	GoalsScoredHome   *int64   `json:"goalsScoredHome"`
	GoalsScoredAway   *int64   `json:"goalsScoredAway"`
	GoalsConceded     *int64   `json:"goalsConceeded"`
	GoalsConcededHome *int64   `json:"goalsConcededHome"`
	GoalsConcededAway *int64   `json:"goalsConcededAway"`
	GoalDifference    *int64   `json:"goalDifference"`
	GoalsDiff         *int64   `json:"goalsDiff"`
	GoalRatio         *float64 `json:"goalRatio"`

	PenaltyMinutes *int64 `json:"penaltyMinutes"`

	HomeRecord *string `json:"homeRecord"`
	AwayRecord *string `json:"awayRecord"`

	GoalsHomeFormatted  *string `json:"goalsHomeFormatted"`
	GoalsAwayFormatted  *string `json:"goalsAwayFormatted"`
	TotalGoalsFormatted *string `json:"totalGoalsFormatted"`

	TeamPenalty         *string `json:"teamPenalty"`
	TeamPenaltyNegative *int64  `json:"teamPenaltyNegative"`
	TeamPenaltyPositive *int64  `json:"teamPenaltyPositive"`
	Dispensation        *bool   `json:"dispensation"`
	TeamEntryStatus     *string `json:"teamEntryStatus"`
}

type standingsEnvelope struct {
	Standings []standingPayload `json:"standings"`
}

type tournamentMatchesPayload struct {
	TournamentID int64          `json:"tournamentId"`
	Matches      []matchPayload `json:"matches"`
}

type matchPayload struct {
	MatchID int64   `json:"matchId"`
	MatchNo *string `json:"matchNo"`

	ActivityAreaID        *int64   `json:"activityAreaId"`
	ActivityAreaLatitude  *float64 `json:"activityAreaLatitude"`
	ActivityAreaLongitude *float64 `json:"activityAreaLongitude"`
	ActivityAreaName      *string  `json:"activityAreaName"`
	ActivityAreaNo        *string  `json:"activityAreaNo"`

	AdmOrgID   *int64  `json:"admOrgId"`
	ArrOrgID   *int64  `json:"arrOrgId"`
	ArrOrgNo   *string `json:"arrOrgNo"`
	ArrOrgName *string `json:"arrOrgName"`

	AwayTeamID             *int64  `json:"awayteamId"`
	AwayTeamOrgNo          *string `json:"awayteamOrgNo"`
	AwayTeam               *string `json:"awayteam"`
	AwayTeamOrgName        *string `json:"awayteamOrgName"`
	AwayTeamOverriddenName *string `json:"awayteamOverriddenName"`
	AwayTeamClubOrgID      *int64  `json:"awayteamClubOrgId"`

	HomeTeamID             *int64  `json:"hometeamId"`
	HomeTeam               *string `json:"hometeam"`
	HomeTeamOrgName        *string `json:"hometeamOrgName"`
	HomeTeamOverriddenName *string `json:"hometeamOverriddenName"`
	HomeTeamOrgNo          *string `json:"hometeamOrgNo"`
	HomeTeamClubOrgID      *int64  `json:"hometeamClubOrgId"`

	RoundID        *int64  `json:"roundId"`
	RoundName      *string `json:"roundName"`
	SeasonID       *int64  `json:"seasonId"`
	TournamentName *string `json:"tournamentName"`

	MatchDate      *string `json:"matchDate"`
	MatchStartTime *int64  `json:"matchStartTime"`
	MatchEndTime   *int64  `json:"matchEndTime"`

	VenueUnitID    *int64  `json:"venueUnitId"`
	VenueUnitNo    *string `json:"venueUnitNo"`
	VenueID        *int64  `json:"venueId"`
	VenueNo        *string `json:"venueNo"`
	PhysicalAreaID *int64  `json:"physicalAreaId"`

	MatchResult *matchResultPayload `json:"matchResult"`

	LiveArena      *bool   `json:"liveArena"`
	LiveClientType *string `json:"liveClientType"`
	StatusTypeID   *int64  `json:"statusTypeId"`
	StatusType     *string `json:"statusType"`
	LastChangeDate *string `json:"lastChangeDate"`
	Spectators     *int64  `json:"spectators"`

	ActualMatchDate      *string `json:"actualMatchDate"`
	ActualMatchStartTime *int64  `json:"actualMatchStartTime"`
	ActualMatchEndTime   *int64  `json:"actualMatchEndTime"`
	SportID              *int64  `json:"sportId"`
}

type matchResultPayload struct {
	HomeGoals      *int64  `json:"homeGoals"`
	AwayGoals      *int64  `json:"awayGoals"`
	MatchEndResult *string `json:"matchEndResult"`
}

type tournamentPlayerPayload struct {
	PersonID      int64    `json:"personId"`
	OrgID         int64    `json:"orgId"`
	FirstName     *string  `json:"firstName"`
	LastName      *string  `json:"lastName"`
	TeamName      *string  `json:"teamName"`
	TeamShortName *string  `json:"teamShortName"`
	Position      *string  `json:"position"`
	Rank          *int64   `json:"rank"`

	// Pts is goals plus assists (the ranking metric); Points is the +/-
	// rating. Upstream names them confusingly and we keep both apart.
	Pts    int64 `json:"pts"`
	Points int64 `json:"points"`

	GamesPlayed int64 `json:"gamesPlayed"`
	GoalsScored int64 `json:"goalsScored"`
	Assists     int64 `json:"assists"`
	PIM         int64 `json:"pim"`

	PowerPlayGoals       int64 `json:"powerPlayGoals"`
	PowerPlayGoalAssists int64 `json:"powerPlayGoalAssists"`

	ShortHandedGoals       int64 `json:"shortHandedGoals"`
	ShortHandedGoalAssists int64 `json:"shortHandedGoalAssists"`

	GWG            int64    `json:"gwg"`
	Shots          int64    `json:"shots"`
	ShotsPct       *float64 `json:"shotsPct"`
	FaceOffs       int64    `json:"faceOffs"`
	FaceOffsWinPct *float64 `json:"faceoffsWinPct"`
}
