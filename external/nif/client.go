package nif

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
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
	"github.com/norskhockey/hockeyhub/internal/platform/logging"
	"github.com/norskhockey/hockeyhub/internal/platform/retry"
)

const (
	defaultBaseURL = "https://sf34-terminlister-prod-app.azurewebsites.net"
	defaultTimeout = 30 * time.Second
	maxBodyBytes   = 16 << 20
)

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	Timeout    time.Duration
	Retry      retry.Policy
	Logger     *logging.Logger
}

// Client talks to the terminlister API. All fetchers validate their ids
// before any request goes out and retry transport failures per the
// configured policy.
type Client struct {
	httpClient *http.Client
	baseURL    string
	retry      retry.Policy
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	policy := cfg.Retry
	if policy.MaxAttempts <= 0 {
		policy = retry.DefaultPolicy()
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		retry:      policy,
		logger:     logger,
	}
}

// FetchSeasonTournaments returns the tournaments of a season with their
// classes attached.
func (c *Client) FetchSeasonTournaments(ctx context.Context, seasonID int64) ([]tournament.Tournament, error) {
	if seasonID <= 0 {
		return nil, fmt.Errorf("%w: season id %d must be positive", ErrInvalidArgument, seasonID)
	}

	raw, err := c.getJSON(ctx, fmt.Sprintf("/ta/Tournament/Season/%d", seasonID), nil)
	if err != nil {
		return nil, err
	}

	var payload seasonTournamentsPayload
	if err := sonic.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode season tournaments payload: %w", err)
	}

	out := make([]tournament.Tournament, 0, len(payload.TournamentsInSeason))
	for _, item := range payload.TournamentsInSeason {
		if item.TournamentID <= 0 {
			continue
		}
		mapped := mapTournament(item)
		if mapped.SeasonID <= 0 {
			mapped.SeasonID = seasonID
		}
		out = append(out, mapped)
	}
	return out, nil
}

// FetchTournamentTeams returns the teams entered in a tournament.
func (c *Client) FetchTournamentTeams(ctx context.Context, tournamentID int64) ([]team.Team, error) {
	if tournamentID <= 0 {
		return nil, fmt.Errorf("%w: tournament id %d must be positive", ErrInvalidArgument, tournamentID)
	}

	raw, err := c.getJSON(ctx, "/ta/TournamentTeams/", url.Values{"tournamentId": []string{strconv.FormatInt(tournamentID, 10)}})
	if err != nil {
		return nil, err
	}

	if message, ok := probeErrorMessage(raw); ok {
		c.logger.WarnContext(ctx, "upstream returned error payload for tournament teams", "tournament_id", tournamentID, "message", message)
		return nil, nil
	}

	var payload tournamentTeamsPayload
	if err := sonic.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode tournament teams payload: %w", err)
	}

	out := make([]team.Team, 0, len(payload.Teams))
	for _, item := range payload.Teams {
		if item.TeamID <= 0 {
			continue
		}
		out = append(out, mapTeam(tournamentID, item))
	}
	return out, nil
}

// FetchTeamMembers returns a team's roster. The endpoint sometimes returns
// a single member object instead of a list; both shapes are accepted.
func (c *Client) FetchTeamMembers(ctx context.Context, teamID int64) ([]roster.Member, error) {
	if teamID <= 0 {
		return nil, fmt.Errorf("%w: team id %d must be positive", ErrInvalidArgument, teamID)
	}

	raw, err := c.getJSON(ctx, fmt.Sprintf("/ta/TeamMembers/%d", teamID), nil)
	if err != nil {
		return nil, err
	}

	if message, ok := probeErrorMessage(raw); ok {
		c.logger.WarnContext(ctx, "upstream returned error payload for team members", "team_id", teamID, "message", message)
		return nil, nil
	}

	items, err := decodeListOrObject[teamMemberPayload](raw)
	if err != nil {
		return nil, fmt.Errorf("decode team members payload: %w", err)
	}

	out := make([]roster.Member, 0, len(items))
	for _, item := range items {
		if item.PersonID <= 0 {
			continue
		}
		out = append(out, mapMember(teamID, item))
	}
	return out, nil
}

// FetchOrganisations resolves organisation details for the given ids. The
// upstream expects the ids as repeated orgIds query parameters.
func (c *Client) FetchOrganisations(ctx context.Context, orgIDs []int64) ([]organisation.Organisation, error) {
	if len(orgIDs) == 0 {
		return nil, nil
	}
	values := url.Values{}
	for _, orgID := range orgIDs {
		if orgID <= 0 {
			return nil, fmt.Errorf("%w: org id %d must be positive", ErrInvalidArgument, orgID)
		}
		values.Add("orgIds", strconv.FormatInt(orgID, 10))
	}

	raw, err := c.getJSON(ctx, "/org/Organisation", values)
	if err != nil {
		return nil, err
	}

	if message, ok := probeErrorMessage(raw); ok {
		c.logger.WarnContext(ctx, "upstream returned error payload for organisations", "org_count", len(orgIDs), "message", message)
		return nil, nil
	}

	var payload organisationsPayload
	if err := sonic.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode organisations payload: %w", err)
	}

	out := make([]organisation.Organisation, 0, len(payload.Organisations))
	for _, item := range payload.Organisations {
		if item.OrgID <= 0 {
			continue
		}
		out = append(out, mapOrganisation(item))
	}
	return out, nil
}

// FetchTournamentStandings returns the tournament table. Rows missing both
// team and org ids are dropped.
func (c *Client) FetchTournamentStandings(ctx context.Context, tournamentID int64) ([]standing.Standing, error) {
	if tournamentID <= 0 {
		return nil, fmt.Errorf("%w: tournament id %d must be positive", ErrInvalidArgument, tournamentID)
	}

	raw, err := c.getJSON(ctx, "/ta/TournamentStandings/", url.Values{"tournamentId": []string{strconv.FormatInt(tournamentID, 10)}})
	if err != nil {
		return nil, err
	}

	items, err := decodeStandings(raw)
	if err != nil {
		return nil, fmt.Errorf("decode standings payload: %w", err)
	}

	out := make([]standing.Standing, 0, len(items))
	for _, item := range items {
		mapped, ok := mapStanding(tournamentID, item)
		if !ok {
			c.logger.DebugContext(ctx, "skipping standing row without team id", "tournament_id", tournamentID)
			continue
		}
		out = append(out, mapped)
	}
	return out, nil
}

// FetchTournamentMatches returns the tournament's fixtures with the result
// sub-object flattened.
func (c *Client) FetchTournamentMatches(ctx context.Context, tournamentID int64) ([]match.Match, error) {
	if tournamentID <= 0 {
		return nil, fmt.Errorf("%w: tournament id %d must be positive", ErrInvalidArgument, tournamentID)
	}

	raw, err := c.getJSON(ctx, "/ta/TournamentMatches/", url.Values{"tournamentId": []string{strconv.FormatInt(tournamentID, 10)}})
	if err != nil {
		return nil, err
	}

	if message, ok := probeErrorMessage(raw); ok {
		c.logger.WarnContext(ctx, "upstream returned error payload for tournament matches", "tournament_id", tournamentID, "message", message)
		return nil, nil
	}

	var payload tournamentMatchesPayload
	if err := sonic.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode tournament matches payload: %w", err)
	}

	out := make([]match.Match, 0, len(payload.Matches))
	for _, item := range payload.Matches {
		if item.MatchID <= 0 {
			continue
		}
		out = append(out, mapMatch(tournamentID, item))
	}
	return out, nil
}

// FetchTournamentPlayers returns the tournament scoring table.
func (c *Client) FetchTournamentPlayers(ctx context.Context, tournamentID int64) ([]playerstat.PlayerStatistic, error) {
	if tournamentID <= 0 {
		return nil, fmt.Errorf("%w: tournament id %d must be positive", ErrInvalidArgument, tournamentID)
	}

	raw, err := c.getJSON(ctx, fmt.Sprintf("/icehockey/TournamentPlayers/%d", tournamentID), nil)
	if err != nil {
		return nil, err
	}

	if message, ok := probeErrorMessage(raw); ok {
		c.logger.WarnContext(ctx, "upstream returned error payload for tournament players", "tournament_id", tournamentID, "message", message)
		return nil, nil
	}

	items, err := decodeListOrObject[tournamentPlayerPayload](raw)
	if err != nil {
		return nil, fmt.Errorf("decode tournament players payload: %w", err)
	}

	out := make([]playerstat.PlayerStatistic, 0, len(items))
	for _, item := range items {
		if item.PersonID <= 0 {
			continue
		}
		out = append(out, mapPlayer(tournamentID, item))
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values) ([]byte, error) {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var raw []byte
	attempts, err := c.retry.Do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("%w: send request: %v", errTransient, err)
		}
		body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		_ = resp.Body.Close()
		if readErr != nil {
			return fmt.Errorf("%w: read response body: %v", errTransient, readErr)
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return fmt.Errorf("%w: upstream status=%d body=%s", errTransient, resp.StatusCode, abbreviateBody(body))
		}

		raw = body
		return nil
	}, func(attempt int, wait time.Duration, err error) {
		c.logger.WarnContext(ctx, "upstream request failed, retrying",
			"path", path,
			"attempt", attempt,
			"wait", wait.String(),
			"error", err,
		)
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.ErrorContext(ctx, "upstream request failed after retries",
			"path", path,
			"attempts", attempts,
			"error", err,
		)
		return nil, &FetchExhaustedError{Endpoint: path, Attempts: attempts, Err: err}
	}

	return raw, nil
}

func abbreviateBody(body []byte) string {
	const limit = 256
	text := strings.TrimSpace(string(body))
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "..."
}
