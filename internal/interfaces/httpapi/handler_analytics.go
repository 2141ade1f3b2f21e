package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/norskhockey/hockeyhub/internal/domain/roster"
	"github.com/norskhockey/hockeyhub/internal/domain/team"
	"github.com/norskhockey/hockeyhub/internal/usecase"
)

func (h *Handler) GetFilters(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFilters")
	defer span.End()

	filters, err := h.analyticsService.Filters(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list filters failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, filters)
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	filter, err := parseTeamFilter(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teams, err := h.analyticsService.Teams(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, teams)
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	filter, err := parseRosterFilter(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	players, err := h.analyticsService.Players(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, players)
}

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	tournamentID, err := parsePathID(r, "tournamentID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.analyticsService.Standings(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "list standings failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, rows)
}

func (h *Handler) GetMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatches")
	defer span.End()

	tournamentID, err := parsePathID(r, "tournamentID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	matches, err := h.analyticsService.Matches(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matches)
}

func (h *Handler) GetPlayerStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerStatistics")
	defer span.End()

	tournamentID, err := parsePathID(r, "tournamentID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	stats, err := h.analyticsService.PlayerStatistics(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "list player statistics failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, stats)
}

func (h *Handler) GetInsights(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetInsights")
	defer span.End()

	tournamentID, err := parsePathID(r, "tournamentID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	insights, err := h.analyticsService.InsightsSummary(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "insights summary failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, insights)
}

func parsePathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}

func parseQueryID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}

func parseTeamFilter(r *http.Request) (team.Filter, error) {
	tournamentID, err := parseQueryID(r, "tournament_id")
	if err != nil {
		return team.Filter{}, err
	}
	clubOrgID, err := parseQueryID(r, "club_org_id")
	if err != nil {
		return team.Filter{}, err
	}
	return team.Filter{
		TournamentID: tournamentID,
		ClubOrgID:    clubOrgID,
		Search:       strings.TrimSpace(r.URL.Query().Get("search")),
	}, nil
}

func parseRosterFilter(r *http.Request) (roster.Filter, error) {
	teamID, err := parseQueryID(r, "team_id")
	if err != nil {
		return roster.Filter{}, err
	}
	tournamentID, err := parseQueryID(r, "tournament_id")
	if err != nil {
		return roster.Filter{}, err
	}
	clubOrgID, err := parseQueryID(r, "club_org_id")
	if err != nil {
		return roster.Filter{}, err
	}
	return roster.Filter{
		TeamID:       teamID,
		TournamentID: tournamentID,
		ClubOrgID:    clubOrgID,
		Position:     strings.TrimSpace(r.URL.Query().Get("position")),
		Search:       strings.TrimSpace(r.URL.Query().Get("search")),
	}, nil
}
