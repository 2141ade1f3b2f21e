package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/norskhockey/hockeyhub/internal/platform/logging"
)

// SQLOracle turns a natural-language question into a SQL statement.
type SQLOracle interface {
	GenerateSQL(ctx context.Context, prompt string) (string, error)
}

// SQLQueryExecutor runs a read-only query and returns generic rows.
type SQLQueryExecutor interface {
	QueryRows(ctx context.Context, query string) ([]map[string]any, error)
}

const nlqMaxRows = 50

// nlqSchema is the table reference handed to the oracle so generated
// SQL matches the ingested schema.
const nlqSchema = `Tables:
- organisations(org_id, org_name, describing_name, abbreviation, org_type_id, email, city, country, members)
- tournaments(tournament_id, season_id, tournament_name, tournament_short_name, season_name, division, from_date, to_date)
- tournament_classes(tournament_id, class_id, class_name, from_age, to_age, gender)
- teams(team_id, tournament_id, team_name, overridden_name, club_org_id, describing_name)
- team_members(person_id, team_id, first_name, last_name, position, number, birth_date, height, nationality, gender)
- standings(tournament_id, team_id, team_name, position, matches_played, victories, draws, losses, points, goals_scored, goals_conceded, goals_diff, penalty_minutes)
- matches(match_id, tournament_id, match_no, match_date, hometeam, awayteam, home_goals, away_goals, activity_area_name, round_name)
- player_statistics(tournament_id, person_id, first_name, last_name, team_name, position, games_played, goals_scored, assists, scoring_points, plus_minus, pim, rank)`

type NLQResult struct {
	Success       bool             `json:"success"`
	Query         string           `json:"query"`
	SQL           string           `json:"sql"`
	Data          []map[string]any `json:"data"`
	RowCount      int              `json:"row_count"`
	ExecutionTime float64          `json:"execution_time"`
}

// NLQService answers free-text questions by asking the oracle for SQL,
// refusing anything that is not a single SELECT, and running it with a
// row cap.
type NLQService struct {
	oracle   SQLOracle
	executor SQLQueryExecutor
	logger   *logging.Logger
}

func NewNLQService(oracle SQLOracle, executor SQLQueryExecutor, logger *logging.Logger) *NLQService {
	if logger == nil {
		logger = logging.Default()
	}
	return &NLQService{oracle: oracle, executor: executor, logger: logger}
}

func (s *NLQService) Ask(ctx context.Context, question string) (NLQResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NLQService.Ask")
	defer span.End()

	question = strings.TrimSpace(question)
	if question == "" {
		return NLQResult{}, fmt.Errorf("%w: question is required", ErrInvalidInput)
	}
	if s.oracle == nil {
		return NLQResult{}, fmt.Errorf("%w: text-to-sql oracle is not configured", ErrDependencyUnavailable)
	}

	prompt := buildNLQPrompt(question)
	sqlText, err := s.oracle.GenerateSQL(ctx, prompt)
	if err != nil {
		return NLQResult{}, fmt.Errorf("%w: generate sql: %v", ErrDependencyUnavailable, err)
	}

	sqlText, err = GuardSQL(sqlText)
	if err != nil {
		s.logger.WarnContext(ctx, "oracle returned unsafe sql, refusing",
			"question", question,
			"error", err,
		)
		return NLQResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	start := time.Now()
	rows, err := s.executor.QueryRows(ctx, sqlText)
	if err != nil {
		return NLQResult{}, fmt.Errorf("execute generated sql: %w", err)
	}

	if rows == nil {
		rows = []map[string]any{}
	}
	return NLQResult{
		Success:       true,
		Query:         question,
		SQL:           sqlText,
		Data:          rows,
		RowCount:      len(rows),
		ExecutionTime: time.Since(start).Seconds(),
	}, nil
}

func buildNLQPrompt(question string) string {
	var b strings.Builder
	b.WriteString("You translate questions about Norwegian ice hockey data into PostgreSQL.\n\n")
	b.WriteString(nlqSchema)
	b.WriteString("\n\nRules: answer with a single SELECT statement only, no commentary, ")
	b.WriteString(fmt.Sprintf("at most %d rows.\n\nQuestion: ", nlqMaxRows))
	b.WriteString(question)
	return b.String()
}

var limitClauseRegex = regexp.MustCompile(`(?i)\bLIMIT\s+(\d+)\s*$`)

// GuardSQL accepts only a single SELECT statement and caps its row
// count, appending a LIMIT when the oracle omitted one.
func GuardSQL(sqlText string) (string, error) {
	sqlText = strings.TrimSpace(sqlText)
	sqlText = strings.TrimSuffix(sqlText, ";")
	sqlText = strings.TrimSpace(sqlText)
	if sqlText == "" {
		return "", fmt.Errorf("generated sql is empty")
	}
	if !strings.HasPrefix(strings.ToUpper(sqlText), "SELECT") {
		return "", fmt.Errorf("only SELECT statements are allowed")
	}
	if strings.Contains(sqlText, ";") {
		return "", fmt.Errorf("only a single statement is allowed")
	}

	if m := limitClauseRegex.FindStringSubmatch(sqlText); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil || n > nlqMaxRows {
			sqlText = limitClauseRegex.ReplaceAllString(sqlText, fmt.Sprintf("LIMIT %d", nlqMaxRows))
		}
		return sqlText, nil
	}
	return fmt.Sprintf("%s LIMIT %d", sqlText, nlqMaxRows), nil
}
