package texttosql

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/norskhockey/hockeyhub/internal/platform/logging"
)

func TestStripCodeFences(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "SELECT 1", "SELECT 1"},
		{"sql fence", "```sql\nSELECT 1\n```", "SELECT 1"},
		{"bare fence", "```\nSELECT 1\n```", "SELECT 1"},
		{"leading whitespace", "  \nSELECT 1  ", "SELECT 1"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := StripCodeFences(tc.input); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestGenerateSQL(t *testing.T) {
	t.Parallel()

	var gotVersion, gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotVersion = r.Header.Get("anthropic-version")
		gotKey = r.Header.Get("x-api-key")
		w.Write([]byte(`{"content": [{"type": "text", "text": "` + "```sql\\nSELECT team_name FROM teams LIMIT 10\\n```" + `"}]}`))
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(ClientConfig{
		HTTPClient: server.Client(),
		BaseURL:    server.URL,
		APIKey:     "sk-test",
		Logger:     logging.NewNop(),
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	sql, err := client.GenerateSQL(context.Background(), "which teams exist?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sql != "SELECT team_name FROM teams LIMIT 10" {
		t.Fatalf("unexpected sql: %q", sql)
	}
	if gotVersion == "" || gotKey != "sk-test" {
		t.Fatalf("missing auth headers: version=%q key=%q", gotVersion, gotKey)
	}
}

func TestGenerateSQLSurfacesOracleErrors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"type": "rate_limit_error", "message": "slow down"}}`))
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(ClientConfig{
		HTTPClient: server.Client(),
		BaseURL:    server.URL,
		APIKey:     "sk-test",
		Logger:     logging.NewNop(),
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	if _, err := client.GenerateSQL(context.Background(), "anything"); err == nil {
		t.Fatal("expected error from oracle")
	}
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	t.Parallel()

	if _, err := NewClient(ClientConfig{}); err == nil {
		t.Fatal("expected error without api key")
	}
}
