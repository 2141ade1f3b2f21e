package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/norskhockey/hockeyhub/internal/usecase"
)

func TestRunIngestion_CloseJobsWaitsForDetachedRun(t *testing.T) {
	t.Parallel()

	// No season ids configured, so the detached run returns right away
	// without touching any dependency.
	pipeline := usecase.NewPipelineService(nil, nil, nil, nil, nil, usecase.PipelineConfig{}, nil)
	handler := NewHandler(nil, nil, nil, pipeline, nil)

	rec := httptest.NewRecorder()
	handler.RunIngestion(rec, httptest.NewRequest(http.MethodPost, "/v1/admin/ingestion/run", nil))
	require.Equal(t, http.StatusAccepted, rec.Code)

	handler.CloseJobs()

	require.False(t, handler.ingestionActive.Load(), "run should have released its slot before CloseJobs returned")
}
