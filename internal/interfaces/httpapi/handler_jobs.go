package httpapi

import (
	"fmt"
	"net/http"

	"github.com/norskhockey/hockeyhub/internal/usecase"
)

// RunIngestion kicks off a full pipeline run in the background. The
// run outlives the request so it runs on the handler's job context,
// which shutdown cancels; overlapping runs are refused.
func (h *Handler) RunIngestion(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunIngestion")
	defer span.End()

	if !h.ingestionActive.CompareAndSwap(false, true) {
		writeError(ctx, w, fmt.Errorf("%w: an ingestion run is already in progress", usecase.ErrInvalidInput))
		return
	}

	h.jobs.Add(1)
	go func() {
		defer h.jobs.Done()
		defer h.ingestionActive.Store(false)

		runCtx := h.jobCtx
		summary, err := h.pipelineService.Run(runCtx)
		if err != nil {
			h.logger.ErrorContext(runCtx, "ingestion run failed", "error", err)
			return
		}
		h.logger.InfoContext(runCtx, "ingestion run finished",
			"started_at", summary.StartedAt,
			"finished_at", summary.FinishedAt,
			"stages", len(summary.Stages),
		)
	}()

	writeSuccess(ctx, w, http.StatusAccepted, map[string]string{"status": "started"})
}
