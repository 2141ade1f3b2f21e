package httpapi

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/go-playground/validator/v10"

	"github.com/norskhockey/hockeyhub/internal/platform/logging"
	"github.com/norskhockey/hockeyhub/internal/usecase"
)

type Handler struct {
	analyticsService *usecase.AnalyticsService
	imageService     *usecase.ImageService
	nlqService       *usecase.NLQService
	pipelineService  *usecase.PipelineService
	logger           *logging.Logger
	validator        *validator.Validate
	ingestionActive  atomic.Bool

	// jobCtx bounds detached ingestion runs so CloseJobs can cancel
	// and wait for them during shutdown.
	jobCtx     context.Context
	cancelJobs context.CancelFunc
	jobs       sync.WaitGroup
}

func NewHandler(
	analyticsService *usecase.AnalyticsService,
	imageService *usecase.ImageService,
	nlqService *usecase.NLQService,
	pipelineService *usecase.PipelineService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	jobCtx, cancelJobs := context.WithCancel(context.Background())

	return &Handler{
		analyticsService: analyticsService,
		imageService:     imageService,
		nlqService:       nlqService,
		pipelineService:  pipelineService,
		logger:           logger,
		validator:        validator.New(),
		jobCtx:           jobCtx,
		cancelJobs:       cancelJobs,
	}
}

// CloseJobs cancels any detached ingestion run and blocks until it
// returns. Call it before tearing down the services the run uses.
func (h *Handler) CloseJobs() {
	h.cancelJobs()
	h.jobs.Wait()
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeSuccess(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}
