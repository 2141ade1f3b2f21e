package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc"

	"github.com/norskhockey/hockeyhub/internal/domain/personimage"
	"github.com/norskhockey/hockeyhub/internal/domain/roster"
	"github.com/norskhockey/hockeyhub/internal/infrastructure/blob"
	"github.com/norskhockey/hockeyhub/internal/platform/logging"
)

// ImageStore is the blob backend person photos are mirrored into.
type ImageStore interface {
	Put(ctx context.Context, key, contentType string, body []byte) error
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}

var (
	ErrImageQueueFull     = errors.New("person image queue is full")
	ErrImageServiceClosed = errors.New("person image service is closed")
)

const maxImageBytes = 8 << 20

type ImageServiceConfig struct {
	Workers         int
	QueueSize       int
	DownloadTimeout time.Duration
	PresignTTL      time.Duration
}

// ImageService mirrors roster photos into the blob store in the
// background. Enqueue never blocks the ingestion pipeline; a full queue
// drops the job with an error the caller logs.
type ImageService struct {
	store      ImageStore
	repo       personimage.Repository
	httpClient *http.Client
	pool       *ants.Pool
	queue      chan roster.Member
	dispatcher conc.WaitGroup
	jobs       sync.WaitGroup
	cfg        ImageServiceConfig
	logger     *logging.Logger

	startOnce sync.Once
	closeOnce sync.Once

	// mu orders Enqueue sends before the queue close in Close.
	mu     sync.RWMutex
	closed bool
}

func NewImageService(
	store ImageStore,
	repo personimage.Repository,
	httpClient *http.Client,
	cfg ImageServiceConfig,
	logger *logging.Logger,
) (*ImageService, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 256
	}
	if cfg.DownloadTimeout <= 0 {
		cfg.DownloadTimeout = 30 * time.Second
	}
	if cfg.PresignTTL <= 0 {
		cfg.PresignTTL = time.Hour
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.DownloadTimeout}
	}

	pool, err := ants.NewPool(cfg.Workers)
	if err != nil {
		return nil, fmt.Errorf("create image worker pool: %w", err)
	}

	return &ImageService{
		store:      store,
		repo:       repo,
		httpClient: httpClient,
		pool:       pool,
		queue:      make(chan roster.Member, cfg.QueueSize),
		cfg:        cfg,
		logger:     logger,
	}, nil
}

// Start launches the dispatcher that feeds queued members to the
// worker pool. It is safe to call once; ctx cancels outstanding work.
func (s *ImageService) Start(ctx context.Context) {
	s.startOnce.Do(func() {
		s.dispatcher.Go(func() {
			for member := range s.queue {
				member := member
				s.jobs.Add(1)
				if err := s.pool.Submit(func() {
					defer s.jobs.Done()
					s.process(ctx, member)
				}); err != nil {
					s.jobs.Done()
					s.logger.ErrorContext(ctx, "submit person image job failed",
						"person_id", member.PersonID,
						"error", err,
					)
				}
			}
		})
	})
}

// Close drains the queue, waits for in-flight downloads and releases
// the pool.
func (s *ImageService) Close() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()

		close(s.queue)
		s.dispatcher.Wait()
		s.jobs.Wait()
		s.pool.Release()
	})
}

// Enqueue hands a member to the background mirror. After Close it
// refuses instead of sending on the closed queue.
func (s *ImageService) Enqueue(_ context.Context, member roster.Member) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return fmt.Errorf("%w: person_id=%d", ErrImageServiceClosed, member.PersonID)
	}

	select {
	case s.queue <- member:
		return nil
	default:
		return fmt.Errorf("%w: person_id=%d", ErrImageQueueFull, member.PersonID)
	}
}

func (s *ImageService) process(ctx context.Context, member roster.Member) {
	record := personimage.Record{PersonID: member.PersonID}
	var failures []string

	if member.ImageURL != nil && *member.ImageURL != "" {
		key, err := s.mirror(ctx, member.PersonID, "primary", *member.ImageURL)
		if err != nil {
			failures = append(failures, fmt.Sprintf("primary: %v", err))
			s.logger.WarnContext(ctx, "person image download failed",
				"person_id", member.PersonID,
				"variant", "primary",
				"error", err,
			)
		} else {
			record.ImageObjectKey = &key
			record.OriginalImageURL = member.ImageURL
		}
	}
	if member.Image2URL != nil && *member.Image2URL != "" {
		key, err := s.mirror(ctx, member.PersonID, "secondary", *member.Image2URL)
		if err != nil {
			failures = append(failures, fmt.Sprintf("secondary: %v", err))
			s.logger.WarnContext(ctx, "person image download failed",
				"person_id", member.PersonID,
				"variant", "secondary",
				"error", err,
			)
		} else {
			record.Image2ObjectKey = &key
			record.OriginalImage2URL = member.Image2URL
		}
	}

	if record.ImageObjectKey == nil && record.Image2ObjectKey == nil {
		return
	}

	now := time.Now().UTC()
	record.LastFetchedAt = &now
	if len(failures) > 0 {
		notes := strings.Join(failures, "; ")
		record.Notes = &notes
	}

	if err := s.repo.Upsert(ctx, record); err != nil {
		s.logger.ErrorContext(ctx, "upsert person image record failed",
			"person_id", member.PersonID,
			"error", err,
		)
	}
}

func (s *ImageService) mirror(ctx context.Context, personID int64, variant, sourceURL string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.DownloadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("download: unexpected status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	if len(body) == 0 {
		return "", errors.New("empty image body")
	}

	key := blob.PersonImageKey(personID, variant, sourceURL)
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = blob.ContentTypeForKey(key)
	}
	if err := s.store.Put(ctx, key, contentType, body); err != nil {
		return "", fmt.Errorf("store object: %w", err)
	}
	return key, nil
}

// PersonImageURLs is the presigned view of one person's stored photos.
type PersonImageURLs struct {
	PersonID      int64      `json:"person_id"`
	ImageURL      *string    `json:"image_url,omitempty"`
	Image2URL     *string    `json:"image2_url,omitempty"`
	LastFetchedAt *time.Time `json:"last_fetched_at,omitempty"`
}

// URLs returns time-limited download links for a person's mirrored
// photos.
func (s *ImageService) URLs(ctx context.Context, personID int64) (PersonImageURLs, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImageService.URLs")
	defer span.End()

	if personID <= 0 {
		return PersonImageURLs{}, fmt.Errorf("%w: person id must be positive", ErrInvalidInput)
	}

	record, found, err := s.repo.GetByPersonID(ctx, personID)
	if err != nil {
		return PersonImageURLs{}, fmt.Errorf("get person image record person_id=%d: %w", personID, err)
	}
	if !found {
		return PersonImageURLs{}, fmt.Errorf("%w: no stored images for person_id=%d", ErrNotFound, personID)
	}

	out := PersonImageURLs{PersonID: personID, LastFetchedAt: record.LastFetchedAt}
	if record.ImageObjectKey != nil {
		url, err := s.store.PresignGet(ctx, *record.ImageObjectKey, s.cfg.PresignTTL)
		if err != nil {
			return PersonImageURLs{}, fmt.Errorf("presign primary image person_id=%d: %w", personID, err)
		}
		out.ImageURL = &url
	}
	if record.Image2ObjectKey != nil {
		url, err := s.store.PresignGet(ctx, *record.Image2ObjectKey, s.cfg.PresignTTL)
		if err != nil {
			return PersonImageURLs{}, fmt.Errorf("presign secondary image person_id=%d: %w", personID, err)
		}
		out.Image2URL = &url
	}
	return out, nil
}
