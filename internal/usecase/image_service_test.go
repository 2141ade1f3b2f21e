package usecase

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/norskhockey/hockeyhub/internal/domain/personimage"
	"github.com/norskhockey/hockeyhub/internal/domain/roster"
)

type memoryImageStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newMemoryImageStore() *memoryImageStore {
	return &memoryImageStore{objects: map[string][]byte{}}
}

func (s *memoryImageStore) Put(_ context.Context, key, _ string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = body
	return nil
}

func (s *memoryImageStore) PresignGet(_ context.Context, key string, _ time.Duration) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objects[key]; !ok {
		return "", errors.New("object not found")
	}
	return "https://minio.local/signed/" + key, nil
}

type memoryPersonImageRepository struct {
	mu      sync.Mutex
	records map[int64]personimage.Record
}

func newMemoryPersonImageRepository() *memoryPersonImageRepository {
	return &memoryPersonImageRepository{records: map[int64]personimage.Record{}}
}

func (r *memoryPersonImageRepository) Upsert(_ context.Context, record personimage.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.PersonID] = record
	return nil
}

func (r *memoryPersonImageRepository) GetByPersonID(_ context.Context, personID int64) (personimage.Record, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[personID]
	return record, ok, nil
}

func TestImageService_MirrorsPersonPhotos(t *testing.T) {
	t.Parallel()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("png-bytes"))
	}))
	defer upstream.Close()

	store := newMemoryImageStore()
	repo := newMemoryPersonImageRepository()
	svc, err := NewImageService(store, repo, upstream.Client(), ImageServiceConfig{Workers: 2, QueueSize: 8}, nil)
	require.NoError(t, err)

	svc.Start(context.Background())

	imageURL := upstream.URL + "/photos/77.png"
	require.NoError(t, svc.Enqueue(context.Background(), roster.Member{PersonID: 77, TeamID: 1, ImageURL: &imageURL}))
	svc.Close()

	body, ok := store.objects["persons/77_primary.png"]
	require.True(t, ok, "expected primary image stored")
	assert.Equal(t, []byte("png-bytes"), body)

	record, found, err := repo.GetByPersonID(context.Background(), 77)
	require.NoError(t, err)
	require.True(t, found)
	require.NotNil(t, record.ImageObjectKey)
	assert.Equal(t, "persons/77_primary.png", *record.ImageObjectKey)
	assert.Equal(t, &imageURL, record.OriginalImageURL)
	assert.NotNil(t, record.LastFetchedAt)
	assert.Nil(t, record.Image2ObjectKey)
}

func TestImageService_SkipsFailedDownloadWithoutRecord(t *testing.T) {
	t.Parallel()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer upstream.Close()

	store := newMemoryImageStore()
	repo := newMemoryPersonImageRepository()
	svc, err := NewImageService(store, repo, upstream.Client(), ImageServiceConfig{Workers: 1, QueueSize: 4}, nil)
	require.NoError(t, err)

	svc.Start(context.Background())
	imageURL := upstream.URL + "/photos/5.jpg"
	require.NoError(t, svc.Enqueue(context.Background(), roster.Member{PersonID: 5, TeamID: 1, ImageURL: &imageURL}))
	svc.Close()

	assert.Empty(t, store.objects)
	_, found, err := repo.GetByPersonID(context.Background(), 5)
	require.NoError(t, err)
	assert.False(t, found, "a person with no stored variants must not get a record")
}

func TestImageService_EnqueueReportsFullQueue(t *testing.T) {
	t.Parallel()

	svc, err := NewImageService(newMemoryImageStore(), newMemoryPersonImageRepository(), nil, ImageServiceConfig{Workers: 1, QueueSize: 1}, nil)
	require.NoError(t, err)
	// Not started, so the single queue slot never drains.

	require.NoError(t, svc.Enqueue(context.Background(), roster.Member{PersonID: 1, TeamID: 1}))
	err = svc.Enqueue(context.Background(), roster.Member{PersonID: 2, TeamID: 1})
	require.ErrorIs(t, err, ErrImageQueueFull)
}

func TestImageService_EnqueueAfterCloseRefuses(t *testing.T) {
	t.Parallel()

	svc, err := NewImageService(newMemoryImageStore(), newMemoryPersonImageRepository(), nil, ImageServiceConfig{Workers: 1, QueueSize: 4}, nil)
	require.NoError(t, err)

	svc.Start(context.Background())
	svc.Close()

	err = svc.Enqueue(context.Background(), roster.Member{PersonID: 3, TeamID: 1})
	require.ErrorIs(t, err, ErrImageServiceClosed)
}

func TestImageService_URLs(t *testing.T) {
	t.Parallel()

	store := newMemoryImageStore()
	store.objects["persons/9_primary.jpg"] = []byte("x")
	repo := newMemoryPersonImageRepository()
	key := "persons/9_primary.jpg"
	now := time.Now().UTC()
	repo.records[9] = personimage.Record{PersonID: 9, ImageObjectKey: &key, LastFetchedAt: &now}

	svc, err := NewImageService(store, repo, nil, ImageServiceConfig{}, nil)
	require.NoError(t, err)

	urls, err := svc.URLs(context.Background(), 9)
	require.NoError(t, err)
	require.NotNil(t, urls.ImageURL)
	assert.Equal(t, "https://minio.local/signed/persons/9_primary.jpg", *urls.ImageURL)
	assert.Nil(t, urls.Image2URL)

	_, err = svc.URLs(context.Background(), 12345)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = svc.URLs(context.Background(), 0)
	require.ErrorIs(t, err, ErrInvalidInput)
}
