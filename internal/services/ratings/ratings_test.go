package ratings

import (
	"context"
	"log/slog"
	"testing"

	"kinoteka/proj/internal/domain/models"
	"kinoteka/proj/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ratingKey struct {
	movieID int64
	ip      string
}

type fakeRatingsStorage struct {
	rows        map[ratingKey]int64 // -> starID
	knownMovies map[int64]bool
	upsertCalls int
}

func newFakeRatingsStorage(movieIDs ...int64) *fakeRatingsStorage {
	known := make(map[int64]bool, len(movieIDs))
	for _, id := range movieIDs {
		known[id] = true
	}
	return &fakeRatingsStorage{rows: make(map[ratingKey]int64), knownMovies: known}
}

func (f *fakeRatingsStorage) Upsert(ctx context.Context, ip string, movieID, starID int64) (bool, error) {
	f.upsertCalls++
	if !f.knownMovies[movieID] {
		return false, storage.ErrBrokenRef
	}
	key := ratingKey{movieID, ip}
	_, exists := f.rows[key]
	f.rows[key] = starID
	return !exists, nil
}

func (f *fakeRatingsStorage) GetForMovie(ctx context.Context, movieID int64, ip string) (*models.Rating, error) {
	starID, ok := f.rows[ratingKey{movieID, ip}]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &models.Rating{MovieID: movieID, IP: ip, StarID: starID}, nil
}

func (f *fakeRatingsStorage) ListStars(ctx context.Context) ([]models.RatingStar, error) {
	stars := make([]models.RatingStar, 0, 5)
	for v := int32(1); v <= 5; v++ {
		stars = append(stars, models.RatingStar{ID: int64(v), Value: v})
	}
	return stars, nil
}

func (f *fakeRatingsStorage) GetStarByValue(ctx context.Context, value int32) (*models.RatingStar, error) {
	if value < 1 || value > 5 {
		return nil, storage.ErrNotFound
	}
	return &models.RatingStar{ID: int64(value), Value: value}, nil
}

func TestSubmitRejectsOutOfRangeStar(t *testing.T) {
	store := newFakeRatingsStorage(1)
	s := New(slog.Default(), store)
	for _, value := range []int32{0, 6, -1} {
		_, err := s.Submit(context.Background(), "203.0.113.7", 1, value)
		assert.ErrorIs(t, err, ErrInvalidStar)
	}
	assert.Zero(t, store.upsertCalls)
}

func TestSubmitUpsertsPerMovieAndIP(t *testing.T) {
	store := newFakeRatingsStorage(1)
	s := New(slog.Default(), store)

	created, err := s.Submit(context.Background(), "203.0.113.7", 1, 4)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = s.Submit(context.Background(), "203.0.113.7", 1, 2)
	require.NoError(t, err)
	assert.False(t, created)

	rating, err := s.Get(context.Background(), 1, "203.0.113.7")
	require.NoError(t, err)
	assert.Equal(t, int64(2), rating.StarID)

	created, err = s.Submit(context.Background(), "198.51.100.3", 1, 5)
	require.NoError(t, err)
	assert.True(t, created)
}

func TestSubmitUnknownMovie(t *testing.T) {
	store := newFakeRatingsStorage(1)
	s := New(slog.Default(), store)
	_, err := s.Submit(context.Background(), "203.0.113.7", 42, 3)
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestGetMissingRatingIsNil(t *testing.T) {
	store := newFakeRatingsStorage(1)
	s := New(slog.Default(), store)
	rating, err := s.Get(context.Background(), 1, "203.0.113.7")
	require.NoError(t, err)
	assert.Nil(t, rating)
}
