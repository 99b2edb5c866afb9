package reviews

import (
	"context"
	"log/slog"
	"testing"

	"kinoteka/proj/internal/domain/models"
	"kinoteka/proj/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReviewsStorage struct {
	reviews []models.Review
	nextID  int64
}

func (f *fakeReviewsStorage) Insert(ctx context.Context, movieID int64, parentID *int64, name, email, text string) (*models.Review, error) {
	if parentID != nil {
		found := false
		for _, r := range f.reviews {
			if r.ID == *parentID {
				found = true
			}
		}
		if !found {
			return nil, storage.ErrBrokenRef
		}
	}
	f.nextID++
	review := models.Review{
		ID:       f.nextID,
		MovieID:  movieID,
		ParentID: parentID,
		Name:     name,
		Email:    email,
		Text:     text,
	}
	f.reviews = append(f.reviews, review)
	return &review, nil
}

func (f *fakeReviewsStorage) GetForMovie(ctx context.Context, movieID int64) ([]models.Review, error) {
	found := make([]models.Review, 0)
	for _, r := range f.reviews {
		if r.MovieID == movieID {
			found = append(found, r)
		}
	}
	return found, nil
}

type fakeCaptcha struct {
	ok bool
}

func (f *fakeCaptcha) Verify(ctx context.Context, token, remoteIP string) (bool, error) {
	return f.ok, nil
}

func submitParams(movieID int64) SubmitParams {
	return SubmitParams{
		MovieID:  movieID,
		Name:     "Neo",
		Email:    "neo@zion.io",
		Text:     "Whoa.",
		RemoteIP: "203.0.113.7",
	}
}

func TestSubmitStoresReview(t *testing.T) {
	store := &fakeReviewsStorage{}
	s := New(slog.Default(), store, &fakeCaptcha{ok: true})
	review, err := s.Submit(context.Background(), submitParams(1))
	require.NoError(t, err)
	assert.Equal(t, int64(1), review.MovieID)
	assert.Nil(t, review.ParentID)

	found, err := s.GetForMovie(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestSubmitRejectedByCaptcha(t *testing.T) {
	store := &fakeReviewsStorage{}
	s := New(slog.Default(), store, &fakeCaptcha{ok: false})
	_, err := s.Submit(context.Background(), submitParams(1))
	assert.ErrorIs(t, err, ErrCaptchaRejected)
	assert.Empty(t, store.reviews)
}

func TestSubmitThreadsUnderParent(t *testing.T) {
	store := &fakeReviewsStorage{}
	s := New(slog.Default(), store, &fakeCaptcha{ok: true})
	parent, err := s.Submit(context.Background(), submitParams(1))
	require.NoError(t, err)

	p := submitParams(1)
	p.ParentID = &parent.ID
	reply, err := s.Submit(context.Background(), p)
	require.NoError(t, err)
	require.NotNil(t, reply.ParentID)
	assert.Equal(t, parent.ID, *reply.ParentID)
}

// The parent only has to exist; it is not required to belong to the same
// movie.
func TestSubmitParentOnAnotherMovie(t *testing.T) {
	store := &fakeReviewsStorage{}
	s := New(slog.Default(), store, &fakeCaptcha{ok: true})
	parent, err := s.Submit(context.Background(), submitParams(1))
	require.NoError(t, err)

	p := submitParams(2)
	p.ParentID = &parent.ID
	reply, err := s.Submit(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, int64(2), reply.MovieID)
}

func TestSubmitMissingParent(t *testing.T) {
	store := &fakeReviewsStorage{}
	s := New(slog.Default(), store, &fakeCaptcha{ok: true})
	missing := int64(17)
	p := submitParams(1)
	p.ParentID = &missing
	_, err := s.Submit(context.Background(), p)
	assert.ErrorIs(t, err, ErrParentNotFound)
}
