package main

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddReview(t *testing.T) {
	storages := newTestStorages()
	app := NewTestApplication(t, storages)
	router := app.routes()

	recorder := httptest.NewRecorder()
	request := postForm("/review/1/", url.Values{
		"name":  {"Neo"},
		"email": {"neo@zion.io"},
		"text":  {"Whoa."},
	})
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/movie/the-matrix/", recorder.Header().Get("Location"))
	require.Len(t, storages.reviews.reviews, 1)
	assert.Equal(t, "Neo", storages.reviews.reviews[0].Name)
	assert.Nil(t, storages.reviews.reviews[0].ParentID)
}

func TestAddReviewWithParent(t *testing.T) {
	storages := newTestStorages()
	app := NewTestApplication(t, storages)
	router := app.routes()

	recorder := httptest.NewRecorder()
	request := postForm("/review/1/", url.Values{
		"name":   {"Trinity"},
		"email":  {"trinity@zion.io"},
		"text":   {"Agreed."},
		"parent": {"17"},
	})
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusSeeOther, recorder.Code)
	require.Len(t, storages.reviews.reviews, 1)
	require.NotNil(t, storages.reviews.reviews[0].ParentID)
	assert.Equal(t, int64(17), *storages.reviews.reviews[0].ParentID)
}

// A submission that fails validation is dropped, but the browser is still
// sent back to the movie page.
func TestAddReviewInvalidStillRedirects(t *testing.T) {
	storages := newTestStorages()
	app := NewTestApplication(t, storages)
	router := app.routes()

	recorder := httptest.NewRecorder()
	request := postForm("/review/1/", url.Values{
		"name": {"Neo"},
		"text": {"No email this time."},
	})
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/movie/the-matrix/", recorder.Header().Get("Location"))
	assert.Empty(t, storages.reviews.reviews)
}

func TestAddReviewUnknownMovie(t *testing.T) {
	app := NewTestApplication(t, nil)
	router := app.routes()

	recorder := httptest.NewRecorder()
	request := postForm("/review/42/", url.Values{
		"name":  {"Neo"},
		"email": {"neo@zion.io"},
		"text":  {"Whoa."},
	})
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

// Drafts are reachable by id for review submission even though their pages
// are hidden.
func TestAddReviewDraftMovie(t *testing.T) {
	storages := newTestStorages()
	app := NewTestApplication(t, storages)
	router := app.routes()

	recorder := httptest.NewRecorder()
	request := postForm("/review/3/", url.Values{
		"name":  {"Neo"},
		"email": {"neo@zion.io"},
		"text":  {"Early thoughts."},
	})
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/movie/unreleased/", recorder.Header().Get("Location"))
	require.Len(t, storages.reviews.reviews, 1)
}
