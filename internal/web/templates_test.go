package web

import (
	"html/template"
	"net/http/httptest"
	"testing"

	"kinoteka/proj/internal/domain/filters"
	"kinoteka/proj/internal/domain/models"
	"kinoteka/proj/internal/services/movies"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTemplateCacheParsesAllPages(t *testing.T) {
	cache, err := NewTemplateCache()
	require.NoError(t, err)
	for _, page := range []string{"movie_list.gohtml", "movie_detail.gohtml", "actor_detail.gohtml"} {
		assert.Contains(t, cache.pages, page)
	}
}

func TestRenderUnknownPage(t *testing.T) {
	cache, err := NewTemplateCache()
	require.NoError(t, err)
	recorder := httptest.NewRecorder()
	err = cache.Render(recorder, 200, "nope.gohtml", &PageData{})
	assert.Error(t, err)
}

func TestRenderPaginationLinks(t *testing.T) {
	cache, err := NewTemplateCache()
	require.NoError(t, err)
	recorder := httptest.NewRecorder()
	data := &PageData{
		GenreYear:     &movies.GenreYearContext{},
		Movies:        []models.Movie{{Title: "The Matrix", URL: "the-matrix"}},
		Metadata:      filters.CalculateMetadata(30, 2, 9),
		QueryFragment: template.URL("year=1999&"),
	}
	require.NoError(t, cache.Render(recorder, 200, "movie_list.gohtml", data))
	body := recorder.Body.String()
	assert.Contains(t, body, "?year=1999&amp;page=1")
	assert.Contains(t, body, "?year=1999&amp;page=3")
	assert.Contains(t, body, "page 2 of 4")
}
