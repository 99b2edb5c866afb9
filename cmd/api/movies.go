package main

import (
	"errors"
	"html/template"
	"net/http"

	"kinoteka/proj/internal/services/movies"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

func (app *Application) listMovies(w http.ResponseWriter, r *http.Request) {
	data, err := app.genreYearContext(r.Context())
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	found, metadata, err := app.services.Movies.List(r.Context(), app.readPage(r))
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	data.Movies = found
	data.Metadata = metadata
	app.render(w, r, http.StatusOK, "movie_list.gohtml", data)
}

func (app *Application) filterMovies(w http.ResponseWriter, r *http.Request) {
	data, err := app.genreYearContext(r.Context())
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	query := r.URL.Query()
	found, metadata, err := app.services.Movies.Filter(
		r.Context(),
		query["year"],
		query["genre"],
		app.readPage(r),
	)
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	data.Movies = found
	data.Metadata = metadata
	data.QueryFragment = template.URL(queryFragment(query))
	app.render(w, r, http.StatusOK, "movie_list.gohtml", data)
}

// jsonFilterMovies serves the same filter result as filterMovies, reduced to
// the compact shape consumed by the front-end scripts.
func (app *Application) jsonFilterMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	projections, err := app.services.Movies.FilterProjection(
		r.Context(),
		query["year"],
		query["genre"],
		app.readPage(r),
	)
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	render.JSON(w, r, envelop{"movies": projections})
}

func (app *Application) searchMovies(w http.ResponseWriter, r *http.Request) {
	data, err := app.genreYearContext(r.Context())
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	query := r.URL.Query()
	found, metadata, err := app.services.Movies.Search(r.Context(), query.Get("q"), app.readPage(r))
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	data.Movies = found
	data.Metadata = metadata
	data.Query = query.Get("q")
	data.QueryFragment = template.URL(queryFragment(query))
	app.render(w, r, http.StatusOK, "movie_list.gohtml", data)
}

func (app *Application) movieDetail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	movie, err := app.services.Movies.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, movies.ErrMovieNotFound) {
			app.Http.NotFound(w, r, "Movie not found")
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	data, err := app.genreYearContext(r.Context())
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	reviews, err := app.services.Reviews.GetForMovie(r.Context(), movie.ID)
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	stars, err := app.services.Ratings.Stars(r.Context())
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	data.Movie = movie
	data.Reviews = reviews
	data.Stars = stars
	app.render(w, r, http.StatusOK, "movie_detail.gohtml", data)
}
