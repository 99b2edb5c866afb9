package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// routes registers every handler explicitly at startup; nothing is wired as
// a side effect of package imports.
func (app *Application) routes() http.Handler {
	router := chi.NewRouter()
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		app.Http.NotFound(w, r, "Page not found")
	})
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(app.Recoverer)
	router.Use(app.RateLimiter)

	router.Get("/", app.listMovies)
	router.Get("/filter/", app.filterMovies)
	router.Get("/json-filter/", app.jsonFilterMovies)
	router.Get("/search/", app.searchMovies)
	router.Get("/movie/{slug}/", app.movieDetail)
	router.Post("/review/{id}/", app.addReview)
	router.Get("/actor/{slug}/", app.actorDetail)
	router.Post("/add-rating/", app.addRating)
	router.Post("/contact/", app.addContact)
	router.Get("/healthcheck", app.healthcheck)

	router.Route("/api/admin", func(r chi.Router) {
		r.Post("/login", app.adminLogin)
		r.Group(func(r chi.Router) {
			r.Use(app.RequireAdmin)
			r.Post("/movies", app.createMovie)
			r.Put("/movies/{id}", app.updateMovie)
			r.Delete("/movies/{id}", app.deleteMovie)
			r.Post("/movies/{id}/shots", app.createMovieShot)
			r.Post("/genres", app.createGenre)
			r.Delete("/genres/{id}", app.deleteGenre)
			r.Post("/categories", app.createCategory)
			r.Delete("/categories/{id}", app.deleteCategory)
			r.Post("/actors", app.createActor)
			r.Delete("/actors/{id}", app.deleteActor)
			r.Get("/reviews", app.listReviews)
			r.Delete("/reviews/{id}", app.deleteReview)
		})
	})
	return router
}
