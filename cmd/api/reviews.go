package main

import (
	"errors"
	"net/http"

	"kinoteka/proj/internal/lib/validator"
	"kinoteka/proj/internal/services/movies"
	"kinoteka/proj/internal/services/reviews"
)

type addReviewInput struct {
	Name         string `schema:"name" validate:"required,max=100"`
	Email        string `schema:"email" validate:"required,email"`
	Text         string `schema:"text" validate:"required,max=5000"`
	ParentID     *int64 `schema:"parent" validate:"omitempty,gt=0"`
	CaptchaToken string `schema:"g-recaptcha-response"`
}

// addReview accepts a review submission for the movie in the path and sends
// the browser back to that movie's page. A submission that fails validation
// or the captcha check is dropped, but the redirect is issued all the same,
// so the page simply reloads without the new review.
func (app *Application) addReview(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.addReview"
	log := app.log.With("op", op)
	movieID, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	movie, err := app.services.Movies.Get(r.Context(), movieID)
	if err != nil {
		if errors.Is(err, movies.ErrMovieNotFound) {
			app.Http.NotFound(w, r, "Movie not found")
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	redirect := func() {
		http.Redirect(w, r, "/movie/"+movie.URL+"/", http.StatusSeeOther)
	}
	var input addReviewInput
	if err := app.readForm(r, &input); err != nil {
		log.Warn("discarding unreadable review form", "movie_id", movieID, "err", err.Error())
		redirect()
		return
	}
	if validationErrs := validator.ValidateStruct(app.validator, &input); validationErrs != nil {
		log.Warn("discarding invalid review", "movie_id", movieID, "errors", validationErrs)
		redirect()
		return
	}
	_, err = app.services.Reviews.Submit(r.Context(), reviews.SubmitParams{
		MovieID:      movieID,
		Name:         input.Name,
		Email:        input.Email,
		Text:         input.Text,
		ParentID:     input.ParentID,
		CaptchaToken: input.CaptchaToken,
		RemoteIP:     clientIP(r),
	})
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrCaptchaRejected):
			log.Warn("discarding review with rejected captcha", "movie_id", movieID)
		case errors.Is(err, reviews.ErrParentNotFound):
			log.Warn("discarding review with missing parent", "movie_id", movieID)
		default:
			app.Http.ServerError(w, r, err, "")
			return
		}
	}
	redirect()
}
