package main

import (
	"errors"
	"net/http"

	"kinoteka/proj/internal/lib/validator"
	"kinoteka/proj/internal/services/ratings"
)

type addRatingInput struct {
	MovieID int64 `schema:"movie" validate:"required,gt=0"`
	Star    int32 `schema:"star" validate:"required"`
}

// addRating records one star rating per (movie, client address) pair; a
// repeat submission from the same address overwrites the previous one.
func (app *Application) addRating(w http.ResponseWriter, r *http.Request) {
	var input addRatingInput
	if err := app.readForm(r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	// the rating endpoint contract is 201/400 only
	if validationErrs := validator.ValidateStruct(app.validator, &input); validationErrs != nil {
		app.Http.Response(w, r, envelop{"errors": validationErrs}, "", http.StatusBadRequest)
		return
	}
	created, err := app.services.Ratings.Submit(r.Context(), clientIP(r), input.MovieID, input.Star)
	if err != nil {
		switch {
		case errors.Is(err, ratings.ErrInvalidStar):
			app.Http.BadRequest(w, r, err.Error())
		case errors.Is(err, ratings.ErrMovieNotFound):
			app.Http.BadRequest(w, r, err.Error())
		default:
			app.Http.ServerError(w, r, err, "")
		}
		return
	}
	msg := "Rating updated"
	if created {
		msg = "Rating saved"
	}
	app.Http.Created(w, r, nil, msg)
}
