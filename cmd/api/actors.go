package main

import (
	"errors"
	"net/http"

	"kinoteka/proj/internal/services/actors"

	"github.com/go-chi/chi/v5"
)

func (app *Application) actorDetail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	actor, err := app.services.Actors.GetByName(r.Context(), slug)
	if err != nil {
		if errors.Is(err, actors.ErrActorNotFound) {
			app.Http.NotFound(w, r, "Actor not found")
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
	data.Actor = actor
	app.render(w, r, http.StatusOK, "actor_detail.gohtml", data)
}
