package main

import (
	"net/http"

	"kinoteka/proj/internal/lib/validator"
)

type addContactInput struct {
	Email   string `schema:"email" validate:"required,email"`
	Message string `schema:"message" validate:"required,max=2000"`
}

func (app *Application) addContact(w http.ResponseWriter, r *http.Request) {
	var input addContactInput
	if err := app.readForm(r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if validationErrs := validator.ValidateStruct(app.validator, &input); validationErrs != nil {
		app.Http.UnprocessableEntity(w, r, validationErrs)
		return
	}
	if _, err := app.services.Contact.Submit(r.Context(), input.Email, input.Message); err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
