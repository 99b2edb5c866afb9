package main

import (
	"errors"
	"net/http"
	"time"

	"kinoteka/proj/internal/domain/filters"
	"kinoteka/proj/internal/lib/validator"
	"kinoteka/proj/internal/services/admin"
	storagemodels "kinoteka/proj/internal/storage/postgres/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type adminLoginInput struct {
	Password string `json:"password" validate:"required"`
}

func (app *Application) adminLogin(w http.ResponseWriter, r *http.Request) {
	var input adminLoginInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if validationErrs := validator.ValidateStruct(app.validator, &input); validationErrs != nil {
		app.Http.UnprocessableEntity(w, r, validationErrs)
		return
	}
	err := bcrypt.CompareHashAndPassword([]byte(app.cfg.Admin.PasswordHash), []byte(input.Password))
	if err != nil {
		app.log.Warn("failed admin login attempt", "ip", clientIP(r))
		app.Http.Unauthorized(w, r, "Invalid credentials")
		return
	}
	claims := jwt.MapClaims{
		"sub": "admin",
		"exp": time.Now().Add(app.cfg.Admin.TokenTTL).Unix(),
		"iat": time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(app.cfg.Admin.JWTSecret))
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"token": token}, "")
}

func (app *Application) adminWriteErr(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, admin.ErrNotFound):
		app.Http.NotFound(w, r, err.Error())
	case errors.Is(err, admin.ErrAlreadyExists):
		app.Http.Conflict(w, r, err.Error())
	case errors.Is(err, admin.ErrBrokenRef):
		app.Http.BadRequest(w, r, err.Error())
	default:
		app.Http.ServerError(w, r, err, "")
	}
}

type movieInput struct {
	Title         string    `json:"title" validate:"required,max=100"`
	Tagline       string    `json:"tagline" validate:"max=100"`
	Description   string    `json:"description" validate:"required"`
	Poster        string    `json:"poster"`
	Year          int32     `json:"year" validate:"required,gte=1895"`
	Country       string    `json:"country" validate:"required,max=30"`
	WorldPremiere time.Time `json:"world_premiere"`
	Budget        int64     `json:"budget" validate:"gte=0"`
	FeesInUsa     int64     `json:"fees_in_usa" validate:"gte=0"`
	FeesInWorld   int64     `json:"fees_in_world" validate:"gte=0"`
	CategoryID    int64     `json:"category_id" validate:"required,gt=0"`
	URL           string    `json:"url" validate:"required,max=130"`
	Draft         bool      `json:"draft"`
	GenreIDs      []int64   `json:"genre_ids" validate:"dive,gt=0"`
	ActorIDs      []int64   `json:"actor_ids" validate:"dive,gt=0"`
	DirectorIDs   []int64   `json:"director_ids" validate:"dive,gt=0"`
}

func (input *movieInput) toParams() storagemodels.MovieParams {
	return storagemodels.MovieParams{
		Title:         input.Title,
		Tagline:       input.Tagline,
		Description:   input.Description,
		Poster:        input.Poster,
		Year:          input.Year,
		Country:       input.Country,
		WorldPremiere: input.WorldPremiere,
		Budget:        input.Budget,
		FeesInUsa:     input.FeesInUsa,
		FeesInWorld:   input.FeesInWorld,
		CategoryID:    input.CategoryID,
		URL:           input.URL,
		Draft:         input.Draft,
		GenreIDs:      input.GenreIDs,
		ActorIDs:      input.ActorIDs,
		DirectorIDs:   input.DirectorIDs,
	}
}

func (app *Application) createMovie(w http.ResponseWriter, r *http.Request) {
	var input movieInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if validationErrs := validator.ValidateStruct(app.validator, &input); validationErrs != nil {
		app.Http.UnprocessableEntity(w, r, validationErrs)
		return
	}
	movie, err := app.services.Admin.CreateMovie(r.Context(), input.toParams())
	if err != nil {
		app.adminWriteErr(w, r, err)
		return
	}
	app.Http.Created(w, r, envelop{"movie": movie}, "")
}

func (app *Application) updateMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	var input movieInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if validationErrs := validator.ValidateStruct(app.validator, &input); validationErrs != nil {
		app.Http.UnprocessableEntity(w, r, validationErrs)
		return
	}
	movie, err := app.services.Admin.UpdateMovie(r.Context(), id, input.toParams())
	if err != nil {
		app.adminWriteErr(w, r, err)
		return
	}
	app.Http.Ok(w, r, envelop{"movie": movie}, "")
}

func (app *Application) deleteMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	if err := app.services.Admin.DeleteMovie(r.Context(), id); err != nil {
		app.adminWriteErr(w, r, err)
		return
	}
	app.Http.Ok(w, r, nil, "Movie deleted")
}

type movieShotInput struct {
	Title       string `json:"title" validate:"required,max=100"`
	Description string `json:"description"`
	Image       string `json:"image" validate:"required"`
}

func (app *Application) createMovieShot(w http.ResponseWriter, r *http.Request) {
	movieID, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	var input movieShotInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if validationErrs := validator.ValidateStruct(app.validator, &input); validationErrs != nil {
		app.Http.UnprocessableEntity(w, r, validationErrs)
		return
	}
	shot, err := app.services.Admin.CreateShot(r.Context(), movieID, input.Title, input.Description, input.Image)
	if err != nil {
		app.adminWriteErr(w, r, err)
		return
	}
	app.Http.Created(w, r, envelop{"shot": shot}, "")
}

type taxonomyInput struct {
	Name string `json:"name" validate:"required,max=100"`
	URL  string `json:"url" validate:"required,max=160"`
}

func (app *Application) createGenre(w http.ResponseWriter, r *http.Request) {
	var input taxonomyInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if validationErrs := validator.ValidateStruct(app.validator, &input); validationErrs != nil {
		app.Http.UnprocessableEntity(w, r, validationErrs)
		return
	}
	genre, err := app.services.Admin.CreateGenre(r.Context(), input.Name, input.URL)
	if err != nil {
		app.adminWriteErr(w, r, err)
		return
	}
	app.Http.Created(w, r, envelop{"genre": genre}, "")
}

func (app *Application) deleteGenre(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	if err := app.services.Admin.DeleteGenre(r.Context(), id); err != nil {
		app.adminWriteErr(w, r, err)
		return
	}
	app.Http.Ok(w, r, nil, "Genre deleted")
}

func (app *Application) createCategory(w http.ResponseWriter, r *http.Request) {
	var input taxonomyInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if validationErrs := validator.ValidateStruct(app.validator, &input); validationErrs != nil {
		app.Http.UnprocessableEntity(w, r, validationErrs)
		return
	}
	category, err := app.services.Admin.CreateCategory(r.Context(), input.Name, input.URL)
	if err != nil {
		app.adminWriteErr(w, r, err)
		return
	}
	app.Http.Created(w, r, envelop{"category": category}, "")
}

func (app *Application) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	if err := app.services.Admin.DeleteCategory(r.Context(), id); err != nil {
		app.adminWriteErr(w, r, err)
		return
	}
	app.Http.Ok(w, r, nil, "Category deleted")
}

type actorInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Age         int32  `json:"age" validate:"gte=0,lte=130"`
	Image       string `json:"image"`
	Description string `json:"description" validate:"required"`
}

func (app *Application) createActor(w http.ResponseWriter, r *http.Request) {
	var input actorInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if validationErrs := validator.ValidateStruct(app.validator, &input); validationErrs != nil {
		app.Http.UnprocessableEntity(w, r, validationErrs)
		return
	}
	actor, err := app.services.Admin.CreateActor(r.Context(), input.Name, input.Age, input.Image, input.Description)
	if err != nil {
		app.adminWriteErr(w, r, err)
		return
	}
	app.Http.Created(w, r, envelop{"actor": actor}, "")
}

func (app *Application) deleteActor(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	if err := app.services.Admin.DeleteActor(r.Context(), id); err != nil {
		app.adminWriteErr(w, r, err)
		return
	}
	app.Http.Ok(w, r, nil, "Actor deleted")
}

func (app *Application) listReviews(w http.ResponseWriter, r *http.Request) {
	f := filters.Filters{Page: app.readPage(r), PageSize: app.cfg.Catalog.PageSize}
	reviews, total, err := app.services.Admin.ListReviews(r.Context(), f)
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{
		"reviews":  reviews,
		"metadata": filters.CalculateMetadata(total, f.Page, f.PageSize),
	}, "")
}

func (app *Application) deleteReview(w http.ResponseWriter, r *http.Request) {
	id, ok := app.extractIDParam(w, r)
	if !ok {
		return
	}
	if err := app.services.Admin.DeleteReview(r.Context(), id); err != nil {
		app.adminWriteErr(w, r, err)
		return
	}
	app.Http.Ok(w, r, nil, "Review deleted")
}
