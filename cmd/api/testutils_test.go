package main

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"kinoteka/proj/internal/config"
	"kinoteka/proj/internal/domain/filters"
	"kinoteka/proj/internal/domain/models"
	"kinoteka/proj/internal/services"
	"kinoteka/proj/internal/services/actors"
	"kinoteka/proj/internal/services/movies"
	"kinoteka/proj/internal/services/ratings"
	"kinoteka/proj/internal/services/reviews"
	"kinoteka/proj/internal/storage"
	"kinoteka/proj/internal/web"

	govalidator "github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
)

type fakeMoviesStorage struct {
	movies []models.Movie
}

func (f *fakeMoviesStorage) ListPublished(ctx context.Context, flt filters.Filters) ([]models.Movie, int, error) {
	published := make([]models.Movie, 0, len(f.movies))
	for _, m := range f.movies {
		if !m.Draft {
			published = append(published, m)
		}
	}
	return published, len(published), nil
}

func (f *fakeMoviesStorage) FilterByYearsGenres(ctx context.Context, years []int32, genreIDs []int64, flt filters.Filters) ([]models.Movie, int, error) {
	matched := make([]models.Movie, 0)
	for _, m := range f.movies {
		for _, y := range years {
			if m.Year == y {
				matched = append(matched, m)
				break
			}
		}
	}
	return matched, len(matched), nil
}

func (f *fakeMoviesStorage) SearchByTitle(ctx context.Context, query string, flt filters.Filters) ([]models.Movie, int, error) {
	return f.ListPublished(ctx, flt)
}

func (f *fakeMoviesStorage) GetPublishedBySlug(ctx context.Context, slug string) (*models.Movie, error) {
	for i := range f.movies {
		if f.movies[i].URL == slug && !f.movies[i].Draft {
			return &f.movies[i], nil
		}
	}
	return nil, storage.ErrNotFound
}

func (f *fakeMoviesStorage) Get(ctx context.Context, id int64) (*models.Movie, error) {
	for i := range f.movies {
		if f.movies[i].ID == id {
			return &f.movies[i], nil
		}
	}
	return nil, storage.ErrNotFound
}

func (f *fakeMoviesStorage) ListYears(ctx context.Context) ([]int32, error) {
	return []int32{1999, 2003}, nil
}

type fakeGenresStorage struct{}

func (f *fakeGenresStorage) List(ctx context.Context) ([]models.Genre, error) {
	return []models.Genre{{ID: 1, Name: "Drama"}, {ID: 2, Name: "Sci-Fi"}}, nil
}

type fakeRatingsStorage struct {
	lastIP      string
	lastMovieID int64
	lastStarID  int64
	seen        map[string]bool
	knownMovies map[int64]bool
}

func (f *fakeRatingsStorage) Upsert(ctx context.Context, ip string, movieID, starID int64) (bool, error) {
	if !f.knownMovies[movieID] {
		return false, storage.ErrBrokenRef
	}
	f.lastIP = ip
	f.lastMovieID = movieID
	f.lastStarID = starID
	if f.seen == nil {
		f.seen = make(map[string]bool)
	}
	created := !f.seen[ip]
	f.seen[ip] = true
	return created, nil
}

func (f *fakeRatingsStorage) GetForMovie(ctx context.Context, movieID int64, ip string) (*models.Rating, error) {
	return nil, storage.ErrNotFound
}

func (f *fakeRatingsStorage) ListStars(ctx context.Context) ([]models.RatingStar, error) {
	stars := make([]models.RatingStar, 0, 5)
	for v := int32(1); v <= 5; v++ {
		stars = append(stars, models.RatingStar{ID: int64(v), Value: v})
	}
	return stars, nil
}

func (f *fakeRatingsStorage) GetStarByValue(ctx context.Context, value int32) (*models.RatingStar, error) {
	if value < 1 || value > 5 {
		return nil, storage.ErrNotFound
	}
	return &models.RatingStar{ID: int64(value), Value: value}, nil
}

type fakeReviewsStorage struct {
	reviews []models.Review
}

func (f *fakeReviewsStorage) Insert(ctx context.Context, movieID int64, parentID *int64, name, email, text string) (*models.Review, error) {
	review := models.Review{
		ID:       int64(len(f.reviews) + 1),
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

type fakeActorsStorage struct {
	actors []models.Actor
}

func (f *fakeActorsStorage) GetByName(ctx context.Context, name string) (*models.Actor, error) {
	for i := range f.actors {
		if f.actors[i].Name == name {
			return &f.actors[i], nil
		}
	}
	return nil, storage.ErrNotFound
}

type acceptAllCaptcha struct{}

func (acceptAllCaptcha) Verify(ctx context.Context, token, remoteIP string) (bool, error) {
	return true, nil
}

type testStorages struct {
	movies  *fakeMoviesStorage
	ratings *fakeRatingsStorage
	reviews *fakeReviewsStorage
	actors  *fakeActorsStorage
}

func newTestStorages() *testStorages {
	return &testStorages{
		movies: &fakeMoviesStorage{movies: []models.Movie{
			{ID: 1, Title: "The Matrix", Tagline: "Free your mind", URL: "the-matrix", Poster: "/media/matrix.jpg", Year: 1999},
			{ID: 2, Title: "Oldboy", URL: "oldboy", Year: 2003},
			{ID: 3, Title: "Unreleased", URL: "unreleased", Draft: true},
		}},
		ratings: &fakeRatingsStorage{knownMovies: map[int64]bool{1: true, 2: true, 3: true}},
		reviews: &fakeReviewsStorage{},
		actors:  &fakeActorsStorage{actors: []models.Actor{{ID: 1, Name: "Keanu Reeves", Age: 56}}},
	}
}

func NewTestApplication(t *testing.T, storages *testStorages) *Application {
	t.Helper()
	if storages == nil {
		storages = newTestStorages()
	}
	cfg := &config.Config{
		Catalog: config.Catalog{PageSize: 9},
		Admin: config.Admin{
			JWTSecret: "test-secret",
			TokenTTL:  time.Hour,
		},
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	templates, err := web.NewTemplateCache()
	if err != nil {
		t.Fatal(err)
	}
	formDecoder := schema.NewDecoder()
	formDecoder.IgnoreUnknownKeys(true)
	return &Application{
		cfg:         cfg,
		log:         log,
		validator:   govalidator.New(govalidator.WithRequiredStructEnabled()),
		formDecoder: formDecoder,
		templates:   templates,
		services: &services.Services{
			Movies:  movies.New(log, storages.movies, &fakeGenresStorage{}, cfg.Catalog.PageSize),
			Ratings: ratings.New(log, storages.ratings),
			Reviews: reviews.New(log, storages.reviews, acceptAllCaptcha{}),
			Actors:  actors.New(log, storages.actors),
		},
		Http: &Http{log: log, cfg: cfg},
	}
}
