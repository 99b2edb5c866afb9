package admin

import (
	"context"
	"errors"
	"log/slog"

	"kinoteka/proj/internal/domain/filters"
	"kinoteka/proj/internal/domain/models"
	"kinoteka/proj/internal/storage"
	storagemodels "kinoteka/proj/internal/storage/postgres/models"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record with that slug already exists")
	ErrBrokenRef     = errors.New("referenced record does not exist")
)

type MoviesAdminStorage interface {
	Insert(ctx context.Context, p storagemodels.MovieParams) (*models.Movie, error)
	Update(ctx context.Context, id int64, p storagemodels.MovieParams) (*models.Movie, error)
	Delete(ctx context.Context, id int64) error
	InsertShot(ctx context.Context, movieID int64, title, description, image string) (*models.MovieShot, error)
}

type GenresAdminStorage interface {
	Insert(ctx context.Context, name, url string) (*models.Genre, error)
	Delete(ctx context.Context, id int64) error
}

type CategoriesAdminStorage interface {
	Insert(ctx context.Context, name, url string) (*models.Category, error)
	Delete(ctx context.Context, id int64) error
}

type ActorsAdminStorage interface {
	Insert(ctx context.Context, name string, age int32, image, description string) (*models.Actor, error)
	Delete(ctx context.Context, id int64) error
}

type ReviewsAdminStorage interface {
	List(ctx context.Context, f filters.Filters) ([]models.Review, int, error)
	Delete(ctx context.Context, id int64) error
}

// CatalogService backs the thin admin API. Catalog entities are created and
// edited only through here; public handlers never write them.
type CatalogService struct {
	log        *slog.Logger
	movies     MoviesAdminStorage
	genres     GenresAdminStorage
	categories CategoriesAdminStorage
	actors     ActorsAdminStorage
	reviews    ReviewsAdminStorage
}

func New(
	log *slog.Logger,
	movies MoviesAdminStorage,
	genres GenresAdminStorage,
	categories CategoriesAdminStorage,
	actors ActorsAdminStorage,
	reviews ReviewsAdminStorage,
) *CatalogService {
	return &CatalogService{
		log:        log,
		movies:     movies,
		genres:     genres,
		categories: categories,
		actors:     actors,
		reviews:    reviews,
	}
}

func translate(err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, storage.ErrConflict):
		return ErrAlreadyExists
	case errors.Is(err, storage.ErrBrokenRef):
		return ErrBrokenRef
	}
	return err
}

func (s *CatalogService) CreateMovie(ctx context.Context, p storagemodels.MovieParams) (*models.Movie, error) {
	const op = "admin.CatalogService.CreateMovie"
	movie, err := s.movies.Insert(ctx, p)
	if err != nil {
		s.log.With("op", op, "title", p.Title).Error(err.Error())
		return nil, translate(err)
	}
	return movie, nil
}

func (s *CatalogService) UpdateMovie(ctx context.Context, id int64, p storagemodels.MovieParams) (*models.Movie, error) {
	const op = "admin.CatalogService.UpdateMovie"
	movie, err := s.movies.Update(ctx, id, p)
	if err != nil {
		s.log.With("op", op, "id", id).Error(err.Error())
		return nil, translate(err)
	}
	return movie, nil
}

func (s *CatalogService) DeleteMovie(ctx context.Context, id int64) error {
	if err := s.movies.Delete(ctx, id); err != nil {
		return translate(err)
	}
	return nil
}

func (s *CatalogService) CreateShot(ctx context.Context, movieID int64, title, description, image string) (*models.MovieShot, error) {
	shot, err := s.movies.InsertShot(ctx, movieID, title, description, image)
	if err != nil {
		return nil, translate(err)
	}
	return shot, nil
}

func (s *CatalogService) CreateGenre(ctx context.Context, name, url string) (*models.Genre, error) {
	genre, err := s.genres.Insert(ctx, name, url)
	if err != nil {
		return nil, translate(err)
	}
	return genre, nil
}

func (s *CatalogService) DeleteGenre(ctx context.Context, id int64) error {
	if err := s.genres.Delete(ctx, id); err != nil {
		return translate(err)
	}
	return nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, name, url string) (*models.Category, error) {
	category, err := s.categories.Insert(ctx, name, url)
	if err != nil {
		return nil, translate(err)
	}
	return category, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		return translate(err)
	}
	return nil
}

func (s *CatalogService) CreateActor(ctx context.Context, name string, age int32, image, description string) (*models.Actor, error) {
	actor, err := s.actors.Insert(ctx, name, age, image, description)
	if err != nil {
		return nil, translate(err)
	}
	return actor, nil
}

func (s *CatalogService) DeleteActor(ctx context.Context, id int64) error {
	if err := s.actors.Delete(ctx, id); err != nil {
		return translate(err)
	}
	return nil
}

func (s *CatalogService) ListReviews(ctx context.Context, f filters.Filters) ([]models.Review, int, error) {
	return s.reviews.List(ctx, f)
}

func (s *CatalogService) DeleteReview(ctx context.Context, id int64) error {
	if err := s.reviews.Delete(ctx, id); err != nil {
		return translate(err)
	}
	return nil
}
