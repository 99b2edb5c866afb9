package movies

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"kinoteka/proj/internal/domain/filters"
	"kinoteka/proj/internal/domain/models"
	"kinoteka/proj/internal/storage"
)

type MoviesStorage interface {
	ListPublished(ctx context.Context, f filters.Filters) ([]models.Movie, int, error)
	FilterByYearsGenres(ctx context.Context, years []int32, genreIDs []int64, f filters.Filters) ([]models.Movie, int, error)
	SearchByTitle(ctx context.Context, query string, f filters.Filters) ([]models.Movie, int, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*models.Movie, error)
	Get(ctx context.Context, id int64) (*models.Movie, error)
	ListYears(ctx context.Context) ([]int32, error)
}

type GenresStorage interface {
	List(ctx context.Context) ([]models.Genre, error)
}

type MovieService struct {
	log      *slog.Logger
	storage  MoviesStorage
	genres   GenresStorage
	pageSize int
}

func New(log *slog.Logger, storage MoviesStorage, genres GenresStorage, pageSize int) *MovieService {
	return &MovieService{
		log:      log,
		storage:  storage,
		genres:   genres,
		pageSize: pageSize,
	}
}

func (s *MovieService) page(page int) filters.Filters {
	if page < 1 {
		page = 1
	}
	return filters.Filters{Page: page, PageSize: s.pageSize}
}

// List returns one page of the public catalog: non-draft movies in insertion
// order.
func (s *MovieService) List(ctx context.Context, page int) ([]models.Movie, filters.Metadata, error) {
	const op = "movies.MovieService.List"
	log := s.log.With("op", op, "page", page)
	f := s.page(page)
	found, total, err := s.storage.ListPublished(ctx, f)
	if err != nil {
		log.Error(err.Error())
		return nil, filters.Metadata{}, err
	}
	return found, filters.CalculateMetadata(total, f.Page, f.PageSize), nil
}

// Filter returns the distinct union of movies matching any of the requested
// years or any of the requested genre ids. Values that do not parse as
// integers are dropped; an empty selection matches nothing. Draft movies are
// not excluded here, mirroring the public filter's historical behavior.
func (s *MovieService) Filter(ctx context.Context, years, genreIDs []string, page int) ([]models.Movie, filters.Metadata, error) {
	const op = "movies.MovieService.Filter"
	log := s.log.With("op", op, "years", years, "genres", genreIDs)
	parsedYears := make([]int32, 0, len(years))
	for _, y := range years {
		year, err := strconv.ParseInt(y, 10, 32)
		if err != nil {
			log.Debug("skipping malformed year", "value", y)
			continue
		}
		parsedYears = append(parsedYears, int32(year))
	}
	parsedGenres := make([]int64, 0, len(genreIDs))
	for _, g := range genreIDs {
		genreID, err := strconv.ParseInt(g, 10, 64)
		if err != nil {
			log.Debug("skipping malformed genre id", "value", g)
			continue
		}
		parsedGenres = append(parsedGenres, genreID)
	}
	f := s.page(page)
	found, total, err := s.storage.FilterByYearsGenres(ctx, parsedYears, parsedGenres, f)
	if err != nil {
		log.Error(err.Error())
		return nil, filters.Metadata{}, err
	}
	return found, filters.CalculateMetadata(total, f.Page, f.PageSize), nil
}

// FilterProjection runs the same filter and reduces each movie to the compact
// shape served by the JSON endpoint.
func (s *MovieService) FilterProjection(ctx context.Context, years, genreIDs []string, page int) ([]models.MovieProjection, error) {
	found, _, err := s.Filter(ctx, years, genreIDs, page)
	if err != nil {
		return nil, err
	}
	projections := make([]models.MovieProjection, 0, len(found))
	for _, movie := range found {
		projections = append(projections, models.MovieProjection{
			Title:   movie.Title,
			Tagline: movie.Tagline,
			URL:     movie.URL,
			Poster:  movie.Poster,
		})
	}
	return projections, nil
}

// Search matches the query as a case-insensitive substring of movie titles.
func (s *MovieService) Search(ctx context.Context, query string, page int) ([]models.Movie, filters.Metadata, error) {
	const op = "movies.MovieService.Search"
	log := s.log.With("op", op, "query", query)
	f := s.page(page)
	found, total, err := s.storage.SearchByTitle(ctx, query, f)
	if err != nil {
		log.Error(err.Error())
		return nil, filters.Metadata{}, err
	}
	return found, filters.CalculateMetadata(total, f.Page, f.PageSize), nil
}

// GetBySlug loads a published movie with its relations for the detail page.
func (s *MovieService) GetBySlug(ctx context.Context, slug string) (*models.Movie, error) {
	const op = "movies.MovieService.GetBySlug"
	log := s.log.With("op", op, "slug", slug)
	movie, err := s.storage.GetPublishedBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("movie not found")
			return nil, ErrMovieNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return movie, nil
}

// Get looks a movie up by id regardless of its draft flag (used by the
// review submission path and the admin API).
func (s *MovieService) Get(ctx context.Context, id int64) (*models.Movie, error) {
	const op = "movies.MovieService.Get"
	log := s.log.With("op", op, "id", id)
	movie, err := s.storage.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("movie not found")
			return nil, ErrMovieNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return movie, nil
}

// GenreYearContext is the sidebar context shared by the list and detail
// pages: every genre plus the distinct release years of published movies.
type GenreYearContext struct {
	Genres []models.Genre
	Years  []int32
}

func (s *MovieService) GenresAndYears(ctx context.Context) (*GenreYearContext, error) {
	const op = "movies.MovieService.GenresAndYears"
	log := s.log.With("op", op)
	genres, err := s.genres.List(ctx)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	years, err := s.storage.ListYears(ctx)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	return &GenreYearContext{Genres: genres, Years: years}, nil
}
