package ratings

import (
	"context"
	"errors"
	"log/slog"

	"kinoteka/proj/internal/domain/models"
	"kinoteka/proj/internal/storage"
)

var (
	ErrInvalidStar   = errors.New("star value must be between 1 and 5")
	ErrMovieNotFound = errors.New("movie not found")
)

type RatingsStorage interface {
	Upsert(ctx context.Context, ip string, movieID, starID int64) (bool, error)
	GetForMovie(ctx context.Context, movieID int64, ip string) (*models.Rating, error)
	ListStars(ctx context.Context) ([]models.RatingStar, error)
	GetStarByValue(ctx context.Context, value int32) (*models.RatingStar, error)
}

type RatingService struct {
	log     *slog.Logger
	storage RatingsStorage
}

func New(log *slog.Logger, storage RatingsStorage) *RatingService {
	return &RatingService{
		log:     log,
		storage: storage,
	}
}

// Submit records starValue for (movieID, clientIP), overwriting any rating
// previously submitted from the same address. Returns created=false when an
// existing rating was updated in place.
func (s *RatingService) Submit(ctx context.Context, clientIP string, movieID int64, starValue int32) (created bool, err error) {
	const op = "ratings.RatingService.Submit"
	log := s.log.With("op", op, "ip", clientIP, "movie_id", movieID, "star", starValue)
	if starValue < 1 || starValue > 5 {
		log.Info("rejecting out-of-range star value")
		return false, ErrInvalidStar
	}
	star, err := s.storage.GetStarByValue(ctx, starValue)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("no reference star row for value")
			return false, ErrInvalidStar
		}
		log.Error(err.Error())
		return false, err
	}
	created, err = s.storage.Upsert(ctx, clientIP, movieID, star.ID)
	if err != nil {
		if errors.Is(err, storage.ErrBrokenRef) {
			log.Info("movie not found")
			return false, ErrMovieNotFound
		}
		log.Error(err.Error())
		return false, err
	}
	if created {
		log.Debug("rating created")
	} else {
		log.Debug("rating updated")
	}
	return created, nil
}

// Get returns the rating previously submitted for movieID from clientIP.
func (s *RatingService) Get(ctx context.Context, movieID int64, clientIP string) (*models.Rating, error) {
	rating, err := s.storage.GetForMovie(ctx, movieID, clientIP)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rating, nil
}

// Stars returns the 1..5 reference rows used to render the rating form.
func (s *RatingService) Stars(ctx context.Context) ([]models.RatingStar, error) {
	return s.storage.ListStars(ctx)
}
