package reviews

import (
	"context"
	"errors"
	"log/slog"

	"kinoteka/proj/internal/domain/models"
	"kinoteka/proj/internal/storage"
)

var (
	ErrCaptchaRejected = errors.New("captcha verification failed")
	ErrParentNotFound  = errors.New("parent review does not exist")
)

type ReviewsStorage interface {
	Insert(ctx context.Context, movieID int64, parentID *int64, name, email, text string) (*models.Review, error)
	GetForMovie(ctx context.Context, movieID int64) ([]models.Review, error)
}

type CaptchaVerifier interface {
	Verify(ctx context.Context, token, remoteIP string) (bool, error)
}

type ReviewService struct {
	log     *slog.Logger
	storage ReviewsStorage
	captcha CaptchaVerifier
}

func New(log *slog.Logger, storage ReviewsStorage, captcha CaptchaVerifier) *ReviewService {
	return &ReviewService{
		log:     log,
		storage: storage,
		captcha: captcha,
	}
}

type SubmitParams struct {
	MovieID      int64
	Name         string
	Email        string
	Text         string
	ParentID     *int64
	CaptchaToken string
	RemoteIP     string
}

// Submit verifies the anti-automation token and persists the review. A
// non-nil ParentID threads the review under an existing one; whether the
// parent belongs to the same movie is deliberately not checked.
func (s *ReviewService) Submit(ctx context.Context, p SubmitParams) (*models.Review, error) {
	const op = "reviews.ReviewService.Submit"
	log := s.log.With("op", op, "movie_id", p.MovieID)
	ok, err := s.captcha.Verify(ctx, p.CaptchaToken, p.RemoteIP)
	if err != nil {
		log.Error("captcha verification unavailable: " + err.Error())
		return nil, err
	}
	if !ok {
		log.Info("captcha rejected review submission")
		return nil, ErrCaptchaRejected
	}
	review, err := s.storage.Insert(ctx, p.MovieID, p.ParentID, p.Name, p.Email, p.Text)
	if err != nil {
		if errors.Is(err, storage.ErrBrokenRef) {
			log.Info("parent review not found", "parent_id", p.ParentID)
			return nil, ErrParentNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return review, nil
}

// GetForMovie returns a movie's reviews in insertion order; replies carry the
// parent id and the thread tree is rebuilt by the presentation layer.
func (s *ReviewService) GetForMovie(ctx context.Context, movieID int64) ([]models.Review, error) {
	const op = "reviews.ReviewService.GetForMovie"
	log := s.log.With("op", op, "movie_id", movieID)
	found, err := s.storage.GetForMovie(ctx, movieID)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	return found, nil
}
