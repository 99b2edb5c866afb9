package services

import (
	"log/slog"

	"kinoteka/proj/internal/clients/captcha"
	"kinoteka/proj/internal/config"
	"kinoteka/proj/internal/mails"
	"kinoteka/proj/internal/services/actors"
	"kinoteka/proj/internal/services/admin"
	"kinoteka/proj/internal/services/contact"
	"kinoteka/proj/internal/services/movies"
	"kinoteka/proj/internal/services/ratings"
	"kinoteka/proj/internal/services/reviews"
	storagemodels "kinoteka/proj/internal/storage/postgres/models"
)

type Services struct {
	Movies  *movies.MovieService
	Ratings *ratings.RatingService
	Reviews *reviews.ReviewService
	Actors  *actors.ActorService
	Contact *contact.ContactService
	Admin   *admin.CatalogService
}

func New(log *slog.Logger, cfg *config.Config, models *storagemodels.Models, taskExecutor contact.TaskExecutor) *Services {
	captchaClient := captcha.New(
		log,
		cfg.Captcha.VerifyURL,
		cfg.Captcha.Secret,
		cfg.Captcha.Timeout,
		cfg.Captcha.RetriesCount,
	)
	mailer := mails.New(
		cfg.SMTPServer.Host,
		cfg.SMTPServer.Port,
		cfg.SMTPServer.Timeout,
		cfg.SMTPServer.Username,
		cfg.SMTPServer.Password,
		cfg.SMTPServer.Sender,
		cfg.SMTPServer.RetriesCount,
	)
	return &Services{
		Movies:  movies.New(log, models.Movie, models.Genre, cfg.Catalog.PageSize),
		Ratings: ratings.New(log, models.Rating),
		Reviews: reviews.New(log, models.Review, captchaClient),
		Actors:  actors.New(log, models.Actor),
		Contact: contact.New(log, models.Contact, mailer, taskExecutor, cfg.SMTPServer.OwnerEmail),
		Admin:   admin.New(log, models.Movie, models.Genre, models.Category, models.Actor, models.Review),
	}
}
