package contact

import (
	"context"
	"log/slog"

	"kinoteka/proj/internal/api/tasks"
	"kinoteka/proj/internal/domain/models"
)

type ContactsStorage interface {
	Insert(ctx context.Context, email, message string) (*models.Contact, error)
}

type Mailer interface {
	Send(recipient string, tmplName string, tmplData any) error
}

type TaskExecutor interface {
	Add(task tasks.Task)
}

type ContactService struct {
	log        *slog.Logger
	storage    ContactsStorage
	mailer     Mailer
	executor   TaskExecutor
	ownerEmail string
}

func New(log *slog.Logger, storage ContactsStorage, mailer Mailer, executor TaskExecutor, ownerEmail string) *ContactService {
	return &ContactService{
		log:        log,
		storage:    storage,
		mailer:     mailer,
		executor:   executor,
		ownerEmail: ownerEmail,
	}
}

// Submit persists the message and notifies the site owner in the background.
// A mail failure is logged, not surfaced: the message is already stored.
func (s *ContactService) Submit(ctx context.Context, email, message string) (*models.Contact, error) {
	const op = "contact.ContactService.Submit"
	log := s.log.With("op", op, "email", email)
	saved, err := s.storage.Insert(ctx, email, message)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	if s.ownerEmail != "" {
		s.executor.Add(func() {
			if err := s.mailer.Send(s.ownerEmail, "contact_message.gohtml", saved); err != nil {
				log.Error("failed to send contact notification: " + err.Error())
			}
		})
	}
	return saved, nil
}
