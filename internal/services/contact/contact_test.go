package contact

import (
	"context"
	"log/slog"
	"testing"

	"kinoteka/proj/internal/api/tasks"
	"kinoteka/proj/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContactsStorage struct {
	contacts []models.Contact
}

func (f *fakeContactsStorage) Insert(ctx context.Context, email, message string) (*models.Contact, error) {
	contact := models.Contact{ID: int64(len(f.contacts) + 1), Email: email, Message: message}
	f.contacts = append(f.contacts, contact)
	return &contact, nil
}

type fakeMailer struct {
	sentTo   []string
	tmplName string
}

func (f *fakeMailer) Send(recipient string, tmplName string, tmplData any) error {
	f.sentTo = append(f.sentTo, recipient)
	f.tmplName = tmplName
	return nil
}

// runs tasks inline so the test can assert on the mail synchronously
type inlineExecutor struct{}

func (inlineExecutor) Add(task tasks.Task) {
	task()
}

func TestSubmitStoresAndNotifies(t *testing.T) {
	store := &fakeContactsStorage{}
	mailer := &fakeMailer{}
	s := New(slog.Default(), store, mailer, inlineExecutor{}, "owner@kinoteka.local")

	contact, err := s.Submit(context.Background(), "fan@example.com", "More noir, please")
	require.NoError(t, err)
	assert.Equal(t, "fan@example.com", contact.Email)
	require.Len(t, store.contacts, 1)
	assert.Equal(t, []string{"owner@kinoteka.local"}, mailer.sentTo)
	assert.Equal(t, "contact_message.gohtml", mailer.tmplName)
}

func TestSubmitWithoutOwnerSkipsMail(t *testing.T) {
	store := &fakeContactsStorage{}
	mailer := &fakeMailer{}
	s := New(slog.Default(), store, mailer, inlineExecutor{}, "")

	_, err := s.Submit(context.Background(), "fan@example.com", "hello")
	require.NoError(t, err)
	require.Len(t, store.contacts, 1)
	assert.Empty(t, mailer.sentTo)
}
