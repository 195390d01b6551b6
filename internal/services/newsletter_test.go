package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tar1ksite/internal/domain"
)

func TestNewsletterService_Subscribe(t *testing.T) {
	ctx := context.Background()

	t.Run("without audience list notifies operators then welcomes guest", func(t *testing.T) {
		store := newFakeStore()
		mailer := &fakeMailer{}
		renderer := &fakeRenderer{}
		svc := NewNewsletterService(testLogger, store, mailer, renderer, nil,
			"booking@tar1k.com", []string{"booking@tar1k.com"})

		require.NoError(t, svc.Subscribe(ctx, []byte(`{"email":"jane@example.com"}`)))

		require.Len(t, store.subscribers, 1)
		assert.Equal(t, "jane@example.com", store.subscribers[0].Email)
		require.Len(t, mailer.sent, 2)
		assert.Equal(t, []string{"booking@tar1k.com"}, mailer.sent[0].To)
		assert.Equal(t, []string{"jane@example.com"}, mailer.sent[1].To)
		assert.Equal(t, []string{"newsletter_notify", "newsletter_welcome"}, renderer.rendered)
	})

	t.Run("with audience list registers contact instead of notifying", func(t *testing.T) {
		store := newFakeStore()
		mailer := &fakeMailer{}
		renderer := &fakeRenderer{}
		registrar := &fakeRegistrar{}
		svc := NewNewsletterService(testLogger, store, mailer, renderer, registrar,
			"booking@tar1k.com", []string{"booking@tar1k.com"})

		require.NoError(t, svc.Subscribe(ctx, []byte(`{"email":"jane@example.com"}`)))

		assert.Equal(t, []string{"jane@example.com"}, registrar.registered)
		// Only the guest welcome goes out.
		require.Len(t, mailer.sent, 1)
		assert.Equal(t, []string{"jane@example.com"}, mailer.sent[0].To)
		assert.Equal(t, []string{"newsletter_welcome"}, renderer.rendered)
	})

	t.Run("missing email fails validation with no side effects", func(t *testing.T) {
		store := newFakeStore()
		mailer := &fakeMailer{}
		svc := NewNewsletterService(testLogger, store, mailer, &fakeRenderer{}, nil,
			"booking@tar1k.com", []string{"booking@tar1k.com"})

		err := svc.Subscribe(ctx, []byte(`{}`))
		require.ErrorIs(t, err, domain.ErrMissingFields)
		assert.Empty(t, store.calls)
		assert.Empty(t, mailer.sent)
	})

	t.Run("registrar failure fails the request", func(t *testing.T) {
		store := newFakeStore()
		registrar := &fakeRegistrar{err: assert.AnError}
		svc := NewNewsletterService(testLogger, store, &fakeMailer{}, &fakeRenderer{}, registrar,
			"booking@tar1k.com", []string{"booking@tar1k.com"})

		err := svc.Subscribe(ctx, []byte(`{"email":"jane@example.com"}`))
		require.Error(t, err)
	})
}
