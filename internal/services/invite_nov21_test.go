package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tar1ksite/internal/domain"
)

const validNov21Body = `{"fullName":"Jane Doe","email":"jane@example.com","phone":"232700000","designation":"Press"}`

func newNov21Service(store *fakeStore, mailer *fakeMailer, renderer *fakeRenderer, codec *fakeCodec) domain.Nov21InviteService {
	return NewNov21InviteService(testLogger, store, mailer, renderer, codec,
		"booking@tar1k.com", []string{"booking@tar1k.com"})
}

func TestNov21InviteService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("stores rsvp with check-in material and notifies organizer then guest", func(t *testing.T) {
		store := newFakeStore()
		mailer := &fakeMailer{}
		renderer := &fakeRenderer{}
		codec := &fakeCodec{token: "token-1", payload: "signed-payload"}
		svc := newNov21Service(store, mailer, renderer, codec)

		require.NoError(t, svc.Submit(ctx, []byte(validNov21Body)))

		rsvp := store.rsvps["jane@example.com"]
		require.NotNil(t, rsvp)
		assert.Equal(t, "Jane Doe", rsvp.FullName)
		assert.Equal(t, "Press", rsvp.Designation)
		assert.Equal(t, "token-1", rsvp.CheckinToken)
		assert.Equal(t, "signed-payload", rsvp.QRPayload)
		assert.NotEmpty(t, rsvp.QRImagePNG)

		require.Len(t, mailer.sent, 2)
		assert.Equal(t, []string{"booking@tar1k.com"}, mailer.sent[0].To)
		assert.Equal(t, "jane@example.com", mailer.sent[0].ReplyTo)
		assert.Equal(t, []string{"jane@example.com"}, mailer.sent[1].To)
		assert.Equal(t, []string{"invite_nov21_organizer", "invite_nov21_guest"}, renderer.rendered)
	})

	t.Run("validation failure causes no side effects", func(t *testing.T) {
		store := newFakeStore()
		mailer := &fakeMailer{}
		svc := newNov21Service(store, mailer, &fakeRenderer{}, &fakeCodec{})

		err := svc.Submit(ctx, []byte(`[]`))
		require.ErrorIs(t, err, domain.ErrInvalidFormat)
		assert.Empty(t, store.calls)
		assert.Empty(t, mailer.sent)
	})

	t.Run("codec failure aborts before persistence", func(t *testing.T) {
		store := newFakeStore()
		codec := &fakeCodec{issueErr: assert.AnError}
		svc := newNov21Service(store, &fakeMailer{}, &fakeRenderer{}, codec)

		err := svc.Submit(ctx, []byte(validNov21Body))
		require.Error(t, err)
		assert.Empty(t, store.calls)
	})

	t.Run("guest send failure does not fail the request", func(t *testing.T) {
		store := newFakeStore()
		mailer := &fakeMailer{failOn: 2}
		svc := newNov21Service(store, mailer, &fakeRenderer{}, &fakeCodec{token: "t", payload: "p"})

		require.NoError(t, svc.Submit(ctx, []byte(validNov21Body)))
	})
}
