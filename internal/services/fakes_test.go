package services

import (
	"context"
	"fmt"

	"tar1ksite/internal/domain"
)

// fakeStore implements domain.SubmissionStore for tests and records calls.
type fakeStore struct {
	count    int
	countErr error

	upsertErr error
	calls     []string

	contacts    []*domain.ContactMessage
	subscribers []*domain.NewsletterSubscriber
	signups     []*domain.GeneralSignup
	rsvps       map[string]*domain.Nov21RSVP
}

func newFakeStore() *fakeStore {
	return &fakeStore{rsvps: make(map[string]*domain.Nov21RSVP)}
}

func (f *fakeStore) UpsertContactMessage(ctx context.Context, m *domain.ContactMessage) error {
	f.calls = append(f.calls, "upsert")
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.contacts = append(f.contacts, m)
	return nil
}

func (f *fakeStore) UpsertNewsletterSubscriber(ctx context.Context, s *domain.NewsletterSubscriber) error {
	f.calls = append(f.calls, "upsert")
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.subscribers = append(f.subscribers, s)
	return nil
}

func (f *fakeStore) UpsertGeneralSignup(ctx context.Context, s *domain.GeneralSignup) error {
	f.calls = append(f.calls, "upsert")
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.signups = append(f.signups, s)
	return nil
}

func (f *fakeStore) CountGeneralSignups(ctx context.Context) (int, error) {
	f.calls = append(f.calls, "count")
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.count, nil
}

func (f *fakeStore) UpsertNov21RSVP(ctx context.Context, r *domain.Nov21RSVP) error {
	f.calls = append(f.calls, "upsert")
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.rsvps[r.Email] = r
	return nil
}

func (f *fakeStore) GetNov21RSVPByEmail(ctx context.Context, email string) (*domain.Nov21RSVP, error) {
	f.calls = append(f.calls, "get")
	if r, ok := f.rsvps[email]; ok {
		return r, nil
	}
	return nil, domain.ErrNotFound
}

// fakeMailer implements domain.Mailer for tests and records sent messages in order.
type fakeMailer struct {
	sent    []*domain.EmailMessage
	failOn  int // 1-based index of the send that fails; 0 means never
	sendErr error
}

func (f *fakeMailer) Send(ctx context.Context, msg *domain.EmailMessage) error {
	f.sent = append(f.sent, msg)
	if f.failOn != 0 && len(f.sent) == f.failOn {
		if f.sendErr != nil {
			return f.sendErr
		}
		return fmt.Errorf("send failed")
	}
	return nil
}

// fakeRenderer implements domain.EmailTemplateRenderer; it records template
// names and returns them as subjects.
type fakeRenderer struct {
	rendered  []string
	renderErr error
}

func (f *fakeRenderer) Render(templateName string, data any) (string, string, string, error) {
	f.rendered = append(f.rendered, templateName)
	if f.renderErr != nil {
		return "", "", "", f.renderErr
	}
	return templateName, "<html>" + templateName + "</html>", templateName, nil
}

// fakeCodec implements domain.CheckinCodec with deterministic output.
type fakeCodec struct {
	token    string
	payload  string
	issueErr error

	claims    *domain.CheckinClaims
	verifyErr error
}

func (f *fakeCodec) Issue(flow domain.Flow, email string) (*domain.CheckinCode, error) {
	if f.issueErr != nil {
		return nil, f.issueErr
	}
	return &domain.CheckinCode{
		Token:        f.token,
		Payload:      f.payload,
		ImagePNG:     []byte{0x89, 0x50, 0x4e, 0x47},
		ImageDataURL: "data:image/png;base64,iVBO",
	}, nil
}

func (f *fakeCodec) Verify(payload string) (*domain.CheckinClaims, error) {
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	return f.claims, nil
}

// fakeRegistrar implements domain.AudienceRegistrar.
type fakeRegistrar struct {
	registered []string
	err        error
}

func (f *fakeRegistrar) RegisterContact(ctx context.Context, email string) error {
	if f.err != nil {
		return f.err
	}
	f.registered = append(f.registered, email)
	return nil
}
