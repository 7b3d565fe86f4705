package lead

import (
	"context"
	"errors"
	"testing"

	"github.com/cvlsoft/aios_backend/config"
	"github.com/cvlsoft/aios_backend/internal/repo"
	"github.com/cvlsoft/aios_backend/pkg/email"
)

type fakeStore struct {
	inserted []*repo.Lead
	err      error
}

func (f *fakeStore) Insert(ctx context.Context, lead *repo.Lead) error {
	if f.err != nil {
		return f.err
	}
	f.inserted = append(f.inserted, lead)
	return nil
}

type fakeMailer struct {
	sent []email.Message
	errs map[string]error // keyed by subject prefix match
}

func (f *fakeMailer) Send(ctx context.Context, m email.Message) error {
	f.sent = append(f.sent, m)
	for prefix, err := range f.errs {
		if len(m.Subject) >= len(prefix) && m.Subject[:len(prefix)] == prefix {
			return err
		}
	}
	return nil
}

func testConfig() config.LeadsConfig {
	return config.LeadsConfig{
		NotifyTo:      "sales@cvlsoft.net",
		DefaultSource: "website_v1",
		SiteURL:       "https://www.cvlsoft.net",
	}
}

func TestSubmit_Success(t *testing.T) {
	store := &fakeStore{}
	mailer := &fakeMailer{}
	svc := New(store, mailer, testConfig())

	l, err := svc.Submit(t.Context(), Submission{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@acme.io",
		Phone:     "",
		Company:   "Acme",
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if len(store.inserted) != 1 {
		t.Fatalf("inserted %d leads, want 1", len(store.inserted))
	}
	got := store.inserted[0]
	if got.FirstName != "Ada" || got.LastName != "Lovelace" || got.Email != "ada@acme.io" || got.Company != "Acme" {
		t.Errorf("persisted lead = %+v", got)
	}
	if got.Source != "website_v1" {
		t.Errorf("Source = %q, want default website_v1", got.Source)
	}
	if l != got {
		t.Error("Submit should return the persisted lead")
	}

	if len(mailer.sent) != 2 {
		t.Fatalf("sent %d emails, want 2", len(mailer.sent))
	}
	if mailer.sent[0].To[0] != "ada@acme.io" {
		t.Errorf("first send to %v, want submitter", mailer.sent[0].To)
	}
	if mailer.sent[1].To[0] != "sales@cvlsoft.net" {
		t.Errorf("second send to %v, want sales inbox", mailer.sent[1].To)
	}
}

func TestSubmit_SourceTagPreserved(t *testing.T) {
	store := &fakeStore{}
	svc := New(store, &fakeMailer{}, testConfig())

	_, err := svc.Submit(t.Context(), Submission{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@acme.io",
		Company:   "Acme",
		Source:    "website_v2",
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if store.inserted[0].Source != "website_v2" {
		t.Errorf("Source = %q, want website_v2", store.inserted[0].Source)
	}
}

func TestSubmit_ValidationFailureHasNoSideEffects(t *testing.T) {
	store := &fakeStore{}
	mailer := &fakeMailer{}
	svc := New(store, mailer, testConfig())

	_, err := svc.Submit(t.Context(), Submission{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@gmail.com",
		Company:   "Acme",
	})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Submit() error = %v, want ValidationError", err)
	}
	if len(store.inserted) != 0 {
		t.Error("validation failure must not persist")
	}
	if len(mailer.sent) != 0 {
		t.Error("validation failure must not send email")
	}
}

func TestSubmit_StoreFailure(t *testing.T) {
	store := &fakeStore{err: errors.New("connection reset")}
	mailer := &fakeMailer{}
	svc := New(store, mailer, testConfig())

	_, err := svc.Submit(t.Context(), Submission{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@acme.io",
		Company:   "Acme",
	})
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("Submit() error = %v, want ErrInternal", err)
	}
	if len(mailer.sent) != 0 {
		t.Error("persistence failure must not send email")
	}
}

func TestSubmit_MailFailureDoesNotFailSubmission(t *testing.T) {
	store := &fakeStore{}
	mailer := &fakeMailer{errs: map[string]error{
		"New Demo Request": errors.New("smtp timeout"),
	}}
	svc := New(store, mailer, testConfig())

	_, err := svc.Submit(t.Context(), Submission{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@acme.io",
		Company:   "Acme",
	})
	if err != nil {
		t.Fatalf("Submit() error = %v, want nil despite mail failure", err)
	}
	if len(store.inserted) != 1 {
		t.Error("lead should still be persisted")
	}
	if len(mailer.sent) != 2 {
		t.Errorf("both sends should be attempted, got %d", len(mailer.sent))
	}
}

func TestSubmit_ConfirmationFailureStillSendsNotification(t *testing.T) {
	store := &fakeStore{}
	mailer := &fakeMailer{errs: map[string]error{
		"cvlSoft": errors.New("mailbox unavailable"),
	}}
	svc := New(store, mailer, testConfig())

	_, err := svc.Submit(t.Context(), Submission{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@acme.io",
		Company:   "Acme",
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if len(mailer.sent) != 2 {
		t.Fatalf("sent %d emails, want 2", len(mailer.sent))
	}
	if mailer.sent[1].To[0] != "sales@cvlsoft.net" {
		t.Error("internal notification should still be attempted")
	}
}

func TestSubmit_DuplicateSubmissionsBothPersist(t *testing.T) {
	store := &fakeStore{}
	svc := New(store, &fakeMailer{}, testConfig())

	sub := Submission{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@acme.io",
		Company:   "Acme",
	}
	for range 2 {
		if _, err := svc.Submit(t.Context(), sub); err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
	}

	// No dedup key exists; two identical payloads are two leads.
	if len(store.inserted) != 2 {
		t.Errorf("inserted %d leads, want 2", len(store.inserted))
	}
}

func TestSubmit_TrimsFields(t *testing.T) {
	store := &fakeStore{}
	svc := New(store, &fakeMailer{}, testConfig())

	_, err := svc.Submit(t.Context(), Submission{
		FirstName: "  Ada ",
		LastName:  " Lovelace",
		Email:     " ada@acme.io ",
		Company:   "Acme ",
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	got := store.inserted[0]
	if got.FirstName != "Ada" || got.LastName != "Lovelace" || got.Email != "ada@acme.io" || got.Company != "Acme" {
		t.Errorf("fields not trimmed: %+v", got)
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"  ", ""},
		{"(650) 253-0000", "+16502530000"},
		{"+442071838750", "+442071838750"},
		{"ext. 42", "ext. 42"}, // unparseable stays as submitted
	}

	for _, tt := range tests {
		if got := normalizePhone(tt.in); got != tt.want {
			t.Errorf("normalizePhone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
