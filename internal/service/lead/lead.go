package lead

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/cvlsoft/aios_backend/config"
	"github.com/cvlsoft/aios_backend/internal/repo"
	"github.com/cvlsoft/aios_backend/pkg/email"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// Submission is the raw client payload. Every field may be absent or
// malformed; nothing the browser validated is trusted here.
type Submission struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Company   string
	Source    string
}

// ---------------------------------------------------------------------------
// Collaborator interfaces
// ---------------------------------------------------------------------------

// Store persists leads. Implemented by *repo.LeadRepository.
type Store interface {
	Insert(ctx context.Context, lead *repo.Lead) error
}

// Mailer sends a single outbound message. Implemented by *email.Client.
type Mailer interface {
	Send(ctx context.Context, m email.Message) error
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Submit(ctx context.Context, sub Submission) (*repo.Lead, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type leadService struct {
	store  Store
	mailer Mailer
	cfg    config.LeadsConfig
}

func New(store Store, mailer Mailer, cfg config.LeadsConfig) Service {
	return &leadService{store: store, mailer: mailer, cfg: cfg}
}

// Submit runs the linear demo-request pipeline: validate, persist,
// notify. Validation failures return before any side effect. Once the
// insert succeeds the lead is captured; each email send is best-effort
// and a failure in one never blocks the other or the success result.
func (s *leadService) Submit(ctx context.Context, sub Submission) (*repo.Lead, error) {
	slog.Info("demo request received",
		"email", sub.Email,
		"company", sub.Company,
		"source", sub.Source,
	)

	if verr := Validate(sub); verr != nil {
		return nil, verr
	}

	source := strings.TrimSpace(sub.Source)
	if source == "" {
		source = s.cfg.DefaultSource
	}

	l := &repo.Lead{
		FirstName: strings.TrimSpace(sub.FirstName),
		LastName:  strings.TrimSpace(sub.LastName),
		Email:     strings.TrimSpace(sub.Email),
		Phone:     normalizePhone(sub.Phone),
		Company:   strings.TrimSpace(sub.Company),
		Source:    source,
	}

	if err := s.store.Insert(ctx, l); err != nil {
		slog.Error("lead persistence failed", "error", err, "email", l.Email)
		return nil, ErrInternal
	}

	s.notify(ctx, l)

	return l, nil
}

// notify sends the confirmation and the internal notification. The two
// sends are isolated from each other: each failure is logged with a tag
// identifying which message failed and then swallowed.
func (s *leadService) notify(ctx context.Context, l *repo.Lead) {
	data := email.LeadEmailData{
		FirstName: l.FirstName,
		LastName:  l.LastName,
		Email:     l.Email,
		Phone:     l.Phone,
		Company:   l.Company,
		SiteURL:   s.cfg.SiteURL,
		NotifyTo:  s.cfg.NotifyTo,
	}

	if err := s.mailer.Send(ctx, email.BuildLeadConfirmationEmail(data)); err != nil {
		logSendFailure("confirmation", l.Email, err)
	}

	if err := s.mailer.Send(ctx, email.BuildLeadNotificationEmail(data)); err != nil {
		logSendFailure("notification", s.cfg.NotifyTo, err)
	}
}

func logSendFailure(message, to string, err error) {
	var disabled email.ErrDisabled
	if errors.As(err, &disabled) {
		slog.Debug("email disabled, skipping send", "message", message)
		return
	}
	slog.Error("lead email send failed", "message", message, "to", to, "error", err)
}

// normalizePhone formats a parseable phone number as E.164 for storage.
// Phone is optional free text, so anything unparseable is stored as
// submitted rather than rejected.
func normalizePhone(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	num, err := phonenumbers.Parse(raw, "US")
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return raw
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}
