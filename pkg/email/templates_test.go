package email

import (
	"strings"
	"testing"
)

func TestBuildLeadConfirmationEmail(t *testing.T) {
	msg := BuildLeadConfirmationEmail(LeadEmailData{
		FirstName: "Ada",
		Email:     "ada@acme.io",
		SiteURL:   "https://www.cvlsoft.net",
	})

	if len(msg.To) != 1 || msg.To[0] != "ada@acme.io" {
		t.Errorf("To = %v, want [ada@acme.io]", msg.To)
	}
	if msg.Subject != "cvlSoft — AIOS Demo Request" {
		t.Errorf("Subject = %q", msg.Subject)
	}
	if !strings.Contains(msg.HTMLBody, "Ada,") {
		t.Error("HTML body missing first-name greeting")
	}
	if !strings.Contains(msg.TextBody, "Ada,") {
		t.Error("text body missing first-name greeting")
	}
	if !strings.Contains(msg.HTMLBody, "https://www.cvlsoft.net") {
		t.Error("HTML body missing site link")
	}
}

func TestBuildLeadConfirmationEmail_NoFirstName(t *testing.T) {
	msg := BuildLeadConfirmationEmail(LeadEmailData{Email: "ops@acme.io"})

	if !strings.Contains(msg.HTMLBody, "there,") {
		t.Error("expected fallback greeting for empty first name")
	}
}

func TestBuildLeadNotificationEmail(t *testing.T) {
	msg := BuildLeadNotificationEmail(LeadEmailData{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@acme.io",
		Phone:     "+15555550100",
		Company:   "Acme",
		NotifyTo:  "sales@cvlsoft.net",
	})

	if len(msg.To) != 1 || msg.To[0] != "sales@cvlsoft.net" {
		t.Errorf("To = %v, want [sales@cvlsoft.net]", msg.To)
	}
	if msg.Subject != "New Demo Request: Ada Lovelace — Acme" {
		t.Errorf("Subject = %q", msg.Subject)
	}
	if msg.ReplyTo != "ada@acme.io" {
		t.Errorf("ReplyTo = %q", msg.ReplyTo)
	}
	if !strings.Contains(msg.HTMLBody, `mailto:ada@acme.io`) {
		t.Error("HTML body missing mailto link")
	}
	if !strings.Contains(msg.HTMLBody, "+15555550100") {
		t.Error("HTML body missing phone")
	}
}

func TestBuildLeadNotificationEmail_EmptyPhone(t *testing.T) {
	msg := BuildLeadNotificationEmail(LeadEmailData{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@acme.io",
		Company:   "Acme",
		NotifyTo:  "sales@cvlsoft.net",
	})

	if !strings.Contains(msg.HTMLBody, "—") {
		t.Error("expected em-dash placeholder for empty phone")
	}
	if !strings.Contains(msg.TextBody, "Phone:   —") {
		t.Error("expected em-dash placeholder in text body")
	}
}

func TestBuildLeadNotificationEmail_EscapesHTML(t *testing.T) {
	msg := BuildLeadNotificationEmail(LeadEmailData{
		FirstName: "<script>",
		LastName:  "Lovelace",
		Email:     "ada@acme.io",
		Company:   "Acme & Co",
		NotifyTo:  "sales@cvlsoft.net",
	})

	if strings.Contains(msg.HTMLBody, "<script>") {
		t.Error("HTML body contains unescaped markup")
	}
	if !strings.Contains(msg.HTMLBody, "Acme &amp; Co") {
		t.Error("company not HTML-escaped")
	}
}

func TestBuildMessage_Validation(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		msg     Message
		wantErr bool
	}{
		{
			name:    "valid html message",
			from:    "cvlSoft <no-reply@cvlsoft.net>",
			msg:     Message{To: []string{"a@b.io"}, Subject: "hi", HTMLBody: "<p>hi</p>"},
			wantErr: false,
		},
		{
			name:    "missing from",
			from:    "",
			msg:     Message{To: []string{"a@b.io"}, Subject: "hi", HTMLBody: "<p>hi</p>"},
			wantErr: true,
		},
		{
			name:    "missing recipients",
			from:    "no-reply@cvlsoft.net",
			msg:     Message{Subject: "hi", HTMLBody: "<p>hi</p>"},
			wantErr: true,
		},
		{
			name:    "missing subject",
			from:    "no-reply@cvlsoft.net",
			msg:     Message{To: []string{"a@b.io"}, HTMLBody: "<p>hi</p>"},
			wantErr: true,
		},
		{
			name:    "missing body",
			from:    "no-reply@cvlsoft.net",
			msg:     Message{To: []string{"a@b.io"}, Subject: "hi"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildMessage(tt.from, tt.msg)
			if (err != nil) != tt.wantErr {
				t.Errorf("buildMessage() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSend_Disabled(t *testing.T) {
	c, err := New(Config{Enabled: false})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	err = c.Send(t.Context(), Message{To: []string{"a@b.io"}, Subject: "hi", TextBody: "hi"})
	if _, ok := err.(ErrDisabled); !ok {
		t.Errorf("expected ErrDisabled, got %v", err)
	}
}
