package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/cvlsoft/aios_backend/internal/repo"
	"github.com/cvlsoft/aios_backend/internal/service/lead"
)

type fakeLeadService struct {
	got   lead.Submission
	calls int
	err   error
}

func (f *fakeLeadService) Submit(ctx context.Context, sub lead.Submission) (*repo.Lead, error) {
	f.calls++
	f.got = sub
	if f.err != nil {
		return nil, f.err
	}
	return &repo.Lead{
		FirstName: sub.FirstName,
		LastName:  sub.LastName,
		Email:     sub.Email,
		Phone:     sub.Phone,
		Company:   sub.Company,
		Source:    sub.Source,
	}, nil
}

func newDemoApp(svc lead.Service) *fiber.App {
	app := fiber.New()
	h := NewDemoHandler(svc)
	app.Post("/api/v1/demo-request", h.Submit)
	return app
}

func postDemo(t *testing.T, app *fiber.App, body string) (*http.Response, formResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/demo-request", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}

	var out formResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp, out
}

func TestSubmit_OK(t *testing.T) {
	svc := &fakeLeadService{}
	app := newDemoApp(svc)

	resp, out := postDemo(t, app, `{
		"firstName": "Ada",
		"lastName": "Lovelace",
		"email": "ada@acme.io",
		"phone": "",
		"company": "Acme",
		"source": "website_v2"
	}`)

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if !out.OK {
		t.Error("ok = false, want true")
	}
	if out.Message != submitConfirmation {
		t.Errorf("message = %q", out.Message)
	}
	if svc.calls != 1 {
		t.Errorf("service called %d times, want 1", svc.calls)
	}
	if svc.got.Email != "ada@acme.io" || svc.got.Source != "website_v2" {
		t.Errorf("submission = %+v", svc.got)
	}
}

func TestSubmit_ValidationError(t *testing.T) {
	svc := &fakeLeadService{err: &lead.ValidationError{
		Field:   "email",
		Message: "Please enter a valid work email.",
	}}
	app := newDemoApp(svc)

	resp, out := postDemo(t, app, `{"firstName":"Ada"}`)

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	if out.OK {
		t.Error("ok = true, want false")
	}
	if out.Message != "Please enter a valid work email." {
		t.Errorf("message = %q", out.Message)
	}
}

func TestSubmit_InternalError(t *testing.T) {
	svc := &fakeLeadService{err: lead.ErrInternal}
	app := newDemoApp(svc)

	resp, out := postDemo(t, app, `{"firstName":"Ada","lastName":"Lovelace","email":"ada@acme.io","company":"Acme"}`)

	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", resp.StatusCode)
	}
	if out.OK {
		t.Error("ok = true, want false")
	}
	if out.Message != "Unable to process request right now." {
		t.Errorf("message = %q, internal detail must not leak", out.Message)
	}
}

func TestSubmit_MalformedBody(t *testing.T) {
	svc := &fakeLeadService{}
	app := newDemoApp(svc)

	resp, out := postDemo(t, app, `{"firstName": `)

	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", resp.StatusCode)
	}
	if out.Message != "Unable to process request right now." {
		t.Errorf("message = %q, want generic", out.Message)
	}
	if svc.calls != 0 {
		t.Error("service must not be called for unparseable body")
	}
}

func TestSubmit_MissingFieldsAreForwardedEmpty(t *testing.T) {
	svc := &fakeLeadService{}
	app := newDemoApp(svc)

	// Absent fields reach the service as empty strings; the service owns
	// all validation, the handler trusts nothing about the payload.
	_, _ = postDemo(t, app, `{}`)

	if svc.calls != 1 {
		t.Fatalf("service called %d times, want 1", svc.calls)
	}
	if svc.got != (lead.Submission{}) {
		t.Errorf("submission = %+v, want zero value", svc.got)
	}
}
