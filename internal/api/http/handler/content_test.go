package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/cvlsoft/aios_backend/internal/service/content"
)

func TestSiteContent(t *testing.T) {
	app := fiber.New()
	h := NewContentHandler(content.New())
	app.Get("/api/v1/content", h.Site)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/content", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var out struct {
		Data content.Site `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Data.Brand != "cvlSoft" {
		t.Errorf("brand = %q", out.Data.Brand)
	}
	if len(out.Data.Nav) == 0 || out.Data.Hero.Headline == "" {
		t.Error("content payload incomplete")
	}
}
