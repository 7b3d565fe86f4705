package content

import "testing"

func TestSite(t *testing.T) {
	site := New().Site()

	if site.Brand != "cvlSoft" {
		t.Errorf("Brand = %q", site.Brand)
	}
	if len(site.Nav) == 0 {
		t.Error("empty nav")
	}
	if site.Hero.Headline == "" || site.Hero.PrimaryCTA == "" {
		t.Error("incomplete hero copy")
	}
	if len(site.Differentiators) != 7 {
		t.Errorf("differentiators = %d, want 7", len(site.Differentiators))
	}
	if len(site.Connectors) != 6 {
		t.Errorf("connectors = %d, want 6", len(site.Connectors))
	}
	if len(site.Flow) != 4 {
		t.Errorf("flow steps = %d, want 4", len(site.Flow))
	}
}

func TestSite_SharedInstance(t *testing.T) {
	a := New().Site()
	b := New().Site()
	if a != b {
		t.Error("Site() should return the same static dictionary")
	}
}
