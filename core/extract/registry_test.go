package extract

import "testing"

func TestRegistry_ForURL(t *testing.T) {
	registry := NewRegistry()
	ex := newTestExtractor(t, nil)
	registry.Register(ex)

	got, ok := registry.ForURL("https://manhuaus.com/manga/solo-lackey/")
	if !ok {
		t.Fatal("ForURL did not match a registered site")
	}
	if got.Site() != "madara" {
		t.Errorf("Site() = %q, want madara", got.Site())
	}

	if _, ok := registry.ForURL("https://elsewhere.com/manga/x/"); ok {
		t.Error("ForURL matched a URL no extractor handles")
	}
}

func TestRegistry_BySite(t *testing.T) {
	registry := NewRegistry()
	registry.Register(newTestExtractor(t, nil))

	if _, ok := registry.BySite("madara"); !ok {
		t.Error("BySite did not find registered site")
	}
	if _, ok := registry.BySite("other"); ok {
		t.Error("BySite found an unregistered site")
	}
}
