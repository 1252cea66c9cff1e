package identity

import (
	"strings"
	"testing"

	"github.com/hazyhaar/domswap/dom"
	"github.com/hazyhaar/domswap/dom/htmldom"
)

// wrapper builds a single astro-island element carrying the given props
// attribute value, or no attribute at all when props is empty.
func wrapper(t *testing.T, props string) dom.Element {
	t.Helper()
	src := `<html><body><astro-island></astro-island></body></html>`
	env, err := htmldom.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	els := env.ElementsByTag("astro-island")
	if len(els) != 1 {
		t.Fatalf("wrappers: got %d, want 1", len(els))
	}
	if props != "" {
		els[0].SetAttr("props", props)
	}
	return els[0]
}

func TestKeyRoundTrip(t *testing.T) {
	el := wrapper(t, `{"count":[0,"7"],"persist":[0,"c1"]}`)
	key, ok := Key(el, "props", "persist")
	if !ok {
		t.Fatal("Key: got !ok, want ok")
	}
	if key != "c1" {
		t.Errorf("key: got %q, want %q", key, "c1")
	}
}

func TestKeyMalformed(t *testing.T) {
	cases := []struct {
		name  string
		props string
	}{
		{"missing attribute", ""},
		{"malformed json", `{"persist":`},
		{"not an object", `[0,"c1"]`},
		{"property absent", `{"other":[0,"c1"]}`},
		{"value not array", `{"persist":"c1"}`},
		{"wrong arity short", `{"persist":[0]}`},
		{"wrong arity long", `{"persist":[0,"c1","x"]}`},
		{"non-zero tag", `{"persist":[1,"c1"]}`},
		{"non-numeric tag", `{"persist":["0","c1"]}`},
		{"non-string payload", `{"persist":[0,42]}`},
		{"null payload", `{"persist":[0,null]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			el := wrapper(t, tc.props)
			if key, ok := Key(el, "props", "persist"); ok {
				t.Errorf("got key %q, want no key", key)
			}
		})
	}
}

func TestKeyEmptyStringIsAKey(t *testing.T) {
	// An empty string is well-typed; whether it is useful is the caller's
	// problem, not an extraction failure.
	el := wrapper(t, `{"persist":[0,""]}`)
	key, ok := Key(el, "props", "persist")
	if !ok {
		t.Fatal("Key: got !ok, want ok")
	}
	if key != "" {
		t.Errorf("key: got %q, want empty string", key)
	}
}
