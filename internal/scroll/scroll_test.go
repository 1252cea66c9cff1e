package scroll

import (
	"strings"
	"testing"

	"github.com/hazyhaar/domswap/dom"
	"github.com/hazyhaar/domswap/dom/htmldom"
)

func parse(t *testing.T, src string) *htmldom.Env {
	t.Helper()
	env, err := htmldom.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	return env
}

// overflowing marks el as a genuinely scrollable box on the Y axis.
func overflowing(env *htmldom.Env, el dom.Element) {
	env.SetMetrics(el, dom.Metrics{
		OverflowY:    "auto",
		ScrollHeight: 400, ClientHeight: 100,
		ScrollWidth: 100, ClientWidth: 100,
	})
}

func TestScrollable(t *testing.T) {
	env := parse(t, `<html><body><div id="box"></div></body></html>`)
	box := env.ElementByID("box")

	cases := []struct {
		name string
		m    dom.Metrics
		want bool
	}{
		{"auto with overflowing content", dom.Metrics{OverflowY: "auto", ScrollHeight: 200, ClientHeight: 100}, true},
		{"scroll with overflowing content", dom.Metrics{OverflowY: "scroll", ScrollHeight: 200, ClientHeight: 100}, true},
		{"auto without overflow", dom.Metrics{OverflowY: "auto", ScrollHeight: 100, ClientHeight: 100}, false},
		{"visible with overflowing content", dom.Metrics{OverflowY: "visible", ScrollHeight: 200, ClientHeight: 100}, false},
		{"hidden with overflowing content", dom.Metrics{OverflowY: "hidden", ScrollHeight: 200, ClientHeight: 100}, false},
		{"horizontal only", dom.Metrics{OverflowX: "scroll", ScrollWidth: 300, ClientWidth: 100}, true},
		{"no metrics at all", dom.Metrics{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env.SetMetrics(box, tc.m)
			if got := Scrollable(box); got != tc.want {
				t.Errorf("Scrollable: got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestScrollableFromInlineStyle(t *testing.T) {
	env := parse(t, `<html><body>
		<div id="box" style="overflow-y: auto; height: 100px"></div>
	</body></html>`)
	box := env.ElementByID("box")

	// Overflow comes from the style attribute; extents from the side table.
	env.SetMetrics(box, dom.Metrics{ScrollHeight: 250, ClientHeight: 100})
	if !Scrollable(box) {
		t.Error("Scrollable with inline overflow-y:auto: got false, want true")
	}
}

func TestCaptureRestoreIdempotent(t *testing.T) {
	env := parse(t, `<html><body>
		<astro-island id="w">
			<div id="list"><ul><li>a</li></ul></div>
			<div id="static"></div>
		</astro-island>
	</body></html>`)
	w := env.ElementByID("w")
	list := env.ElementByID("list")
	overflowing(env, list)
	list.SetScroll(dom.ScrollState{Top: 50, Left: 0})

	e := New(nil)
	snap := e.Capture(w)
	if len(snap) != 1 {
		t.Fatalf("snapshot entries: got %d, want 1", len(snap))
	}

	// Restore with no intervening scroll must leave offsets unchanged.
	e.Restore(w, snap)
	if got := list.Scroll(); got.Top != 50 || got.Left != 0 {
		t.Errorf("offsets after restore: got %+v, want {Top:50 Left:0}", got)
	}
}

func TestCaptureNothingScrollable(t *testing.T) {
	env := parse(t, `<html><body>
		<astro-island id="w"><div><p>text</p></div></astro-island>
	</body></html>`)
	if snap := New(nil).Capture(env.ElementByID("w")); snap != nil {
		t.Errorf("snapshot: got %v, want nil", snap)
	}
}

func TestRestoreSkipsUnresolvablePaths(t *testing.T) {
	env := parse(t, `<html><body>
		<astro-island id="w"><div id="only"></div></astro-island>
	</body></html>`)
	w := env.ElementByID("w")
	only := env.ElementByID("only")
	overflowing(env, only)
	only.SetScroll(dom.ScrollState{Top: 10})

	snap := Snapshot{
		"div[1]": dom.ScrollState{Top: 30},
		"div[9]": dom.ScrollState{Top: 99}, // resolves nowhere
	}
	New(nil).Restore(w, snap)

	if got := only.Scroll(); got.Top != 30 {
		t.Errorf("resolvable entry not applied: got Top=%v, want 30", got.Top)
	}
}
