// CLAUDE:SUMMARY Scroll snapshot engine: detects genuinely scrollable descendants, captures and restores their offsets by structural path.
// Package scroll captures and restores the scroll offsets of a wrapper's
// scrollable descendants. Relocation resets native scroll state, so offsets
// are snapshotted before the move and written back after reinstatement,
// addressed by treepath so the same descendant is found in the reinstated
// subtree.
package scroll

import (
	"log/slog"

	"github.com/hazyhaar/domswap/dom"
	"github.com/hazyhaar/domswap/internal/treepath"
)

// Snapshot maps structural paths to scroll offsets, scoped to one wrapper.
type Snapshot map[string]dom.ScrollState

// Engine captures and restores snapshots.
type Engine struct {
	logger *slog.Logger
}

// New creates an Engine.
func New(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logger: logger}
}

// Scrollable reports whether el can actually scroll on either axis:
// computed overflow is scroll or auto AND the content extent exceeds the
// visible extent. A static overflow declaration over non-overflowing
// content does not count.
func Scrollable(el dom.Element) bool {
	m := el.Metrics()
	if scrollingOverflow(m.OverflowY) && m.ScrollHeight > m.ClientHeight {
		return true
	}
	if scrollingOverflow(m.OverflowX) && m.ScrollWidth > m.ClientWidth {
		return true
	}
	return false
}

func scrollingOverflow(v string) bool {
	return v == "scroll" || v == "auto"
}

// Capture records the offsets of every scrollable descendant of wrapper,
// keyed by structural path. Returns nil when there is nothing to record.
func (e *Engine) Capture(wrapper dom.Element) Snapshot {
	var snap Snapshot
	dom.Walk(wrapper, func(el dom.Element) {
		if !Scrollable(el) {
			return
		}
		path, ok := treepath.Compute(el, wrapper)
		if !ok {
			return
		}
		if snap == nil {
			snap = make(Snapshot)
		}
		snap[path] = el.Scroll()
	})
	return snap
}

// Restore writes a snapshot back into a reinstated wrapper. Entries whose
// path no longer resolves are skipped with a warning; the rest still apply.
func (e *Engine) Restore(wrapper dom.Element, snap Snapshot) {
	for path, s := range snap {
		el, ok := treepath.Resolve(path, wrapper)
		if !ok {
			e.logger.Warn("scroll: path no longer resolves, offset dropped", "path", path)
			continue
		}
		el.SetScroll(s)
	}
}
