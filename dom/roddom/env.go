// CLAUDE:SUMMARY Live-page dom.Env over a rod page: capability calls are JS evals against an in-page handle registry.
// Package roddom implements dom.Env over a live Chrome page driven by rod.
// Elements are stable integer handles kept in an in-page registry (a
// WeakMap deduplicates, so one node is one handle and Equal is handle
// equality). Every capability call is a single page.Eval with JSON args;
// failures are logged and degrade to zero values, nothing crosses the
// boundary as a panic or error.
//
// View-transition swaps do not replace the window object, so handles stay
// valid across the navigations this engine cares about.
package roddom

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-rod/rod"
	"github.com/go-rod/stealth"
	"github.com/ysmood/gson"

	"github.com/hazyhaar/domswap/dom"
)

const registryJS = `() => {
	if (window.__domswapReg) return;
	const R = { seq: 0, byNode: new WeakMap(), byHandle: new Map() };
	window.__domswapR = R;
	window.__domswapReg = (n) => {
		if (!n) return 0;
		let h = R.byNode.get(n);
		if (!h) { h = ++R.seq; R.byNode.set(n, h); R.byHandle.set(h, n); }
		return h;
	};
	window.__domswapGet = (h) => window.__domswapR.byHandle.get(h) || null;
}`

// Env is a live-page document environment.
type Env struct {
	ctx    context.Context
	page   *rod.Page
	logger *slog.Logger
	events *eventHub
}

// New wraps an already-open page. The registry script is installed
// immediately; ctx bounds the event listener goroutine.
func New(ctx context.Context, page *rod.Page, logger *slog.Logger) (*Env, error) {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Env{ctx: ctx, page: page, logger: logger}
	e.events = newEventHub(e)
	if _, err := page.Eval(registryJS); err != nil {
		return nil, fmt.Errorf("roddom: install registry: %w", err)
	}
	return e, nil
}

// Open creates a stealth page, navigates it, waits for load, and wraps it.
func Open(ctx context.Context, browser *rod.Browser, url string, logger *slog.Logger) (*Env, error) {
	page, err := stealth.Page(browser)
	if err != nil {
		return nil, fmt.Errorf("roddom: create page: %w", err)
	}
	if err := page.Context(ctx).Navigate(url); err != nil {
		page.Close()
		return nil, fmt.Errorf("roddom: navigate %s: %w", url, err)
	}
	if err := page.Context(ctx).WaitLoad(); err != nil {
		page.Close()
		return nil, fmt.Errorf("roddom: wait load %s: %w", url, err)
	}
	return New(ctx, page, logger)
}

// eval runs JS on the page and returns its value. Errors are logged and
// come back as JSON null so callers degrade uniformly.
func (e *Env) eval(js string, args ...interface{}) gson.JSON {
	obj, err := e.page.Context(e.ctx).Eval(js, args...)
	if err != nil {
		e.logger.Warn("roddom: eval failed", "error", err)
		return gson.New(nil)
	}
	return obj.Value
}

// ElementsByTag returns all elements with the given tag in document order.
func (e *Env) ElementsByTag(tag string) []dom.Element {
	res := e.eval(`(tag) =>
		Array.from(document.getElementsByTagName(tag)).map(window.__domswapReg)`, tag)
	if res.Val() == nil {
		return nil
	}
	var out []dom.Element
	for _, h := range res.Arr() {
		out = append(out, &element{env: e, handle: h.Int(), tag: tag})
	}
	return out
}

// ElementByID returns the element with the given id, or nil.
func (e *Env) ElementByID(id string) dom.Element {
	res := e.eval(`(id) => {
		const el = document.getElementById(id);
		return el ? [window.__domswapReg(el), el.tagName.toLowerCase()] : null;
	}`, id)
	return e.pairToElement(res)
}

// Body returns the document body.
func (e *Env) Body() dom.Element {
	res := e.eval(`() =>
		document.body ? [window.__domswapReg(document.body), "body"] : null`)
	return e.pairToElement(res)
}

// CreateElement fabricates a detached element.
func (e *Env) CreateElement(tag string) dom.Element {
	res := e.eval(`(tag) => window.__domswapReg(document.createElement(tag))`, tag)
	return &element{env: e, handle: res.Int(), tag: tag}
}

// AppendChild moves child to the end of parent's children. appendChild on
// an attached node is the native move primitive.
func (e *Env) AppendChild(parent, child dom.Element) {
	p, c := asHandle(parent), asHandle(child)
	if p == 0 || c == 0 {
		return
	}
	e.eval(`(p, c) => {
		const P = window.__domswapGet(p), C = window.__domswapGet(c);
		if (P && C) P.appendChild(C);
	}`, p, c)
}

// ReplaceChild puts repl into old's slot; old is detached.
func (e *Env) ReplaceChild(old, repl dom.Element) {
	o, r := asHandle(old), asHandle(repl)
	if o == 0 || r == 0 {
		return
	}
	e.eval(`(o, r) => {
		const O = window.__domswapGet(o), R = window.__domswapGet(r);
		if (O && R && O.parentNode) O.parentNode.replaceChild(R, O);
	}`, o, r)
}

// On subscribes fn to a named document event.
func (e *Env) On(event string, fn func()) (off func()) {
	return e.events.on(event, fn)
}

func (e *Env) pairToElement(res gson.JSON) dom.Element {
	if res.Val() == nil {
		return nil
	}
	pair := res.Arr()
	if len(pair) != 2 || pair[0].Int() == 0 {
		return nil
	}
	return &element{env: e, handle: pair[0].Int(), tag: pair[1].Str()}
}

func asHandle(el dom.Element) int {
	re, ok := el.(*element)
	if !ok || re == nil {
		return 0
	}
	return re.handle
}
