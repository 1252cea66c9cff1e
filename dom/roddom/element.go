// CLAUDE:SUMMARY dom.Element over an in-page handle; attribute, tree, and scroll accessors are single JS evals.
package roddom

import (
	"github.com/hazyhaar/domswap/dom"
)

type element struct {
	env    *Env
	handle int
	tag    string
}

func (el *element) Tag() string {
	return el.tag
}

func (el *element) Attr(name string) (string, bool) {
	res := el.env.eval(`(h, name) => {
		const el = window.__domswapGet(h);
		return el && el.hasAttribute(name) ? [el.getAttribute(name)] : null;
	}`, el.handle, name)
	if res.Val() == nil {
		return "", false
	}
	arr := res.Arr()
	if len(arr) != 1 {
		return "", false
	}
	return arr[0].Str(), true
}

func (el *element) SetAttr(name, value string) {
	el.env.eval(`(h, name, value) => {
		const el = window.__domswapGet(h);
		if (el) el.setAttribute(name, value);
	}`, el.handle, name, value)
}

func (el *element) Parent() dom.Element {
	res := el.env.eval(`(h) => {
		const el = window.__domswapGet(h);
		const p = el && el.parentElement;
		return p ? [window.__domswapReg(p), p.tagName.toLowerCase()] : null;
	}`, el.handle)
	return el.env.pairToElement(res)
}

func (el *element) Children() []dom.Element {
	res := el.env.eval(`(h) => {
		const el = window.__domswapGet(h);
		return el ? Array.from(el.children).map(
			(c) => [window.__domswapReg(c), c.tagName.toLowerCase()]) : [];
	}`, el.handle)
	if res.Val() == nil {
		return nil
	}
	var out []dom.Element
	for _, pair := range res.Arr() {
		if child := el.env.pairToElement(pair); child != nil {
			out = append(out, child)
		}
	}
	return out
}

func (el *element) Equal(other dom.Element) bool {
	oe, ok := other.(*element)
	return ok && oe != nil && oe.env == el.env && oe.handle == el.handle
}

// Metrics reads real computed style and extents, unlike htmldom.
func (el *element) Metrics() dom.Metrics {
	res := el.env.eval(`(h) => {
		const el = window.__domswapGet(h);
		if (!el) return null;
		const cs = getComputedStyle(el);
		return {
			ox: cs.overflowX, oy: cs.overflowY,
			sw: el.scrollWidth, cw: el.clientWidth,
			sh: el.scrollHeight, ch: el.clientHeight,
		};
	}`, el.handle)
	if res.Val() == nil {
		return dom.Metrics{}
	}
	return dom.Metrics{
		OverflowX:    res.Get("ox").Str(),
		OverflowY:    res.Get("oy").Str(),
		ScrollWidth:  res.Get("sw").Num(),
		ClientWidth:  res.Get("cw").Num(),
		ScrollHeight: res.Get("sh").Num(),
		ClientHeight: res.Get("ch").Num(),
	}
}

func (el *element) Scroll() dom.ScrollState {
	res := el.env.eval(`(h) => {
		const el = window.__domswapGet(h);
		return el ? { top: el.scrollTop, left: el.scrollLeft } : null;
	}`, el.handle)
	if res.Val() == nil {
		return dom.ScrollState{}
	}
	return dom.ScrollState{
		Top:  res.Get("top").Num(),
		Left: res.Get("left").Num(),
	}
}

func (el *element) SetScroll(s dom.ScrollState) {
	el.env.eval(`(h, top, left) => {
		const el = window.__domswapGet(h);
		if (el) { el.scrollTop = top; el.scrollLeft = left; }
	}`, el.handle, s.Top, s.Left)
}
