// CLAUDE:SUMMARY Canonical dom.Element wrapper around one *html.Node.
package htmldom

import (
	"golang.org/x/net/html"

	"github.com/hazyhaar/domswap/dom"
)

type element struct {
	n   *html.Node
	env *Env
}

func (el *element) Tag() string {
	return el.n.Data
}

func (el *element) Attr(name string) (string, bool) {
	for _, a := range el.n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func (el *element) SetAttr(name, value string) {
	for i, a := range el.n.Attr {
		if a.Key == name {
			el.n.Attr[i].Val = value
			return
		}
	}
	el.n.Attr = append(el.n.Attr, html.Attribute{Key: name, Val: value})
}

func (el *element) Parent() dom.Element {
	p := el.n.Parent
	if p == nil || p.Type != html.ElementNode {
		return nil
	}
	return el.env.wrap(p)
}

func (el *element) Children() []dom.Element {
	var out []dom.Element
	for c := el.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, el.env.wrap(c))
		}
	}
	return out
}

func (el *element) Equal(other dom.Element) bool {
	oe, ok := other.(*element)
	return ok && oe != nil && oe.n == el.n
}

// Metrics merges the side-table entry with overflow declared inline.
// Side-table overflow wins when set; extents come only from the side table.
func (el *element) Metrics() dom.Metrics {
	m := el.env.metrics[el.n]
	if m.OverflowX == "" || m.OverflowY == "" {
		style, _ := el.Attr("style")
		ox, oy := overflowFromStyle(style)
		if m.OverflowX == "" {
			m.OverflowX = ox
		}
		if m.OverflowY == "" {
			m.OverflowY = oy
		}
	}
	return m
}

func (el *element) Scroll() dom.ScrollState {
	return el.env.scroll[el.n]
}

func (el *element) SetScroll(s dom.ScrollState) {
	el.env.scroll[el.n] = s
}
