// CLAUDE:SUMMARY In-memory dom.Env over a parsed x/net/html tree with side-table layout metrics and scroll state.
// Package htmldom implements dom.Env over parsed HTML trees. It is the
// environment used by tests and the demo binary: a real tree, real
// reparenting, but no layout engine. Overflow is read from inline styles;
// extents and scroll offsets live in side tables the embedder fills via
// SetMetrics and dom.Element.SetScroll.
package htmldom

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/hazyhaar/domswap/dom"
)

// Env is an in-memory document environment.
type Env struct {
	doc      *html.Node
	elems    map[*html.Node]*element
	metrics  map[*html.Node]dom.Metrics
	scroll   map[*html.Node]dom.ScrollState
	handlers map[string][]*handler
	nextID   int
}

// Parse reads an HTML document into a fresh environment.
func Parse(r io.Reader) (*Env, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return NewEnv(doc), nil
}

// NewEnv wraps an already-parsed document.
func NewEnv(doc *html.Node) *Env {
	return &Env{
		doc:      doc,
		elems:    make(map[*html.Node]*element),
		metrics:  make(map[*html.Node]dom.Metrics),
		scroll:   make(map[*html.Node]dom.ScrollState),
		handlers: make(map[string][]*handler),
	}
}

// Render serialises the current document.
func (e *Env) Render(w io.Writer) error {
	return html.Render(w, e.doc)
}

// Document returns the current document root node.
func (e *Env) Document() *html.Node {
	return e.doc
}

// wrap returns the canonical Element for a node.
func (e *Env) wrap(n *html.Node) *element {
	if n == nil {
		return nil
	}
	if el, ok := e.elems[n]; ok {
		return el
	}
	el := &element{n: n, env: e}
	e.elems[n] = el
	return el
}

// ElementsByTag returns all elements with the given tag in document order.
func (e *Env) ElementsByTag(tag string) []dom.Element {
	tag = strings.ToLower(tag)
	var out []dom.Element
	walkNodes(e.doc, func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, e.wrap(n))
		}
	})
	return out
}

// ElementByID returns the element with the given id, or nil.
func (e *Env) ElementByID(id string) dom.Element {
	var found *html.Node
	walkNodes(e.doc, func(n *html.Node) {
		if found != nil || n.Type != html.ElementNode {
			return
		}
		for _, a := range n.Attr {
			if a.Key == "id" && a.Val == id {
				found = n
				return
			}
		}
	})
	if found == nil {
		return nil
	}
	return e.wrap(found)
}

// Body returns the document body.
func (e *Env) Body() dom.Element {
	body := findBody(e.doc)
	if body == nil {
		return nil
	}
	return e.wrap(body)
}

// CreateElement fabricates a detached element.
func (e *Env) CreateElement(tag string) dom.Element {
	tag = strings.ToLower(tag)
	return e.wrap(&html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Lookup([]byte(tag)),
		Data:     tag,
	})
}

// AppendChild moves child to the end of parent's children. Like a real
// DOM, relocation resets the scroll offsets of the moved subtree.
func (e *Env) AppendChild(parent, child dom.Element) {
	p, c := asNode(parent), asNode(child)
	if p == nil || c == nil {
		return
	}
	if c.Parent != nil {
		c.Parent.RemoveChild(c)
	}
	e.resetScroll(c)
	p.AppendChild(c)
}

// ReplaceChild puts repl into old's slot; old is detached. The moved
// subtree's scroll offsets are reset, as a real reinsertion would.
func (e *Env) ReplaceChild(old, repl dom.Element) {
	o, r := asNode(old), asNode(repl)
	if o == nil || r == nil || o.Parent == nil {
		return
	}
	if r.Parent != nil {
		r.Parent.RemoveChild(r)
	}
	e.resetScroll(r)
	p := o.Parent
	p.InsertBefore(r, o)
	p.RemoveChild(o)
}

func (e *Env) resetScroll(n *html.Node) {
	walkNodes(n, func(nn *html.Node) {
		delete(e.scroll, nn)
	})
}

// SetMetrics installs layout metrics for an element. A parsed tree has no
// layout, so scrollability facts come from the embedder.
func (e *Env) SetMetrics(el dom.Element, m dom.Metrics) {
	if n := asNode(el); n != nil {
		e.metrics[n] = m
	}
}

func asNode(el dom.Element) *html.Node {
	he, ok := el.(*element)
	if !ok || he == nil {
		return nil
	}
	return he.n
}

func walkNodes(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkNodes(c, fn)
	}
}
