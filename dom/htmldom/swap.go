// CLAUDE:SUMMARY Models a full-document swap: before event, persist-marked adoption, tree replacement, after event.
package htmldom

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// PersistAttr marks an element the hosting environment carries across a
// document swap. The holding container must wear it to actually survive.
const PersistAttr = "data-astro-transition-persist"

// Swap replaces the current document with next, the way a view-transition
// navigation would: fire the before event against the old tree, adopt every
// persist-marked element into the new tree, install it, fire the after
// event. An adopted element replaces the new tree's element carrying the
// same persist value when one exists, otherwise it is appended to the new
// body. Elements parked inside an adopted subtree survive with it;
// everything else in the old tree is gone.
func (e *Env) Swap(next *html.Node, beforeEvent, afterEvent string) {
	e.Dispatch(beforeEvent)

	var adopted []*html.Node
	walkNodes(e.doc, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		if _, ok := attrValue(n, PersistAttr); ok {
			adopted = append(adopted, n)
		}
	})

	e.doc = next

	body := findBody(next)
	for _, n := range adopted {
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
		val, _ := attrValue(n, PersistAttr)
		if twin := findPersistTwin(next, val); twin != nil && twin.Parent != nil {
			twin.Parent.InsertBefore(n, twin)
			twin.Parent.RemoveChild(twin)
			continue
		}
		if body != nil {
			body.AppendChild(n)
		}
	}

	e.Dispatch(afterEvent)
}

func attrValue(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func findPersistTwin(doc *html.Node, val string) *html.Node {
	var twin *html.Node
	walkNodes(doc, func(n *html.Node) {
		if twin != nil || n.Type != html.ElementNode {
			return
		}
		if v, ok := attrValue(n, PersistAttr); ok && v == val {
			twin = n
		}
	})
	return twin
}

func findBody(doc *html.Node) *html.Node {
	var body *html.Node
	walkNodes(doc, func(n *html.Node) {
		if body == nil && n.Type == html.ElementNode && n.DataAtom == atom.Body {
			body = n
		}
	})
	return body
}
