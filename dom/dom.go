// CLAUDE:SUMMARY Capability interfaces over a host document: element queries, reparenting, scroll metrics, event hooks.
// Package dom defines the capability surface the preservation engine needs
// from a host document. The engine never touches a concrete DOM: everything
// it does — find wrappers, move subtrees, read scroll state, listen for the
// swap events — goes through Env and Element. htmldom implements the
// surface over parsed x/net/html trees, roddom over a live Chrome page.
package dom

// ScrollState is one element's scroll offsets.
type ScrollState struct {
	Top  float64
	Left float64
}

// Metrics carries the layout facts needed to decide scrollability:
// computed overflow per axis plus content and visible extents.
type Metrics struct {
	OverflowX    string
	OverflowY    string
	ScrollWidth  float64
	ClientWidth  float64
	ScrollHeight float64
	ClientHeight float64
}

// Element is one element node in a host document.
//
// Implementations must make Equal reflect underlying-node identity: two
// Element values obtained through any sequence of calls compare equal iff
// they address the same node.
type Element interface {
	// Tag returns the lower-case tag name.
	Tag() string
	// Attr returns an attribute value and whether it is present.
	Attr(name string) (string, bool)
	// SetAttr sets or replaces an attribute.
	SetAttr(name, value string)
	// Parent returns the parent element, or nil at the document root.
	Parent() Element
	// Children returns the element children in document order.
	Children() []Element
	// Equal reports whether other addresses the same underlying node.
	Equal(other Element) bool
	// Metrics returns the element's current layout metrics.
	Metrics() Metrics
	// Scroll returns the element's current scroll offsets.
	Scroll() ScrollState
	// SetScroll writes the element's scroll offsets.
	SetScroll(s ScrollState)
}

// Env is the host document environment.
type Env interface {
	// ElementsByTag returns all elements with the given tag, document order.
	ElementsByTag(tag string) []Element
	// ElementByID returns the element with the given id, or nil.
	ElementByID(id string) Element
	// Body returns the document body.
	Body() Element
	// CreateElement fabricates a detached element.
	CreateElement(tag string) Element
	// AppendChild moves child to the end of parent's children. The child is
	// detached from any previous parent first; this is the single
	// relocation primitive, a move, never a copy.
	AppendChild(parent, child Element)
	// ReplaceChild puts repl into old's slot under old's parent; old is
	// detached. repl is detached from any previous parent first.
	ReplaceChild(old, repl Element)
	// On subscribes fn to a named document event. The returned function
	// removes the subscription; calling it more than once is harmless.
	On(event string, fn func()) (off func())
}

// Contains reports whether el is ancestor or a descendant of it.
func Contains(ancestor, el Element) bool {
	if ancestor == nil || el == nil {
		return false
	}
	for cur := el; cur != nil; cur = cur.Parent() {
		if cur.Equal(ancestor) {
			return true
		}
	}
	return false
}

// Walk visits every element strictly below root in document order.
func Walk(root Element, fn func(Element)) {
	for _, c := range root.Children() {
		fn(c)
		Walk(c, fn)
	}
}
