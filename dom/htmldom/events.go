// CLAUDE:SUMMARY Synchronous named-event dispatcher standing in for document events.
package htmldom

type handler struct {
	id int
	fn func()
}

// On subscribes fn to a named event. The returned function removes the
// subscription and is safe to call more than once.
func (e *Env) On(event string, fn func()) (off func()) {
	e.nextID++
	h := &handler{id: e.nextID, fn: fn}
	e.handlers[event] = append(e.handlers[event], h)
	return func() {
		hs := e.handlers[event]
		for i, cur := range hs {
			if cur.id == h.id {
				e.handlers[event] = append(hs[:i], hs[i+1:]...)
				return
			}
		}
	}
}

// Dispatch fires all handlers for an event synchronously, in
// registration order.
func (e *Env) Dispatch(event string) {
	hs := make([]*handler, len(e.handlers[event]))
	copy(hs, e.handlers[event])
	for _, h := range hs {
		h.fn()
	}
}
