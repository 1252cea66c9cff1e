// CLAUDE:SUMMARY Forwards document events to Go via Runtime.addBinding + RuntimeBindingCalled.
package roddom

import (
	"sync"

	"github.com/go-rod/rod/lib/proto"
)

const bindingName = "__domswap_binding"

// eventHub fans RuntimeBindingCalled events out to Go subscribers. One
// binding and one listener goroutine serve all event names.
type eventHub struct {
	env *Env

	mu       sync.Mutex
	nextID   int
	handlers map[string]map[int]func()
	started  bool
}

func newEventHub(env *Env) *eventHub {
	return &eventHub{env: env, handlers: make(map[string]map[int]func())}
}

func (h *eventHub) on(event string, fn func()) (off func()) {
	h.mu.Lock()
	h.ensureListenerLocked()
	h.nextID++
	id := h.nextID
	if h.handlers[event] == nil {
		h.handlers[event] = make(map[int]func())
	}
	h.handlers[event][id] = fn
	h.mu.Unlock()

	// One in-page forwarder per event name; re-registering is a no-op.
	h.env.eval(`(ev) => {
		window.__domswapEv = window.__domswapEv || {};
		if (window.__domswapEv[ev]) return;
		window.__domswapEv[ev] = true;
		document.addEventListener(ev, () => window.`+bindingName+`(ev));
	}`, event)

	return func() {
		h.mu.Lock()
		delete(h.handlers[event], id)
		h.mu.Unlock()
	}
}

// ensureListenerLocked installs the binding and starts the listener
// goroutine on first use.
func (h *eventHub) ensureListenerLocked() {
	if h.started {
		return
	}
	h.started = true

	if err := (proto.RuntimeAddBinding{Name: bindingName}).Call(h.env.page); err != nil {
		h.env.logger.Warn("roddom: addBinding failed (may already exist)", "error", err)
	}

	page := h.env.page
	go page.Context(h.env.ctx).EachEvent(func(e *proto.RuntimeBindingCalled) {
		if e.Name != bindingName {
			return
		}
		h.dispatch(e.Payload)
	})()
}

func (h *eventHub) dispatch(event string) {
	h.mu.Lock()
	fns := make([]func(), 0, len(h.handlers[event]))
	for _, fn := range h.handlers[event] {
		fns = append(fns, fn)
	}
	h.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
