// CLAUDE:SUMMARY Keeper orchestrator — preserves keyed island wrappers into the holding container before a swap and reinstates them after.
// Package domswap keeps independently-hydrated island wrappers alive across
// full-document swaps. Before the document is replaced each keyed wrapper
// is moved — not copied — into a persistent off-screen container; after the
// new document appears the preserved wrapper replaces its freshly hydrated
// duplicate in place, and the scroll offsets of its scrollable descendants
// are restored.
//
// Usage:
//
//	k := domswap.New(env, cfg, logger)
//	k.Init()          // subscribe to the before/after swap events
//	defer k.Destroy() // unsubscribe and clear all held state
//
// The engine never hydrates or renders fragments, never generates identity
// keys, and performs no network or persistence I/O. All failure modes
// degrade: an untracked wrapper is left alone, a missing container is
// fabricated with a warning, a stale scroll path is skipped.
package domswap

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/hazyhaar/domswap/dom"
	"github.com/hazyhaar/domswap/internal/identity"
	"github.com/hazyhaar/domswap/internal/scroll"
	"github.com/hazyhaar/domswap/internal/store"
)

// cycle states. A navigation cycle opens on the before-swap trigger and
// closes on the matching after-swap trigger.
type state int

const (
	stateIdle state = iota
	statePreserving
	statePreserved
)

// Keeper drives the preserve and restore phases of a document swap.
type Keeper struct {
	env    dom.Env
	cfg    *Config
	logger *slog.Logger
	scroll *scroll.Engine
	store  *store.Store

	mu         sync.Mutex
	state      state
	cycleID    string
	offBefore  func()
	offAfter   func()
	rejected   int
	collisions int
}

// New creates a Keeper bound to an environment. The config is defaulted
// in place; a nil logger falls back to slog.Default.
func New(env dom.Env, cfg *Config, logger *slog.Logger) *Keeper {
	if cfg == nil {
		cfg = &Config{}
	}
	cfg.defaults()
	if logger == nil {
		logger = slog.Default()
	}
	return &Keeper{
		env:    env,
		cfg:    cfg,
		logger: logger,
		scroll: scroll.New(logger),
		store:  store.New(),
	}
}

// Init subscribes to the before/after swap events. Idempotent.
func (k *Keeper) Init() {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.offBefore != nil {
		return
	}
	k.offBefore = k.env.On(k.cfg.BeforeEvent, k.handleBeforeSwap)
	k.offAfter = k.env.On(k.cfg.AfterEvent, k.handleAfterSwap)
	k.logger.Debug("domswap: subscribed",
		"before", k.cfg.BeforeEvent, "after", k.cfg.AfterEvent)
}

// Destroy unsubscribes and clears every parked wrapper and pending
// snapshot. Idempotent; the keeper can be Init'ed again afterwards.
func (k *Keeper) Destroy() {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.offBefore != nil {
		k.offBefore()
		k.offAfter()
		k.offBefore, k.offAfter = nil, nil
	}
	k.store.Clear()
	k.state = stateIdle
	k.cycleID = ""
	k.logger.Debug("domswap: destroyed")
}

// handleBeforeSwap runs the preserve phase: every wrapper in the dying
// document that yields an identity key has its scroll state captured and
// is moved into the holding container.
func (k *Keeper) handleBeforeSwap() {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.state != stateIdle {
		// A second navigation started before the previous one's restore
		// completed. Preserving now would clobber held keys, so the cycle
		// is rejected and the wrappers ride the normal teardown.
		k.rejected++
		k.logger.Warn("domswap: overlapping navigation rejected", "cycle", k.cycleID)
		return
	}
	k.state = statePreserving
	k.cycleID = uuid.New().String()

	container := k.resolveContainer()
	preserved := 0
	for _, w := range k.env.ElementsByTag(k.cfg.IslandTag) {
		if dom.Contains(container, w) {
			continue
		}
		key, ok := identity.Key(w, k.cfg.PropsAttr, k.cfg.KeyProp)
		if !ok {
			continue
		}
		if k.store.IsHeld(key) && k.cfg.Collision == CollisionReject {
			k.collisions++
			k.logger.Warn("domswap: duplicate key, newcomer not preserved",
				"cycle", k.cycleID, "key", key)
			continue
		}
		snap := k.scroll.Capture(w)
		k.env.AppendChild(container, w)
		if evicted := k.store.Hold(key, w); evicted != nil {
			k.collisions++
			k.logger.Warn("domswap: duplicate key, earlier wrapper evicted",
				"cycle", k.cycleID, "key", key)
		}
		if snap != nil {
			k.store.PutSnapshot(key, snap)
		}
		preserved++
		k.logger.Debug("domswap: preserved", "cycle", k.cycleID, "key", key,
			"scrollables", len(snap))
	}

	k.state = statePreserved
	k.logger.Info("domswap: preserve phase done",
		"cycle", k.cycleID, "preserved", preserved, "held", k.store.Held())
}

// handleAfterSwap runs the restore phase: every fresh wrapper in the new
// document whose key is held is replaced in place by the preserved one,
// which then gets its scroll offsets back.
func (k *Keeper) handleAfterSwap() {
	k.mu.Lock()
	defer k.mu.Unlock()

	// The new document may be a different tree; the container reference
	// must not be trusted across the boundary.
	container := k.resolveContainer()
	restored := 0
	for _, w := range k.env.ElementsByTag(k.cfg.IslandTag) {
		if dom.Contains(container, w) {
			continue
		}
		key, ok := identity.Key(w, k.cfg.PropsAttr, k.cfg.KeyProp)
		if !ok || !k.store.IsHeld(key) {
			continue
		}
		kept, _ := k.store.Take(key)
		// The fresh wrapper is discarded entirely; its hydration work is
		// the price of state continuity.
		k.env.ReplaceChild(w, kept)
		if snap, ok := k.store.TakeSnapshot(key); ok {
			k.scroll.Restore(kept, snap)
		}
		restored++
		k.logger.Debug("domswap: reinstated", "cycle", k.cycleID, "key", key)
	}

	k.state = stateIdle
	k.logger.Info("domswap: restore phase done",
		"cycle", k.cycleID, "restored", restored, "held", k.store.Held())
	k.cycleID = ""
}

// resolveContainer finds the holding container by its well-known id,
// fabricating an invisible substitute when the document lacks one. A
// fabricated container is not marked to survive the swap, so it cannot
// actually preserve state — that degradation is warned about, not hidden.
func (k *Keeper) resolveContainer() dom.Element {
	if el := k.env.ElementByID(k.cfg.ContainerID); el != nil {
		return el
	}
	k.logger.Warn("domswap: holding container missing, fabricating one; preserved state will not survive the swap",
		"id", k.cfg.ContainerID)
	el := k.env.CreateElement("div")
	el.SetAttr("id", k.cfg.ContainerID)
	el.SetAttr("style", "display:none")
	if body := k.env.Body(); body != nil {
		k.env.AppendChild(body, el)
	}
	return el
}
