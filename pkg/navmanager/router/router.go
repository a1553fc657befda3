package router

import (
	"github.com/google/uuid"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/navmanager/pkg/navmanager/internal"
)

// Op identifies which stack mutation produced a Change.
type Op int

const (
	OpPush    Op = iota // ToNamed
	OpPop               // Back
	OpReplace           // OffNamed
	OpReset             // OffAll
)

func (o Op) String() string {
	switch o {
	case OpPush:
		return "push"
	case OpPop:
		return "pop"
	case OpReplace:
		return "replace"
	case OpReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Change describes a completed stack mutation.
type Change struct {
	Op       Op
	Previous Route   // top before the mutation, zero Route if the stack was empty
	Path     []Route // stack after the mutation, root first
	Version  uint64  // Router.Version after the mutation
}

// Top returns the visible route after the mutation.
func (c Change) Top() (Route, bool) {
	if len(c.Path) == 0 {
		return Route{}, false
	}
	return c.Path[len(c.Path)-1], true
}

type listener struct {
	fn      func(Change)
	removed bool
}

// Router owns one navigation stack and exposes the four named mutations.
// It never validates names: unknown routes surface when a view is resolved.
//
// A Router is confined to one goroutine, normally the one driving the host
// surface. Callers that mutate it from several goroutines must serialize
// access themselves. Independent Routers share no state.
type Router struct {
	id             string
	stack          *Stack
	version        atomic.Uint64
	listeners      []*listener
	dispatching    bool
	pending        []Change
}

// New creates a Router with an empty stack.
// The host is expected to establish a root with OffAll before first render.
func New() *Router {
	return &Router{
		id:    uuid.NewString(),
		stack: NewStack(),
	}
}

// ID returns the router's instance id, used to tell routers apart in logs.
func (r *Router) ID() string {
	return r.id
}

// ToNamed pushes a new route on top of the stack.
func (r *Router) ToNamed(name string, arguments any) {
	previous, _ := r.stack.Peek()
	r.stack.Push(NewRoute(name, arguments))
	r.commit(OpPush, previous)
}

// Back pops the visible route and reports whether anything was removed.
//
// The root is never popped: with one route (or none) on the stack Back is
// a no-op, sends no notification and returns false. Use OffAll to swap the
// root.
func (r *Router) Back() bool {
	if !r.CanBack() {
		return false
	}
	previous, _ := r.stack.Pop()
	r.commit(OpPop, previous)
	return true
}

// CanBack reports whether Back would remove a route.
func (r *Router) CanBack() bool {
	return r.stack.Len() > 1
}

// OffNamed replaces the visible route, keeping everything below it.
// On an empty stack it behaves like ToNamed.
func (r *Router) OffNamed(name string, arguments any) {
	previous, _ := r.stack.Pop()
	r.stack.Push(NewRoute(name, arguments))
	r.commit(OpReplace, previous)
}

// OffAll clears the stack and makes the new route its only entry.
func (r *Router) OffAll(name string, arguments any) {
	previous, _ := r.stack.Peek()
	r.stack.Clear()
	r.stack.Push(NewRoute(name, arguments))
	r.commit(OpReset, previous)
}

// Path returns a copy of the stack, root first.
func (r *Router) Path() []Route {
	return r.stack.Routes()
}

// Top returns the visible route. Returns false if the stack is empty.
func (r *Router) Top() (Route, bool) {
	return r.stack.Peek()
}

// Len returns the number of routes on the stack.
func (r *Router) Len() int {
	return r.stack.Len()
}

// Version returns a counter bumped by every mutation that changed the stack.
// Hosts compare it against the version they rendered to spot stale snapshots.
func (r *Router) Version() uint64 {
	return r.version.Load()
}

// AddListener registers fn to run after every stack mutation.
// Listeners run synchronously on the mutating goroutine, in registration
// order, after the new path is in place. Returns an unsubscribe function;
// an unsubscribed listener is not called again, even for a change that is
// being delivered.
//
// A listener may mutate the router. That change is queued and delivered to
// every listener once the current change has been delivered to all of them,
// so listeners always see changes in version order. All queued changes are
// delivered before the outermost mutating call returns.
func (r *Router) AddListener(fn func(Change)) func() {
	l := &listener{fn: fn}
	r.listeners = append(r.listeners, l)
	return func() {
		if l.removed {
			return
		}
		l.removed = true
		for i, other := range r.listeners {
			if other == l {
				r.listeners = append(r.listeners[:i:i], r.listeners[i+1:]...)
				return
			}
		}
	}
}

func (r *Router) commit(op Op, previous Route) {
	version := r.version.Inc()
	change := Change{
		Op:       op,
		Previous: previous,
		Path:     r.stack.Routes(),
		Version:  version,
	}

	top, _ := change.Top()
	internal.GetInternalLogger().Debug("Navigation stack changed",
		"router", r.id,
		"op", op.String(),
		"from", previous.Name(),
		"to", top.Name(),
		"depth", len(change.Path),
		"version", version,
	)

	r.pending = append(r.pending, change)
	if r.dispatching {
		return
	}
	r.dispatch()
}

func (r *Router) dispatch() {
	r.dispatching = true
	defer func() {
		r.dispatching = false
		r.pending = nil
	}()

	for len(r.pending) > 0 {
		change := r.pending[0]
		r.pending = r.pending[1:]

		// Snapshot so listeners may subscribe or unsubscribe while being notified.
		listeners := append([]*listener(nil), r.listeners...)
		for _, l := range listeners {
			if l.removed {
				continue
			}
			l.fn(change)
		}
	}
}
