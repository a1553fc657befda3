package navmanager

import (
	"errors"
	"fmt"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/navmanager/pkg/navmanager/internal"
	"github.com/BrandonKowalski/navmanager/pkg/navmanager/router"
)

// ManagerOptions configures a Manager.
type ManagerOptions struct {
	InitialRoute          string              // Root route established by Mount (required)
	InitialArguments      any                 // Arguments for the root route
	Routes                []RouteEntry        // Route table, searched in order
	Router                *router.Router      // Stack to drive; nil creates a new one
	UnknownRouteHandler   UnknownRouteHandler // Fallback for unknown names; nil uses the default handler
	RejectDuplicateRoutes bool                // Fail construction instead of resolving duplicates first-match
}

// Manager ties a route table to a Router. It resolves route names to views
// and establishes the root route when the host surface mounts.
//
// Like Router, a Manager is meant to be used from the goroutine driving the
// host surface.
type Manager struct {
	initialRoute     string
	initialArguments any
	routes           []RouteEntry
	router           *router.Router
	unknownHandler   UnknownRouteHandler
	mounted          atomic.Bool
}

// NewManager validates options and builds a Manager.
//
// Duplicate route names are allowed by default: the first registration wins
// and a warning is logged once. Set RejectDuplicateRoutes to get a
// *DuplicateRouteError instead.
func NewManager(opts ManagerOptions) (*Manager, error) {
	if opts.InitialRoute == "" {
		return nil, errors.New("navmanager: initial route is required")
	}
	for i, entry := range opts.Routes {
		if entry.Factory == nil {
			return nil, fmt.Errorf("navmanager: route %q (entry %d) has no view factory", entry.Name, i)
		}
	}

	if dups := duplicateNames(opts.Routes); len(dups) > 0 {
		if opts.RejectDuplicateRoutes {
			return nil, &DuplicateRouteError{Names: dups}
		}
		internal.GetInternalLogger().Warn("Duplicate route names, first registration wins", "routes", dups)
	}

	r := opts.Router
	if r == nil {
		r = router.New()
	}

	handler := opts.UnknownRouteHandler
	if handler == nil {
		handler = NewDefaultUnknownRouteHandler(NewDefaultNavigationErrorLogger(nil))
	}

	routes := make([]RouteEntry, len(opts.Routes))
	copy(routes, opts.Routes)

	return &Manager{
		initialRoute:     opts.InitialRoute,
		initialArguments: opts.InitialArguments,
		routes:           routes,
		router:           r,
		unknownHandler:   handler,
	}, nil
}

// Router returns the stack this manager drives.
func (m *Manager) Router() *router.Router {
	return m.router
}

// InitialRoute returns the root route name.
func (m *Manager) InitialRoute() string {
	return m.initialRoute
}

// RouteNames returns the registered names in registration order, duplicates included.
func (m *Manager) RouteNames() []string {
	names := make([]string, len(m.routes))
	for i, entry := range m.routes {
		names[i] = entry.Name
	}
	return names
}

// Mount resets the stack to the initial route. Only the first call does
// anything; it returns true when it established the root.
// Hosts call it once on activation, before the first render.
func (m *Manager) Mount() bool {
	if !m.mounted.CompareAndSwap(false, true) {
		return false
	}
	m.router.OffAll(m.initialRoute, m.initialArguments)
	internal.GetInternalLogger().Debug("Navigation mounted", "router", m.router.ID(), "route", m.initialRoute)
	return true
}

// Mounted reports whether Mount has run.
func (m *Manager) Mounted() bool {
	return m.mounted.Load()
}

// ViewFor resolves a route name to a view.
//
// The first entry registered under name builds the view from arguments.
// Unknown names go to the UnknownRouteHandler, which reports the miss and
// supplies a fallback view. The stack is never touched.
func (m *Manager) ViewFor(name string, arguments any) View {
	if entry, ok := findEntry(m.routes, name); ok {
		return entry.Factory(arguments)
	}
	return m.unknownHandler.HandleUnknownRoute(name)
}

// ViewForRoute resolves a stack entry.
func (m *Manager) ViewForRoute(route router.Route) View {
	return m.ViewFor(route.Name(), route.Arguments())
}

// TopView resolves the visible route. Before Mount, or on an empty stack,
// it resolves the initial route instead.
func (m *Manager) TopView() View {
	if top, ok := m.router.Top(); ok {
		return m.ViewForRoute(top)
	}
	return m.ViewFor(m.initialRoute, m.initialArguments)
}

// Views resolves every route on the stack, root first.
func (m *Manager) Views() []View {
	path := m.router.Path()
	views := make([]View, len(path))
	for i, route := range path {
		views[i] = m.ViewForRoute(route)
	}
	return views
}
