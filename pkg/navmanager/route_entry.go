package navmanager

// View is whatever a host surface knows how to draw.
// The navigation core never inspects it.
type View any

// ViewFactory builds the view for a route from its argument payload.
// The payload is passed through untouched; checking its shape is up to the factory.
type ViewFactory func(arguments any) View

// RouteEntry pairs a route name with the factory that renders it.
type RouteEntry struct {
	Name    string
	Factory ViewFactory
}

// NewRouteEntry creates a RouteEntry.
func NewRouteEntry(name string, factory ViewFactory) RouteEntry {
	return RouteEntry{Name: name, Factory: factory}
}

// PlaceholderView is the generic screen shown for unknown routes.
type PlaceholderView struct {
	RouteName string
	Title     string
	Message   string
}

// findEntry returns the first entry registered under name.
func findEntry(routes []RouteEntry, name string) (RouteEntry, bool) {
	for _, entry := range routes {
		if entry.Name == name {
			return entry, true
		}
	}
	return RouteEntry{}, false
}

// duplicateNames returns each name registered more than once, in first-seen order.
func duplicateNames(routes []RouteEntry) []string {
	seen := make(map[string]int, len(routes))
	var dups []string
	for _, entry := range routes {
		seen[entry.Name]++
		if seen[entry.Name] == 2 {
			dups = append(dups, entry.Name)
		}
	}
	return dups
}
